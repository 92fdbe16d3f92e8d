// Package report stores leak run reports as JSON files.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a file-per-run strategy.
type Store struct{}

var _ ports.ReportStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put writes report under dir, creating dir when needed.
func (s *Store) Put(dir string, report domain.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrReportMarshalFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "dir", dir)
	}

	filename := filepath.Join(dir, Filename(report))
	//nolint:gosec // Path is constructed from the requested directory and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", filename)
	}

	return filename, nil
}

// Get reads the report at path.
func (s *Store) Get(path string) (*domain.Report, error) {
	//nolint:gosec // Path is supplied by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportUnmarshalFailed.Error()), "path", path)
	}

	return &report, nil
}

// Filename names a report after its machine and a hash of its timestamp,
// so runs on the same machine never overwrite each other.
func Filename(report domain.Report) string {
	stamp := report.Timestamp.UTC().AppendFormat(nil, time.RFC3339Nano)
	return fmt.Sprintf("%s-%016x.json", report.Machine, xxhash.Sum64(stamp))
}
