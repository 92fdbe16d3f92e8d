package ports

import "go.trai.ch/peek/internal/core/domain"

// ReportStore persists the outcome of leak runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportStore interface {
	// Put writes report under dir and returns the file path.
	Put(dir string, report domain.Report) (string, error)

	// Get reads the report at path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.Report, error)
}
