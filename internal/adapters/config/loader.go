// Package config loads peek.yaml into domain settings.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads path and applies it over the default settings.
// A missing file is not an error: the defaults are returned.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	file.apply(&settings)
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded " + path)
	return settings, nil
}

func (f *File) apply(s *domain.Settings) {
	set(&s.Platform, f.Platform)

	if a := f.Attack; a != nil {
		set(&s.Attack.Stride, a.Stride)
		set(&s.Attack.TrialsPerRound, a.TrialsPerRound)
		set(&s.Attack.UnsafeEveryN, a.UnsafeEveryN)
		set(&s.Attack.MaxRounds, a.MaxRounds)
		set(&s.Attack.Margin, a.Margin)
		set(&s.Attack.SyntheticLatency, a.SyntheticLatency)
		set(&s.Attack.CalibrationRepeats, a.CalibrationRepeats)
	}

	if e := f.Environment; e != nil {
		set(&s.Environment.MitigationsAssumedDisabled, e.MitigationsAssumedDisabled)
		set(&s.Environment.CPU, e.CPU)
	}

	if sim := f.Simulation; sim != nil {
		setCycles(&s.Simulation.HitLatency, sim.HitLatency)
		setCycles(&s.Simulation.MissLatency, sim.MissLatency)
		setCycles(&s.Simulation.Jitter, sim.Jitter)
		set(&s.Simulation.Seed, sim.Seed)
		set(&s.Simulation.Sets, sim.Sets)
		set(&s.Simulation.Ways, sim.Ways)
		set(&s.Simulation.Prefetch, sim.Prefetch)
		set(&s.Simulation.Mitigated, sim.Mitigated)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setCycles(dst *domain.Cycles, src *uint64) {
	if src != nil {
		*dst = domain.Cycles(*src)
	}
}
