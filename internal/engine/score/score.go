// Package score turns the latencies of one round into votes.
package score

import "go.trai.ch/peek/internal/core/domain"

const (
	// HitNumerator and HitDenominator place the hit threshold at 3/4 of the
	// round's mean latency. A relative threshold follows the drift of the
	// mean between runs where a fixed cycle count would not.
	HitNumerator   = 3
	HitDenominator = 4
)

// Accumulator votes for every class that looked cached in a round.
type Accumulator struct{}

// New creates an Accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Threshold returns the latency below which a class counts as a hit.
func (a *Accumulator) Threshold(v *domain.LatencyVector) domain.Cycles {
	return v.Mean() * HitNumerator / HitDenominator
}

// Score adds a vote to table for every class of v below the threshold,
// except exclude, and returns the votes cast. The excluded class is the one
// the in-bounds trials touch legitimately, which would otherwise win every round.
func (a *Accumulator) Score(table *domain.ScoreTable, v *domain.LatencyVector, exclude int) int {
	threshold := a.Threshold(v)
	votes := 0
	for class, latency := range v {
		if class == exclude || latency >= threshold {
			continue
		}
		table.Vote(class)
		votes++
	}
	return votes
}
