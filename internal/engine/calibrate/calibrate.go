// Package calibrate measures whether a machine separates cache hits from misses.
package calibrate

import (
	"slices"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/engine/oracle"
	"go.trai.ch/peek/internal/engine/score"
)

// Prober is the part of the probe array calibration needs.
type Prober interface {
	Addr(class byte) *byte
	FlushClass(class int)
	AccessClass(class, repeats int)
}

// Profile summarizes hit and miss latencies on the current machine.
type Profile struct {
	Samples    int
	HitMedian  domain.Cycles
	MissMedian domain.Cycles
}

// Separated reports whether a hit falls below the scoring threshold of a
// round made of misses, i.e. whether the channel can work at all.
func (p Profile) Separated() bool {
	return p.HitMedian < p.MissMedian*score.HitNumerator/score.HitDenominator
}

// Measure times samples flushed and samples freshly touched accesses,
// walking the classes in scan order.
func Measure(probe Prober, o *oracle.Oracle, samples int) Profile {
	hits := make([]domain.Cycles, 0, samples)
	misses := make([]domain.Cycles, 0, samples)

	for i := range samples {
		class := domain.ScanIndex(i % domain.ProbeClasses)
		addr := probe.Addr(byte(class))

		probe.FlushClass(class)
		misses = append(misses, o.MeasureAccess(addr))

		probe.AccessClass(class, 1)
		hits = append(hits, o.MeasureAccess(addr))
	}

	return Profile{
		Samples:    samples,
		HitMedian:  median(hits),
		MissMedian: median(misses),
	}
}

func median(samples []domain.Cycles) domain.Cycles {
	if len(samples) == 0 {
		return 0
	}
	slices.Sort(samples)
	return samples[len(samples)/2]
}
