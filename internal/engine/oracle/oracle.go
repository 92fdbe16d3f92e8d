// Package oracle measures the latency of single memory accesses.
package oracle

import (
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// Oracle times accesses with the platform's serializing cycle counter.
// It does not detect a migration to another core between the two reads;
// callers keep the measuring thread pinned.
type Oracle struct {
	platform ports.Platform
}

// New creates an Oracle on top of platform.
func New(platform ports.Platform) *Oracle {
	return &Oracle{platform: platform}
}

// Measure returns the cycles spent in touch.
func (o *Oracle) Measure(touch func()) domain.Cycles {
	start := o.platform.Now()
	touch()
	return o.platform.Now().Since(start)
}

// MeasureAccess returns the cycles spent on one forced touch of addr.
func (o *Oracle) MeasureAccess(addr *byte) domain.Cycles {
	return o.Measure(func() { o.platform.ForcedTouch(addr) })
}
