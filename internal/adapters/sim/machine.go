// Package sim is a deterministic simulated CPU: a cycle clock, one cache level
// in front of memory, a stride prefetcher and a branch predictor that executes
// past a mispredicted bounds check.
package sim

import (
	"math/rand/v2"
	"unsafe"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Name identifies the simulated backend.
const Name = domain.PlatformSimulated

// Machine is a single simulated core. It is not safe for concurrent use.
type Machine struct {
	profile   domain.SimulationProfile
	clock     domain.Cycles
	rng       *rand.Rand
	cache     *Cache
	predictor *Predictor
	sites     int

	lastLine   uintptr
	lastStride uintptr
}

var _ ports.Machine = (*Machine)(nil)

// New creates a machine from profile. The same profile and seed always yield
// the same latencies for the same sequence of operations.
func New(profile domain.SimulationProfile) (*Machine, error) {
	switch {
	case profile.Sets <= 0:
		return nil, zerr.With(zerr.With(domain.ErrInvalidSimulation, "field", "sets"), "value", profile.Sets)
	case profile.Ways <= 0:
		return nil, zerr.With(zerr.With(domain.ErrInvalidSimulation, "field", "ways"), "value", profile.Ways)
	case profile.HitLatency+profile.Jitter >= profile.MissLatency:
		return nil, zerr.With(zerr.With(domain.ErrInvalidSimulation, "hit", profile.HitLatency), "miss", profile.MissLatency)
	}

	return &Machine{
		profile:   profile,
		rng:       rand.New(rand.NewPCG(profile.Seed, profile.Seed^0x9e3779b97f4a7c15)),
		cache:     NewCache(profile.Sets, profile.Ways),
		predictor: NewPredictor(),
	}, nil
}

// Name returns the backend name.
func (m *Machine) Name() string {
	return Name
}

// Now returns the virtual clock.
func (m *Machine) Now() domain.Cycles {
	return m.clock
}

// Flush evicts the line holding addr.
func (m *Machine) Flush(addr *byte) {
	m.cache.Evict(lineOf(addr))
}

// ForcedTouch loads addr, advancing the clock by a hit or miss latency.
func (m *Machine) ForcedTouch(addr *byte) {
	line := lineOf(addr)
	latency := m.profile.MissLatency
	if m.cache.Lookup(line) {
		latency = m.profile.HitLatency
	} else {
		m.cache.Fill(line)
	}
	if m.profile.Jitter > 0 {
		latency += domain.Cycles(m.rng.Uint64N(uint64(m.profile.Jitter) + 1))
	}
	m.clock += latency

	if m.profile.Prefetch {
		m.prefetch(line)
	}
}

// prefetch fills the next line of a stream once two consecutive loads used
// the same stride. Like hardware prefetchers it never crosses a page.
func (m *Machine) prefetch(line uintptr) {
	stride := line - m.lastLine
	if stride != 0 && stride == m.lastStride {
		next := line + stride
		if next/domain.PageSize == line/domain.PageSize {
			m.cache.Fill(next)
		}
	}
	m.lastStride = stride
	m.lastLine = line
}

// speculativeTouch fills the line of addr without any architectural effect.
func (m *Machine) speculativeTouch(addr *byte) {
	m.cache.Fill(lineOf(addr))
}

// NewVictim returns a bounds-checked accessor with its own branch site.
func (m *Machine) NewVictim(target domain.Target, channel ports.Channel) ports.Victim {
	m.sites++
	return &Victim{
		machine: m,
		channel: channel,
		data:    target.Data,
		size:    target.KnownSize,
		site:    m.sites,
	}
}

func lineOf(addr *byte) uintptr {
	return uintptr(unsafe.Pointer(addr)) &^ (domain.CacheLineSize - 1)
}
