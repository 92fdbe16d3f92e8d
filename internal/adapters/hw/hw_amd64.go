package hw

import "go.trai.ch/peek/internal/core/domain"

// Supported reports whether the hardware backend works on this architecture.
const Supported = true

// Implemented in hw_amd64.s.
func rdtscp() uint64
func clflush(addr *byte)
func load(addr *byte)

// New creates the hardware machine. syntheticLatency is the busy-wait the
// victim spends between flushing its bound and comparing against it.
func New(syntheticLatency int) (*Machine, error) {
	return &Machine{delay: syntheticLatency}, nil
}

// Now reads the time stamp counter between two load fences.
func (m *Machine) Now() domain.Cycles {
	return domain.Cycles(rdtscp())
}

// Flush executes CLFLUSH on addr.
func (m *Machine) Flush(addr *byte) {
	clflush(addr)
}

// ForcedTouch loads one byte from addr.
func (m *Machine) ForcedTouch(addr *byte) {
	load(addr)
}
