// Package hw is the hardware backend: real cycle counter, real cache flush,
// and the native bounds-checked victim.
package hw

import (
	"go.trai.ch/peek/internal/adapters/victim"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// Name identifies the hardware backend.
const Name = domain.PlatformHardware

// Machine runs the attack on the CPU executing the process.
type Machine struct {
	delay int
}

var _ ports.Machine = (*Machine)(nil)

// Name returns the backend name.
func (m *Machine) Name() string {
	return Name
}

// NewVictim returns the native bounds-checked accessor over target.
func (m *Machine) NewVictim(target domain.Target, channel ports.Channel) ports.Victim {
	return victim.New(m, target, channel, m.delay)
}
