// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/peek/internal/core/domain"

// Platform is the minimal set of hardware capabilities the attack depends on.
// Everything above it is architecture independent.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type Platform interface {
	// Now reads a serializing cycle counter.
	Now() domain.Cycles

	// Flush evicts the cache line holding addr from every cache level.
	Flush(addr *byte)

	// ForcedTouch reads addr in a way the compiler cannot remove and that has
	// no other architectural effect.
	ForcedTouch(addr *byte)
}

// Channel resolves a probe class to the address the victim touches for it.
type Channel interface {
	Addr(class byte) *byte
}

// Victim is the bounds-checked accessor whose check is being bypassed.
// Access behaves as `if index < knownSize { touch(channel.Addr(data[index])) }`.
type Victim interface {
	Access(index int)
}

// Machine is a Platform together with the victim code that runs on it.
type Machine interface {
	Platform

	// Name identifies the backend in logs and spans.
	Name() string

	// NewVictim builds the bounds-checked accessor over target, touching channel.
	NewVictim(target domain.Target, channel Channel) Victim
}
