package app

import (
	"go.trai.ch/peek/internal/adapters/hw"  //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/sim" //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
)

// MachineFactory builds the machine named by settings.Platform.
type MachineFactory func(settings domain.Settings) (ports.Machine, error)

// ResolvePlatform turns "auto" into a concrete backend: the hardware one
// where it is implemented, the simulator elsewhere.
func ResolvePlatform(platform string) string {
	if platform != domain.PlatformAuto {
		return platform
	}
	if hw.Supported {
		return domain.PlatformHardware
	}
	return domain.PlatformSimulated
}

// NewMachine is the default MachineFactory.
func NewMachine(settings domain.Settings) (ports.Machine, error) {
	switch ResolvePlatform(settings.Platform) {
	case domain.PlatformHardware:
		m, err := hw.New(settings.Attack.SyntheticLatency)
		if err != nil {
			return nil, err
		}
		return m, nil
	case domain.PlatformSimulated:
		m, err := sim.New(settings.Simulation)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", settings.Platform)
	}
}
