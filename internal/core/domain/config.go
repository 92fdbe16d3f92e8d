package domain

import "go.trai.ch/zerr"

// Platform names accepted in configuration and on the command line.
const (
	PlatformAuto      = "auto"
	PlatformHardware  = "hardware"
	PlatformSimulated = "simulated"
)

// AttackConfig holds the tunables of the recovery loop.
// The defaults were found empirically on desktop x86 parts and are not
// assumed to be optimal or portable across hardware generations.
type AttackConfig struct {
	// Stride is the distance in bytes between two probe classes.
	Stride int
	// TrialsPerRound is the number of bounds-checked accesses per training pass.
	TrialsPerRound int
	// UnsafeEveryN makes every N-th trial use the out-of-bounds index.
	UnsafeEveryN int
	// MaxRounds bounds the rounds spent on one offset.
	MaxRounds int
	// Margin is the lead the best class needs over twice the runner-up.
	Margin int
	// SyntheticLatency is the busy-wait, in loop iterations, between flushing
	// the bound and comparing against it.
	SyntheticLatency int
	// CalibrationRepeats is the number of architectural touches per round in
	// plain flush+reload mode.
	CalibrationRepeats int
}

// DefaultAttackConfig returns the stock tunables.
func DefaultAttackConfig() AttackConfig {
	return AttackConfig{
		Stride:             512,
		TrialsPerRound:     100,
		UnsafeEveryN:       10,
		MaxRounds:          1000,
		Margin:             400,
		SyntheticLatency:   100,
		CalibrationRepeats: 100,
	}
}

// Validate rejects tunables the loop cannot run with.
func (c AttackConfig) Validate() error {
	switch {
	case c.Stride < CacheLineSize || c.Stride%CacheLineSize != 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "stride"), "value", c.Stride)
	case c.TrialsPerRound <= 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "trialsPerRound"), "value", c.TrialsPerRound)
	case c.UnsafeEveryN < 2:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "unsafeEveryN"), "value", c.UnsafeEveryN)
	case c.MaxRounds <= 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "maxRounds"), "value", c.MaxRounds)
	case c.Margin < 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "margin"), "value", c.Margin)
	case c.SyntheticLatency < 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "syntheticLatency"), "value", c.SyntheticLatency)
	case c.CalibrationRepeats <= 0:
		return zerr.With(zerr.With(ErrInvalidAttackConfig, "field", "calibrationRepeats"), "value", c.CalibrationRepeats)
	}
	return nil
}

// Environment records what the attack assumes about the machine it runs on.
// A false assumption shows up as low confidence, never as an error.
type Environment struct {
	// MitigationsAssumedDisabled states that no speculation barrier sits
	// behind the bounds check.
	MitigationsAssumedDisabled bool
	// CPU is the logical core to pin recovery to. CPUAuto picks the first
	// core the process may run on; CPUUnpinned only locks the OS thread.
	CPU int
}

const (
	// CPUAuto pins to the first core in the process affinity mask.
	CPUAuto = -1
	// CPUUnpinned keeps recovery on one OS thread without binding it.
	CPUUnpinned = -2
)

// DefaultEnvironment pins to the first allowed core and assumes an
// unmitigated machine.
func DefaultEnvironment() Environment {
	return Environment{
		MitigationsAssumedDisabled: true,
		CPU:                        CPUAuto,
	}
}

// SimulationProfile parameterizes the simulated CPU.
type SimulationProfile struct {
	HitLatency  Cycles
	MissLatency Cycles
	Jitter      Cycles
	Seed        uint64
	Sets        int
	Ways        int
	Prefetch    bool
	Mitigated   bool
}

// DefaultSimulationProfile returns a profile close to a desktop L1/DRAM split.
func DefaultSimulationProfile() SimulationProfile {
	return SimulationProfile{
		HitLatency:  40,
		MissLatency: 220,
		Jitter:      24,
		Seed:        1,
		Sets:        1024,
		Ways:        8,
		Prefetch:    true,
	}
}

// Settings is the complete configuration of a run.
type Settings struct {
	Platform    string
	Attack      AttackConfig
	Environment Environment
	Simulation  SimulationProfile
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Platform:    PlatformAuto,
		Attack:      DefaultAttackConfig(),
		Environment: DefaultEnvironment(),
		Simulation:  DefaultSimulationProfile(),
	}
}

// Validate checks the platform name and the attack tunables.
func (s Settings) Validate() error {
	switch s.Platform {
	case PlatformAuto, PlatformHardware, PlatformSimulated:
	default:
		return zerr.With(ErrUnknownPlatform, "platform", s.Platform)
	}
	return s.Attack.Validate()
}
