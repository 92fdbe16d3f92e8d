package domain

import "go.trai.ch/zerr"

var (
	// ErrProbeAllocationFailed is returned when the probe array arena cannot be allocated.
	ErrProbeAllocationFailed = zerr.New("failed to allocate probe array")

	// ErrProbeReleaseFailed is returned when the probe array arena cannot be released.
	ErrProbeReleaseFailed = zerr.New("failed to release probe array")

	// ErrInvalidAttackConfig is returned when an attack tunable is out of range.
	ErrInvalidAttackConfig = zerr.New("invalid attack configuration")

	// ErrInvalidTarget is returned when the victim buffer or its bound is unusable.
	ErrInvalidTarget = zerr.New("invalid target")

	// ErrOffsetOutOfRange is returned when a target offset lies outside the victim buffer.
	ErrOffsetOutOfRange = zerr.New("offset outside victim buffer")

	// ErrEmptySecret is returned when there is nothing to recover.
	ErrEmptySecret = zerr.New("secret is empty")

	// ErrPlatformUnsupported is returned when the hardware backend is not available on this architecture.
	ErrPlatformUnsupported = zerr.New("hardware timing primitives are not supported on this architecture")

	// ErrUnknownPlatform is returned when the platform name is not recognized.
	ErrUnknownPlatform = zerr.New("unknown platform, expected 'hardware', 'simulated' or 'auto'")

	// ErrAffinityFailed is returned when the recovery thread cannot be pinned to a CPU.
	ErrAffinityFailed = zerr.New("failed to pin thread to cpu")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSimulation is returned when the simulated CPU profile is unusable.
	ErrInvalidSimulation = zerr.New("invalid simulation profile")

	// ErrLeakFailed is returned when a leak run aborts before every offset was attempted.
	ErrLeakFailed = zerr.New("leak run failed")

	// ErrInterrupted is returned when the user quits the interactive view.
	ErrInterrupted = zerr.New("interrupted by user")

	// ErrReportWriteFailed is returned when a report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrReportReadFailed is returned when a report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read report")

	// ErrReportMarshalFailed is returned when a report cannot be encoded.
	ErrReportMarshalFailed = zerr.New("failed to marshal report")

	// ErrReportUnmarshalFailed is returned when a report file is corrupt.
	ErrReportUnmarshalFailed = zerr.New("failed to unmarshal report")

	// ErrReportNotFound is returned when no report exists at the given path.
	ErrReportNotFound = zerr.New("report not found")
)
