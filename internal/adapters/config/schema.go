package config

// File is the structure of peek.yaml. Every field is optional; absent fields
// keep their default.
type File struct {
	Platform    *string         `yaml:"platform"`
	Attack      *AttackDTO      `yaml:"attack"`
	Environment *EnvironmentDTO `yaml:"environment"`
	Simulation  *SimulationDTO  `yaml:"simulation"`
}

// AttackDTO holds the recovery loop tunables.
type AttackDTO struct {
	Stride             *int `yaml:"stride"`
	TrialsPerRound     *int `yaml:"trialsPerRound"`
	UnsafeEveryN       *int `yaml:"unsafeEveryN"`
	MaxRounds          *int `yaml:"maxRounds"`
	Margin             *int `yaml:"margin"`
	SyntheticLatency   *int `yaml:"syntheticLatency"`
	CalibrationRepeats *int `yaml:"calibrationRepeats"`
}

// EnvironmentDTO holds the assumptions about the host.
type EnvironmentDTO struct {
	MitigationsAssumedDisabled *bool `yaml:"mitigationsAssumedDisabled"`
	CPU                        *int  `yaml:"cpu"`
}

// SimulationDTO parameterizes the simulated CPU.
type SimulationDTO struct {
	HitLatency  *uint64 `yaml:"hitLatency"`
	MissLatency *uint64 `yaml:"missLatency"`
	Jitter      *uint64 `yaml:"jitter"`
	Seed        *uint64 `yaml:"seed"`
	Sets        *int    `yaml:"sets"`
	Ways        *int    `yaml:"ways"`
	Prefetch    *bool   `yaml:"prefetch"`
	Mitigated   *bool   `yaml:"mitigated"`
}
