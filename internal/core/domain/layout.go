package domain

const (
	// ConfigFileName is the default configuration file.
	ConfigFileName = "peek.yaml"

	// SpanRecoverByte names the span wrapping the recovery of one offset.
	SpanRecoverByte = "recover_byte"

	// SpanLeak names the span wrapping a whole leak run.
	SpanLeak = "leak"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Span attribute keys carrying a RecoveryResult.
const (
	AttrOffset        = "peek.offset"
	AttrByte          = "peek.byte"
	AttrRunnerUp      = "peek.runner_up"
	AttrBestScore     = "peek.best_score"
	AttrRunnerUpScore = "peek.runner_up_score"
	AttrRounds        = "peek.rounds"
	AttrConfident     = "peek.confident"
	AttrMachine       = "peek.machine"
)
