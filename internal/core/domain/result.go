package domain

// RecoveryResult is the outcome of recovering one byte.
type RecoveryResult struct {
	Offset        int  `json:"offset"`
	Byte          byte `json:"byte"`
	RunnerUp      byte `json:"runner_up"`
	BestScore     int  `json:"best_score"`
	RunnerUpScore int  `json:"runner_up_score"`
	Rounds        int  `json:"rounds"`
	Confident     bool `json:"confident"`
}

// Printable returns the recovered byte as a character, or '?' when it is not printable ASCII.
func (r RecoveryResult) Printable() rune {
	return printable(r.Byte)
}

// RunnerUpPrintable is Printable for the runner-up class.
func (r RecoveryResult) RunnerUpPrintable() rune {
	return printable(r.RunnerUp)
}

func printable(b byte) rune {
	if b > 31 && b < 127 {
		return rune(b)
	}
	return '?'
}

// Recovery is the ordered list of results of one leak run.
type Recovery []RecoveryResult

// Bytes concatenates the recovered bytes in offset order.
func (r Recovery) Bytes() []byte {
	out := make([]byte, len(r))
	for i, res := range r {
		out[i] = res.Byte
	}
	return out
}

// ConfidentCount returns how many bytes met the margin.
func (r Recovery) ConfidentCount() int {
	n := 0
	for _, res := range r {
		if res.Confident {
			n++
		}
	}
	return n
}

// Attributes returns the result as span attributes.
func (r RecoveryResult) Attributes() map[string]any {
	return map[string]any{
		AttrOffset:        r.Offset,
		AttrByte:          int(r.Byte),
		AttrRunnerUp:      int(r.RunnerUp),
		AttrBestScore:     r.BestScore,
		AttrRunnerUpScore: r.RunnerUpScore,
		AttrRounds:        r.Rounds,
		AttrConfident:     r.Confident,
	}
}
