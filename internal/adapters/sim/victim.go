package sim

import "go.trai.ch/peek/internal/core/ports"

// Victim is the bounds-checked accessor running on a simulated Machine.
// When the predictor expects the check to pass and it does not, the guarded
// load still reaches the cache before the branch resolves, unless the
// profile models a speculation barrier.
type Victim struct {
	machine *Machine
	channel ports.Channel
	data    []byte
	size    int
	site    int
}

var _ ports.Victim = (*Victim)(nil)

// Access touches the probe class of data[index] when index is in bounds.
func (v *Victim) Access(index int) {
	inBounds := index >= 0 && index < v.size
	predicted := v.machine.predictor.Predict(v.site)

	switch {
	case inBounds:
		v.machine.ForcedTouch(v.channel.Addr(v.data[index]))
	case predicted && !v.machine.profile.Mitigated && index >= 0 && index < len(v.data):
		v.machine.speculativeTouch(v.channel.Addr(v.data[index]))
	}

	v.machine.predictor.Update(v.site, inBounds)
}
