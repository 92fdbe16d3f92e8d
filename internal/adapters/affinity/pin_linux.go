package affinity

import (
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// setSize is the kernel's CPU_SETSIZE, the capacity of unix.CPUSet.
const setSize = 1024

func bind(cpu int) (func(), error) {
	var previous unix.CPUSet
	if err := unix.SchedGetaffinity(0, &previous); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAffinityFailed.Error()), "cpu", cpu)
	}

	if cpu == domain.CPUAuto {
		cpu = firstAllowed(&previous)
		if cpu < 0 {
			return nil, zerr.With(domain.ErrAffinityFailed, "reason", "empty affinity mask")
		}
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAffinityFailed.Error()), "cpu", cpu)
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &previous)
	}, nil
}

func firstAllowed(set *unix.CPUSet) int {
	for cpu := range setSize {
		if set.IsSet(cpu) {
			return cpu
		}
	}
	return -1
}
