// Package affinity keeps the recovery loop on one logical core.
package affinity

import (
	"runtime"

	"go.trai.ch/peek/internal/core/domain"
)

// Pin locks the calling goroutine to its OS thread and, where the platform
// allows it, binds that thread to cpu. domain.CPUAuto binds to the first core
// the process is allowed on; anything below it only locks the thread.
// The returned func restores the previous binding and unlocks the thread; it
// must be called from the same goroutine.
func Pin(cpu int) (release func(), err error) {
	runtime.LockOSThread()
	if cpu < domain.CPUAuto {
		return runtime.UnlockOSThread, nil
	}

	restore, err := bind(cpu)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return func() {
		restore()
		runtime.UnlockOSThread()
	}, nil
}
