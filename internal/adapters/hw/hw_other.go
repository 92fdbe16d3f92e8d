//go:build !amd64

package hw

import (
	"runtime"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Supported reports whether the hardware backend works on this architecture.
const Supported = false

// New fails: there is no serializing counter or flush primitive wired up for
// this architecture.
func New(int) (*Machine, error) {
	return nil, zerr.With(domain.ErrPlatformUnsupported, "arch", runtime.GOARCH)
}

// Now is never reached since New fails.
func (m *Machine) Now() domain.Cycles { return 0 }

// Flush is never reached since New fails.
func (m *Machine) Flush(*byte) {}

// ForcedTouch is never reached since New fails.
func (m *Machine) ForcedTouch(*byte) {}
