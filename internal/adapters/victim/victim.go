// Package victim provides the native bounds-checked accessor attacked by the
// hardware backend.
package victim

import (
	"unsafe"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// BoundsChecked guards a load from data behind a comparison against a bound
// that lives in its own heap allocation. Before every comparison the bound is
// flushed and the CPU is kept busy for a while, so the branch resolves late
// and the guarded load has time to execute speculatively.
type BoundsChecked struct {
	platform ports.Platform
	channel  ports.Channel
	data     []byte
	size     *int
	delay    int

	// spin is written so the busy-wait cannot be removed.
	spin int
}

var _ ports.Victim = (*BoundsChecked)(nil)

// New builds the accessor over target. delay is the number of busy-wait
// iterations between flushing the bound and comparing against it.
func New(platform ports.Platform, target domain.Target, channel ports.Channel, delay int) *BoundsChecked {
	size := new(int)
	*size = target.KnownSize
	return &BoundsChecked{
		platform: platform,
		channel:  channel,
		data:     target.Data,
		size:     size,
		delay:    delay,
	}
}

// Access touches the probe class of data[index] when index is in bounds.
// The Go runtime bounds check on data never fails here because the guarded
// bytes lie inside data; only the comparison against *size protects them.
func (v *BoundsChecked) Access(index int) {
	v.platform.Flush((*byte)(unsafe.Pointer(v.size)))
	for i := range v.delay {
		v.spin += i
	}
	if index < *v.size {
		v.platform.ForcedTouch(v.channel.Addr(v.data[index]))
	}
}
