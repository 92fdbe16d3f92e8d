package domain

import "go.trai.ch/zerr"

// Target is the victim memory: a public region of KnownSize bytes followed by
// data the bounds check is meant to protect.
type Target struct {
	Data      []byte
	KnownSize int
}

// NewTarget lays out public followed by secret in one buffer.
func NewTarget(public, secret []byte) (Target, error) {
	if len(secret) == 0 {
		return Target{}, ErrEmptySecret
	}
	data := make([]byte, 0, len(public)+len(secret))
	data = append(data, public...)
	data = append(data, secret...)
	t := Target{Data: data, KnownSize: len(public)}
	return t, t.Validate()
}

// Validate checks that the bound is usable for training.
func (t Target) Validate() error {
	if t.KnownSize <= 0 || t.KnownSize > len(t.Data) {
		return zerr.With(zerr.With(ErrInvalidTarget, "known_size", t.KnownSize), "data_len", len(t.Data))
	}
	return nil
}

// Contains reports whether offset addresses a byte of Data.
func (t Target) Contains(offset int) bool {
	return offset >= 0 && offset < len(t.Data)
}

// SafeIndex returns the in-bounds index used on training trials for offset.
func (t Target) SafeIndex(offset int) int {
	return offset % t.KnownSize
}

// SecretOffsets returns every offset past the public bound.
func (t Target) SecretOffsets() []int {
	offsets := make([]int, 0, len(t.Data)-t.KnownSize)
	for i := t.KnownSize; i < len(t.Data); i++ {
		offsets = append(offsets, i)
	}
	return offsets
}
