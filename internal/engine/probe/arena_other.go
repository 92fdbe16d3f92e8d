//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package probe

import (
	"unsafe"

	"go.trai.ch/peek/internal/core/domain"
)

func allocArena(size int) ([]byte, error) {
	// Over-allocate by a page and slice so the first class is page aligned.
	buf := make([]byte, size+domain.PageSize)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := int((domain.PageSize - addr%domain.PageSize) % domain.PageSize)
	return buf[off : off+size], nil
}

func freeArena(_ []byte) error {
	return nil
}
