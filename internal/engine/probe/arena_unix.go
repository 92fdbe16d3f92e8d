//go:build linux || darwin || freebsd || netbsd || openbsd

package probe

import "golang.org/x/sys/unix"

// allocArena maps anonymous memory outside the Go heap. The mapping is page
// aligned and never moved, and a failed mapping surfaces as an error instead
// of a runtime abort.
func allocArena(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

func freeArena(b []byte) error {
	return unix.Munmap(b)
}
