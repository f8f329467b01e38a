//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Map creates an anonymous private mapping of the given size. The mapping
// is page-aligned and zero-filled by the kernel.
func Map(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive, got %d", size)
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	return &Arena{buf: buf, unmap: unix.Munmap}, nil
}
