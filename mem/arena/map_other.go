//go:build !unix

package arena

import "fmt"

// Map allocates a heap-backed arena on platforms without anonymous mmap
// support. The base address is not page-aligned; allocators that need
// page-aligned bases should align within the arena.
func Map(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive, got %d", size)
	}
	return &Arena{buf: make([]byte, size)}, nil
}
