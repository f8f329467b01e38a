// Package arena provides an anonymous memory mapping that backs an
// allocator's region with real, writable memory. Allocators in this
// module only do address arithmetic; an Arena is one way to give those
// addresses something to point at, for tests and tooling.
package arena

import (
	"unsafe"

	"github.com/memkit/memkit/mem"
)

// Arena is a contiguous writable buffer with a stable base address.
// On unix platforms it is an anonymous private mapping; elsewhere it
// falls back to a heap-allocated buffer.
type Arena struct {
	buf   []byte
	unmap func([]byte) error
}

// Base returns the address of the first byte of the arena. Zero for a
// closed or empty arena.
func (a *Arena) Base() mem.Addr {
	if len(a.buf) == 0 {
		return 0
	}
	return mem.Addr(uintptr(unsafe.Pointer(&a.buf[0])))
}

// Size returns the arena size in bytes.
func (a *Arena) Size() mem.Size {
	return mem.Size(len(a.buf))
}

// Bytes returns the backing buffer. The slice is invalidated by Close.
func (a *Arena) Bytes() []byte {
	return a.buf
}

// Offset translates an address handed out by an allocator running over
// this arena into an index of Bytes(). The second return value is false
// when the address lies outside the arena.
func (a *Arena) Offset(addr mem.Addr) (int, bool) {
	base := a.Base()
	if len(a.buf) == 0 || addr < base || addr >= base+mem.Addr(len(a.buf)) {
		return 0, false
	}
	return int(addr - base), true
}

// Close releases the mapping. Calling Close more than once is a no-op,
// matching the double-unmap tolerance of the file mapping helpers.
func (a *Arena) Close() error {
	if a.buf == nil {
		return nil
	}
	buf := a.buf
	a.buf = nil
	if a.unmap != nil {
		return a.unmap(buf)
	}
	return nil
}
