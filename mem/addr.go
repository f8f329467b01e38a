package mem

import "github.com/memkit/memkit/internal/align"

// Addr is an address within a managed region. It is a plain unsigned
// integer rather than a pointer: allocators hand out and account for
// addresses without ever dereferencing them.
type Addr uint64

// Size is a byte count.
type Size uint64

// Add returns a+n. The second return value is false on overflow, in
// which case the returned address is zero.
func (a Addr) Add(n Size) (Addr, bool) {
	r := a + Addr(n)
	if r < a {
		return 0, false
	}
	return r, true
}

// Sub returns a-n. The second return value is false when n is larger
// than a (the subtraction would wrap below zero).
func (a Addr) Sub(n Size) (Addr, bool) {
	if Addr(n) > a {
		return 0, false
	}
	return a - Addr(n), true
}

// AlignUp returns a rounded up to the next multiple of alignment.
// alignment must be a power of two. The second return value is false
// when the rounding would overflow the address space.
func (a Addr) AlignUp(alignment Size) (Addr, bool) {
	r, ok := align.Up(uint64(a), uint64(alignment))
	return Addr(r), ok
}

// AlignDown returns a rounded down to the previous multiple of
// alignment. alignment must be a power of two.
func (a Addr) AlignDown(alignment Size) Addr {
	return Addr(align.Down(uint64(a), uint64(alignment)))
}

// IsAligned reports whether a is a multiple of alignment.
// alignment must be a power of two.
func (a Addr) IsAligned(alignment Size) bool {
	return uint64(a)&(uint64(alignment)-1) == 0
}
