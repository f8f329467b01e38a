package mem

import (
	"fmt"
	"math/bits"
)

// Layout describes one allocation request: a size in bytes and a
// power-of-two alignment. The alignment is validated at construction so
// allocator fast paths never re-check it. The zero value is a valid
// zero-size, byte-aligned layout.
type Layout struct {
	size Size

	// alignShift stores log2(alignment) so the zero value means
	// alignment 1.
	alignShift uint8
}

// NewLayout builds a Layout from a size and alignment. It returns
// ErrBadLayout when the alignment is zero or not a power of two.
func NewLayout(size, alignment Size) (Layout, error) {
	if alignment == 0 || alignment&(alignment-1) != 0 {
		return Layout{}, fmt.Errorf("%w: alignment %d is not a power of two", ErrBadLayout, alignment)
	}
	return Layout{
		size:       size,
		alignShift: uint8(bits.TrailingZeros64(uint64(alignment))),
	}, nil
}

// Size returns the requested size in bytes.
func (l Layout) Size() Size { return l.size }

// Align returns the requested alignment in bytes. Always a power of two.
func (l Layout) Align() Size { return Size(1) << l.alignShift }

// String implements fmt.Stringer for diagnostics.
func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.Align())
}
