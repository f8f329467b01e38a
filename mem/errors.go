package mem

import "errors"

var (
	// ErrNoMemory indicates the request cannot be satisfied within the
	// remaining space of the managed region.
	ErrNoMemory = errors.New("mem: out of memory")

	// ErrUnsupported indicates the allocator does not implement the
	// requested operation (for example region growth on a fixed-region
	// allocator). Callers may probe capabilities defensively with
	// errors.Is.
	ErrUnsupported = errors.New("mem: operation not supported")

	// ErrBadLayout indicates an invalid allocation descriptor: a zero or
	// non-power-of-two alignment, or out-of-range page parameters.
	ErrBadLayout = errors.New("mem: invalid layout")

	// ErrBadRegion indicates an invalid region description: zero size or
	// an end address that would overflow the address space.
	ErrBadRegion = errors.New("mem: invalid region")
)
