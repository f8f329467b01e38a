package mem

// BaseAllocator is the region lifecycle contract.
type BaseAllocator interface {
	// Init establishes the managed region [start, start+size). Calling
	// Init a second time silently discards all prior allocation state;
	// callers must ensure that is acceptable.
	Init(start Addr, size Size) error

	// AddMemory extends the managed region with an additional span.
	// Allocators over a single fixed region return ErrUnsupported.
	AddMemory(start Addr, size Size) error
}

// ByteAllocator is the byte-granularity allocation contract.
type ByteAllocator interface {
	// Alloc reserves a span described by layout and returns its start
	// address. Returns ErrNoMemory when the request does not fit; the
	// allocator state is unchanged on failure.
	Alloc(layout Layout) (Addr, error)

	// Dealloc releases a span previously returned by Alloc. The
	// arguments exist for interface symmetry; implementations may
	// ignore them and reclaim space by other means.
	Dealloc(addr Addr, layout Layout)

	// TotalBytes returns the size of the managed region.
	TotalBytes() Size

	// UsedBytes returns the number of bytes consumed on both ends of
	// the region.
	UsedBytes() Size

	// AvailableBytes returns the number of bytes still allocatable.
	AvailableBytes() Size
}

// PageAllocator is the page-granularity allocation contract. The page
// size is fixed per allocator instance and never changes after
// construction.
type PageAllocator interface {
	// PageSize returns the allocation granularity in bytes.
	PageSize() Size

	// AllocPages reserves numPages contiguous pages aligned to
	// 2^alignPow2 bytes and returns the start address. Returns
	// ErrNoMemory when the request does not fit; the allocator state
	// is unchanged on failure.
	AllocPages(numPages int, alignPow2 uint) (Addr, error)

	// DeallocPages releases pages previously returned by AllocPages.
	// Allocators that never reclaim pages return ErrUnsupported.
	DeallocPages(addr Addr, numPages int) error

	// TotalPages returns the page capacity of the managed region.
	TotalPages() int

	// UsedPages returns the number of pages consumed by AllocPages.
	UsedPages() int

	// AvailablePages returns the number of whole pages still
	// allocatable.
	AvailablePages() int
}

// Stats is a point-in-time snapshot of an allocator's accounting,
// suitable for rendering by the printer package.
type Stats struct {
	PageSize Size

	TotalBytes     Size
	UsedBytes      Size
	AvailableBytes Size

	TotalPages     int
	UsedPages      int
	AvailablePages int
}
