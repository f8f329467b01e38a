package early

import (
	"fmt"

	"github.com/memkit/memkit/internal/align"
	"github.com/memkit/memkit/mem"
)

// DefaultPageSize is the page granularity used by New when callers have
// no platform-specific value to supply.
const DefaultPageSize mem.Size = 4096

// Allocator is a double-ended bump allocator over one fixed region.
// Byte allocations advance bPos forward from start; page allocations
// retreat pPos backward from end. The invariant
//
//	start <= bPos <= pPos <= end
//
// holds between any two operations. The zero region (all cursors zero)
// is the uninitialized state; every allocation fails with
// mem.ErrNoMemory until Init establishes a region.
type Allocator struct {
	// pageSize is the page-allocation granularity. Set once at
	// construction and treated as constant thereafter.
	pageSize mem.Size

	// start and end bound the managed region [start, end). Fixed after
	// Init.
	start mem.Addr
	end   mem.Addr

	// bPos is the next free address for byte allocation.
	bPos mem.Addr

	// pPos is the next free boundary for page allocation.
	pPos mem.Addr

	// count records the number of outstanding byte allocations. When it
	// returns to zero the whole byte area is reclaimed at once.
	count uint64
}

// New creates an uninitialized Allocator with the given page size.
// pageSize must be a non-zero power of two. Call Init before allocating.
func New(pageSize mem.Size) (*Allocator, error) {
	if !align.IsPowerOfTwo(uint64(pageSize)) {
		return nil, fmt.Errorf("%w: page size %d must be a non-zero power of two", mem.ErrBadLayout, pageSize)
	}
	return &Allocator{pageSize: pageSize}, nil
}

// Init establishes the managed region [start, start+size) and resets
// both cursors to the region's two ends. Calling Init again silently
// discards all prior allocation state.
func (a *Allocator) Init(start mem.Addr, size mem.Size) error {
	end, ok := start.Add(size)
	if size == 0 || !ok {
		return fmt.Errorf("%w: start=%#x size=%#x", mem.ErrBadRegion, uint64(start), uint64(size))
	}
	a.start = start
	a.end = end
	a.bPos = start
	a.pPos = end
	a.count = 0
	return nil
}

// AddMemory is not supported: the bump strategy assumes one fixed region
// for the allocator's entire life.
func (a *Allocator) AddMemory(start mem.Addr, size mem.Size) error {
	return fmt.Errorf("%w: early allocator manages a single fixed region", mem.ErrUnsupported)
}

// Alloc reserves layout.Size() bytes aligned to layout.Align() at the
// low end of the free gap. Returns mem.ErrNoMemory when the aligned span
// would cross the page cursor; no state is mutated on failure.
func (a *Allocator) Alloc(layout mem.Layout) (mem.Addr, error) {
	alignedPos, ok := a.bPos.AlignUp(layout.Align())
	if !ok {
		return 0, mem.ErrNoMemory
	}
	newBPos, ok := alignedPos.Add(layout.Size())
	if !ok || newBPos > a.pPos {
		return 0, mem.ErrNoMemory
	}

	a.bPos = newBPos
	a.count++
	return alignedPos, nil
}

// Dealloc releases one outstanding byte allocation. The address and
// layout are accepted for interface symmetry but do not participate in
// space accounting: individual spans are never reused. When the last
// outstanding allocation is released, the whole byte area is reclaimed
// and bPos returns to start. Dealloc with nothing outstanding is a
// deliberate no-op (underflow guard), not an error.
func (a *Allocator) Dealloc(addr mem.Addr, layout mem.Layout) {
	if a.count == 0 {
		return
	}
	a.count--
	if a.count == 0 {
		a.bPos = a.start
	}
}

// TotalBytes returns the size of the managed region.
func (a *Allocator) TotalBytes() mem.Size {
	return mem.Size(a.end - a.start)
}

// UsedBytes returns the bytes consumed on both ends of the region.
func (a *Allocator) UsedBytes() mem.Size {
	return mem.Size(a.bPos-a.start) + mem.Size(a.end-a.pPos)
}

// AvailableBytes returns the size of the gap between the two cursors.
func (a *Allocator) AvailableBytes() mem.Size {
	return mem.Size(a.pPos - a.bPos)
}

// PageSize returns the page-allocation granularity.
func (a *Allocator) PageSize() mem.Size {
	return a.pageSize
}

// AllocPages reserves numPages contiguous pages aligned to 2^alignPow2
// bytes at the high end of the free gap. The backward bump uses checked
// subtraction so a request larger than the remaining space fails with
// mem.ErrNoMemory instead of wrapping the address; no state is mutated
// on failure.
func (a *Allocator) AllocPages(numPages int, alignPow2 uint) (mem.Addr, error) {
	if numPages <= 0 {
		return 0, fmt.Errorf("%w: page count %d must be positive", mem.ErrBadLayout, numPages)
	}
	if alignPow2 >= 64 {
		return 0, fmt.Errorf("%w: alignment 2^%d exceeds the address width", mem.ErrBadLayout, alignPow2)
	}
	if mem.Size(numPages) > ^mem.Size(0)/a.pageSize {
		return 0, mem.ErrNoMemory
	}
	size := mem.Size(numPages) * a.pageSize

	base, ok := a.pPos.Sub(size)
	if !ok {
		return 0, mem.ErrNoMemory
	}
	alignedPos := base.AlignDown(mem.Size(1) << alignPow2)
	if alignedPos < a.bPos {
		return 0, mem.ErrNoMemory
	}

	a.pPos = alignedPos
	return alignedPos, nil
}

// DeallocPages is not supported: pages allocated by this allocator are
// never reclaimed for its lifetime.
func (a *Allocator) DeallocPages(addr mem.Addr, numPages int) error {
	return fmt.Errorf("%w: early allocator never reclaims pages", mem.ErrUnsupported)
}

// TotalPages returns the page capacity of the managed region.
func (a *Allocator) TotalPages() int {
	return int(mem.Size(a.end-a.start) / a.pageSize)
}

// UsedPages returns the number of pages consumed by AllocPages.
func (a *Allocator) UsedPages() int {
	return int(mem.Size(a.end-a.pPos) / a.pageSize)
}

// AvailablePages returns the number of whole pages that still fit in the
// gap between the two cursors.
func (a *Allocator) AvailablePages() int {
	return int(mem.Size(a.pPos-a.bPos) / a.pageSize)
}

// Stats returns a snapshot of both byte-side and page-side accounting.
func (a *Allocator) Stats() mem.Stats {
	return mem.Stats{
		PageSize:       a.pageSize,
		TotalBytes:     a.TotalBytes(),
		UsedBytes:      a.UsedBytes(),
		AvailableBytes: a.AvailableBytes(),
		TotalPages:     a.TotalPages(),
		UsedPages:      a.UsedPages(),
		AvailablePages: a.AvailablePages(),
	}
}

// Compile-time interface checks
var (
	_ mem.BaseAllocator = (*Allocator)(nil)
	_ mem.ByteAllocator = (*Allocator)(nil)
	_ mem.PageAllocator = (*Allocator)(nil)
)
