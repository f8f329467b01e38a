// Package early implements the bootstrap memory allocator used before a
// full heap and page allocator are available.
//
// # Overview
//
// The allocator manages one fixed contiguous region as a double-ended
// bump allocator: byte-granularity allocations grow forward from the low
// address, page-granularity allocations grow backward from the high
// address, and the two cursors must never cross.
//
//	[ bytes-used | avail-area | pages-used ]
//	|            | -->    <-- |            |
//	start       bPos         pPos         end
//
// # Byte Allocations
//
// Alloc aligns the forward cursor up to the requested alignment and bumps
// it past the requested size. Dealloc does not reuse individual spans:
// the allocator only counts outstanding allocations and resets the whole
// byte area once the count returns to zero (bulk reclamation). Until
// then, freeing earlier allocations has no visible effect on available
// space. This is a deliberate simplification for a bootstrap-only
// allocator, not an oversight.
//
// # Page Allocations
//
// AllocPages aligns the backward cursor down and bumps it toward the
// byte area. Pages are never reclaimed for the allocator's lifetime;
// DeallocPages returns mem.ErrUnsupported. Exhaustion from the page side
// is therefore terminal for that side.
//
// # Unsupported Operations
//
// The bump strategy assumes one fixed region for the allocator's entire
// life, so AddMemory also returns mem.ErrUnsupported rather than
// aborting. Callers that probe capabilities defensively get a catchable
// error instead of a crash.
//
// # Usage Example
//
//	a, err := early.New(4096)
//	if err != nil {
//	    return err
//	}
//	if err := a.Init(0x1000, 64<<10); err != nil {
//	    return err
//	}
//
//	layout, _ := mem.NewLayout(64, 8)
//	addr, err := a.Alloc(layout)
//	if err != nil {
//	    return err // mem.ErrNoMemory
//	}
//
//	// ... later, page tables from the high end:
//	pt, err := a.AllocPages(1, 12) // one page, 4KB-aligned
//
// # Thread Safety
//
// The allocator is single-threaded by design: it runs during early boot
// before multiple execution contexts exist. Callers that expose it to
// concurrent access must wrap every call in external mutual exclusion.
package early
