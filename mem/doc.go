// Package mem defines the core types and capability contracts shared by
// early-boot memory allocators.
//
// # Overview
//
// Allocators in this module manage one contiguous address range handed to
// them by startup code. The package deliberately avoids unsafe pointer
// arithmetic: addresses are plain unsigned integers (Addr) with explicit,
// checked helpers for the arithmetic an allocator actually needs. Whether
// an Addr corresponds to real mapped memory is the caller's concern (see
// the arena package for one backing).
//
// # Capability Contracts
//
// A concrete allocator satisfies up to three independent contracts, so
// callers can depend on only the capability they need:
//
//   - BaseAllocator: region lifecycle (Init, AddMemory)
//   - ByteAllocator: byte-granularity allocation with Layout descriptors
//   - PageAllocator: page-granularity allocation with a fixed page size
//
// # Errors
//
// All fallible operations return one of the package sentinels, optionally
// wrapped with detail. ErrNoMemory is the only error that represents a
// normal runtime condition; callers are expected to probe for it with
// errors.Is and retry with smaller requests if they can.
package mem
