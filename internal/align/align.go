// Package align houses alignment arithmetic shared by allocator code.
// All functions assume the alignment argument is a power of two; callers
// validate that once (typically at layout construction) so the hot paths
// stay branch-free.
package align

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// Up returns n aligned up to the next multiple of a. The second return
// value is false when the rounding would overflow uint64.
//
// Example:
//
//	Up(1, 8)  = 8
//	Up(8, 8)  = 8
//	Up(9, 8)  = 16
func Up(n, a uint64) (uint64, bool) {
	mask := a - 1
	if n > ^uint64(0)-mask {
		return 0, false
	}
	return (n + mask) &^ mask, true
}

// Down returns n aligned down to the previous multiple of a.
//
// Example:
//
//	Down(9, 8)  = 8
//	Down(8, 8)  = 8
//	Down(7, 8)  = 0
func Down(n, a uint64) uint64 {
	return n &^ (a - 1)
}
