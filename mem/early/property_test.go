package early

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem"
)

// Test_Property_RandomOps_GuardInvariants performs random byte allocs, byte
// frees, and page allocs, validating the cursor invariants after each step.
func Test_Property_RandomOps_GuardInvariants(t *testing.T) {
	a := newTestAllocator(t, 0x100000, 64*DefaultPageSize)

	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	type span struct {
		addr   mem.Addr
		layout mem.Layout
	}
	var live []span
	var pageSpans []span

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0: // Byte allocation
			size := mem.Size(1 + rng.Intn(512))
			alignment := mem.Size(1) << uint(rng.Intn(7))
			l := layoutOf(t, size, alignment)

			addr, err := a.Alloc(l)
			if err != nil {
				require.ErrorIs(t, err, mem.ErrNoMemory, "step %d: only OOM is an acceptable failure", i)
			} else {
				require.True(t, addr.IsAligned(alignment), "step %d: misaligned byte allocation", i)
				live = append(live, span{addr, l})
			}

		case 1: // Byte free (random victim; address is not interpreted)
			if len(live) > 0 {
				victim := rng.Intn(len(live))
				a.Dealloc(live[victim].addr, live[victim].layout)
				live = append(live[:victim], live[victim+1:]...)
				if len(live) == 0 {
					require.Equal(t, a.start, a.bPos,
						"step %d: last free should bulk-reclaim the byte area", i)
				}
			}

		case 2: // Page allocation
			pages := 1 + rng.Intn(4)
			pow := uint(12 + rng.Intn(2))

			addr, err := a.AllocPages(pages, pow)
			if err != nil {
				require.ErrorIs(t, err, mem.ErrNoMemory, "step %d: only OOM is an acceptable failure", i)
			} else {
				require.True(t, addr.IsAligned(mem.Size(1)<<pow), "step %d: misaligned page allocation", i)
				l := layoutOf(t, mem.Size(pages)*DefaultPageSize, DefaultPageSize)
				pageSpans = append(pageSpans, span{addr, l})
			}
		}

		// Cursor invariants hold between any two operations.
		require.LessOrEqual(t, a.start, a.bPos, "step %d: bPos below start", i)
		require.LessOrEqual(t, a.bPos, a.pPos, "step %d: cursors crossed", i)
		require.LessOrEqual(t, a.pPos, a.end, "step %d: pPos above end", i)
		require.Equal(t, a.TotalBytes(), a.UsedBytes()+a.AvailableBytes(),
			"step %d: accounting identity violated", i)
		require.Equal(t, uint64(len(live)), a.count, "step %d: outstanding count drifted", i)
	}

	// Page spans are never reclaimed and never overlap each other or the
	// byte area.
	for i := range pageSpans {
		endI, ok := pageSpans[i].addr.Add(pageSpans[i].layout.Size())
		require.True(t, ok)
		require.GreaterOrEqual(t, pageSpans[i].addr, a.bPos, "page span %d overlaps the byte area", i)
		for j := i + 1; j < len(pageSpans); j++ {
			endJ, ok := pageSpans[j].addr.Add(pageSpans[j].layout.Size())
			require.True(t, ok)
			disjoint := endI <= pageSpans[j].addr || endJ <= pageSpans[i].addr
			require.True(t, disjoint, "page spans %d and %d overlap", i, j)
		}
	}

	t.Logf("500 random operations completed, %d live byte spans, %d page spans",
		len(live), len(pageSpans))
}
