package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem"
)

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func discardf(string, ...interface{}) {}

func TestLoadTrace(t *testing.T) {
	path := writeTrace(t, `
page_size: 4096
region:
  start: 0x1000
  size: 0x10000
ops:
  - op: alloc
    size: 64
    align: 8
  - op: free
  - op: alloc_pages
    pages: 2
    align_pow2: 12
`)

	tf, err := loadTrace(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), tf.PageSize)
	assert.Equal(t, uint64(0x1000), tf.Region.Start)
	assert.Equal(t, uint64(0x10000), tf.Region.Size)
	require.Len(t, tf.Ops, 3)
	assert.Equal(t, "alloc", tf.Ops[0].Op)
	assert.Equal(t, uint64(8), tf.Ops[0].Align)
	assert.Equal(t, 2, tf.Ops[2].Pages)
	assert.Equal(t, uint(12), tf.Ops[2].AlignPow2)
}

func TestLoadTrace_Defaults(t *testing.T) {
	path := writeTrace(t, `
region:
  size: 4096
ops:
  - op: alloc
    size: 8
`)

	tf, err := loadTrace(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), tf.PageSize, "page size should default to 4096")
}

func TestLoadTrace_Invalid(t *testing.T) {
	_, err := loadTrace(writeTrace(t, "region:\n  start: 0x1000\n"))
	assert.Error(t, err, "missing region size should be rejected")

	_, err = loadTrace(writeTrace(t, "region:\n  size: 4096\nops:\n  - op: defrag\n"))
	assert.Error(t, err, "unknown op should be rejected")

	_, err = loadTrace(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReplayTrace(t *testing.T) {
	path := writeTrace(t, `
region:
  start: 0x1000
  size: 0x10000
ops:
  - op: alloc
    size: 100
    align: 4
  - op: alloc
    size: 28
    align: 4
  - op: free
  - op: alloc_pages
    pages: 3
`)

	tf, err := loadTrace(path)
	require.NoError(t, err)

	stats, err := replayTrace(tf, mem.Addr(tf.Region.Start), discardf)
	require.NoError(t, err)

	// One byte span still live (100 bytes plus the freed-but-unreclaimed
	// 28) and three pages at the top.
	assert.Equal(t, mem.Size(0x10000), stats.TotalBytes)
	assert.Equal(t, mem.Size(128+3*4096), stats.UsedBytes)
	assert.Equal(t, 3, stats.UsedPages)
}

// TestReplayTrace_BulkReclaim replays a trace whose frees all resolve, so
// the byte side ends fully reclaimed.
func TestReplayTrace_BulkReclaim(t *testing.T) {
	path := writeTrace(t, `
region:
  start: 0x1000
  size: 0x10000
ops:
  - op: alloc
    size: 64
  - op: alloc
    size: 64
  - op: free
  - op: free
`)

	tf, err := loadTrace(path)
	require.NoError(t, err)

	stats, err := replayTrace(tf, mem.Addr(tf.Region.Start), discardf)
	require.NoError(t, err)
	assert.Equal(t, mem.Size(0), stats.UsedBytes, "both frees should trigger bulk reclamation")
	assert.Equal(t, stats.TotalBytes, stats.AvailableBytes)
}

// TestReplayTrace_OOMContinues verifies that out-of-memory steps are
// reported but do not abort the replay.
func TestReplayTrace_OOMContinues(t *testing.T) {
	path := writeTrace(t, `
region:
  start: 0x1000
  size: 0x1000
ops:
  - op: alloc
    size: 8
    align: 8
  - op: alloc_pages
    pages: 1
  - op: alloc
    size: 16
`)

	tf, err := loadTrace(path)
	require.NoError(t, err)

	stats, err := replayTrace(tf, mem.Addr(tf.Region.Start), discardf)
	require.NoError(t, err, "OOM inside the trace should not fail the replay")
	assert.Equal(t, mem.Size(24), stats.UsedBytes, "only the byte allocations should have landed")
	assert.Equal(t, 0, stats.UsedPages)
}
