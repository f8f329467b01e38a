package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/mem/early"
)

// traceFile is the YAML schema for a replayable allocation trace.
type traceFile struct {
	// PageSize is the page-allocation granularity in bytes.
	// Default: 4096.
	PageSize uint64 `yaml:"page_size"`

	Region traceRegion `yaml:"region"`

	Ops []traceOp `yaml:"ops"`
}

// traceRegion describes the managed region. With arena: true the trace is
// replayed over a live anonymous mapping and start is ignored.
type traceRegion struct {
	Start uint64 `yaml:"start"`
	Size  uint64 `yaml:"size"`
	Arena bool   `yaml:"arena"`
}

// traceOp is one step of a trace.
//
//	- op: alloc        size: 64   align: 8
//	- op: free                          # releases the newest live span
//	- op: alloc_pages  pages: 2   align_pow2: 12
type traceOp struct {
	Op        string `yaml:"op"`
	Size      uint64 `yaml:"size"`
	Align     uint64 `yaml:"align"`
	Pages     int    `yaml:"pages"`
	AlignPow2 uint   `yaml:"align_pow2"`
}

// loadTrace reads and validates a trace file.
func loadTrace(path string) (*traceFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	var tf traceFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}

	if tf.PageSize == 0 {
		tf.PageSize = uint64(early.DefaultPageSize)
	}
	if tf.Region.Size == 0 {
		return nil, fmt.Errorf("trace: region.size is required")
	}
	for i, op := range tf.Ops {
		switch op.Op {
		case "alloc", "free", "alloc_pages":
		default:
			return nil, fmt.Errorf("trace: op %d: unknown op %q", i, op.Op)
		}
	}
	return &tf, nil
}

// liveSpan tracks one outstanding byte allocation during replay.
type liveSpan struct {
	addr   mem.Addr
	layout mem.Layout
}

// replayTrace executes every op of tf against a fresh allocator over
// [start, start+size) and returns the final accounting snapshot.
// Out-of-memory failures are reported through logf and the replay
// continues, matching how boot code degrades; any other error aborts.
func replayTrace(tf *traceFile, start mem.Addr, logf func(format string, args ...interface{})) (mem.Stats, error) {
	a, err := early.New(mem.Size(tf.PageSize))
	if err != nil {
		return mem.Stats{}, err
	}
	if err := a.Init(start, mem.Size(tf.Region.Size)); err != nil {
		return mem.Stats{}, err
	}

	var live []liveSpan
	for i, op := range tf.Ops {
		switch op.Op {
		case "alloc":
			alignment := mem.Size(op.Align)
			if alignment == 0 {
				alignment = 1
			}
			layout, err := mem.NewLayout(mem.Size(op.Size), alignment)
			if err != nil {
				return mem.Stats{}, fmt.Errorf("op %d: %w", i, err)
			}
			addr, err := a.Alloc(layout)
			if errors.Is(err, mem.ErrNoMemory) {
				logf("op %d: alloc %d/%d: out of memory\n", i, op.Size, alignment)
				continue
			}
			if err != nil {
				return mem.Stats{}, fmt.Errorf("op %d: %w", i, err)
			}
			live = append(live, liveSpan{addr, layout})
			logf("op %d: alloc %d/%d -> %#x\n", i, op.Size, alignment, uint64(addr))

		case "free":
			if len(live) == 0 {
				logf("op %d: free: nothing outstanding\n", i)
				continue
			}
			s := live[len(live)-1]
			live = live[:len(live)-1]
			a.Dealloc(s.addr, s.layout)
			logf("op %d: free %#x\n", i, uint64(s.addr))

		case "alloc_pages":
			addr, err := a.AllocPages(op.Pages, op.AlignPow2)
			if errors.Is(err, mem.ErrNoMemory) {
				logf("op %d: alloc_pages %d: out of memory\n", i, op.Pages)
				continue
			}
			if err != nil {
				return mem.Stats{}, fmt.Errorf("op %d: %w", i, err)
			}
			logf("op %d: alloc_pages %d -> %#x\n", i, op.Pages, uint64(addr))
		}
	}

	return a.Stats(), nil
}
