// Package printer renders allocator statistics for humans and tools.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/memkit/memkit/mem"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text with grouped digits.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Indent is the indent string for JSON output.
	// Default: two spaces
	Indent string
}

// Print renders a stats snapshot to w.
func Print(w io.Writer, st mem.Stats, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return printJSON(w, st, opts)
	case FormatText, "":
		return printText(w, st)
	default:
		return fmt.Errorf("printer: unknown format %q", opts.Format)
	}
}

func printJSON(w io.Writer, st mem.Stats, opts Options) error {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(st)
}

func printText(w io.Writer, st mem.Stats) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"page size:  %d bytes\n"+
			"bytes:      total %d, used %d, available %d\n"+
			"pages:      total %d, used %d, available %d\n",
		uint64(st.PageSize),
		uint64(st.TotalBytes), uint64(st.UsedBytes), uint64(st.AvailableBytes),
		st.TotalPages, st.UsedPages, st.AvailablePages,
	)
	return err
}
