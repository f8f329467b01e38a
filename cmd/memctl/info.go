package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/mem/early"
	"github.com/memkit/memkit/mem/printer"
)

var (
	infoStart    string
	infoSize     string
	infoPageSize uint64
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoStart, "start", "0x1000", "Region start address (hex or decimal)")
	cmd.Flags().StringVar(&infoSize, "size", "0x100000", "Region size in bytes (hex or decimal)")
	cmd.Flags().Uint64Var(&infoPageSize, "page-size", uint64(early.DefaultPageSize), "Page size in bytes")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report the accounting of a freshly initialized region",
		Long: `The info command initializes an allocator over a hypothetical region
and prints its capacity, without replaying any operations.

Example:
  memctl info --size 0x100000
  memctl info --start 0x80000000 --size 0x200000
  memctl info --size 1048576 --page-size 16384 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
	return cmd
}

func runInfo() error {
	start, err := strconv.ParseUint(infoStart, 0, 64)
	if err != nil {
		return err
	}
	size, err := strconv.ParseUint(infoSize, 0, 64)
	if err != nil {
		return err
	}

	a, err := early.New(mem.Size(infoPageSize))
	if err != nil {
		return err
	}
	if err := a.Init(mem.Addr(start), mem.Size(size)); err != nil {
		return err
	}

	printVerbose("Region [%#x, %#x)\n", start, start+size)

	format := printer.FormatText
	if jsonOut {
		format = printer.FormatJSON
	}
	return printer.Print(os.Stdout, a.Stats(), printer.Options{Format: format})
}
