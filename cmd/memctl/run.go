package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/mem/arena"
	"github.com/memkit/memkit/mem/printer"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <trace.yaml>",
		Short: "Replay an allocation trace and report final accounting",
		Long: `The run command replays a YAML allocation trace against a fresh
double-ended bootstrap allocator and prints the final accounting.

Example:
  memctl run boot-trace.yaml
  memctl run boot-trace.yaml --verbose
  memctl run boot-trace.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	tracePath := args[0]

	printVerbose("Loading trace: %s\n", tracePath)
	tf, err := loadTrace(tracePath)
	if err != nil {
		return err
	}

	start := mem.Addr(tf.Region.Start)
	if tf.Region.Arena {
		ar, mapErr := arena.Map(int(tf.Region.Size))
		if mapErr != nil {
			return mapErr
		}
		defer ar.Close()
		start = ar.Base()
		printVerbose("Mapped %d-byte arena at %#x\n", tf.Region.Size, uint64(start))
	}

	stats, err := replayTrace(tf, start, printVerbose)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	format := printer.FormatText
	if jsonOut {
		format = printer.FormatJSON
	}
	return printer.Print(os.Stdout, stats, printer.Options{Format: format})
}
