package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/pkg/heap"
)

var (
	demoSize int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoSize, "size", 1000, "Arena size in bytes")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Allocate two blocks, draw the arena and free them",
		Long: `The demo command initializes an arena, allocates 100 and 200 bytes
with first fit, draws the resulting layout and frees both blocks.

Example:
  heapctl demo
  heapctl demo --size 4000 --no-color
  heapctl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	h := heap.New(heapOptions())
	defer h.Close()

	if err := h.Init(demoSize); err != nil {
		return fmt.Errorf("init arena: %w", err)
	}
	printInfo("Heap of %s (%d bytes) initialized\n", humanize.IBytes(uint64(h.Size())), h.Size())

	p1, err := h.AllocFirstFit(100)
	if err != nil {
		return fmt.Errorf("alloc 100 bytes: %w", err)
	}
	p2, err := h.AllocFirstFit(200)
	if err != nil {
		return fmt.Errorf("alloc 200 bytes: %w", err)
	}
	printVerbose("Allocated p1=%s p2=%s\n", p1, p2)

	if !quiet {
		if err := h.Visualize(os.Stdout); err != nil {
			return err
		}
	}

	if err := h.Free(p1); err != nil {
		return fmt.Errorf("free p1: %w", err)
	}
	if err := h.Free(p2); err != nil {
		return fmt.Errorf("free p2: %w", err)
	}
	if err := h.Verify(); err != nil {
		return err
	}
	printInfo("Freed both blocks, %d block(s) left\n", h.Snapshot().Count())
	return nil
}
