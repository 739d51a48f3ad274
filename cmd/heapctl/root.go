package main

import (
	"fmt"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/arena/printer"
	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logDir  string
)

// appFs is the filesystem scenarios and exports go through. Tests swap in
// an in-memory one.
var appFs = afero.NewOsFs()

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Drive and inspect a fixed-size explicit memory arena",
	Long: `heapctl runs allocation workloads against a fixed-size arena managed
with header-prefixed blocks, first-fit and best-fit placement, block
splitting and coalescing free. It can replay YAML scenarios, draw the block
layout and export it as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write debug logs to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	opts := logger.Options{
		Enabled: verbose || logDir != "",
		Level:   slog.LevelDebug,
		Writer:  os.Stderr,
		LogDir:  logDir,
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}

// heapOptions returns heap options reflecting the global output flags.
func heapOptions() heap.Options {
	opts := heap.DefaultOptions()
	opts.Printer.Color = !noColor
	if jsonOut {
		opts.Printer.Format = printer.FormatJSON
	}
	return opts
}

// Helper functions for output

// printInfo prints an info message if not in quiet or JSON mode
func printInfo(format string, args ...any) {
	if !quiet && !jsonOut {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet && !jsonOut {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
