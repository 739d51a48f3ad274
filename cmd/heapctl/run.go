package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/arena/snapshot"
	"github.com/joshuapare/heapkit/internal/scenario"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var (
	runVisualize bool
	runExport    string
	runMetrics   bool
	runStrict    bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runVisualize, "visualize", false, "Draw the arena after the last step")
	cmd.Flags().StringVar(&runExport, "export", "", "Write the final block layout as JSON to this file")
	cmd.Flags().BoolVar(&runMetrics, "metrics", false, "Print allocator metrics in Prometheus text format")
	cmd.Flags().BoolVar(&runStrict, "strict", false, "Fail if any step reports an error")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a YAML allocation scenario",
		Long: `The run command replays a scenario file step by step and prints the
outcome of each step. Steps that report a condition such as a double free
or an allocation that does not fit are listed with their error and do not
stop the run.

Example:
  heapctl run workload.yaml
  heapctl run workload.yaml --visualize
  heapctl run workload.yaml --export layout.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args)
		},
	}
	return cmd
}

// runOutput is the JSON document printed with --json.
type runOutput struct {
	Result    *scenario.Result   `json:"result"`
	Integrity bool               `json:"integrity"`
	Layout    *snapshot.Snapshot `json:"layout,omitempty"`
	Stats     heap.Stats         `json:"stats"`
}

func runScenario(args []string) error {
	path := args[0]
	printVerbose("Loading scenario: %s\n", path)

	sc, err := scenario.Load(appFs, path)
	if err != nil {
		return err
	}

	opts := sc.HeapOptions(heapOptions())
	reg := prometheus.NewRegistry()
	if runMetrics {
		opts.Registerer = reg
	}
	h := heap.New(opts)
	defer h.Close()

	res, err := scenario.Run(h, sc)
	if err != nil {
		return err
	}
	intact := h.CheckIntegrity()

	if jsonOut {
		out := runOutput{Result: res, Integrity: intact, Stats: h.Stats()}
		if runVisualize {
			snap := h.Snapshot()
			out.Layout = &snap
		}
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		for _, st := range res.Steps {
			printInfo("%s\n", st)
		}
		printInfo("%d step(s), %d reported an error, integrity %s\n", len(res.Steps), res.Failed(), integrityWord(intact))
		if runVisualize && !quiet {
			if err := h.Visualize(os.Stdout); err != nil {
				return err
			}
		}
	}

	if runExport != "" {
		if err := h.Export(appFs, runExport); err != nil {
			return err
		}
		printInfo("Exported layout to %s\n", runExport)
	}

	if runMetrics {
		if err := writeMetrics(reg); err != nil {
			return err
		}
	}

	if !intact {
		return fmt.Errorf("arena failed integrity check: %w", h.Verify())
	}
	if runStrict && res.Failed() > 0 {
		return fmt.Errorf("%d step(s) reported an error", res.Failed())
	}
	return nil
}

func integrityWord(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}

func writeMetrics(g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
