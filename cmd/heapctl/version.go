package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/arena/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

// version is overridden with -ldflags "-X main.version=...". When unset the
// module version recorded by the Go toolchain is used.
var version = ""

// versionInfo is what `heapctl version` reports: the build plus the arena
// layout this binary was compiled with.
type versionInfo struct {
	Version      string   `json:"version"`
	GoVersion    string   `json:"go_version"`
	Revision     string   `json:"revision,omitempty"`
	Modified     bool     `json:"modified,omitempty"`
	HeaderSize   int      `json:"header_size"`
	Alignment    int      `json:"alignment"`
	MaxArenaSize int      `json:"default_max_arena_size"`
	Strategies   []string `json:"strategies"`
}

func currentVersion() versionInfo {
	info := versionInfo{
		Version:      version,
		HeaderSize:   format.HeaderSize,
		Alignment:    format.AlignmentUnit,
		MaxArenaSize: format.DefaultMaxArenaSize,
		Strategies:   []string{alloc.FirstFit.String(), alloc.BestFit.String()},
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "dev"
		}
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and arena layout information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersion()
		if jsonOut {
			return printJSON(info)
		}

		printInfo("heapctl %s\n", info.Version)
		if info.GoVersion != "" {
			printInfo("  go: %s\n", info.GoVersion)
		}
		if info.Revision != "" {
			rev := info.Revision
			if info.Modified {
				rev += " (modified)"
			}
			printInfo("  revision: %s\n", rev)
		}
		printInfo("  header: %d bytes, alignment: %d bytes\n", info.HeaderSize, info.Alignment)
		printInfo("  default max arena: %d bytes\n", info.MaxArenaSize)
		printInfo("  strategies: %s, %s\n", info.Strategies[0], info.Strategies[1])
		return nil
	},
}

func init() {
	rootCmd.Version = currentVersion().Version
	rootCmd.AddCommand(versionCmd)
}
