package heap

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/printer"
	"github.com/joshuapare/heapkit/internal/format"
)

// Options controls heap creation.
type Options struct {
	// MaxSize is the largest size Init accepts.
	// Default: 8000
	MaxSize int

	// Backing selects where arena storage comes from.
	// Default: arena.BackingHeap
	Backing arena.Backing

	// Registerer receives allocator metrics. nil leaves them unregistered.
	Registerer prometheus.Registerer

	// Printer controls Visualize and Overview output.
	Printer printer.Options
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxSize: format.DefaultMaxArenaSize,
		Backing: arena.BackingHeap,
		Printer: printer.DefaultOptions(),
	}
}

func (o Options) arena() arena.Options {
	return arena.Options{MaxSize: o.MaxSize, Backing: o.Backing}
}
