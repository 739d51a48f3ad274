package arena

import "github.com/joshuapare/heapkit/internal/format"

// Backing selects where arena storage comes from.
type Backing uint8

const (
	// BackingHeap stores the arena in a Go byte slice.
	BackingHeap Backing = iota

	// BackingMmap stores the arena in a private anonymous mapping. Platforms
	// without mmap fall back to a Go byte slice.
	BackingMmap
)

func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// ParseBacking maps a configuration string to a Backing.
func ParseBacking(s string) (Backing, bool) {
	switch s {
	case "", "heap":
		return BackingHeap, true
	case "mmap":
		return BackingMmap, true
	default:
		return 0, false
	}
}

// Options controls arena creation.
type Options struct {
	// MaxSize is the capacity bound for New and Reset. Values above
	// format.ArenaSizeLimit are clamped to it.
	// Default: format.DefaultMaxArenaSize
	MaxSize int

	// Backing selects the storage source.
	// Default: BackingHeap
	Backing Backing
}

// DefaultOptions returns the defaults used when no options are given.
func DefaultOptions() Options {
	return Options{
		MaxSize: format.DefaultMaxArenaSize,
		Backing: BackingHeap,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxSize <= 0 {
		o.MaxSize = format.DefaultMaxArenaSize
	}
	o.MaxSize = min(o.MaxSize, format.ArenaSizeLimit)
	return o
}
