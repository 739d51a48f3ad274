package alloc

// Strategy selects how a free block is chosen for a request.
type Strategy uint8

const (
	// FirstFit takes the lowest-addressed free block that is large enough.
	FirstFit Strategy = iota

	// BestFit takes the smallest free block that is large enough, the
	// lowest-addressed one on ties.
	BestFit
)

func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first_fit"
	case BestFit:
		return "best_fit"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "", "first_fit", "ff":
		return FirstFit, true
	case "best_fit", "bf":
		return BestFit, true
	default:
		return 0, false
	}
}

// Stats holds allocator counters for tests and instrumentation.
type Stats struct {
	AllocCalls       int // Total allocation requests, including those made by Resize
	AllocFailures    int // Requests that returned no allocation
	FreeCalls        int // Total Free() calls, including those made by Resize
	FreeRejected     int // Free() calls rejected as invalid pointer or double free
	SplitCount       int // Number of block splits
	CoalesceForward  int // Forward coalesce operations
	CoalesceBackward int // Backward coalesce operations
	ResizeCalls      int // Total Resize() calls
	ResizeInPlace    int // Resizes served without moving the payload
	ResizeMoved      int // Resizes that copied the payload to a new block
}
