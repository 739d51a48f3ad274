package alloc

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/logger"
)

// minSplitPayload is the smallest payload a split-off free block may have.
// A remainder below it stays attached to the block as slack.
const minSplitPayload = format.AlignmentUnit

// Options configures an Allocator.
type Options struct {
	// Registerer receives the allocator metrics. nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// Allocator implements first-fit and best-fit allocation, free with
// coalescing, and resize over an arena.
//
// Every search is a linear walk of the block list; there is no free list
// or index to keep in sync.
type Allocator struct {
	a       *arena.Arena
	metrics *metrics
	stats   Stats
}

// New creates an allocator over a. The arena may be reset later; the
// allocator always works on its current storage.
func New(a *arena.Arena, opts Options) *Allocator {
	return &Allocator{
		a:       a,
		metrics: newMetrics(opts.Registerer),
	}
}

// Arena returns the arena the allocator manages.
func (al *Allocator) Arena() *arena.Arena { return al.a }

// Stats returns a copy of the allocator counters.
func (al *Allocator) Stats() Stats { return al.stats }

// AllocFirstFit allocates size bytes from the first free block that fits.
func (al *Allocator) AllocFirstFit(size int) (arena.Ptr, error) {
	return al.Alloc(size, FirstFit)
}

// AllocBestFit allocates size bytes from the smallest free block that fits.
func (al *Allocator) AllocBestFit(size int) (arena.Ptr, error) {
	return al.Alloc(size, BestFit)
}

// Alloc allocates size bytes with the given strategy and returns a pointer
// to the first payload byte. size is rounded up to the alignment unit.
//
// Zero or negative sizes fail with ErrBadSize, sizes beyond the arena and
// requests no free block can hold fail with ErrNoFit. A failed call leaves
// the arena unchanged.
func (al *Allocator) Alloc(size int, s Strategy) (arena.Ptr, error) {
	al.stats.AllocCalls++
	al.metrics.allocRequests.WithLabelValues(s.String()).Inc()

	need, err := al.checkRequest(size)
	if err != nil {
		al.allocFailed(size, err)
		return arena.Nil, err
	}

	data := al.a.Bytes()
	var h format.Header
	var found bool
	switch s {
	case BestFit:
		h, found = bestFit(data, need)
	default:
		h, found = firstFit(data, need)
	}
	if !found {
		err := fmt.Errorf("%w: need %d bytes", ErrNoFit, need)
		al.allocFailed(size, err)
		return arena.Nil, err
	}

	al.place(data, h, need)
	return arena.Ptr(h.Payload()), nil
}

func (al *Allocator) checkRequest(size int) (int, error) {
	if !al.a.Initialized() {
		return 0, ErrNotInitialized
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if size > al.a.Size() {
		return 0, fmt.Errorf("%w: request %d exceeds arena size %d", ErrNoFit, size, al.a.Size())
	}
	return format.Align16(size), nil
}

func (al *Allocator) allocFailed(size int, err error) {
	al.stats.AllocFailures++
	reason := reasonNoFit
	switch {
	case errors.Is(err, ErrBadSize):
		reason = reasonBadSize
	case errors.Is(err, ErrNotInitialized):
		reason = reasonNotInitialized
	}
	al.metrics.allocFailures.WithLabelValues(reason).Inc()
	logger.Debug("alloc: no allocation", "size", size, "reason", reason)
}

// firstFit returns the first free block of at least need bytes.
func firstFit(data []byte, need int) (format.Header, bool) {
	var found format.Header
	ok := false
	walker.Walk(data, func(h format.Header) bool {
		if h.Free() && h.Size >= uint64(need) {
			found, ok = h, true
			return false
		}
		return true
	})
	return found, ok
}

// bestFit returns the smallest free block of at least need bytes. The
// strict comparison keeps the lowest-addressed block on ties.
func bestFit(data []byte, need int) (format.Header, bool) {
	var best format.Header
	ok := false
	walker.Walk(data, func(h format.Header) bool {
		if h.Free() && h.Size >= uint64(need) && (!ok || h.Size < best.Size) {
			best, ok = h, true
			if h.Size == uint64(need) {
				return false
			}
		}
		return true
	})
	return best, ok
}

// place marks the free block h occupied for a request of need bytes. When
// the leftover can hold a header plus a payload of at least
// minSplitPayload, it becomes a new free block right after the payload;
// otherwise the whole block is granted.
func (al *Allocator) place(data []byte, h format.Header, need int) {
	leftover := int(h.Size) - need - format.HeaderSize
	if leftover < minSplitPayload {
		format.PutFree(data, h.Offset, false)
		return
	}
	format.PutHeader(data, h.Offset, uint64(need), false)
	format.PutHeader(data, h.Offset+format.HeaderSize+need, uint64(leftover), true)
	al.stats.SplitCount++
	al.metrics.splits.Inc()
}
