package heap

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/alloc"
	"github.com/joshuapare/heapkit/arena/printer"
	"github.com/joshuapare/heapkit/arena/snapshot"
	"github.com/joshuapare/heapkit/arena/verify"
	"github.com/joshuapare/heapkit/internal/logger"
)

// Heap is an explicit allocator over a single arena.
type Heap struct {
	opts Options
	a    *arena.Arena
	al   *alloc.Allocator
}

// New creates a heap without storage. Every operation reports
// ErrNotInitialized until Init succeeds.
func New(opts Options) *Heap {
	a := arena.NewEmpty(opts.arena())
	return &Heap{
		opts: opts,
		a:    a,
		al:   alloc.New(a, alloc.Options{Registerer: opts.Registerer}),
	}
}

// Init (re)creates the arena with at least size bytes, rounded up to 16.
// Any previous arena is discarded along with every pointer into it.
//
// Sizes of zero or above the configured maximum fail with
// ErrInvalidArgument and leave the current arena in place.
func (h *Heap) Init(size int) error {
	return h.a.Reset(size)
}

// Initialized reports whether the heap has an arena.
func (h *Heap) Initialized() bool { return h.a.Initialized() }

// Size returns the arena size in bytes, or 0 before Init.
func (h *Heap) Size() int { return h.a.Size() }

// AllocFirstFit allocates size bytes from the first free block that fits.
func (h *Heap) AllocFirstFit(size int) (Ptr, error) { return h.al.AllocFirstFit(size) }

// AllocBestFit allocates size bytes from the smallest free block that fits.
func (h *Heap) AllocBestFit(size int) (Ptr, error) { return h.al.AllocBestFit(size) }

// Alloc allocates size bytes with strategy s.
func (h *Heap) Alloc(size int, s Strategy) (Ptr, error) { return h.al.Alloc(size, s) }

// Free releases the block p names and merges it with free neighbours.
func (h *Heap) Free(p Ptr) error { return h.al.Free(p) }

// ResizeFirstFit resizes p, moving it with first fit when it cannot grow in place.
func (h *Heap) ResizeFirstFit(p Ptr, size int) (Ptr, error) { return h.al.ResizeFirstFit(p, size) }

// ResizeBestFit resizes p, moving it with best fit when it cannot grow in place.
func (h *Heap) ResizeBestFit(p Ptr, size int) (Ptr, error) { return h.al.ResizeBestFit(p, size) }

// Resize resizes p with strategy s.
func (h *Heap) Resize(p Ptr, size int, s Strategy) (Ptr, error) { return h.al.Resize(p, size, s) }

// Verify walks the arena and returns the first structural violation, or nil.
func (h *Heap) Verify() error {
	return verify.Integrity(h.a.Bytes())
}

// CheckIntegrity reports whether the arena is structurally sound. The
// reason for a failure is logged at warn level; use Verify to get it.
func (h *Heap) CheckIntegrity() bool {
	if err := h.Verify(); err != nil {
		logger.Warn("integrity check failed", "err", err)
		return false
	}
	return true
}

// Payload returns the payload bytes of p. The slice aliases the arena and
// is invalidated by Free, Resize, Init and Close.
func (h *Heap) Payload(p Ptr) ([]byte, error) { return h.a.Payload(p) }

// Snapshot returns the current block layout. It is empty before Init.
func (h *Heap) Snapshot() snapshot.Snapshot { return snapshot.Take(h.a.Bytes()) }

// Visualize writes every block with a proportional bar, then the overview.
func (h *Heap) Visualize(w io.Writer) error {
	if !h.Initialized() {
		return ErrNotInitialized
	}
	return printer.New(w, h.opts.Printer).Visualize(h.Snapshot())
}

// Overview writes the one-line arena map and totals.
func (h *Heap) Overview(w io.Writer) error {
	if !h.Initialized() {
		return ErrNotInitialized
	}
	return printer.New(w, h.opts.Printer).Overview(h.Snapshot())
}

// Export writes the block layout as JSON to path on fs.
func (h *Heap) Export(fs afero.Fs, path string) error {
	if !h.Initialized() {
		return ErrNotInitialized
	}
	if err := snapshot.Export(fs, path, h.Snapshot()); err != nil {
		return fmt.Errorf("heap: export: %w", err)
	}
	return nil
}

// Stats returns the allocator counters.
func (h *Heap) Stats() Stats { return h.al.Stats() }

// Close releases the arena. The heap may be initialized again with Init.
func (h *Heap) Close() error { return h.a.Close() }
