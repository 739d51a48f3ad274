package arena

import (
	"fmt"

	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/internal/mmfile"
)

// mapAnon is swapped out by tests to simulate mapping failures.
var mapAnon = mmfile.MapAnon

// Arena is a fixed-capacity byte region holding header-prefixed blocks.
// It owns its backing storage for its whole lifetime; Reset replaces the
// storage and Close releases it.
//
// Arena instances are not thread-safe. Callers must serialize access.
type Arena struct {
	data    []byte
	size    int
	release func() error
	opts    Options
}

// New creates an arena of at least size bytes. See Reset for the rules.
func New(size int, opts Options) (*Arena, error) {
	a := &Arena{opts: opts.withDefaults()}
	if err := a.Reset(size); err != nil {
		return nil, err
	}
	return a, nil
}

// NewEmpty returns an arena with no storage. It reports ErrNotInitialized
// until the first Reset.
func NewEmpty(opts Options) *Arena {
	return &Arena{opts: opts.withDefaults()}
}

// Reset (re)initializes the arena. size is rounded up to the alignment
// unit; any previous storage is released without migrating its contents,
// and the fresh storage holds a single free block spanning the arena.
//
// A size of zero or above the capacity bound fails with ErrInvalidArgument
// and leaves the current arena untouched.
func (a *Arena) Reset(size int) error {
	if a.opts.MaxSize == 0 {
		a.opts = a.opts.withDefaults()
	}
	if size <= 0 || size > a.opts.MaxSize {
		return fmt.Errorf("%w: size %d outside (0, %d]", ErrInvalidArgument, size, a.opts.MaxSize)
	}
	if err := a.Close(); err != nil {
		return fmt.Errorf("arena: release previous storage: %w", err)
	}

	rounded := format.Align16(size)
	data, release, err := a.obtain(rounded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	a.data = data
	a.size = rounded
	a.release = release

	format.PutHeader(a.data, 0, uint64(rounded-format.HeaderSize), true)
	logger.Debug("arena initialized", "size", rounded, "requested", size, "backing", a.opts.Backing.String())
	return nil
}

func (a *Arena) obtain(size int) ([]byte, func() error, error) {
	switch a.opts.Backing {
	case BackingHeap:
		return make([]byte, size), nil, nil
	case BackingMmap:
		return mapAnon(size)
	default:
		return nil, nil, fmt.Errorf("unknown backing %d", a.opts.Backing)
	}
}

// Close releases the backing storage. The arena reports ErrNotInitialized
// until the next Reset. Closing twice is a no-op.
func (a *Arena) Close() error {
	if a == nil || a.data == nil {
		return nil
	}
	var err error
	if a.release != nil {
		err = a.release()
	}
	a.data = nil
	a.size = 0
	a.release = nil
	return err
}

// Initialized reports whether the arena currently has storage.
func (a *Arena) Initialized() bool { return a != nil && a.data != nil }

// Bytes returns the raw arena. Callers outside the allocator must treat it
// as read-only.
func (a *Arena) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a.data
}

// Size returns the arena capacity in bytes, header bytes included.
func (a *Arena) Size() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Options returns the options the arena was created with.
func (a *Arena) Options() Options { return a.opts }

// Header decodes the header at off.
func (a *Arena) Header(off int) (format.Header, error) {
	if !a.Initialized() {
		return format.Header{}, ErrNotInitialized
	}
	return format.ReadHeader(a.data, off)
}

// Resolve maps a payload pointer to the header of the block it names. The
// pointer must be non-nil, inside the arena and the payload of a block
// reached by the walk; anything else is ErrInvalidPointer. The block may be
// free.
func (a *Arena) Resolve(p Ptr) (format.Header, error) {
	if !a.Initialized() {
		return format.Header{}, ErrNotInitialized
	}
	if p.IsNil() {
		return format.Header{}, fmt.Errorf("%w: nil", ErrInvalidPointer)
	}
	off, ok := walker.HeaderFromPayload(a.data, p.Offset())
	if !ok {
		return format.Header{}, fmt.Errorf("%w: %s outside arena", ErrInvalidPointer, p)
	}
	if !walker.Contains(a.data, off) {
		return format.Header{}, fmt.Errorf("%w: %s is not a block payload", ErrInvalidPointer, p)
	}
	h, err := format.ReadHeader(a.data, off)
	if err != nil {
		return format.Header{}, fmt.Errorf("%w: %w", ErrInvalidPointer, err)
	}
	return h, nil
}

// Payload returns the payload bytes of the occupied block p names. The
// slice aliases the arena and is capped at the block size.
func (a *Arena) Payload(p Ptr) ([]byte, error) {
	h, err := a.Resolve(p)
	if err != nil {
		return nil, err
	}
	if h.Free() {
		return nil, fmt.Errorf("%w: %s refers to a free block", ErrInvalidPointer, p)
	}
	end, ok := h.End()
	if !ok || end > len(a.data) {
		return nil, fmt.Errorf("%w: block at %d overruns arena", ErrInvalidPointer, h.Offset)
	}
	return a.data[h.Payload():end:end], nil
}
