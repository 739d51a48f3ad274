package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/logger"
)

// ResizeFirstFit resizes p, falling back to a first-fit move.
func (al *Allocator) ResizeFirstFit(p arena.Ptr, size int) (arena.Ptr, error) {
	return al.Resize(p, size, FirstFit)
}

// ResizeBestFit resizes p, falling back to a best-fit move.
func (al *Allocator) ResizeBestFit(p arena.Ptr, size int) (arena.Ptr, error) {
	return al.Resize(p, size, BestFit)
}

// Resize changes the payload size of the block p names, in the manner of
// realloc:
//
//   - size <= 0 frees p and returns Nil.
//   - a Nil p allocates size bytes with strategy s.
//   - the rounded size equal to the current size returns p unchanged.
//   - shrinking splits the surplus into a free block when it is large
//     enough and merges it with a free successor.
//   - growing first tries to absorb a free successor, then moves the
//     payload to a block found with s, copies min(old, new) bytes and frees
//     the old block.
//
// When no block can hold the new size the call fails with ErrNoFit and p
// stays valid and unchanged.
func (al *Allocator) Resize(p arena.Ptr, size int, s Strategy) (arena.Ptr, error) {
	al.stats.ResizeCalls++

	if size <= 0 {
		al.metrics.resizes.WithLabelValues(pathFree).Inc()
		return arena.Nil, al.Free(p)
	}
	if p.IsNil() {
		al.metrics.resizes.WithLabelValues(pathAlloc).Inc()
		return al.Alloc(size, s)
	}
	if !al.a.Initialized() {
		return al.resizeFailed(p, size, ErrNotInitialized)
	}

	// Checked before rounding so sizes near math.MaxInt cannot wrap.
	if size > al.a.Size() {
		return al.resizeFailed(p, size, fmt.Errorf("%w: request %d exceeds arena size %d", ErrNoFit, size, al.a.Size()))
	}
	need := format.Align16(size)

	h, err := al.a.Resolve(p)
	if err != nil {
		return al.resizeFailed(p, size, err)
	}
	if h.Free() {
		return al.resizeFailed(p, size, fmt.Errorf("%w: %s refers to a free block", ErrInvalidPointer, p))
	}

	data := al.a.Bytes()
	cur := int(h.Size)
	switch {
	case need == cur:
		al.metrics.resizes.WithLabelValues(pathIdentity).Inc()
		return p, nil
	case need < cur:
		al.shrink(data, h, need)
		al.stats.ResizeInPlace++
		al.metrics.resizes.WithLabelValues(pathShrink).Inc()
		return p, nil
	}

	if al.growInPlace(data, h, need) {
		al.stats.ResizeInPlace++
		al.metrics.resizes.WithLabelValues(pathGrow).Inc()
		return p, nil
	}

	np, err := al.Alloc(need, s)
	if err != nil {
		return al.resizeFailed(p, size, err)
	}
	// Allocation only touches free blocks, so h still describes p.
	copy(data[np.Offset():np.Offset()+need], data[h.Payload():h.Payload()+min(cur, need)])
	if err := al.Free(p); err != nil {
		return arena.Nil, fmt.Errorf("alloc: release moved block: %w", err)
	}
	al.stats.ResizeMoved++
	al.metrics.resizes.WithLabelValues(pathMove).Inc()
	return np, nil
}

func (al *Allocator) resizeFailed(p arena.Ptr, size int, err error) (arena.Ptr, error) {
	al.metrics.resizes.WithLabelValues(pathFailed).Inc()
	logger.Debug("resize: failed", "ptr", p.String(), "size", size, "err", err)
	return arena.Nil, err
}

// shrink truncates h to need bytes. A surplus large enough for a header and
// minSplitPayload becomes a free block, merged with a free successor so no
// two free blocks end up adjacent; a smaller surplus stays as slack.
func (al *Allocator) shrink(data []byte, h format.Header, need int) {
	surplus := int(h.Size) - need - format.HeaderSize
	if surplus < minSplitPayload {
		return
	}

	next, hasNext := walker.Next(data, h.Offset)
	format.PutSize(data, h.Offset, uint64(need))
	remOff := h.Offset + format.HeaderSize + need
	remSize := uint64(surplus)
	if hasNext {
		nh, err := format.ReadHeader(data, next)
		if err == nil && nh.Free() {
			remSize += format.HeaderSize + nh.Size
			al.coalesced("forward")
		}
	}
	format.PutHeader(data, remOff, remSize, true)
	al.stats.SplitCount++
	al.metrics.splits.Inc()
}

// growInPlace extends h to need bytes by absorbing a free successor. If the
// successor leaves at least a header plus minSplitPayload over, that excess
// stays behind as a free block; otherwise the successor is absorbed whole.
func (al *Allocator) growInPlace(data []byte, h format.Header, need int) bool {
	next, ok := walker.Next(data, h.Offset)
	if !ok {
		return false
	}
	nh, err := format.ReadHeader(data, next)
	if err != nil || !nh.Free() {
		return false
	}

	required := need - int(h.Size)
	avail := format.HeaderSize + int(nh.Size)
	if avail < required {
		return false
	}

	if avail-required >= format.HeaderSize+minSplitPayload {
		format.PutSize(data, h.Offset, uint64(need))
		format.PutHeader(data, h.Offset+format.HeaderSize+need, uint64(avail-required-format.HeaderSize), true)
		al.stats.SplitCount++
		al.metrics.splits.Inc()
	} else {
		format.PutSize(data, h.Offset, h.Size+uint64(avail))
	}
	al.coalesced("forward")
	return true
}
