package alloc

import (
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/logger"
)

// Free marks the block p names as free and merges it with free neighbours.
//
// A nil or unresolvable pointer returns ErrInvalidPointer and a block that
// is already free returns ErrDoubleFree. Both are reported conditions: the
// arena is left byte-for-byte unchanged.
func (al *Allocator) Free(p arena.Ptr) error {
	al.stats.FreeCalls++

	h, err := al.a.Resolve(p)
	if err != nil {
		al.freeRejected(p, resultInvalidPointer, err)
		return err
	}
	if h.Free() {
		err := fmt.Errorf("%w: %s", ErrDoubleFree, p)
		al.freeRejected(p, resultDoubleFree, err)
		return err
	}

	al.release(al.a.Bytes(), h)
	al.metrics.frees.WithLabelValues(resultOK).Inc()
	return nil
}

func (al *Allocator) freeRejected(p arena.Ptr, result string, err error) {
	al.stats.FreeRejected++
	al.metrics.frees.WithLabelValues(result).Inc()
	if errors.Is(err, ErrNotInitialized) {
		logger.Debug("free: arena not initialized", "ptr", p.String())
		return
	}
	logger.Debug("free: rejected", "ptr", p.String(), "result", result, "err", err)
}

// release flips h to free, absorbs a free successor into it and lets a free
// predecessor absorb the result. At most one free block remains where up to
// three blocks were.
func (al *Allocator) release(data []byte, h format.Header) {
	format.PutFree(data, h.Offset, true)

	size := h.Size
	if next, ok := walker.Next(data, h.Offset); ok {
		nh, err := format.ReadHeader(data, next)
		if err == nil && nh.Free() {
			size += format.HeaderSize + nh.Size
			format.PutSize(data, h.Offset, size)
			al.coalesced("forward")
		}
	}

	if prev, ok := walker.Prev(data, h.Offset); ok {
		ph, err := format.ReadHeader(data, prev)
		if err == nil && ph.Free() {
			format.PutSize(data, prev, ph.Size+format.HeaderSize+size)
			al.coalesced("backward")
		}
	}
}

func (al *Allocator) coalesced(direction string) {
	if direction == "forward" {
		al.stats.CoalesceForward++
	} else {
		al.stats.CoalesceBackward++
	}
	al.metrics.coalesces.WithLabelValues(direction).Inc()
}
