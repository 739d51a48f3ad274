// Package walker traverses an arena as an implicit list of blocks.
//
// There is no stored list: the next block always starts right after the
// current block's payload, so every function here works on the raw arena
// bytes and a header offset. Walks are linear in the number of blocks.
//
// Every step advances at least one header, so a walk over a corrupted arena
// still terminates.
package walker

import (
	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Next returns the header offset of the block following the one at off.
// ok is false when there is no room for another header before the arena
// end; this is the list terminator, not an error.
func Next(data []byte, off int) (int, bool) {
	h, err := format.ReadHeader(data, off)
	if err != nil {
		return 0, false
	}
	if h.Size > uint64(len(data)) {
		return 0, false
	}
	next, ok := buf.AddOverflowSafe(off+format.HeaderSize, int(h.Size))
	if !ok || next+format.HeaderSize >= len(data) {
		return 0, false
	}
	return next, true
}

// Prev returns the header offset of the block preceding the one at off.
// There is no back-link, so it walks forward from the arena start. ok is
// false for the first block and for offsets that are not block starts.
func Prev(data []byte, off int) (int, bool) {
	if off <= 0 || len(data) < format.HeaderSize {
		return 0, false
	}
	cur := 0
	for {
		next, ok := Next(data, cur)
		if !ok || next > off {
			return 0, false
		}
		if next == off {
			return cur, true
		}
		cur = next
	}
}

// HeaderFromPayload converts a payload offset to its header offset. ok is
// false when the header would fall outside [0, len(data)) or off the
// alignment grid. It does not prove the offset is a block start; use
// Contains for that.
func HeaderFromPayload(data []byte, payload int) (int, bool) {
	off := format.HeaderOffset(payload)
	if off < 0 || off >= len(data) {
		return 0, false
	}
	if !format.IsAligned16(off) {
		return 0, false
	}
	return off, true
}

// Contains reports whether off is the start of a block reached by the walk.
func Contains(data []byte, off int) bool {
	if off < 0 || !format.IsAligned16(off) || len(data) < format.HeaderSize {
		return false
	}
	found := false
	Walk(data, func(h format.Header) bool {
		if h.Offset == off {
			found = true
		}
		return h.Offset < off
	})
	return found
}

// Walk calls fn for every block header in arena order, starting at offset
// 0, until fn returns false or the list ends.
func Walk(data []byte, fn func(h format.Header) bool) {
	if len(data) < format.HeaderSize {
		return
	}
	off := 0
	for {
		h, err := format.ReadHeader(data, off)
		if err != nil || !fn(h) {
			return
		}
		next, ok := Next(data, off)
		if !ok {
			return
		}
		off = next
	}
}

// Count returns the number of blocks reached by the walk.
func Count(data []byte) int {
	n := 0
	Walk(data, func(format.Header) bool {
		n++
		return true
	})
	return n
}
