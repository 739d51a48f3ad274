/*
Package heap provides a high-level API over a fixed-size explicit memory
arena.

# Quick Start

	h := heap.New(heap.DefaultOptions())
	if err := h.Init(1000); err != nil {
	    log.Fatal(err)
	}
	defer h.Close()

	p, err := h.AllocFirstFit(50)
	if err != nil {
	    log.Fatal(err)
	}
	defer h.Free(p)

# Layout

The arena is a contiguous byte region split into blocks. Each block starts
with a 16-byte header (payload size, free flag) followed by its payload.
Blocks tile the arena exactly; there are no gaps and no trailing bytes.
Payload sizes and offsets are multiples of 16.

# Allocation

Requests are rounded up to 16 bytes. First fit takes the first free block
in address order that is large enough; best fit takes the smallest one and
breaks ties by address. A block with room to spare is split and the rest
becomes a new free block.

# Free and Coalescing

Free merges the released block with free neighbours on both sides, so two
free blocks are never adjacent. Freeing a pointer that is not a live block
reports ErrInvalidPointer or ErrDoubleFree and changes nothing.

# Resize

Resize follows realloc: a size of zero frees, a Nil pointer allocates, a
shrink splits off the tail, a grow first tries to extend into a free
successor and otherwise moves the payload. On failure the original block is
left as it was.

# Thread Safety

A Heap is not safe for concurrent use. Callers must serialize access.
*/
package heap
