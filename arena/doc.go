// Package arena owns the fixed-capacity byte region that backs the heap.
//
// # Layout
//
// The arena is a contiguous sequence of blocks. Every block is a 16-byte
// header followed by its payload:
//
//	[hdr|payload][hdr|payload] ... [hdr|payload]
//	 ^0          ^16+size0
//
// Blocks are never listed anywhere; the walker package derives the order by
// adding each header's size to its offset. The header sizes plus payload
// sizes always add up to Size() in a healthy arena.
//
// # Lifecycle
//
//	a, err := arena.New(1000, arena.DefaultOptions()) // rounds to 1008
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
// New and Reset leave a single free block of Size()-16 payload bytes.
// Reset discards every block; nothing is migrated.
//
// # Pointers
//
// Allocations are addressed through Ptr, the payload offset. Resolve turns a
// Ptr back into its header and rejects anything that is not the payload of
// a real block, so foreign or stale offsets never reach the allocator.
//
// # Backing storage
//
// BackingHeap uses a Go slice. BackingMmap uses an anonymous private mapping
// from golang.org/x/sys/unix, keeping the arena outside the Go heap.
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers must synchronize access
// externally.
package arena
