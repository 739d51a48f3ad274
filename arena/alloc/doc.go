// Package alloc provides block allocation, deallocation and resizing over a
// heap arena.
//
// # Overview
//
// The allocator keeps no free list. Every request walks the arena's
// implicit block list (see package walker) and picks a free block with one
// of two strategies:
//
//   - FirstFit: the first free block, in address order, that is large enough
//   - BestFit: the smallest free block that is large enough, lowest address on ties
//
// Both are O(n) in the number of blocks.
//
// # Usage Example
//
//	a, err := arena.New(1000, arena.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	al := alloc.New(a, alloc.Options{})
//
//	p, err := al.AllocFirstFit(50) // 64-byte block
//	if err != nil {
//	    return err
//	}
//
//	p, err = al.ResizeBestFit(p, 200)
//	if err != nil {
//	    return err // p is still valid
//	}
//
//	err = al.Free(p)
//
// # Splitting
//
// Requests are rounded up to 16 bytes. Given a free block of S bytes and a
// request of R bytes, the leftover L = S - R - 16 becomes a new free block
// when L >= 16. Otherwise the caller gets the whole block, up to a header's
// worth more than asked.
//
// # Coalescing
//
// Free merges the block with a free successor and then with a free
// predecessor, immediately. A healthy arena therefore never holds two
// adjacent free blocks; Resize keeps that true when it shrinks a block.
//
// # Reported conditions
//
// Freeing nil, a foreign offset or an already free block returns
// ErrInvalidPointer or ErrDoubleFree without touching the arena. Failed
// allocations and resizes return ErrNoFit, ErrBadSize or ErrNotInitialized
// with the arena unchanged. Nothing panics.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
