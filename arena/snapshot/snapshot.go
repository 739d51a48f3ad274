// Package snapshot captures the block layout of an arena as plain data and
// moves it to and from JSON files.
//
// A Snapshot is taken with a read-only walk, so it can be produced at any
// point between allocator operations without disturbing the arena.
package snapshot

import (
	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
)

// Block describes one block in walk order.
type Block struct {
	Offset int    `json:"offset"`
	Size   uint64 `json:"size"`
	Free   bool   `json:"is_free"`
}

// Extent returns the bytes the block occupies, header included.
func (b Block) Extent() uint64 { return format.HeaderSize + b.Size }

// Snapshot is the layout of an arena at one point in time.
type Snapshot struct {
	HeapSize   int     `json:"heap_size"`
	HeaderSize int     `json:"header_size"`
	Blocks     []Block `json:"blocks"`
}

// Take walks data and records every block. An empty or absent arena yields
// a snapshot with no blocks.
func Take(data []byte) Snapshot {
	snap := Snapshot{
		HeapSize:   len(data),
		HeaderSize: format.HeaderSize,
		Blocks:     make([]Block, 0, walker.Count(data)),
	}
	walker.Walk(data, func(h format.Header) bool {
		snap.Blocks = append(snap.Blocks, Block{Offset: h.Offset, Size: h.Size, Free: h.Free()})
		return true
	})
	return snap
}

// Count returns the number of blocks.
func (s Snapshot) Count() int { return len(s.Blocks) }

// Used returns the payload bytes held by occupied blocks.
func (s Snapshot) Used() uint64 {
	var n uint64
	for _, b := range s.Blocks {
		if !b.Free {
			n += b.Size
		}
	}
	return n
}

// Free returns the payload bytes available in free blocks.
func (s Snapshot) Free() uint64 {
	var n uint64
	for _, b := range s.Blocks {
		if b.Free {
			n += b.Size
		}
	}
	return n
}

// FreeCount returns the number of free blocks.
func (s Snapshot) FreeCount() int {
	n := 0
	for _, b := range s.Blocks {
		if b.Free {
			n++
		}
	}
	return n
}

// Largest returns the size of the largest free block, or 0 if none is free.
func (s Snapshot) Largest() uint64 {
	var n uint64
	for _, b := range s.Blocks {
		if b.Free && b.Size > n {
			n = b.Size
		}
	}
	return n
}

// Overhead returns the bytes spent on headers.
func (s Snapshot) Overhead() int { return len(s.Blocks) * s.HeaderSize }
