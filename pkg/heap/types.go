package heap

import (
	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/alloc"
	"github.com/joshuapare/heapkit/arena/verify"
)

// Ptr identifies an allocated payload.
type Ptr = arena.Ptr

// Nil is the null pointer.
const Nil = arena.Nil

// Strategy selects how a free block is chosen.
type Strategy = alloc.Strategy

const (
	FirstFit = alloc.FirstFit
	BestFit  = alloc.BestFit
)

// Stats holds allocator counters.
type Stats = alloc.Stats

// Errors returned by Heap methods. Match them with errors.Is.
var (
	ErrInvalidArgument   = arena.ErrInvalidArgument
	ErrAllocationFailure = arena.ErrAllocationFailure
	ErrNotInitialized    = arena.ErrNotInitialized
	ErrInvalidPointer    = arena.ErrInvalidPointer
	ErrNoFit             = alloc.ErrNoFit
	ErrBadSize           = alloc.ErrBadSize
	ErrDoubleFree        = alloc.ErrDoubleFree
	ErrCorruptState      = verify.ErrCorruptState
)
