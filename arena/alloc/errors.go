package alloc

import (
	"errors"

	"github.com/joshuapare/heapkit/arena"
)

var (
	// ErrNoFit indicates that no free block large enough was found.
	ErrNoFit = errors.New("alloc: no free block large enough")

	// ErrBadSize indicates a request size of zero or below.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("alloc: block already free")

	// ErrInvalidPointer indicates a pointer that does not name a block in the arena.
	ErrInvalidPointer = arena.ErrInvalidPointer

	// ErrNotInitialized indicates the arena has no storage.
	ErrNotInitialized = arena.ErrNotInitialized
)
