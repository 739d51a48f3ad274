package arena

import "errors"

var (
	// ErrInvalidArgument indicates an initialization size of zero or above the capacity bound.
	ErrInvalidArgument = errors.New("arena: invalid argument")

	// ErrAllocationFailure indicates backing storage for the arena could not be obtained.
	ErrAllocationFailure = errors.New("arena: backing storage allocation failed")

	// ErrNotInitialized indicates an operation on an arena that was never initialized or was closed.
	ErrNotInitialized = errors.New("arena: not initialized")

	// ErrInvalidPointer indicates a pointer that does not resolve to a block header.
	ErrInvalidPointer = errors.New("arena: invalid pointer")
)
