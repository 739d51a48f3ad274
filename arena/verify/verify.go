// Package verify provides structural validation of heap arenas.
// Every check is read-only and none of them runs implicitly; callers decide
// when to audit.
package verify

import (
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
)

// ErrCorruptState is wrapped by every ValidationError.
var ErrCorruptState = errors.New("verify: corrupt arena state")

// ValidationError describes one structural violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrCorruptState }

// AllInvariants runs Integrity and AdjacentFree.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte) error {
	if err := Integrity(data); err != nil {
		return err
	}
	return AdjacentFree(data)
}

// Header validates the block header at off: it must lie inside the arena
// on the alignment grid, carry an aligned size whose extent ends within the
// arena, and hold a well-formed free flag.
func Header(data []byte, off int) error {
	if off < 0 || off >= len(data) {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: fmt.Sprintf("header outside arena bounds [0, %d)", len(data)),
			Offset:  off,
		}
	}
	if !format.IsAligned16(off) {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: "header not aligned",
			Offset:  off,
		}
	}
	h, err := format.ReadHeader(data, off)
	if err != nil {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: "header truncated by arena end",
			Offset:  off,
		}
	}
	if !format.IsAligned16U64(h.Size) {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: fmt.Sprintf("block size %d not aligned", h.Size),
			Offset:  off,
		}
	}
	if end, ok := h.End(); !ok || end > len(data) {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: fmt.Sprintf("block of %d bytes extends past arena end %d", h.Size, len(data)),
			Offset:  off,
		}
	}
	if !h.FlagValid() {
		return &ValidationError{
			Type:    "BlockHeader",
			Message: fmt.Sprintf("free flag corrupted: 0x%02X", h.Flag),
			Offset:  off,
		}
	}
	return nil
}

// Integrity walks every block, validating each header, and requires the
// header and payload bytes of all blocks to add up to the arena size.
func Integrity(data []byte) error {
	if len(data) == 0 {
		return &ValidationError{
			Type:    "Arena",
			Message: "arena not initialized",
			Offset:  -1,
		}
	}
	if !format.IsAligned16(len(data)) {
		return &ValidationError{
			Type:    "Arena",
			Message: fmt.Sprintf("arena size %d not aligned", len(data)),
			Offset:  -1,
		}
	}

	var bad error
	total := 0
	walker.Walk(data, func(h format.Header) bool {
		if err := Header(data, h.Offset); err != nil {
			bad = err
			return false
		}
		total += format.HeaderSize + int(h.Size)
		return true
	})
	if bad != nil {
		return bad
	}

	if total != len(data) {
		return &ValidationError{
			Type:    "Accounting",
			Message: fmt.Sprintf("blocks account for %d bytes, arena holds %d", total, len(data)),
			Offset:  -1,
		}
	}
	return nil
}

// AdjacentFree reports two neighbouring free blocks. An allocator that
// coalesces on every free never leaves them behind.
func AdjacentFree(data []byte) error {
	prevFree := -1
	var bad error
	walker.Walk(data, func(h format.Header) bool {
		if !h.Free() {
			prevFree = -1
			return true
		}
		if prevFree >= 0 {
			bad = &ValidationError{
				Type:    "Coalescing",
				Message: fmt.Sprintf("free block follows free block at 0x%X", prevFree),
				Offset:  h.Offset,
			}
			return false
		}
		prevFree = h.Offset
		return true
	})
	return bad
}
