// Package format houses the low-level layout of the heap arena: the block
// header codec, alignment helpers and the size limits every other package
// builds on. It has no knowledge of allocation policy.
package format

const (
	// AlignmentUnit is the boundary every block offset and payload size is
	// rounded to.
	AlignmentUnit = 16

	// AlignmentMask is used by the Align16 helpers (AlignmentUnit - 1).
	AlignmentMask = AlignmentUnit - 1

	// HeaderSize is the size of the metadata record that prefixes every block.
	// It must stay a multiple of AlignmentUnit so payloads stay aligned.
	//
	// Layout (little-endian):
	//   0x00  8  block size (payload bytes, header excluded)
	//   0x08  1  free flag (FlagUsed or FlagFree)
	//   0x09  7  reserved, zero
	HeaderSize = 16

	// HeaderSizeOffset is the offset of the payload size field in a header.
	HeaderSizeOffset = 0x00

	// HeaderFlagOffset is the offset of the free flag byte in a header.
	HeaderFlagOffset = 0x08

	// HeaderReservedOffset is where the zeroed reserved bytes begin.
	HeaderReservedOffset = 0x09

	// FlagUsed marks an occupied block.
	FlagUsed byte = 0x00

	// FlagFree marks a free block. Any value other than FlagUsed and FlagFree
	// is a corrupt header.
	FlagFree byte = 0x01

	// DefaultMaxArenaSize is the capacity bound used when a caller does not
	// configure one.
	DefaultMaxArenaSize = 8000

	// ArenaSizeLimit is the ceiling for any configured capacity bound.
	ArenaSizeLimit = 1 << 30
)

// The header must keep the payload that follows it aligned.
var _ = [1]struct{}{}[HeaderSize%AlignmentUnit]
