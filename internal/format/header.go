package format

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
)

// Header is a decoded block header.
//
// Size is kept as the raw uint64 from the arena so a corrupted field can be
// reported instead of silently truncated.
type Header struct {
	Offset int    // Offset of the header from the arena start
	Size   uint64 // Payload size in bytes, header excluded
	Flag   byte   // FlagFree or FlagUsed when well formed
}

// Free reports whether the header is marked free.
func (h Header) Free() bool { return h.Flag == FlagFree }

// FlagValid reports whether the free flag holds one of the two legal values.
func (h Header) FlagValid() bool { return h.Flag == FlagFree || h.Flag == FlagUsed }

// Payload returns the offset of the first payload byte.
func (h Header) Payload() int { return PayloadOffset(h.Offset) }

// End returns the offset one past the payload. ok is false when the size
// field cannot be represented as an int offset.
func (h Header) End() (int, bool) {
	if h.Size > uint64(ArenaSizeLimit) {
		return 0, false
	}
	return buf.AddOverflowSafe(h.Offset+HeaderSize, int(h.Size))
}

// ReadHeader decodes the header at off. It validates only that the header
// bytes are present; structural checks live in the verify package.
func ReadHeader(b []byte, off int) (Header, error) {
	raw, ok := buf.Slice(b, off, HeaderSize)
	if !ok {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	return Header{
		Offset: off,
		Size:   buf.U64LE(raw[HeaderSizeOffset:]),
		Flag:   raw[HeaderFlagOffset],
	}, nil
}

// PutHeader encodes a header at off. The caller guarantees off+HeaderSize
// fits in b.
func PutHeader(b []byte, off int, size uint64, free bool) {
	PutU64(b, off+HeaderSizeOffset, size)
	flag := FlagUsed
	if free {
		flag = FlagFree
	}
	b[off+HeaderFlagOffset] = flag
	clear(b[off+HeaderReservedOffset : off+HeaderSize])
}

// PutSize rewrites only the size field of the header at off.
func PutSize(b []byte, off int, size uint64) {
	PutU64(b, off+HeaderSizeOffset, size)
}

// PutFree rewrites only the free flag of the header at off.
func PutFree(b []byte, off int, free bool) {
	if free {
		b[off+HeaderFlagOffset] = FlagFree
		return
	}
	b[off+HeaderFlagOffset] = FlagUsed
}

// PayloadOffset converts a header offset to the offset of its payload.
func PayloadOffset(headerOff int) int { return headerOff + HeaderSize }

// HeaderOffset converts a payload offset back to its header offset.
func HeaderOffset(payloadOff int) int { return payloadOff - HeaderSize }
