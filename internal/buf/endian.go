// Package buf contains helpers for bounds-checked, endian-safe decoding routines.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}
