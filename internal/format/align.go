package format

// Align16 returns n aligned up to the next 16-byte boundary.
// Every payload size and block offset in the arena goes through it.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(50) = 64
func Align16(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// IsAligned16 reports whether n sits on a 16-byte boundary.
func IsAligned16(n int) bool {
	return n&AlignmentMask == 0
}

// IsAligned16U64 is the uint64 variant used for raw header size fields.
func IsAligned16U64(n uint64) bool {
	return n&AlignmentMask == 0
}
