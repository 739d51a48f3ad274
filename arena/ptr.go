package arena

import "strconv"

// Ptr is an opaque handle to a block payload: the payload's byte offset
// from the arena start. The first payload begins after the first header,
// so the zero value never names a block.
type Ptr int

// Nil is the null pointer.
const Nil Ptr = 0

// IsNil reports whether p is the null pointer.
func (p Ptr) IsNil() bool { return p == Nil }

// Offset returns the payload offset p refers to.
func (p Ptr) Offset() int { return int(p) }

func (p Ptr) String() string {
	if p == Nil {
		return "nil"
	}
	return "0x" + strconv.FormatInt(int64(p), 16)
}
