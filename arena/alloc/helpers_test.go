package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/verify"
	"github.com/joshuapare/heapkit/arena/walker"
	"github.com/joshuapare/heapkit/internal/format"
)

// block is a decoded (offset, size, free) triple used in layout assertions.
type block struct {
	off  int
	size int
	free bool
}

// newTestAllocator creates an arena of size bytes and an allocator over it.
func newTestAllocator(t testing.TB, size int) *Allocator {
	t.Helper()
	a, err := arena.New(size, arena.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return New(a, Options{})
}

// blocks returns the current block layout in walk order.
func blocks(t testing.TB, al *Allocator) []block {
	t.Helper()
	var out []block
	walker.Walk(al.Arena().Bytes(), func(h format.Header) bool {
		out = append(out, block{off: h.Offset, size: int(h.Size), free: h.Free()})
		return true
	})
	return out
}

// headerOf returns the header of the block p names.
func headerOf(t testing.TB, al *Allocator, p arena.Ptr) format.Header {
	t.Helper()
	h, err := al.Arena().Resolve(p)
	require.NoError(t, err)
	return h
}

// snapshotBytes copies the arena so tests can prove an operation left it untouched.
func snapshotBytes(al *Allocator) []byte {
	return append([]byte(nil), al.Arena().Bytes()...)
}

// assertInvariants checks accounting, header validity and full coalescing.
func assertInvariants(t testing.TB, al *Allocator) {
	t.Helper()
	require.NoError(t, verify.AllInvariants(al.Arena().Bytes()))
}

// fill writes a recognizable pattern into the payload of p.
func fill(t testing.TB, al *Allocator, p arena.Ptr, n int, seed byte) {
	t.Helper()
	payload, err := al.Arena().Payload(p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(payload), n)
	for i := range n {
		payload[i] = seed + byte(i)
	}
}

// requirePattern checks the pattern written by fill.
func requirePattern(t testing.TB, al *Allocator, p arena.Ptr, n int, seed byte) {
	t.Helper()
	payload, err := al.Arena().Payload(p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(payload), n)
	for i := range n {
		require.Equal(t, seed+byte(i), payload[i], "byte %d", i)
	}
}
