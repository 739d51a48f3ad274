package alloc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/internal/format"
)

// TestFree_ThreeWayCoalescing frees three adjacent blocks in every order and
// checks they always end up as a single free block in front of the barrier.
func TestFree_ThreeWayCoalescing(t *testing.T) {
	orders := [][3]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}

	for _, order := range orders {
		t.Run(fmt.Sprintf("%d%d%d", order[0], order[1], order[2]), func(t *testing.T) {
			al := newTestAllocator(t, 1000)

			var ptrs [3]arena.Ptr
			for i := range ptrs {
				p, err := al.AllocFirstFit(16)
				require.NoError(t, err)
				ptrs[i] = p
			}
			barrier, err := al.AllocFirstFit(16)
			require.NoError(t, err)

			for _, i := range order {
				require.NoError(t, al.Free(ptrs[i]))
				assertInvariants(t, al)
			}

			got := blocks(t, al)
			require.Equal(t, block{off: 0, size: 3*16 + 2*format.HeaderSize, free: true}, got[0])
			require.Equal(t, barrier.Offset()-format.HeaderSize, got[1].off)
			require.False(t, got[1].free)
		})
	}
}

// TestFree_MergesWithTail verifies a block before the trailing free region merges into it.
func TestFree_MergesWithTail(t *testing.T) {
	al := newTestAllocator(t, 1000)

	a, err := al.AllocFirstFit(64)
	require.NoError(t, err)
	b, err := al.AllocFirstFit(64)
	require.NoError(t, err)

	require.NoError(t, al.Free(b))
	require.Equal(t, []block{
		{off: 0, size: 64, free: false},
		{off: 80, size: 912, free: true},
	}, blocks(t, al))

	require.NoError(t, al.Free(a))
	require.Equal(t, []block{{off: 0, size: 992, free: true}}, blocks(t, al))

	st := al.Stats()
	require.Equal(t, 2, st.CoalesceForward)
	require.Zero(t, st.CoalesceBackward)
}

// TestFree_BackwardOnly verifies a free predecessor absorbs the freed block.
func TestFree_BackwardOnly(t *testing.T) {
	al := newTestAllocator(t, 1000)

	a, err := al.AllocFirstFit(32)
	require.NoError(t, err)
	b, err := al.AllocFirstFit(32)
	require.NoError(t, err)
	_, err = al.AllocFirstFit(32)
	require.NoError(t, err)

	require.NoError(t, al.Free(a))
	require.NoError(t, al.Free(b))

	got := blocks(t, al)
	require.Equal(t, block{off: 0, size: 32 + format.HeaderSize + 32, free: true}, got[0])
	require.Equal(t, 1, al.Stats().CoalesceBackward)
	assertInvariants(t, al)
}

// TestFree_RejectsInvalidPointers verifies nil, foreign and interior pointers
// are reported without touching the arena.
func TestFree_RejectsInvalidPointers(t *testing.T) {
	al := newTestAllocator(t, 1000)

	p, err := al.AllocFirstFit(64)
	require.NoError(t, err)
	before := snapshotBytes(al)

	tests := []struct {
		name string
		ptr  arena.Ptr
	}{
		{"nil", arena.Nil},
		{"negative", arena.Ptr(-16)},
		{"misaligned", p + 1},
		{"interior", p + 32},
		{"past end", arena.Ptr(4096)},
		{"at end", arena.Ptr(al.Arena().Size())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := al.Free(tt.ptr)
			require.ErrorIs(t, err, ErrInvalidPointer)
			require.Equal(t, before, al.Arena().Bytes())
		})
	}

	require.Equal(t, len(tests), al.Stats().FreeRejected)
}

// TestFree_DoubleFree verifies a second free of the same pointer is rejected.
func TestFree_DoubleFree(t *testing.T) {
	al := newTestAllocator(t, 1000)

	a, err := al.AllocFirstFit(64)
	require.NoError(t, err)
	_, err = al.AllocFirstFit(64)
	require.NoError(t, err)

	require.NoError(t, al.Free(a))
	before := snapshotBytes(al)

	err = al.Free(a)
	require.ErrorIs(t, err, ErrDoubleFree)
	require.Equal(t, before, al.Arena().Bytes())
}

// TestFree_AbsorbedPointer verifies a pointer swallowed by coalescing is no longer a block.
func TestFree_AbsorbedPointer(t *testing.T) {
	al := newTestAllocator(t, 1000)

	a, err := al.AllocFirstFit(64)
	require.NoError(t, err)
	b, err := al.AllocFirstFit(64)
	require.NoError(t, err)

	require.NoError(t, al.Free(a))
	require.NoError(t, al.Free(b))

	require.ErrorIs(t, al.Free(b), ErrInvalidPointer)
	require.ErrorIs(t, al.Free(a), ErrDoubleFree)
}

// TestFree_Uninitialized verifies free on a closed arena.
func TestFree_Uninitialized(t *testing.T) {
	al := newTestAllocator(t, 128)
	p, err := al.AllocFirstFit(16)
	require.NoError(t, err)
	require.NoError(t, al.Arena().Close())

	require.ErrorIs(t, al.Free(p), ErrNotInitialized)
}
