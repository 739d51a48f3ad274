package alloc

import (
	"testing"

	"github.com/joshuapare/heapkit/arena"
)

// fragmented returns an allocator whose arena alternates used and free
// blocks of varying size, so every search has to walk.
func fragmented(b *testing.B, size int) *Allocator {
	b.Helper()
	a, err := arena.New(size, arena.Options{MaxSize: size})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = a.Close() })
	al := New(a, Options{})

	var holes []arena.Ptr
	for i := 0; ; i++ {
		p, err := al.AllocFirstFit(32 + (i%8)*16)
		if err != nil {
			break
		}
		if i%2 == 0 {
			holes = append(holes, p)
		}
	}
	for _, p := range holes {
		if err := al.Free(p); err != nil {
			b.Fatal(err)
		}
	}
	return al
}

func benchmarkAllocFree(b *testing.B, s Strategy) {
	al := fragmented(b, 1<<20)

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		size := 16 + (i%6)*16 // 16-96 bytes
		p, err := al.Alloc(size, s)
		if err != nil {
			b.Fatal(err)
		}
		if err := al.Free(p); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_AllocFree_FirstFit benchmarks an alloc/free pair on a fragmented arena.
func Benchmark_AllocFree_FirstFit(b *testing.B) { benchmarkAllocFree(b, FirstFit) }

// Benchmark_AllocFree_BestFit benchmarks an alloc/free pair on a fragmented arena.
func Benchmark_AllocFree_BestFit(b *testing.B) { benchmarkAllocFree(b, BestFit) }

// Benchmark_Resize_GrowShrink benchmarks in-place growth and shrink of a single block.
func Benchmark_Resize_GrowShrink(b *testing.B) {
	a, err := arena.New(1<<16, arena.Options{MaxSize: 1 << 16})
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()
	al := New(a, Options{})

	p, err := al.AllocFirstFit(64)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		size := 64
		if i%2 == 0 {
			size = 4096
		}
		if p, err = al.ResizeFirstFit(p, size); err != nil {
			b.Fatal(err)
		}
	}
}
