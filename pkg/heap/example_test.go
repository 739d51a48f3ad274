package heap_test

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/pkg/heap"
)

// Example shows allocation, the resulting layout and coalescing on free.
func Example() {
	h := heap.New(heap.DefaultOptions())
	if err := h.Init(1000); err != nil {
		fmt.Printf("Init failed: %v\n", err)
		return
	}
	defer h.Close()

	p, err := h.AllocFirstFit(50)
	if err != nil {
		fmt.Printf("Alloc failed: %v\n", err)
		return
	}
	fmt.Println(h.Size(), p)

	for _, b := range h.Snapshot().Blocks {
		fmt.Printf("offset=%d size=%d free=%t\n", b.Offset, b.Size, b.Free)
	}

	if err := h.Free(p); err != nil {
		fmt.Printf("Free failed: %v\n", err)
	}
	fmt.Println(h.Snapshot().Count(), h.CheckIntegrity())

	// Output:
	// 1008 0x10
	// offset=0 size=64 free=false
	// offset=80 size=912 free=true
	// 1 true
}

// ExampleHeap_Overview prints the compact arena map.
func ExampleHeap_Overview() {
	opts := heap.DefaultOptions()
	opts.Printer.Color = false
	opts.Printer.Width = 20

	h := heap.New(opts)
	if err := h.Init(1000); err != nil {
		fmt.Printf("Init failed: %v\n", err)
		return
	}
	defer h.Close()

	_, _ = h.AllocFirstFit(100)
	_, _ = h.AllocFirstFit(200)

	if err := h.Overview(os.Stdout); err != nil {
		fmt.Printf("Overview failed: %v\n", err)
	}

	// Output:
	// Overview:
	// [██████░░░░░░░░░░░░]
	// 3 blocks (1 free), used 320 B, free 640 B, largest free 640 B, arena 1,008 bytes
}

// ExampleHeap_ResizeFirstFit shows a block growing into the free space after it.
func ExampleHeap_ResizeFirstFit() {
	h := heap.New(heap.DefaultOptions())
	if err := h.Init(1000); err != nil {
		fmt.Printf("Init failed: %v\n", err)
		return
	}
	defer h.Close()

	p, _ := h.AllocFirstFit(64)
	payload, _ := h.Payload(p)
	copy(payload, "arena")

	np, err := h.ResizeFirstFit(p, 112)
	if err != nil {
		fmt.Printf("Resize failed: %v\n", err)
		return
	}
	grown, _ := h.Payload(np)
	fmt.Println(np == p, len(grown), string(grown[:5]))

	// Output:
	// true 112 arena
}
