// Package minheap_test provides runnable examples for the indexed min-heap.
package minheap_test

import (
	"fmt"

	"github.com/velomir/shortpath/minheap"
)

// ExampleHeap_ExtractMin builds a heap from four entries and drains the
// three smallest, showing the value-ordered extraction.
func ExampleHeap_ExtractMin() {
	entries := []*minheap.Entry{
		minheap.NewEntry(0, 5),
		minheap.NewEntry(1, 3),
		minheap.NewEntry(2, 8),
		minheap.NewEntry(3, 1),
	}

	h, err := minheap.NewFromEntries(entries)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < 3; i++ {
		e, err := h.ExtractMin()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("key=%d value=%g\n", e.Key, e.Value())
	}
	// Output:
	// key=3 value=1
	// key=1 value=3
	// key=0 value=5
}

// ExampleHeap_DecreaseKey lowers a buried entry's priority in place; the
// back-pointer lets the heap find it without scanning.
func ExampleHeap_DecreaseKey() {
	a := minheap.NewEntry(0, 1)
	b := minheap.NewEntry(1, 50)

	h, err := minheap.NewFromEntries([]*minheap.Entry{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// b is behind a; lower it below a and it becomes the minimum.
	if err = h.DecreaseKey(b, 0.5); err != nil {
		fmt.Println("error:", err)
		return
	}

	min, err := h.PeekMin()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("min key=%d value=%g\n", min.Key, min.Value())
	// Output: min key=1 value=0.5
}
