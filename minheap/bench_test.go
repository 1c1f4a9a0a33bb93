package minheap_test

import (
	"testing"

	"github.com/velomir/shortpath/minheap"
)

const benchHeapSize = 1 << 14

// BenchmarkInsertExtract measures a full fill-then-drain cycle, the pattern
// a label-setting search puts the heap through once per call.
func BenchmarkInsertExtract(b *testing.B) {
	// Pseudo-random but fixed priorities; a multiplicative hash scrambles
	// the insertion order enough to exercise both sift directions.
	values := make([]float64, benchHeapSize)
	for i := range values {
		values[i] = float64((i * 2654435761) % benchHeapSize)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := minheap.New(benchHeapSize)
		for k, v := range values {
			_ = h.Insert(minheap.NewEntry(k, v))
		}
		for h.Size() > 0 {
			_, _ = h.ExtractMin()
		}
	}
}

// BenchmarkDecreaseKey measures repeated in-place priority drops on a large
// resident heap — the relaxation hot path.
func BenchmarkDecreaseKey(b *testing.B) {
	entries := make([]*minheap.Entry, benchHeapSize)
	for i := range entries {
		entries[i] = minheap.NewEntry(i, float64(benchHeapSize+i))
	}
	h, _ := minheap.NewFromEntries(entries)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := entries[i%benchHeapSize]
		_ = h.DecreaseKey(e, e.Value()-1)
	}
}
