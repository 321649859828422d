package pairheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/steinercore/pairheap"
)

// BenchmarkInsertDeleteMin measures a fill-then-drain cycle of N keys.
func BenchmarkInsertDeleteMin(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	keys := make([]float64, N)
	for i := range keys {
		keys[i] = r.Float64()
	}
	h := pairheap.New(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		for j, k := range keys {
			h.Insert(j, k)
		}
		for !h.Empty() {
			h.DeleteMin()
		}
	}
}
