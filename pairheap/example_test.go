package pairheap_test

import (
	"fmt"

	"github.com/katalvlaran/steinercore/pairheap"
)

func ExampleHeap() {
	h := pairheap.New(4)
	h.Insert(0, 3.5)
	h.Insert(1, 1.0)
	h.Insert(2, 2.25)

	for !h.Empty() {
		el, key, _ := h.DeleteMin()
		fmt.Println(el, key)
	}
	// Output:
	// 1 1
	// 2 2.25
	// 0 3.5
}
