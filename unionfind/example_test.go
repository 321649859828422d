package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/steinercore/unionfind"
)

func ExampleUnionFind() {
	uf := unionfind.New(6)
	uf.Union(0, 1, true)
	uf.Union(1, 2, true)
	uf.Union(4, 5, true)

	fmt.Println(uf.Count(), uf.Connected(0, 2), uf.Connected(2, 4))
	// Output: 3 true false
}
