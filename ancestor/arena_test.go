package ancestor_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinercore/ancestor"
)

func sorted(v []int) []int {
	out := append([]int(nil), v...)
	sort.Ints(out)
	return out
}

// TestInsert_Prepends checks that Insert grows the chain at the front.
func TestInsert_Prepends(t *testing.T) {
	a := ancestor.NewArena(4)
	l := ancestor.Nil
	a.Insert(&l, 1)
	a.Insert(&l, 2)
	a.Insert(&l, 3)
	assert.Equal(t, []int{3, 2, 1}, a.Values(l))
	assert.Equal(t, 3, a.Len(l))
	assert.True(t, a.Contains(l, 2))
	assert.False(t, a.Contains(l, 4))
}

// TestAppendCopy_SkipsDuplicates merges two overlapping chains.
func TestAppendCopy_SkipsDuplicates(t *testing.T) {
	a := ancestor.NewArena(8)
	dst, src := ancestor.Nil, ancestor.Nil
	for _, v := range []int{1, 2, 3} {
		a.Insert(&dst, v)
	}
	for _, v := range []int{3, 4, 5} {
		a.Insert(&src, v)
	}

	a.AppendCopy(&dst, src)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted(a.Values(dst)))
	// src untouched
	assert.Equal(t, []int{5, 4, 3}, a.Values(src))
}

// TestAppendCopy_Idempotent applies the same source twice.
func TestAppendCopy_Idempotent(t *testing.T) {
	a := ancestor.NewArena(8)
	dst, src := ancestor.Nil, ancestor.Nil
	a.Insert(&dst, 7)
	for _, v := range []int{8, 9} {
		a.Insert(&src, v)
	}

	a.AppendCopy(&dst, src)
	once := sorted(a.Values(dst))
	live := a.Live()

	a.AppendCopy(&dst, src)
	assert.Equal(t, once, sorted(a.Values(dst)))
	assert.Equal(t, live, a.Live(), "second application must not allocate")
}

// TestAppendCopy_IntoEmpty copies a whole chain into an empty one.
func TestAppendCopy_IntoEmpty(t *testing.T) {
	a := ancestor.NewArena(4)
	dst, src := ancestor.Nil, ancestor.Nil
	a.Insert(&src, 4)
	a.Insert(&src, 6)
	a.AppendCopy(&dst, src)
	assert.Equal(t, []int{4, 6}, sorted(a.Values(dst)))
}

// TestFree_ReleasesAndResetsHandle checks Free followed by Insert behaves
// as if the chain never existed.
func TestFree_ReleasesAndResetsHandle(t *testing.T) {
	a := ancestor.NewArena(4)
	l := ancestor.Nil
	a.Insert(&l, 1)
	a.Insert(&l, 2)
	require.Equal(t, 2, a.Live())

	a.Free(&l)
	assert.Equal(t, ancestor.Nil, l)
	assert.Zero(t, a.Live())

	a.Insert(&l, 9)
	assert.Equal(t, []int{9}, a.Values(l))
}

// TestShare_IndependentFree frees two handles into shared structure in
// either order without releasing a node twice.
func TestShare_IndependentFree(t *testing.T) {
	a := ancestor.NewArena(8)
	base := ancestor.Nil
	a.Insert(&base, 1)
	a.Insert(&base, 2)

	// x and y extend the same suffix [2 1]
	x := a.Share(base)
	y := base
	a.Insert(&x, 10)
	a.Insert(&y, 20)
	assert.Equal(t, []int{10, 2, 1}, a.Values(x))
	assert.Equal(t, []int{20, 2, 1}, a.Values(y))
	require.Equal(t, 4, a.Live())

	a.Free(&x)
	assert.Equal(t, 3, a.Live())
	assert.Equal(t, []int{20, 2, 1}, a.Values(y))

	a.Free(&y)
	assert.Zero(t, a.Live())
}

// TestAppendCopy_SharedSuffixUntouched verifies appending to one chain does
// not leak into another chain sharing its tail.
func TestAppendCopy_SharedSuffixUntouched(t *testing.T) {
	a := ancestor.NewArena(8)
	tail := ancestor.Nil
	a.Insert(&tail, 1)
	other := a.Share(tail)

	src := ancestor.Nil
	a.Insert(&src, 5)
	a.AppendCopy(&tail, src)

	assert.Equal(t, []int{1, 5}, sorted(a.Values(tail)))
	assert.Equal(t, []int{1}, a.Values(other))
}

// TestReset_DropsEverything tears the arena down.
func TestReset_DropsEverything(t *testing.T) {
	a := ancestor.NewArena(2)
	l := ancestor.Nil
	a.Insert(&l, 3)
	a.Reset()
	assert.Zero(t, a.Live())
}
