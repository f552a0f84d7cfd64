package unionfind_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmaze/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForest_UnionAndConnected covers merging, idempotent union and roots.
func TestForest_UnionAndConnected(t *testing.T) {
	f := unionfind.New(0, 1, 2, 3, 4)
	require.Equal(t, 5, f.Count())

	assert.True(t, f.Union(0, 1))
	assert.True(t, f.Union(2, 3))
	assert.False(t, f.Union(1, 0), "second union of the same pair must report false")

	assert.True(t, f.Connected(0, 1))
	assert.False(t, f.Connected(1, 2))

	f.Union(1, 3)
	assert.True(t, f.Connected(0, 2))
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, []int{1, 4}, f.SortedSizes())
}

// TestForest_ExternalKeys shows the forest works on arbitrary comparable keys
// and auto-adds unknown ones on Find.
func TestForest_ExternalKeys(t *testing.T) {
	type cellKey struct{ row, col int }
	f := unionfind.New[cellKey]()
	a, b := cellKey{0, 0}, cellKey{0, 1}

	assert.False(t, f.Has(a))
	assert.Equal(t, a, f.Find(a))
	assert.True(t, f.Has(a))

	f.Union(a, b)
	assert.True(t, f.Connected(b, a))
	assert.Equal(t, 2, f.Len())
}

// TestForest_ComponentsDeterministic checks ordering by first insertion.
func TestForest_ComponentsDeterministic(t *testing.T) {
	f := unionfind.New("a", "b", "c", "d")
	f.Union("d", "b")
	comps := f.Components()
	assert.Equal(t, [][]string{{"a"}, {"b", "d"}, {"c"}}, comps)
}

// TestForest_LongChain exercises path compression on a deep chain.
func TestForest_LongChain(t *testing.T) {
	const n = 5000
	f := unionfind.New[int]()
	for i := 1; i < n; i++ {
		f.Union(i-1, i)
	}
	assert.True(t, f.Connected(0, n-1))
	assert.Equal(t, 1, f.Count())
}

func ExampleForest() {
	f := unionfind.New("x", "y", "z")
	f.Union("x", "z")
	fmt.Println(f.Connected("x", "z"), f.Connected("x", "y"), f.Count())
	// Output: true false 2
}

func BenchmarkForest_Union(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := unionfind.New[int]()
		for k := 1; k < 1024; k++ {
			f.Union(k-1, k)
		}
	}
}
