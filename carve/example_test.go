package carve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

func ExampleNames() {
	fmt.Println(carve.Names())
	// Output: [aldous_broder binary_tree cross_stitch hunt_and_kill kruskal prim recursive_backtracker sidewinder wilson]
}

func ExampleLookup() {
	g, _ := grid.New(grid.Square, 4, 4)
	algo, err := carve.Lookup("Recursive Backtracker")
	if err != nil {
		fmt.Println(err)
		return
	}
	res := algo.Carve(g, rng.New(1), carve.Options{})
	fmt.Println(res.Algorithm, res.Links, g.IsPerfect())
	// Output: recursive_backtracker 15 true
}

func benchmarkAlgorithm(b *testing.B, a carve.Algorithm) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := grid.New(grid.Square, 32, 32)
		a.Carve(g, rng.New(int64(i+1)), carve.Options{})
	}
}

func BenchmarkBinaryTree(b *testing.B)           { benchmarkAlgorithm(b, carve.BinaryTree{}) }
func BenchmarkSidewinder(b *testing.B)           { benchmarkAlgorithm(b, carve.Sidewinder{}) }
func BenchmarkWilson(b *testing.B)               { benchmarkAlgorithm(b, carve.Wilson{}) }
func BenchmarkRecursiveBacktracker(b *testing.B) { benchmarkAlgorithm(b, carve.RecursiveBacktracker{}) }
func BenchmarkKruskal(b *testing.B)              { benchmarkAlgorithm(b, carve.Kruskal{}) }
func BenchmarkPrim(b *testing.B)                 { benchmarkAlgorithm(b, carve.Prim{}) }
