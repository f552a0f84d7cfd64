package grid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
)

// ExampleNew builds a masked square grid and lists the surviving cells.
func ExampleNew() {
	g, err := grid.New(grid.Square, 3, 3, grid.WithMask(1, 1, 1, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cells:", g.Size(), "masked:", g.Masked())
	i, ok := g.CellAt(1, 1, 0)
	fmt.Println("centre:", i, ok)
	// Output:
	// cells: 8 masked: [4]
	// centre: -1 false
}

func ExampleGrid_Neighbors() {
	g, _ := grid.New(grid.Polar, 3, 0)
	fmt.Println(g.Cols(0), g.Cols(1), g.Cols(2))
	fmt.Println(g.Neighbors(0))
	// Output:
	// 1 6 12
	// [1 2 3 4 5 6]
}

func BenchmarkNew_Square(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = grid.New(grid.Square, 64, 64)
	}
}

func BenchmarkBlueprint_Hex(b *testing.B) {
	g, _ := grid.New(grid.Hex, 32, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Blueprint()
	}
}
