package export_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmaze/export"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, mutate func(*maze.Config)) *maze.Result {
	t.Helper()
	cfg := maze.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	res, err := maze.Generate(cfg, nil)
	require.NoError(t, err)
	return res
}

func TestYAML_RoundTripRegenerates(t *testing.T) {
	res := generate(t, func(c *maze.Config) {
		c.Topology, c.Rows, c.Columns = grid.Hex, 5, 6
		c.Algorithm, c.Seed, c.Braid = "wilson", 42, 0.25
	})

	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "topology: hex")
	assert.Contains(t, out, "algorithm: wilson")

	doc, err := export.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, res.Config, doc.Config)
	assert.Equal(t, res.Stats, doc.Stats)
	assert.Len(t, doc.Cells, res.Stats.Cells)
	assert.Len(t, doc.Walls, len(res.Blueprint.Walls))

	again, err := maze.Generate(doc.Config, nil)
	require.NoError(t, err)
	assert.Equal(t, doc.Solution, again.Solution)
	assert.Equal(t, doc.Diameter, again.Diameter)
}

func TestYAML_Errors(t *testing.T) {
	assert.ErrorIs(t, export.WriteYAML(&bytes.Buffer{}, nil), export.ErrNilResult)
	_, err := export.ReadYAML(strings.NewReader("config: [unterminated"))
	assert.Error(t, err)
}

func TestASCII_SingleCell(t *testing.T) {
	res := generate(t, func(c *maze.Config) { c.Rows, c.Columns = 1, 1 })
	out, err := export.ASCII(res)
	require.NoError(t, err)
	assert.Equal(t, "+---+\n| S |\n+---+\n", out)
}

func TestASCII_Corridor(t *testing.T) {
	res := generate(t, func(c *maze.Config) { c.Rows, c.Columns = 1, 2 })
	out, err := export.ASCII(res)
	require.NoError(t, err)
	assert.Equal(t, "+---+---+\n| F   S |\n+---+---+\n", out)
}

func TestASCII_MaskedAndLevels(t *testing.T) {
	res := generate(t, func(c *maze.Config) {
		c.Rows, c.Columns, c.Levels = 3, 3, 2
		c.Masks = [][4]int{{1, 1, 1, 1}}
	})
	out, err := export.ASCII(res)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "###"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2*7+1) // two 7-line levels and a separator
	for _, l := range lines {
		if l != "" {
			assert.Len(t, l, 13)
		}
	}
}

func TestASCII_Unsupported(t *testing.T) {
	res := generate(t, func(c *maze.Config) { c.Topology = grid.Hex })
	_, err := export.ASCII(res)
	assert.ErrorIs(t, err, export.ErrUnsupported)
	_, err = export.ASCII(nil)
	assert.ErrorIs(t, err, export.ErrNilResult)
}

func TestRender_ShadesByDistance(t *testing.T) {
	res := generate(t, func(c *maze.Config) { c.Rows, c.Columns = 4, 4 })
	img, err := export.Render(res, export.WithScale(10), export.WithMarkers(false))
	require.NoError(t, err)
	assert.Equal(t, 65, img.Bounds().Dx())
	assert.Equal(t, 65, img.Bounds().Dy())

	// 12 px margin, 10 px per unit, y flipped.
	at := func(cell int) color.RGBA {
		p := res.Grid.Position(cell)
		return img.RGBAAt(int(12+p.X*10), int(12+(4-p.Y)*10))
	}
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, at(res.Diameter.From))
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, at(res.Diameter.To))
}

func TestRender_Options(t *testing.T) {
	res := generate(t, nil)
	_, err := export.Render(res, export.WithScale(0))
	assert.ErrorIs(t, err, export.ErrOptionViolation)
	_, err = export.Render(res, export.WithWallWidth(0))
	assert.ErrorIs(t, err, export.ErrOptionViolation)
	_, err = export.Render(nil)
	assert.ErrorIs(t, err, export.ErrNilResult)
}

func TestWritePNG_AllTopologies(t *testing.T) {
	for _, top := range []grid.Topology{grid.Square, grid.Triangle, grid.Hex, grid.Polar, grid.Weave} {
		t.Run(top.String(), func(t *testing.T) {
			res := generate(t, func(c *maze.Config) { c.Topology, c.Rows, c.Columns = top, 5, 5 })
			var buf bytes.Buffer
			require.NoError(t, export.WritePNG(&buf, res, export.WithSolution(true)))
			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.False(t, img.Bounds().Empty())
		})
	}
}
