// SPDX-License-Identifier: MIT
// Package: lvmaze/export
//
// png.go — raster preview of a maze blueprint.
//
// Contract:
//   • Y grows upward in grid space and downward in the image; Render flips.
//   • Levels of a multi-level grid are laid out left to right, one cell
//     apart.
//   • Markers are composited last, so they sit above walls and shading.

package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/yalue/image_utils"
)

// ErrOptionViolation reports an invalid render option.
var ErrOptionViolation = errors.New("export: invalid render option")

var (
	wallColor     = color.RGBA{20, 20, 20, 255}
	pathColor     = color.RGBA{220, 40, 40, 255}
	startColor    = color.RGBA{40, 180, 70, 255}
	finishColor   = color.RGBA{100, 120, 255, 255}
	backdropColor = color.RGBA{255, 255, 255, 255}
)

// RenderOptions tune Render. Build them with RenderOption constructors.
type RenderOptions struct {
	Scale     float64 // pixels per grid unit
	Margin    int     // pixels around the drawing
	WallWidth int     // pixels
	Shade     bool    // fill cells by normalized distance
	Solution  bool    // draw the diameter path
	Markers   bool    // start and finish arrows
	err       error
}

// RenderOption mutates RenderOptions.
type RenderOption func(*RenderOptions)

// DefaultRenderOptions draws walls, shading and markers at 24 px per unit.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Scale: 24, Margin: 12, WallWidth: 2, Shade: true, Markers: true}
}

// WithScale sets pixels per grid unit; it must be positive.
func WithScale(px float64) RenderOption {
	return func(o *RenderOptions) {
		if !(px > 0) {
			o.err = fmt.Errorf("%w: scale %v", ErrOptionViolation, px)
			return
		}
		o.Scale = px
	}
}

// WithWallWidth sets the wall stroke in pixels; it must be at least 1.
func WithWallWidth(px int) RenderOption {
	return func(o *RenderOptions) {
		if px < 1 {
			o.err = fmt.Errorf("%w: wall width %d", ErrOptionViolation, px)
			return
		}
		o.WallWidth = px
	}
}

// WithShading toggles distance shading.
func WithShading(on bool) RenderOption { return func(o *RenderOptions) { o.Shade = on } }

// WithSolution toggles the solution path.
func WithSolution(on bool) RenderOption { return func(o *RenderOptions) { o.Solution = on } }

// WithMarkers toggles the start and finish arrows.
func WithMarkers(on bool) RenderOption { return func(o *RenderOptions) { o.Markers = on } }

// canvas maps grid space onto pixels.
type canvas struct {
	img        *image.RGBA
	scale      float64
	margin     float64
	minX, maxY float64
	levelShift float64
	cellSize   float64
}

func (c *canvas) pixel(p grid.Point) (int, int) {
	x := (p.X-c.minX)*c.scale + c.margin
	if c.cellSize > 0 {
		x += math.Round(p.Z/c.cellSize) * c.levelShift * c.scale
	}
	y := (c.maxY-p.Y)*c.scale + c.margin
	return int(math.Round(x)), int(math.Round(y))
}

// Render rasterizes res. Cells are shaded from pale (near the start) to
// deep green (the far end of the diameter).
func Render(res *maze.Result, opts ...RenderOption) (*image.RGBA, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	o := DefaultRenderOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	bp := res.Blueprint
	cv := newCanvas(res.Grid, bp, o)
	draw.Draw(cv.img, cv.img.Bounds(), &image.Uniform{backdropColor}, image.Point{}, draw.Src)

	if o.Shade && res.Distances != nil {
		for _, poly := range bp.Cells {
			n, ok := res.Distances.Normalized(poly.Cell)
			if !ok {
				continue
			}
			cv.fillPolygon(poly.Points, shade(n))
		}
	}
	for _, w := range bp.Walls {
		x0, y0 := cv.pixel(w.A)
		x1, y1 := cv.pixel(w.B)
		cv.line(x0, y0, x1, y1, o.WallWidth, wallColor)
	}
	if o.Solution {
		for k := 1; k < len(res.Solution); k++ {
			x0, y0 := cv.pixel(res.Grid.Position(res.Solution[k-1]))
			x1, y1 := cv.pixel(res.Grid.Position(res.Solution[k]))
			cv.line(x0, y0, x1, y1, max(1, o.WallWidth), pathColor)
		}
	}
	if !o.Markers || len(res.Solution) == 0 {
		return cv.img, nil
	}
	return cv.decorate(res, o)
}

// WritePNG renders res and encodes it to w.
func WritePNG(w io.Writer, res *maze.Result, opts ...RenderOption) error {
	img, err := Render(res, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

func newCanvas(g *grid.Grid, bp grid.Blueprint, o RenderOptions) *canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p grid.Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, w := range bp.Walls {
		grow(w.A)
		grow(w.B)
	}
	for _, poly := range bp.Cells {
		for _, p := range poly.Points {
			grow(p)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	levels := float64(max(1, g.Levels()))
	span := maxX - minX
	cv := &canvas{
		scale:      o.Scale,
		margin:     float64(o.Margin),
		minX:       minX,
		maxY:       maxY,
		cellSize:   g.CellSize(),
		levelShift: span + g.CellSize(),
	}
	width := (span*levels+g.CellSize()*(levels-1))*o.Scale + 2*cv.margin
	height := (maxY-minY)*o.Scale + 2*cv.margin
	cv.img = image.NewRGBA(image.Rect(0, 0, int(math.Ceil(width))+1, int(math.Ceil(height))+1))
	return cv
}

// shade maps a normalized distance to a green ramp.
func shade(n float64) color.RGBA {
	intensity := 1 - n
	dark := uint8(math.Round(255 * intensity))
	bright := uint8(math.Round(128 + 127*intensity))
	return color.RGBA{dark, bright, dark, 255}
}

// line draws a Bresenham segment with a square brush of the given width.
func (c *canvas) line(x0, y0, x1, y1, width int, col color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	lo, hi := -(width-1)/2, width/2
	for {
		for ox := lo; ox <= hi; ox++ {
			for oy := lo; oy <= hi; oy++ {
				c.img.SetRGBA(x0+ox, y0+oy, col)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fillPolygon paints every pixel whose centre lies inside pts (even-odd rule).
func (c *canvas) fillPolygon(pts []grid.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	bounds := image.Rectangle{Min: image.Pt(math.MaxInt32, math.MaxInt32), Max: image.Pt(math.MinInt32, math.MinInt32)}
	for k, p := range pts {
		x, y := c.pixel(p)
		xs[k], ys[k] = float64(x), float64(y)
		bounds.Min.X, bounds.Min.Y = min(bounds.Min.X, x), min(bounds.Min.Y, y)
		bounds.Max.X, bounds.Max.Y = max(bounds.Max.X, x), max(bounds.Max.Y, y)
	}
	bounds = bounds.Intersect(c.img.Bounds())
	for py := bounds.Min.Y; py <= bounds.Max.Y; py++ {
		for px := bounds.Min.X; px <= bounds.Max.X; px++ {
			if inside(xs, ys, float64(px)+0.5, float64(py)+0.5) {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

func inside(xs, ys []float64, x, y float64) bool {
	in := false
	for i, j := 0, len(xs)-1; i < len(xs); j, i = i, i+1 {
		if (ys[i] > y) != (ys[j] > y) && x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			in = !in
		}
	}
	return in
}

// decorate composites start and finish arrows over the rendered maze.
func (c *canvas) decorate(res *maze.Result, o RenderOptions) (*image.RGBA, error) {
	size := max(6, int(0.6*o.Scale*c.cellSize))
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(c.img, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("export: base image: %w", err)
	}
	marks := []struct {
		cell int
		col  color.RGBA
	}{
		{res.Diameter.From, startColor},
		{res.Diameter.To, finishColor},
	}
	for _, m := range marks {
		arrow := image_utils.ResizeImage(image_utils.DownArrow(m.col), size, size)
		x, y := c.pixel(res.Grid.Position(m.cell))
		at := image.Pt(x-size/2, y-size/2)
		if err := composite.AddImage(arrow, at); err != nil {
			return nil, fmt.Errorf("export: marker at cell %d: %w", m.cell, err)
		}
	}
	return image_utils.ToRGBA(composite), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
