// Package grid provides a fixed-size, bounds-checked 2-D array of colours.
package grid

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmylchreest/blockart/internal/colour"
)

// Grid is a width x height array of colours stored row-major.
// Dimensions are fixed at creation.
type Grid struct {
	width  int
	height int
	cells  []colour.RGB
}

// New creates a grid filled with black. It panics on negative dimensions.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]colour.RGB, width*height),
	}
}

// FromImage copies an image into a new grid. The image's bounds are
// translated so its top-left pixel lands on (0, 0).
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = colour.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// FromRows builds a grid from rows of equal length.
func FromRows(rows [][]colour.RGB) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	g := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), width)
		}
		copy(g.cells[y*width:], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether (x, y) is inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the colour at (x, y). It panics if (x, y) is out of bounds.
func (g *Grid) At(x, y int) colour.RGB {
	return g.cells[g.offset(x, y)]
}

// Set sets the colour at (x, y). It panics if (x, y) is out of bounds.
func (g *Grid) Set(x, y int, c colour.RGB) {
	g.cells[g.offset(x, y)] = c
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []colour.RGB {
	start := g.offset(0, y)
	row := make([]colour.RGB, g.width)
	copy(row, g.cells[start:start+g.width])
	return row
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Image returns the grid as an opaque RGBA image.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

func (g *Grid) offset(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("grid: (%d, %d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}
