package quantize

import (
	"errors"
	"slices"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/grid"
)

// ErrEmptyGrid is returned when asking for the dominant colour of a grid with no cells.
var ErrEmptyGrid = errors.New("grid has no cells")

// Count is a colour and how many cells use it.
type Count struct {
	Colour colour.RGB
	Count  int
}

// Histogram counts every colour in g. Colours are ordered by count, most
// frequent first; equal counts keep the order in which the colours first
// appear in a row-major scan.
func Histogram(g *grid.Grid) []Count {
	counts := make(map[colour.RGB]int)
	var order []colour.RGB

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
		}
	}

	out := make([]Count, len(order))
	for i, c := range order {
		out[i] = Count{Colour: c, Count: counts[c]}
	}
	slices.SortStableFunc(out, func(a, b Count) int {
		return b.Count - a.Count
	})
	return out
}

// Dominant returns the most frequent colour in g. On a tie the colour seen
// first in a row-major scan wins.
func Dominant(g *grid.Grid) (colour.RGB, error) {
	if g.Len() == 0 {
		return colour.RGB{}, ErrEmptyGrid
	}
	return Histogram(g)[0].Colour, nil
}
