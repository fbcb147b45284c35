package command

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/grid"
)

// ErrMissingMaterial is returned when a grid colour has no palette identifier.
// A quantized grid never contains such a colour, so this means the grid and
// the palette do not belong together.
var ErrMissingMaterial = errors.New("no material for colour")

// Materials resolves a palette colour back to its material identifier.
// *palette.Palette implements it.
type Materials interface {
	Material(c colour.RGB) (string, bool)
}

// Emit walks g row by row and returns the commands that rebuild it.
//
// The first command fills the working area with the background material.
// After that, each row is scanned left to right: background cells are
// skipped, a horizontal run of two or more equal cells becomes one fill, and
// any other cell becomes a setblock. Runs never span rows, so vertical
// stripes are not merged.
func Emit(g *grid.Grid, background colour.RGB, materials Materials, area Area) ([]Command, error) {
	bgID, ok := materials.Material(background)
	if !ok {
		return nil, fmt.Errorf("%w: background %s", ErrMissingMaterial, background.Hex())
	}

	area = area.Fit(g.Width(), g.Height())
	base := Fill(0, 0, area.Width-1, area.Height-1, bgID)
	base.Base = true
	cmds := []Command{base}

	for y := 0; y < g.Height(); y++ {
		x := 0
		for x < g.Width() {
			col := g.At(x, y)
			if col == background {
				x++
				continue
			}

			id, ok := materials.Material(col)
			if !ok {
				return nil, fmt.Errorf("%w: %s at (%d, %d)", ErrMissingMaterial, col.Hex(), x, y)
			}

			end := x
			for end+1 < g.Width() && g.At(end+1, y) == col {
				end++
			}

			if end > x {
				cmds = append(cmds, Fill(x, y, end, y, id))
			} else {
				cmds = append(cmds, Set(x, y, id))
			}
			x = end + 1
		}
	}

	return cmds, nil
}

// Stats summarises a command list.
type Stats struct {
	Fills     int
	SetBlocks int
	// Cells is the number of cells painted by overrides, not counting the base fill.
	Cells int
}

// Total returns the number of commands, including the base fill.
func (s Stats) Total() int {
	return s.Fills + s.SetBlocks
}

// Summarise counts the commands by kind.
func Summarise(cmds []Command) Stats {
	var s Stats
	for _, c := range cmds {
		switch c.Kind {
		case FillRange:
			s.Fills++
		case SetCell:
			s.SetBlocks++
		}
		if !c.Base {
			s.Cells += c.Cells()
		}
	}
	return s
}
