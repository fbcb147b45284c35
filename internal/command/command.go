// Package command turns a quantized grid into /fill and /setblock commands.
package command

import "fmt"

// Kind identifies the type of command.
type Kind int

const (
	// FillRange fills an inclusive rectangle with one material.
	FillRange Kind = iota
	// SetCell places a single block.
	SetCell
)

// String returns the command name without the leading slash.
func (k Kind) String() string {
	switch k {
	case FillRange:
		return "fill"
	case SetCell:
		return "setblock"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one block placement instruction. Coordinates are offsets from
// the player: X is the image column, Y the image row. All blocks go one
// level below the player.
type Command struct {
	Kind     Kind
	X0, Y0   int
	X1, Y1   int
	Material string

	// Base marks the background fill that covers the whole working area.
	Base bool
}

// Fill returns a FillRange command covering (x0, y0) to (x1, y1) inclusive.
func Fill(x0, y0, x1, y1 int, material string) Command {
	return Command{Kind: FillRange, X0: x0, Y0: y0, X1: x1, Y1: y1, Material: material}
}

// Set returns a SetCell command for (x, y).
func Set(x, y int, material string) Command {
	return Command{Kind: SetCell, X0: x, Y0: y, X1: x, Y1: y, Material: material}
}

// Cells returns the number of grid cells the command covers.
func (c Command) Cells() int {
	return (c.X1 - c.X0 + 1) * (c.Y1 - c.Y0 + 1)
}

// Covers reports whether (x, y) is inside the command's rectangle.
func (c Command) Covers(x, y int) bool {
	return x >= c.X0 && x <= c.X1 && y >= c.Y0 && y <= c.Y1
}

// String renders the command in game syntax.
func (c Command) String() string {
	switch {
	case c.Base:
		return fmt.Sprintf("/fill ~ ~-1 ~ ~%d ~-1 ~%d %s", c.X1, c.Y1, c.Material)
	case c.Kind == SetCell:
		return fmt.Sprintf("/setblock ~%d ~-1 ~%d %s", c.X0, c.Y0, c.Material)
	default:
		return fmt.Sprintf("/fill ~%d ~-1 ~%d ~%d ~-1 ~%d %s", c.X0, c.Y0, c.X1, c.Y1, c.Material)
	}
}
