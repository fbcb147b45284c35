package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Area is the footprint covered by the background fill.
type Area struct {
	Width  int
	Height int
}

// DefaultArea is one Minecraft map: 128x128 blocks.
var DefaultArea = Area{Width: 128, Height: 128}

// ParseArea parses "WxH", e.g. "128x128".
func ParseArea(s string) (Area, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Area{}, fmt.Errorf("invalid area %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Area{}, fmt.Errorf("invalid area width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Area{}, fmt.Errorf("invalid area height %q: %w", h, err)
	}
	a := Area{Width: width, Height: height}
	if err := a.Validate(); err != nil {
		return Area{}, err
	}
	return a, nil
}

// Validate checks both dimensions are positive.
func (a Area) Validate() error {
	if a.Width < 1 || a.Height < 1 {
		return fmt.Errorf("area must be at least 1x1, got %dx%d", a.Width, a.Height)
	}
	return nil
}

// Fit grows the area so it is at least width x height.
func (a Area) Fit(width, height int) Area {
	return Area{Width: max(a.Width, width), Height: max(a.Height, height)}
}

// String implements pflag.Value.
func (a *Area) String() string {
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// Set implements pflag.Value.
func (a *Area) Set(s string) error {
	parsed, err := ParseArea(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Area) Type() string {
	return "WxH"
}
