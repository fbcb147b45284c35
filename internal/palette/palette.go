// Package palette provides the block palette: an ordered, immutable mapping
// from material identifiers to colours, and nearest colour matching against it.
package palette

import (
	"errors"
	"fmt"
	"iter"

	"github.com/jmylchreest/blockart/internal/colour"
)

var (
	// ErrEmptyPalette is returned when matching against a palette with no entries.
	ErrEmptyPalette = errors.New("palette is empty")

	// ErrDuplicateColour is returned when two entries share a colour.
	ErrDuplicateColour = errors.New("duplicate palette colour")

	// ErrDuplicateID is returned when two entries share an identifier.
	ErrDuplicateID = errors.New("duplicate material identifier")
)

// Entry is a single material and the colour it renders as.
type Entry struct {
	ID     string
	Colour colour.RGB
}

// Palette is an ordered set of entries. Order matters only for tie-breaking:
// when two entries are equally close to a target, the earlier one wins.
type Palette struct {
	name     string
	entries  []Entry
	byColour map[colour.RGB]string
}

// New creates a palette from entries in the given order.
// Colours and identifiers must be unique, otherwise the colour to material
// lookup would be ambiguous.
func New(name string, entries []Entry) (*Palette, error) {
	p := &Palette{
		name:     name,
		entries:  make([]Entry, 0, len(entries)),
		byColour: make(map[colour.RGB]string, len(entries)),
	}

	ids := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: %w: empty identifier", i, ErrInvalidPalette)
		}
		if j, ok := ids[e.ID]; ok {
			return nil, fmt.Errorf("entry %d: %w: %s (first declared at entry %d)", i, ErrDuplicateID, e.ID, j)
		}
		if other, ok := p.byColour[e.Colour]; ok {
			return nil, fmt.Errorf("entry %d: %w: %s is used by both %s and %s", i, ErrDuplicateColour, e.Colour.Hex(), other, e.ID)
		}
		ids[e.ID] = i
		p.byColour[e.Colour] = e.ID
		p.entries = append(p.entries, e)
	}

	return p, nil
}

// Name returns the palette name.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the palette entries in declaration order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// All returns an iterator over all entries in declaration order.
func (p *Palette) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range p.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Material returns the identifier for an exact palette colour.
func (p *Palette) Material(c colour.RGB) (string, bool) {
	id, ok := p.byColour[c]
	return id, ok
}

// Closest returns the identifier of the entry nearest to target under metric.
func (p *Palette) Closest(target colour.RGB, metric colour.Metric) (string, error) {
	i, err := p.closestIndex(target, metric)
	if err != nil {
		return "", err
	}
	return p.entries[i].ID, nil
}

// ClosestColour returns the colour of the entry nearest to target under metric.
func (p *Palette) ClosestColour(target colour.RGB, metric colour.Metric) (colour.RGB, error) {
	i, err := p.closestIndex(target, metric)
	if err != nil {
		return colour.RGB{}, err
	}
	return p.entries[i].Colour, nil
}

// closestIndex scans every entry once. Only a strictly smaller distance
// replaces the current best, so ties go to the earliest entry.
func (p *Palette) closestIndex(target colour.RGB, metric colour.Metric) (int, error) {
	if len(p.entries) == 0 {
		return -1, ErrEmptyPalette
	}

	nearest := 0
	minDist := metric.Distance(p.entries[0].Colour, target)
	for i := 1; i < len(p.entries); i++ {
		if d := metric.Distance(p.entries[i].Colour, target); d < minDist {
			minDist = d
			nearest = i
		}
	}

	return nearest, nil
}
