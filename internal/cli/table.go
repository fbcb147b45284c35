package cli

import (
	"strings"
)

// Table formats rows of text into aligned columns.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns a column, for numbers.
func (t *Table) AlignRight(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row to the table. Short rows are padded and long rows truncated
// to the header count.
func (t *Table) AddRow(row ...string) {
	fixed := make([]string, len(t.headers))
	copy(fixed, row)
	t.rows = append(t.rows, fixed)
}

// Lines renders the table one line per entry: header, separator, then one line per row.
func (t *Table) Lines() []string {
	if len(t.headers) == 0 {
		return nil
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	sep := strings.Repeat(" ", t.padding)
	format := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if t.rightAlign[i] {
				parts[i] = padLeft(cell, widths[i])
			} else {
				parts[i] = padRight(cell, widths[i])
			}
		}
		return strings.TrimRight(strings.Join(parts, sep), " ")
	}

	lines := make([]string, 0, len(t.rows)+2)
	lines = append(lines, format(t.headers))

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(dashes, sep))

	for _, row := range t.rows {
		lines = append(lines, format(row))
	}
	return lines
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
