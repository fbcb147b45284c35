package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/mapart"
	"github.com/jmylchreest/blockart/internal/palette"
)

const swatchWidth = 4

// printSummary writes the run statistics and the per-material cell counts.
// Swatches are only drawn when the output is a terminal.
func printSummary(w io.Writer, res *mapart.Result, p *palette.Palette, swatches bool) {
	fmt.Fprintf(w, "\nImage: %dx%d, palette %q (%d materials)\n", res.Width, res.Height, p.Name(), p.Len())
	for _, pass := range res.Passes {
		if pass.ImagePath != "" {
			fmt.Fprintf(w, "Pass %-10s %s\n", pass.Metric, pass.ImagePath)
		} else {
			fmt.Fprintf(w, "Pass %s\n", pass.Metric)
		}
	}
	fmt.Fprintf(w, "Background: %s %s\n", res.BackgroundID, res.Background.Hex())
	fmt.Fprintf(w, "Commands: %d (%d fill, %d setblock, %d cells overridden)\n\n",
		res.Stats.Total(), res.Stats.Fills, res.Stats.SetBlocks, res.Stats.Cells)

	table := NewTable([]string{"Material", "Colour", "Cells", "Share"})
	table.AlignRight(2)
	table.AlignRight(3)

	total := res.Width * res.Height
	for _, u := range res.Usage {
		id, _ := p.Material(u.Colour)
		share := 0.0
		if total > 0 {
			share = float64(u.Count) * 100 / float64(total)
		}
		table.AddRow(id, u.Colour.Hex(), strconv.Itoa(u.Count), fmt.Sprintf("%.1f%%", share))
	}

	lines := table.Lines()
	for i, line := range lines {
		if swatches {
			// Header and separator get blank space so the columns stay aligned.
			if i < 2 {
				line = strings.Repeat(" ", swatchWidth+1) + line
			} else {
				line = colour.Swatch(res.Usage[i-2].Colour, swatchWidth) + " " + line
			}
		}
		fmt.Fprintln(w, line)
	}
}
