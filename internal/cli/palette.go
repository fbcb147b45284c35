package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/palette"
)

func newPaletteCmd(opts *options) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the materials of the active palette",
		Long: `List the materials of the active palette in matching order.

Earlier materials win when two are equally close to a pixel. With --export the
built-in palette is printed as YAML, ready to be edited and passed back with
--palette.

Examples:
  # Show the built-in palette
  blockart palette

  # Start a custom palette from the built-in one
  blockart palette --export > wool.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if export {
				_, err := cmd.OutOrStdout().Write(palette.DefaultYAML())
				return err
			}

			p, err := opts.palette()
			if err != nil {
				return fmt.Errorf("failed to load palette: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatPalette(p, isTerminal(os.Stdout)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "print the built-in palette as YAML")
	return cmd
}

// formatPalette renders one line per material. The colour column carries a
// swatch when swatches is true.
func formatPalette(p *palette.Palette, swatches bool) string {
	table := NewTable([]string{"#", "Material", "Colour"})
	table.AlignRight(0)

	for i, e := range p.All() {
		c := e.Colour.Hex()
		if swatches {
			c = colour.FormatWithSwatch(e.Colour, swatchWidth)
		}
		table.AddRow(strconv.Itoa(i+1), e.ID, c)
	}

	return fmt.Sprintf("Palette %q, %d materials\n\n", p.Name(), p.Len()) + table.Render()
}
