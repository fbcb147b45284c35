// Package cli provides the command-line interface for blockart.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/command"
	"github.com/jmylchreest/blockart/internal/image"
	"github.com/jmylchreest/blockart/internal/mapart"
	"github.com/jmylchreest/blockart/internal/palette"
	"github.com/jmylchreest/blockart/internal/version"
)

// UsageError is returned when the command is called with the wrong number of arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 1 argument, got %d", e.Got)
}

// options holds the flag values for one invocation.
type options struct {
	palettePath   string
	area          command.Area
	outDir        string
	output        string
	passes        []string
	commandMetric string
	workers       int
	noImages      bool
	verbose       bool
	quiet         bool
}

// NewRootCmd creates the blockart command.
func NewRootCmd() *cobra.Command {
	opts := &options{area: command.DefaultArea}

	cmd := &cobra.Command{
		Use:   "blockart [flags] <image>",
		Short: "Convert an image into Minecraft block commands",
		Long: `Blockart reduces an image to the colours of a block palette and prints the
/fill and /setblock commands that rebuild it one level below the player.

The image is quantized once per metric. Each pass is saved as a PNG
(First.png for euclidean, Second.png for redmean) and the commands are
generated from the redmean pass unless --command-metric says otherwise.

Supported image extensions: ` + strings.Join(image.SupportedImageExtensions(), ", ") + `

Examples:
  # Print commands for a 128x128 map
  blockart picture.png

  # Use a custom palette and save the commands compressed
  blockart --palette wool.yaml --output commands.txt.zst picture.png

  # Only run the redmean pass and skip writing images
  blockart --passes redmean --no-images picture.png

  # Show progress and a colour usage summary
  blockart -v picture.png`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Got: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args[0])
		},
	}

	registerFlags(cmd.PersistentFlags(), cmd.Flags(), opts)
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newPaletteCmd(opts))

	return cmd
}

// registerFlags binds the flags to opts. Persistent flags are shared with subcommands.
func registerFlags(persistent, flags *pflag.FlagSet, opts *options) {
	defaults := mapart.DefaultConfig()
	defaultPasses := make([]string, len(defaults.Passes))
	for i, m := range defaults.Passes {
		defaultPasses[i] = string(m)
	}

	persistent.StringVarP(&opts.palettePath, "palette", "p", "", "palette file (YAML or JSON, default: built-in map palette)")
	flags.VarP(&opts.area, "area", "a", "minimum area covered by the background fill")
	flags.StringVarP(&opts.outDir, "out-dir", "d", defaults.OutDir, "directory for pass images")
	flags.StringVarP(&opts.output, "output", "o", "", "write commands to a file (.xz and .zst are compressed, default: stdout)")
	flags.StringSliceVar(&opts.passes, "passes", defaultPasses, "quantization metrics to run, in order ("+metricNames()+")")
	flags.StringVar(&opts.commandMetric, "command-metric", string(defaults.CommandMetric), "pass used to generate commands")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "rows quantized in parallel (0 = one per CPU)")
	flags.BoolVar(&opts.noImages, "no-images", false, "do not write pass images")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
}

func metricNames() string {
	metrics := colour.ValidMetrics()
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func (o *options) config() (mapart.Config, error) {
	cfg := mapart.DefaultConfig()
	cfg.Area = o.area
	cfg.OutDir = o.outDir
	cfg.WriteImages = !o.noImages
	cfg.Workers = o.workers

	cfg.Passes = cfg.Passes[:0:0]
	for _, name := range o.passes {
		m, err := colour.ParseMetric(name)
		if err != nil {
			return mapart.Config{}, err
		}
		cfg.Passes = append(cfg.Passes, m)
	}

	m, err := colour.ParseMetric(o.commandMetric)
	if err != nil {
		return mapart.Config{}, err
	}
	cfg.CommandMetric = m

	return cfg, cfg.Validate()
}

func (o *options) logger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case o.quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "blockart",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case o.verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "blockart",
		Output: w,
		Level:  level,
	})
}

func (o *options) palette() (*palette.Palette, error) {
	if o.palettePath == "" {
		return palette.Default(), nil
	}
	return palette.Load(o.palettePath)
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Fail before any output is produced.
	if err := image.ValidatePath(path); err != nil {
		return err
	}

	cfg, err := opts.config()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p, err := opts.palette()
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	logger := opts.logger(cmd.ErrOrStderr())
	logger.Debug("palette loaded", "name", p.Name(), "materials", p.Len())

	gen, err := mapart.NewGenerator(cfg, p, logger)
	if err != nil {
		return err
	}

	res, err := gen.Run(ctx, path)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := command.WriteFile(opts.output, res.Commands); err != nil {
			return fmt.Errorf("failed to write commands: %w", err)
		}
		logger.Info("wrote commands", "path", opts.output, "count", len(res.Commands))
	} else if err := command.Write(cmd.OutOrStdout(), res.Commands); err != nil {
		return fmt.Errorf("failed to write commands: %w", err)
	}

	if opts.verbose {
		printSummary(cmd.ErrOrStderr(), res, p, isTerminal(os.Stderr))
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
