package mapart

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/command"
	"github.com/jmylchreest/blockart/internal/grid"
	"github.com/jmylchreest/blockart/internal/image"
	"github.com/jmylchreest/blockart/internal/palette"
	"github.com/jmylchreest/blockart/internal/quantize"
)

// Pass is the outcome of quantizing the source image with one metric.
type Pass struct {
	Metric colour.Metric
	Grid   *grid.Grid
	// ImagePath is empty when images are disabled.
	ImagePath string
}

// Result is everything a run produced.
type Result struct {
	Width, Height int
	Passes        []Pass
	Background    colour.RGB
	BackgroundID  string
	Commands      []command.Command
	Stats         command.Stats
	Usage         []quantize.Count
}

// Generator converts images into block commands.
type Generator struct {
	cfg     Config
	palette *palette.Palette
	loader  image.Loader
	logger  hclog.Logger
}

// NewGenerator creates a generator. A nil logger discards all output.
func NewGenerator(cfg Config, p *palette.Palette, logger hclog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if p == nil || p.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Generator{
		cfg:     cfg,
		palette: p,
		loader:  image.NewFileLoader(),
		logger:  logger,
	}, nil
}

// Run loads the image at path and runs every stage of the pipeline.
func (g *Generator) Run(ctx context.Context, path string) (*Result, error) {
	g.logger.Debug("loading image", "path", path)
	img, err := g.loader.Load(path)
	if err != nil {
		return nil, err
	}

	src := grid.FromImage(img)
	g.logger.Info("image loaded", "path", path, "width", src.Width(), "height", src.Height())

	return g.Generate(ctx, src)
}

// Generate runs the pipeline on an already decoded grid.
func (g *Generator) Generate(ctx context.Context, src *grid.Grid) (*Result, error) {
	res := &Result{Width: src.Width(), Height: src.Height()}

	var commandGrid *grid.Grid
	for _, m := range g.cfg.Passes {
		pass, err := g.runPass(ctx, src, m)
		if err != nil {
			return nil, err
		}
		res.Passes = append(res.Passes, pass)
		if m == g.cfg.CommandMetric {
			commandGrid = pass.Grid
		}
	}

	background, err := quantize.Dominant(commandGrid)
	if err != nil {
		return nil, fmt.Errorf("failed to find background colour: %w", err)
	}
	res.Background = background
	res.BackgroundID, _ = g.palette.Material(background)
	g.logger.Debug("background selected", "material", res.BackgroundID, "colour", background.Hex())

	cmds, err := command.Emit(commandGrid, background, g.palette, g.cfg.Area)
	if err != nil {
		return nil, fmt.Errorf("failed to generate commands: %w", err)
	}
	res.Commands = cmds
	res.Stats = command.Summarise(cmds)
	res.Usage = quantize.Histogram(commandGrid)

	g.logger.Info("commands generated",
		"metric", g.cfg.CommandMetric,
		"total", res.Stats.Total(),
		"fills", res.Stats.Fills,
		"setblocks", res.Stats.SetBlocks,
		"materials", len(res.Usage))

	return res, nil
}

func (g *Generator) runPass(ctx context.Context, src *grid.Grid, m colour.Metric) (Pass, error) {
	q, err := quantize.New(g.palette, m, quantize.WithWorkers(g.cfg.Workers))
	if err != nil {
		return Pass{}, fmt.Errorf("%s pass: %w", m, err)
	}

	start := time.Now()
	out, err := q.Quantize(ctx, src)
	if err != nil {
		return Pass{}, fmt.Errorf("%s pass: %w", m, err)
	}
	g.logger.Debug("quantized", "metric", q.Metric(), "elapsed", time.Since(start))

	pass := Pass{Metric: m, Grid: out}
	if g.cfg.WriteImages {
		pass.ImagePath = g.cfg.ImagePath(m)
		if err := image.SavePNG(pass.ImagePath, out.Image()); err != nil {
			return Pass{}, fmt.Errorf("%s pass: %w", m, err)
		}
		g.logger.Info("wrote pass image", "metric", m, "path", pass.ImagePath)
	}

	return pass, nil
}
