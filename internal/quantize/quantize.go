// Package quantize maps every pixel of a grid onto its nearest palette colour
// and finds the dominant colour of the result.
package quantize

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/grid"
	"github.com/jmylchreest/blockart/internal/palette"
)

// Quantizer replaces pixels with their closest palette colour under one metric.
type Quantizer struct {
	palette *palette.Palette
	metric  colour.Metric
	workers int
}

// Option configures a Quantizer.
type Option func(*Quantizer)

// WithWorkers sets the number of rows processed concurrently.
// Values below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(q *Quantizer) {
		q.workers = n
	}
}

// New creates a Quantizer. The palette must have at least one entry.
func New(p *palette.Palette, metric colour.Metric, opts ...Option) (*Quantizer, error) {
	if p == nil || p.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}
	if !metric.IsValid() {
		return nil, fmt.Errorf("%w: %q", colour.ErrUnknownMetric, metric)
	}

	q := &Quantizer{palette: p, metric: metric}
	for _, opt := range opts {
		opt(q)
	}
	if q.workers < 1 {
		q.workers = runtime.NumCPU()
	}
	return q, nil
}

// Metric returns the metric the quantizer matches with.
func (q *Quantizer) Metric() colour.Metric {
	return q.metric
}

// Quantize returns a new grid of the same size as src in which every cell is
// a palette colour. src is not modified. Rows are handed to a fixed pool of
// workers; each output cell is written by exactly one worker, so the result
// does not depend on the worker count.
func (q *Quantizer) Quantize(ctx context.Context, src *grid.Grid) (*grid.Grid, error) {
	out := grid.New(src.Width(), src.Height())
	if src.Len() == 0 {
		return out, nil
	}

	workers := min(q.workers, src.Height())
	rows := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Photos repeat colours heavily; the memo is per worker so no locking is needed.
			memo := make(map[colour.RGB]colour.RGB)
			for y := range rows {
				if err := q.quantizeRow(src, out, y, memo); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for y := 0; y < src.Height(); y++ {
		select {
		case <-ctx.Done():
			break feed
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("quantization cancelled: %w", err)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func (q *Quantizer) quantizeRow(src, out *grid.Grid, y int, memo map[colour.RGB]colour.RGB) error {
	for x := 0; x < src.Width(); x++ {
		c := src.At(x, y)
		match, ok := memo[c]
		if !ok {
			var err error
			match, err = q.palette.ClosestColour(c, q.metric)
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			memo[c] = match
		}
		out.Set(x, y, match)
	}
	return nil
}

// Quantize is a convenience wrapper that builds a Quantizer with default
// options and runs it once.
func Quantize(ctx context.Context, src *grid.Grid, p *palette.Palette, metric colour.Metric) (*grid.Grid, error) {
	q, err := New(p, metric)
	if err != nil {
		return nil, err
	}
	return q.Quantize(ctx, src)
}
