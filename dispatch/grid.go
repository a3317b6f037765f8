// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package dispatch

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"
	"time"

	"github.com/SoftbearStudios/caldeira/noise"
	"github.com/SoftbearStudios/caldeira/render"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidGrid is wrapped by errors returned from Grid.Validate.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is the set of work items of a dispatch, one per output pixel.
type Grid struct {
	Width  int
	Height int
	// Scale multiplies normalized coordinates, controlling spatial frequency.
	Scale float32
}

func (g Grid) Validate() error {
	switch {
	case g.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidGrid, g.Width)
	case g.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidGrid, g.Height)
	case !(g.Scale > 0):
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidGrid, g.Scale)
	case uint64(g.Width)*uint64(g.Height) > 1<<32-1:
		return fmt.Errorf("%w: %dx%d items overflow the diagnostic counter", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// Len is the number of work items.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// UV is (x/width, y/height) multiplied by Scale.
func (g Grid) UV(x, y int) noise.Vec2f {
	return noise.Vec2f{X: float32(x), Y: float32(y)}.
		DivVec(noise.Vec2f{X: float32(g.Width), Y: float32(g.Height)}).
		Mul(g.Scale)
}

// Pipeline computes the pixel for one scaled coordinate. It must be pure.
type Pipeline func(uv noise.Vec2f) color.RGBA

// Strategy decides how work items are scheduled. Every strategy produces an
// identical surface.
type Strategy uint8

const (
	// Rows runs one task per row on a bounded number of goroutines.
	Rows Strategy = iota
	// Sequential runs every item on the calling goroutine in row major order.
	Sequential
)

func (s Strategy) String() string {
	if s == Sequential {
		return "sequential"
	}
	return "rows"
}

type Options struct {
	Strategy Strategy
	// Workers bounds concurrency of Rows. Defaults to GOMAXPROCS.
	Workers int
	// Diagnostics is optional.
	Diagnostics *Diagnostics
}

// Run stores exactly one pixel per grid coordinate into surface.
// The grid is validated once, before any work starts.
func Run(grid Grid, pipeline Pipeline, surface render.Surface, options Options) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	if pipeline == nil {
		return errors.New("dispatch: nil pipeline")
	}
	if surface == nil {
		return errors.New("dispatch: nil surface")
	}

	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := Logger()
	logger.Debug("dispatch started",
		"width", grid.Width,
		"height", grid.Height,
		"scale", grid.Scale,
		"strategy", options.Strategy.String(),
		"workers", workers)
	start := time.Now()

	row := func(y int) {
		for x := 0; x < grid.Width; x++ {
			surface.Store(x, y, pipeline(grid.UV(x, y)))
			if options.Diagnostics != nil {
				options.Diagnostics.record(x + y*grid.Width)
			}
		}
	}

	switch options.Strategy {
	case Sequential:
		for y := 0; y < grid.Height; y++ {
			row(y)
		}
	default:
		var g errgroup.Group
		g.SetLimit(workers)
		for y := 0; y < grid.Height; y++ {
			y := y
			g.Go(func() error {
				row(y)
				return nil
			})
		}
		// Tasks never fail
		_ = g.Wait()
	}

	if d := options.Diagnostics; d != nil {
		if items := d.Items.Load(); items != uint32(grid.Len()) {
			logger.Warn("diagnostic counter mismatch", "items", items, "expected", grid.Len())
		}
	}
	logger.Debug("dispatch finished", "elapsed", time.Since(start))
	return nil
}
