// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"

	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/noise"
	"github.com/SoftbearStudios/caldeira/render"
)

// Config describes one render.
type Config struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float32 `json:"scale"`

	Family noise.Family `json:"family"`
	// Seed 0 uses the default lattice.
	Seed int64 `json:"seed"`
	// Fractal composes Octaves of Family, otherwise a single sample is taken.
	Fractal bool          `json:"fractal"`
	Octaves noise.Octaves `json:"octaves"`
	// Remap moves families in [-1, 1] to [0, 1] before mapping.
	Remap bool `json:"remap"`

	Mapper  string        `json:"mapper"`
	Workers int           `json:"workers"`
	Format  render.Format `json:"format"`
}

var presets = map[string]Config{
	"fractal": {
		Width:   1000,
		Height:  1000,
		Scale:   100,
		Family:  noise.FamilyGradient,
		Fractal: true,
		Octaves: noise.Octaves{Count: 6, Frequency: 0.05, Persistence: 0.5, Offset: noise.DefaultOctaveOffset},
		Mapper:  "gray",
		Format:  render.FormatPNG,
	},
	"simplex": {
		Width:   1000,
		Height:  1000,
		Scale:   10,
		Family:  noise.FamilySimplex,
		Octaves: noise.DefaultOctaves(),
		Mapper:  "flame",
		Format:  render.FormatPNG,
	},
	"terrain": {
		Width:   1024,
		Height:  1024,
		Scale:   8,
		Family:  noise.FamilySimplex,
		Fractal: true,
		Octaves: noise.Octaves{Count: 7, Frequency: 1, Persistence: 0.55, Offset: noise.DefaultOctaveOffset},
		Remap:   true,
		Mapper:  "terrain",
		Format:  render.FormatPNG,
	},
}

// Default is the fractal preset.
func Default() Config {
	return presets["fractal"]
}

// Preset returns a named starting configuration.
func Preset(name string) (Config, error) {
	c, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (expected one of %v)", name, PresetNames())
	}
	return c, nil
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode reads a JSON document over a copy of base, so omitted fields keep
// base's values. The result is not validated.
func Decode(r io.Reader, base Config) (Config, error) {
	c := base
	if err := JSON.NewDecoder(r).Decode(&c); err != nil {
		return base, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// Load is Decode of a file.
func Load(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer f.Close()
	return Decode(f, base)
}

// Lattice used by the engine's evaluators.
func (c *Config) Lattice() *noise.Lattice {
	if c.Seed == 0 {
		return noise.DefaultLattice
	}
	return noise.NewLattice(c.Seed)
}

// Source builds the noise source. Call Validate first.
func (c *Config) Source() noise.Source {
	src := c.Family.Source(c.Lattice(), c.Seed)
	if c.Fractal {
		return noise.Fractal{Source: src, Octaves: c.Octaves}
	}
	return src
}

// Pipeline builds the per pixel function. Call Validate first.
func (c *Config) Pipeline() (dispatch.Pipeline, error) {
	mapper, err := render.ParseMapper(c.Mapper)
	if err != nil {
		return nil, err
	}
	src := c.Source()

	if c.Remap && !c.Family.Unit() {
		return func(uv noise.Vec2f) color.RGBA {
			return mapper.Map((src.Noise2D(uv) + 1) * 0.5)
		}, nil
	}
	return func(uv noise.Vec2f) color.RGBA {
		return mapper.Map(src.Noise2D(uv))
	}, nil
}

func (c *Config) Grid() dispatch.Grid {
	return dispatch.Grid{Width: c.Width, Height: c.Height, Scale: c.Scale}
}

func (c *Config) Options(diagnostics *dispatch.Diagnostics) dispatch.Options {
	return dispatch.Options{
		Strategy:    dispatch.Rows,
		Workers:     c.Workers,
		Diagnostics: diagnostics,
	}
}
