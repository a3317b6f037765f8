// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/noise"
	"github.com/SoftbearStudios/caldeira/render"
)

func TestPresets_Valid(t *testing.T) {
	for _, name := range PresetNames() {
		c, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if _, err := c.Pipeline(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}

	if _, err := Preset("mandelbrot"); err == nil {
		t.Error("expected unknown preset error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		param  string
		modify func(c *Config)
	}{
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -4 }},
		{"size", func(c *Config) { c.Width, c.Height = 1<<20, 1<<20 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"family", func(c *Config) { c.Family = 200 }},
		{"format", func(c *Config) { c.Format = 200 }},
		{"mapper", func(c *Config) { c.Mapper = "rainbow" }},
		{"octaves.count", func(c *Config) { c.Octaves.Count = 0 }},
		{"octaves.frequency", func(c *Config) { c.Octaves.Frequency = -1 }},
		{"octaves.persistence", func(c *Config) { c.Octaves.Persistence = 1 }},
		{"octaves.persistence", func(c *Config) { c.Octaves.Persistence = 0 }},
		{"octaves.offset", func(c *Config) { c.Octaves.Offset = -1 }},
	}

	for _, test := range tests {
		c := Default()
		test.modify(&c)

		var cfgErr *Error
		if err := c.Validate(); !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected *Error, got %v", test.param, err)
		} else if cfgErr.Param != test.param {
			t.Errorf("expected param %s, got %s (%v)", test.param, cfgErr.Param, cfgErr)
		}
	}

	// Octaves are irrelevant without Fractal
	c := Default()
	c.Fractal = false
	c.Octaves.Count = 0
	if err := c.Validate(); err != nil {
		t.Errorf("expected octaves to be ignored, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	const doc = `{"width": 64, "family": "simplex", "octaves": {"count": 3, "frequency": 2, "persistence": 0.25, "offset": 16}, "format": "bmp", "mapper": "ember"}`

	c, err := Decode(strings.NewReader(doc), Default())
	if err != nil {
		t.Fatal(err)
	}

	expected := Default()
	expected.Width = 64
	expected.Family = noise.FamilySimplex
	expected.Octaves = noise.Octaves{Count: 3, Frequency: 2, Persistence: 0.25, Offset: 16}
	expected.Format = render.FormatBMP
	expected.Mapper = "ember"

	if c != expected {
		t.Errorf("expected %+v, got %+v", expected, c)
	}

	for _, bad := range []string{`{"colour": "red"}`, `{"family": "value"}`, `{"width": "wide"}`, `{`} {
		if _, err := Decode(strings.NewReader(bad), Default()); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
}

func TestPipeline_Origin(t *testing.T) {
	tests := []Config{
		{
			Width: 4, Height: 4, Scale: 1,
			Family:  noise.FamilyGradient,
			Fractal: true,
			Octaves: noise.Octaves{Count: 1, Frequency: 1, Persistence: 0.5, Offset: noise.DefaultOctaveOffset},
			Mapper:  "gray",
		},
		{
			// Simplex is 0 at the origin, remapped to 0.5
			Width: 4, Height: 4, Scale: 1,
			Family: noise.FamilySimplex,
			Remap:  true,
			Mapper: "gray",
		},
	}

	for _, c := range tests {
		if err := c.Validate(); err != nil {
			t.Fatal(err)
		}
		pipeline, err := c.Pipeline()
		if err != nil {
			t.Fatal(err)
		}

		img := render.NewImage(c.Width, c.Height)
		var diagnostics dispatch.Diagnostics
		if err := dispatch.Run(c.Grid(), pipeline, img, c.Options(&diagnostics)); err != nil {
			t.Fatal(err)
		}

		mid := render.ToByte(0.5)
		if got := img.RGBAAt(0, 0); got != (color.RGBA{R: mid, G: mid, B: mid, A: 255}) {
			t.Errorf("%s: expected %d gray at origin, got %v", c.Family, mid, got)
		}
		if diagnostics.Items.Load() != 16 {
			t.Errorf("expected 16 items, got %d", diagnostics.Items.Load())
		}
	}
}

func TestConfig_Lattice(t *testing.T) {
	c := Default()
	if c.Lattice() != noise.DefaultLattice {
		t.Error("expected seed 0 to use the default lattice")
	}
	c.Seed = 99
	if *c.Lattice() != *noise.NewLattice(99) {
		t.Error("expected seeded lattice")
	}
}
