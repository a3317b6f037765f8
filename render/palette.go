// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps [0, 1] onto evenly spaced color stops, blending neighbors in
// CIE-Lab so the ramp is perceptually even. Samples outside [0, 1] clamp to
// the end stops.
type Palette struct {
	stops []colorful.Color
}

// NewPalette parses at least two hex colors ("#rrggbb").
func NewPalette(hex ...string) (*Palette, error) {
	if len(hex) < 2 {
		return nil, errors.New("palette needs at least 2 stops")
	}

	p := &Palette{stops: make([]colorful.Color, len(hex))}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		p.stops[i] = c
	}
	return p, nil
}

func mustPalette(hex ...string) *Palette {
	p, err := NewPalette(hex...)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	// TerrainPalette goes from deep ocean through sand and grass to rock and snow.
	TerrainPalette = mustPalette("#003273", "#004b82", "#c2b280", "#5ab41e", "#696e73", "#dcdcdc")
	// EmberPalette goes from black through red and orange to white.
	EmberPalette = mustPalette("#000000", "#7a0c00", "#ff6a00", "#ffd24a", "#ffffff")
)

func (p *Palette) Map(v float32) color.RGBA {
	last := len(p.stops) - 1

	pos := float64(v) * float64(last)
	if !(pos > 0) {
		pos = 0
	} else if pos > float64(last) {
		pos = float64(last)
	}

	i := int(pos)
	if i == last {
		i--
	}

	c := p.stops[i].BlendLab(p.stops[i+1], pos-float64(i)).Clamped()
	return color.RGBA{R: ToByte(float32(c.R)), G: ToByte(float32(c.G)), B: ToByte(float32(c.B)), A: 255}
}
