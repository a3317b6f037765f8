// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// Perlin adapts github.com/aquilax/go-perlin to Source.
// Like Gradient, samples are remapped to [0, 1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a single octave Perlin; use Octaves for fractal detail.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)}
}

// Noise2D implements Source.Noise2D.
func (p *Perlin) Noise2D(coords Vec2f) float32 {
	return float32(p.p.Noise2D(float64(coords.X), float64(coords.Y))+1) * 0.5
}

// OpenSimplex adapts github.com/ojrac/opensimplex-go to Source.
// Like Simplex, samples are in [-1, 1].
type OpenSimplex struct {
	n opensimplex.Noise
}

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

// Noise2D implements Source.Noise2D.
func (o *OpenSimplex) Noise2D(coords Vec2f) float32 {
	return float32(o.n.Eval2(float64(coords.X), float64(coords.Y)))
}
