// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/chewxy/math32"

// DefaultOctaveOffset is the per octave translation used to decorrelate
// octaves sampled from the same lattice region.
const DefaultOctaveOffset = 4096

// Octaves configures fractal composition of a Source.
type Octaves struct {
	Count       int     `json:"count"`
	Frequency   float32 `json:"frequency"`
	Persistence float32 `json:"persistence"`
	// Offset is multiplied by the octave index and added to both axes.
	Offset float32 `json:"offset"`
}

// DefaultOctaves are 8 octaves, each half the amplitude of the previous.
func DefaultOctaves() Octaves {
	return Octaves{
		Count:       8,
		Frequency:   1,
		Persistence: 0.5,
		Offset:      DefaultOctaveOffset,
	}
}

// Fractal sums o.Count samples of src, doubling frequency and scaling amplitude
// by Persistence each octave, then normalizes by the total amplitude so the
// result stays in src's range regardless of Count.
func (o Octaves) Fractal(src Source, coords Vec2f) float32 {
	var sum float32
	amplitude := float32(1)
	frequency := o.Frequency

	for i := 0; i < o.Count; i++ {
		offset := Splat(float32(i) * o.Offset)
		sum += src.Noise2D(coords.Mul(frequency).Add(offset)) * amplitude
		amplitude *= o.Persistence
		frequency *= 2
	}

	return sum / o.totalAmplitude(amplitude)
}

// totalAmplitude is the geometric series 1 + p + ... + p^(n-1) given the final
// amplitude p^n.
func (o Octaves) totalAmplitude(final float32) float32 {
	if math32.Abs(1-o.Persistence) < 1e-6 {
		return float32(o.Count)
	}
	return (1 - final) / (1 - o.Persistence)
}

// Fractal is a Source that composes octaves of another Source.
type Fractal struct {
	Source  Source
	Octaves Octaves
}

// Noise2D implements Source.Noise2D.
func (f Fractal) Noise2D(coords Vec2f) float32 {
	return f.Octaves.Fractal(f.Source, coords)
}
