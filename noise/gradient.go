// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

// Gradient is single octave lattice (Perlin-style) noise.
// Noise2D is nominally in [0, 1] but is not clamped, and can overshoot
// slightly for extreme gradient configurations.
type Gradient struct {
	Lattice *Lattice
}

// Noise2D implements Source.Noise2D.
func (g Gradient) Noise2D(coords Vec2f) float32 {
	l := g.Lattice
	floor := coords.Floor()
	frac := coords.Sub(floor)

	x, y := floor.Ints()
	x &= PermutationSize - 1
	y &= PermutationSize - 1

	// Corners
	// 00 10
	// 01 11
	d00 := frac.Dot(l.Gradient(x, y))
	d10 := frac.Sub(Vec2f{X: 1}).Dot(l.Gradient(x+1, y))
	d01 := frac.Sub(Vec2f{Y: 1}).Dot(l.Gradient(x, y+1))
	d11 := frac.Sub(Vec2f{X: 1, Y: 1}).Dot(l.Gradient(x+1, y+1))

	u := Fade(frac.X)
	v := Fade(frac.Y)

	result := Lerp(Lerp(d00, d10, u), Lerp(d01, d11, u), v)
	return (result + 1) * 0.5
}
