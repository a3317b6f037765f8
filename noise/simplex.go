// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

// SimplexScale brings the summed simplex contributions to roughly [-1, 1].
const SimplexScale = 60

// Simplex is single octave triangular lattice noise.
// Unlike Gradient, Noise2D is not remapped and lies roughly in [-1, 1].
type Simplex struct {
	Lattice *Lattice
}

// simplexCorner is one vertex of the triangle containing a point.
type simplexCorner struct {
	// cell is the vertex in skewed lattice space.
	cell Vec2f
	// diff is the point minus the unskewed vertex.
	diff Vec2f
}

// corners returns the 3 vertices of the simplex containing coords.
func (s Simplex) corners(coords Vec2f) (corners [3]simplexCorner) {
	skewed := coords.AddScalar(coords.Sum() * F2)
	base := skewed.Floor()
	internal := skewed.Sub(base)

	// Which half of the unit square's diagonal split
	middle := Vec2f{Y: 1}
	if internal.X > internal.Y {
		middle = Vec2f{X: 1}
	}

	offsets := [3]Vec2f{{}, middle, {X: 1, Y: 1}}
	for i, offset := range offsets {
		cell := base.Add(offset)
		unskewed := cell.AddScalar(-cell.Sum() * G2)
		corners[i] = simplexCorner{cell: cell, diff: coords.Sub(unskewed)}
	}
	return
}

// contribution of one corner. Zero beyond the falloff radius.
func (s Simplex) contribution(c simplexCorner) float32 {
	x, y := c.cell.Ints()
	return Radial(c.diff.LengthSquared()) * c.diff.Dot(s.Lattice.Gradient(x, y))
}

// Noise2D implements Source.Noise2D.
func (s Simplex) Noise2D(coords Vec2f) float32 {
	var sum float32
	for _, c := range s.corners(coords) {
		sum += s.contribution(c)
	}
	return sum * SimplexScale
}
