// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math/rand/v2"

const (
	// PermutationSize is the number of entries in a Lattice permutation.
	PermutationSize = 256
	// GradientCount is the number of entries in a Lattice gradient table.
	GradientCount = 16
)

// Lattice holds the pseudo-random tables shared by every evaluator.
// A Lattice must not be modified after it is handed to a Source, so it can be
// read from any number of goroutines without synchronization.
type Lattice struct {
	Permutation [PermutationSize]uint8
	Gradients   [GradientCount]Vec2f
}

// DefaultLattice uses the reference permutation and 16 unit gradients spaced
// 22.5 degrees apart.
var DefaultLattice = &Lattice{
	Permutation: [PermutationSize]uint8{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
		140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
		247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
		57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
		74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
		60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
		65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
		200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
		52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
		207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
		119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
		218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
		81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
		184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
		222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	},
	Gradients: unitGradients,
}

var unitGradients = [GradientCount]Vec2f{
	{1, 0},
	{0.9238795, 0.38268343},
	{0.70710677, 0.70710677},
	{0.38268343, 0.9238795},
	{0, 1},
	{-0.38268343, 0.9238795},
	{-0.70710677, 0.70710677},
	{-0.9238795, 0.38268343},
	{-1, 0},
	{-0.9238795, -0.38268343},
	{-0.70710677, -0.70710677},
	{-0.38268343, -0.9238795},
	{0, -1},
	{0.38268343, -0.9238795},
	{0.70710677, -0.70710677},
	{0.9238795, -0.38268343},
}

// NewLattice creates a Lattice whose permutation is shuffled deterministically
// from seed. The gradients are the same as DefaultLattice.
func NewLattice(seed int64) *Lattice {
	l := &Lattice{Gradients: unitGradients}
	for i := range l.Permutation {
		l.Permutation[i] = uint8(i)
	}

	r := rand.New(rand.NewPCG(uint64(seed), 0))
	r.Shuffle(PermutationSize, func(i, j int) {
		l.Permutation[i], l.Permutation[j] = l.Permutation[j], l.Permutation[i]
	})
	return l
}

// Valid reports whether Permutation contains every byte exactly once.
func (l *Lattice) Valid() bool {
	var seen [PermutationSize]bool
	for _, p := range l.Permutation {
		if seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// Gradient hashes a lattice coordinate to one of the gradients.
// Swapping x and y generally yields a different gradient.
func (l *Lattice) Gradient(x, y int) Vec2f {
	// & is the non-negative modulo for powers of 2, even for negative x and y
	idx := l.Permutation[(y+int(l.Permutation[x&(PermutationSize-1)]))&(PermutationSize-1)]
	return l.Gradients[idx&(GradientCount-1)]
}
