// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/chewxy/math32"

const (
	// F2 is Skew(2), (sqrt(3) - 1) / 2.
	F2 = 0.36602540378443865
	// G2 is Unskew(2), (3 - sqrt(3)) / 6.
	G2 = 0.21132486540518713
)

// Skew returns the factor that maps n-dimensional canonical coordinates onto
// the skewed simplex lattice.
func Skew(n int) float32 {
	return (math32.Sqrt(float32(n+1)) - 1) / float32(n)
}

// Unskew is the inverse of Skew.
func Unskew(n int) float32 {
	return (1 - 1/math32.Sqrt(float32(n+1))) / float32(n)
}

// Radial is the simplex falloff. t must be a squared distance; it is zero for
// t >= 0.5.
func Radial(t float32) float32 {
	r := math32.Max(0, 0.5-t)
	r *= r
	return r * r * F2
}

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func Fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}
