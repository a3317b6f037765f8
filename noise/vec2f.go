// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"fmt"
	"math"
)

// Vec2f is a 2D coordinate in noise space.
type Vec2f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Splat returns a Vec2f with both components set to v.
func Splat(v float32) Vec2f {
	return Vec2f{X: v, Y: v}
}

func (vec Vec2f) Add(otherVec Vec2f) Vec2f {
	vec.X += otherVec.X
	vec.Y += otherVec.Y
	return vec
}

func (vec Vec2f) AddScalar(s float32) Vec2f {
	vec.X += s
	vec.Y += s
	return vec
}

func (vec Vec2f) Sub(otherVec Vec2f) Vec2f {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	return vec
}

func (vec Vec2f) Mul(factor float32) Vec2f {
	vec.X *= factor
	vec.Y *= factor
	return vec
}

// MulVec multiplies component-wise.
func (vec Vec2f) MulVec(otherVec Vec2f) Vec2f {
	vec.X *= otherVec.X
	vec.Y *= otherVec.Y
	return vec
}

// DivVec divides component-wise.
func (vec Vec2f) DivVec(otherVec Vec2f) Vec2f {
	vec.X /= otherVec.X
	vec.Y /= otherVec.Y
	return vec
}

func (vec Vec2f) Dot(otherVec Vec2f) float32 {
	return vec.X*otherVec.X + vec.Y*otherVec.Y
}

// Sum returns X + Y.
func (vec Vec2f) Sum() float32 {
	return vec.X + vec.Y
}

func (vec Vec2f) LengthSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y
}

func (vec Vec2f) Floor() Vec2f {
	// Use math.Floor instead because it uses assembly
	vec.X = float32(math.Floor(float64(vec.X)))
	vec.Y = float32(math.Floor(float64(vec.Y)))
	return vec
}

// Fract returns vec - vec.Floor(), each component in [0, 1).
func (vec Vec2f) Fract() Vec2f {
	return vec.Sub(vec.Floor())
}

func (vec Vec2f) Lerp(otherVec Vec2f, factor float32) Vec2f {
	vec.X = Lerp(vec.X, otherVec.X, factor)
	vec.Y = Lerp(vec.Y, otherVec.Y, factor)
	return vec
}

// Ints truncates both components. Only meaningful after Floor.
func (vec Vec2f) Ints() (x, y int) {
	return int(vec.X), int(vec.Y)
}

func (vec Vec2f) String() string {
	return fmt.Sprintf("(%g, %g)", vec.X, vec.Y)
}
