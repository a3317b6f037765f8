// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math/rand"
	"testing"
)

func TestGradient_LatticePoints(t *testing.T) {
	g := Gradient{Lattice: DefaultLattice}

	for x := -300; x <= 300; x += 13 {
		for y := -300; y <= 300; y += 17 {
			if n := g.Noise2D(Vec2f{X: float32(x), Y: float32(y)}); n != 0.5 {
				t.Errorf("expected 0.5 at lattice point (%d, %d), got %f", x, y, n)
			}
		}
	}
}

func TestGradient_Range(t *testing.T) {
	g := Gradient{Lattice: NewLattice(7)}
	r := rand.New(rand.NewSource(1))

	var lo, hi float32 = 1, 0
	for i := 0; i < 10000; i++ {
		n := g.Noise2D(Vec2f{X: r.Float32()*512 - 256, Y: r.Float32()*512 - 256})
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}

	// Nominally [0, 1], never clamped
	if lo < -0.1 || hi > 1.1 {
		t.Errorf("expected range near [0, 1], found [%f, %f]", lo, hi)
	}
	if hi-lo < 0.3 {
		t.Errorf("expected some variation, found [%f, %f]", lo, hi)
	}
}

func TestGradient_Continuous(t *testing.T) {
	g := Gradient{Lattice: DefaultLattice}

	const step = 0.001
	for x := float32(0); x < 4; x += 0.0371 {
		p := Vec2f{X: x, Y: x * 0.7}
		a := g.Noise2D(p)
		b := g.Noise2D(p.AddScalar(step))
		if d := a - b; d > 0.01 || d < -0.01 {
			t.Errorf("discontinuity at %s: %f vs %f", p, a, b)
		}
	}
}

func TestGradient_Deterministic(t *testing.T) {
	a := Gradient{Lattice: NewLattice(3)}
	b := Gradient{Lattice: NewLattice(3)}

	for i := float32(0); i < 20; i += 0.37 {
		p := Vec2f{X: i, Y: 20 - i}
		if a.Noise2D(p) != b.Noise2D(p) {
			t.Errorf("expected identical samples at %s", p)
		}
	}
}

func BenchmarkGradient_Noise2D(b *testing.B) {
	const count = 1024
	points := make([]Vec2f, count)
	for i := range points {
		points[i] = Vec2f{X: rand.Float32() * 100, Y: rand.Float32() * 100}
	}
	g := Gradient{Lattice: DefaultLattice}
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += g.Noise2D(points[i&(count-1)])
	}
	_ = acc
}
