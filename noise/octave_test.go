// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "testing"

type constSource float32

func (c constSource) Noise2D(Vec2f) float32 {
	return float32(c)
}

// recordingSource records the coordinates it was sampled at.
type recordingSource struct {
	samples []Vec2f
}

func (r *recordingSource) Noise2D(coords Vec2f) float32 {
	r.samples = append(r.samples, coords)
	return 1
}

func TestOctaves_Single(t *testing.T) {
	for _, src := range []Source{Gradient{Lattice: DefaultLattice}, Simplex{Lattice: DefaultLattice}} {
		for _, p := range []float32{0.25, 0.5, 0.75} {
			o := Octaves{Count: 1, Frequency: 3, Persistence: p, Offset: DefaultOctaveOffset}

			for x := float32(0); x < 10; x += 0.73 {
				coords := Vec2f{X: x, Y: x * 0.4}
				direct := src.Noise2D(coords.Mul(3))
				if got := o.Fractal(src, coords); !approx(got, direct) {
					t.Errorf("%T persistence %f at %s: expected %f, got %f", src, p, coords, direct, got)
				}
			}
		}
	}
}

func TestOctaves_Normalized(t *testing.T) {
	for count := 1; count <= 12; count++ {
		for _, p := range []float32{0.3, 0.5, 0.9, 1} {
			o := Octaves{Count: count, Frequency: 1, Persistence: p, Offset: DefaultOctaveOffset}
			if got := o.Fractal(constSource(0.5), Vec2f{}); !approx(got, 0.5) {
				t.Errorf("count %d persistence %f: expected 0.5, got %f", count, p, got)
			}
		}
	}
}

func TestOctaves_Sampling(t *testing.T) {
	var src recordingSource
	o := Octaves{Count: 4, Frequency: 0.5, Persistence: 0.5, Offset: 16}
	coords := Vec2f{X: 1, Y: 2}

	o.Fractal(&src, coords)

	if len(src.samples) != o.Count {
		t.Fatalf("expected %d samples, got %d", o.Count, len(src.samples))
	}

	frequency := o.Frequency
	for i, got := range src.samples {
		expected := coords.Mul(frequency).AddScalar(float32(i) * o.Offset)
		if got != expected {
			t.Errorf("octave %d: expected %s, got %s", i, expected, got)
		}
		frequency *= 2
	}
}

func TestFractal_Source(t *testing.T) {
	g := Gradient{Lattice: DefaultLattice}
	o := DefaultOctaves()
	f := Fractal{Source: g, Octaves: o}

	coords := Vec2f{X: 0.3, Y: 7.1}
	if f.Noise2D(coords) != o.Fractal(g, coords) {
		t.Error("expected Fractal.Noise2D to match Octaves.Fractal")
	}

	// Origin of the first octave is a lattice point, the rest are not
	// necessarily, but the result should still be in range
	if n := f.Noise2D(Vec2f{}); n < 0 || n > 1 {
		t.Errorf("expected [0, 1], got %f", n)
	}
}

func BenchmarkOctaves_Fractal(b *testing.B) {
	g := Gradient{Lattice: DefaultLattice}
	o := DefaultOctaves()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += o.Fractal(g, Vec2f{X: float32(i&1023) * 0.01, Y: 0.5})
	}
	_ = acc
}
