// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "testing"

func TestSkew(t *testing.T) {
	if !approx(Skew(2), F2) {
		t.Errorf("expected Skew(2) %f, got %f", F2, Skew(2))
	}
	if !approx(Unskew(2), G2) {
		t.Errorf("expected Unskew(2) %f, got %f", G2, Unskew(2))
	}

	// Unskew undoes Skew
	p := Vec2f{X: 3.25, Y: -1.5}
	skewed := p.AddScalar(p.Sum() * F2)
	unskewed := skewed.AddScalar(-skewed.Sum() * G2)
	if !approx(p.X, unskewed.X) || !approx(p.Y, unskewed.Y) {
		t.Errorf("expected %s, got %s", p, unskewed)
	}
}

func TestRadial(t *testing.T) {
	tests := []struct {
		t, expected float32
	}{
		{0, 0.0625 * F2},
		{0.25, 0.00390625 * F2},
		{0.5, 0},
		{0.75, 0},
		{10, 0},
	}

	for _, test := range tests {
		if got := Radial(test.t); !approx(got, test.expected) {
			t.Errorf("Radial(%f) expected %f, got %f", test.t, test.expected, got)
		}
	}

	// Exactly zero outside the radius
	if Radial(0.5000001) != 0 {
		t.Error("expected exact zero beyond radius")
	}
}

func TestFade(t *testing.T) {
	if Fade(0) != 0 || Fade(1) != 1 || Fade(0.5) != 0.5 {
		t.Errorf("unexpected endpoints %f %f %f", Fade(0), Fade(0.5), Fade(1))
	}

	prev := float32(0)
	for x := float32(0.01); x <= 1; x += 0.01 {
		f := Fade(x)
		if f < prev {
			t.Errorf("Fade not monotonic at %f", x)
		}
		prev = f
	}
}
