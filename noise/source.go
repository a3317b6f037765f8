// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"fmt"
	"strings"
)

// Source evaluates a single 2D noise sample.
// Implementations must be pure and safe for concurrent use.
type Source interface {
	Noise2D(coords Vec2f) float32
}

// Family names a Source implementation.
type Family uint8

const (
	FamilyGradient Family = iota
	FamilySimplex
	FamilyPerlin
	FamilyOpenSimplex
	familyCount
)

var familyNames = [familyCount]string{
	FamilyGradient:    "gradient",
	FamilySimplex:     "simplex",
	FamilyPerlin:      "perlin",
	FamilyOpenSimplex: "opensimplex",
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if strings.EqualFold(name, n) {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("unknown noise family %q", name)
}

func (f Family) String() string {
	if f >= familyCount {
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
	return familyNames[f]
}

func (f Family) MarshalText() ([]byte, error) {
	if f >= familyCount {
		return nil, fmt.Errorf("invalid noise family %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFamily(string(text))
	return
}

// Unit reports whether the family's samples are remapped to [0, 1] (as opposed
// to roughly [-1, 1]).
func (f Family) Unit() bool {
	return f == FamilyGradient || f == FamilyPerlin
}

// Source creates a Source of this family. lattice is used by the engine's own
// evaluators and seed by the third party reference implementations.
func (f Family) Source(lattice *Lattice, seed int64) Source {
	switch f {
	case FamilySimplex:
		return Simplex{Lattice: lattice}
	case FamilyPerlin:
		return NewPerlin(seed)
	case FamilyOpenSimplex:
		return NewOpenSimplex(seed)
	default:
		return Gradient{Lattice: lattice}
	}
}
