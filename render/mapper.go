// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Mapper turns a noise sample into an opaque pixel.
type Mapper interface {
	Map(v float32) color.RGBA
}

// Gray copies the quantized sample to R, G and B.
type Gray struct{}

func (Gray) Map(v float32) color.RGBA {
	b := ToByte(v)
	return color.RGBA{R: b, G: b, B: b, A: 255}
}

// Channel is an affine pre-scaling applied before quantization.
type Channel struct {
	Offset float32 `json:"offset"`
	Scale  float32 `json:"scale"`
}

func (c Channel) apply(v float32) uint8 {
	return ToByte((v - c.Offset) * c.Scale)
}

// Affine derives each channel independently from one sample.
// A zero Channel always yields 0.
type Affine struct {
	R Channel `json:"r"`
	G Channel `json:"g"`
	B Channel `json:"b"`
}

func (a Affine) Map(v float32) color.RGBA {
	return color.RGBA{R: a.R.apply(v), G: a.G.apply(v), B: a.B.apply(v), A: 255}
}

// Flame is a two tone red/yellow gradient.
var Flame = Affine{
	R: Channel{Scale: 2},
	G: Channel{Offset: 0.23, Scale: 2},
}

var mappers = map[string]Mapper{
	"gray":    Gray{},
	"flame":   Flame,
	"terrain": TerrainPalette,
	"ember":   EmberPalette,
}

// ParseMapper looks up a named Mapper.
func ParseMapper(name string) (Mapper, error) {
	if m, ok := mappers[strings.ToLower(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("unknown mapper %q (expected one of %s)", name, strings.Join(MapperNames(), ", "))
}

// MapperNames returns the names accepted by ParseMapper, sorted.
func MapperNames() []string {
	names := make([]string, 0, len(mappers))
	for name := range mappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
