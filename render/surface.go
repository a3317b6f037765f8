// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"image"
	"image/color"
)

// Surface receives one pixel per coordinate of a dispatch.
// Store may be called concurrently for distinct coordinates, in any order.
type Surface interface {
	Store(x, y int, c color.RGBA)
}

// Image is a Surface backed by an *image.RGBA.
// Distinct coordinates occupy distinct bytes, so no locking is needed.
type Image struct {
	*image.RGBA
}

func NewImage(width, height int) *Image {
	return &Image{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Store implements Surface.Store.
func (img *Image) Store(x, y int, c color.RGBA) {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}
