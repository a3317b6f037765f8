// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail fits img within a size by size square, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Thumbnail(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if size <= 0 || (width <= size && height <= size) {
		return img
	}

	newWidth, newHeight := size, size
	aspect := float32(width) / float32(height)
	switch {
	case aspect < 1:
		newWidth = int(aspect * float32(size))
	case aspect > 1:
		newHeight = int(float32(size) / aspect)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	return resize.Resize(uint(newWidth), uint(newHeight), img, resize.Lanczos3)
}
