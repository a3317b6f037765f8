// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preview compresses rendered images into small 4 bit luminance
// previews for streaming to clients while full images are encoded.
package preview

import (
	"errors"
	"image"
	"image/color"
)

// Data is a compressed preview.
type Data struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Length int    `json:"length"` // Length is the decoded length of Data.
	Data   []byte `json:"data"`
}

// Encode compresses the luminance of img, sampling every step-th pixel in
// each direction. step must be positive.
func Encode(img image.Image, step int) Data {
	if step < 1 {
		step = 1
	}

	bounds := img.Bounds()
	width := (bounds.Dx() + step - 1) / step
	height := (bounds.Dy() + step - 1) / step

	var buffer Buffer
	buffer.Grow(width * height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			buffer.writeByte(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}

	return Data{
		Width:  width,
		Height: height,
		Length: width * height,
		Data:   buffer.Bytes(),
	}
}

// Decode expands a preview into a grayscale image with 4 bits of precision.
// data.Data is consumed.
func Decode(data Data) (*image.Gray, error) {
	if data.Width*data.Height != data.Length {
		return nil, errors.New("preview dimensions do not match length")
	}

	img := image.NewGray(image.Rect(0, 0, data.Width, data.Height))

	var buffer Buffer
	buffer.Reset(data.Data)
	n, _ := buffer.Read(img.Pix)
	if n != data.Length {
		return nil, errors.New("preview data truncated")
	}
	return img, nil
}
