// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
	formatCount
)

var formatExtensions = [formatCount]string{
	FormatPNG:  ".png",
	FormatBMP:  ".bmp",
	FormatTIFF: ".tiff",
}

var formatContentTypes = [formatCount]string{
	FormatPNG:  "image/png",
	FormatBMP:  "image/bmp",
	FormatTIFF: "image/tiff",
}

// ParseFormat accepts a format name or file extension, e.g. "png" or ".tif".
func ParseFormat(name string) (Format, error) {
	name = strings.TrimPrefix(strings.ToLower(name), ".")
	if name == "tif" {
		name = "tiff"
	}
	for f, ext := range formatExtensions {
		if ext[1:] == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}

func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatExtensions[f][1:]
}

func (f Format) MarshalText() ([]byte, error) {
	if f >= formatCount {
		return nil, fmt.Errorf("invalid image format %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFormat(string(text))
	return
}

// Extension includes the leading dot.
func (f Format) Extension() string {
	return formatExtensions[f]
}

func (f Format) ContentType() string {
	return formatContentTypes[f]
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("invalid image format %d", uint8(format))
	}
}
