// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// roundByte rounds a byte to 4 bits of precision.
func roundByte(b byte) byte {
	return b & 0b11110000
}

func TestBuffer_Write(t *testing.T) {
	const n = 1024
	var buffer Buffer

	_, _ = buffer.Write(make([]byte, n))

	if buf := buffer.Bytes(); len(buf) != n/16 {
		t.Error("Buffer.Write(make([]byte, 1024) expected", n/16, "got", len(buf))
	}
}

func TestBuffer_Read(t *testing.T) {
	const n = 1024
	var buffer Buffer

	input := make([]byte, n)
	for i := range input {
		input[i] = roundByte(byte(rand.Intn(256)))
	}

	_, _ = buffer.Write(input)

	output := make([]byte, n*2)
	r, _ := buffer.Read(output)
	output = output[:r]

	if !bytes.Equal(input, output) {
		t.Error("Buffer.Read expected", len(input), "got", len(output))
	}
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(x * 6)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	data := Encode(img, 2)
	if data.Width != 20 || data.Height != 10 || data.Length != 200 {
		t.Fatalf("unexpected dimensions %dx%d (%d)", data.Width, data.Height, data.Length)
	}
	if len(data.Data) >= data.Length {
		t.Errorf("expected compression, got %d bytes for %d pixels", len(data.Data), data.Length)
	}

	gray, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			expected := roundByte(uint8(x * 2 * 6))
			if got := gray.GrayAt(x, y).Y; got != expected {
				t.Fatalf("(%d, %d) expected %d, got %d", x, y, expected, got)
			}
		}
	}

	if _, err := Decode(Data{Width: 2, Height: 2, Length: 3}); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if _, err := Decode(Data{Width: 2, Height: 2, Length: 4, Data: []byte{0x10}}); err == nil {
		t.Error("expected truncation error")
	}
}
