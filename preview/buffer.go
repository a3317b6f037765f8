// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import "io"

// maxRun is the largest count - 1 a tuple can hold.
const maxRun = 15

// Buffer run length encodes the 4 most significant bits of each byte.
// Each encoded byte is 4 bits of data followed by 4 bits of count - 1.
type Buffer struct {
	buf []byte
	off int // Read position
}

func (buffer *Buffer) Reset(buf []byte) {
	buffer.buf = buf
	buffer.off = 0
}

// writeByte encodes b as its 4 most significant bits.
func (buffer *Buffer) writeByte(b byte) {
	buf := buffer.buf
	nibble := b >> 4

	var current, countMinusOne, tuple byte
	end := len(buf) - 1

	if len(buf) > 0 {
		tuple = buf[end]
		current = tuple >> 4
		countMinusOne = tuple & maxRun
	} else {
		countMinusOne = maxRun // Full
	}

	if nibble != current || countMinusOne == maxRun {
		buf = append(buf, nibble<<4)
	} else {
		buf[end] = tuple + 1
	}

	buffer.buf = buf
}

func (buffer *Buffer) Write(buf []byte) (int, error) {
	for _, b := range buf {
		buffer.writeByte(b)
	}
	return len(buf), nil
}

// readByte consumes one byte of the current run. The run count is decremented
// in place, so a Buffer can only be read once.
func (buffer *Buffer) readByte() (b byte, more bool) {
	tuple := buffer.buf[buffer.off]
	b = tuple & 0b11110000

	if tuple&maxRun > 0 {
		buffer.buf[buffer.off] = tuple - 1
		more = true
	} else {
		buffer.off++
		more = buffer.off < len(buffer.buf)
	}
	return
}

func (buffer *Buffer) Read(buf []byte) (int, error) {
	more := buffer.off < len(buffer.buf)
	i := 0

	for ; i < len(buf) && more; i++ {
		buf[i], more = buffer.readByte()
	}

	if i == 0 {
		return 0, io.EOF
	}
	return i, nil
}

// Grow makes space for about n more input bytes.
func (buffer *Buffer) Grow(n int) {
	compressed := n / 2
	if old := buffer.Bytes(); cap(old)-len(old) < compressed {
		buf := make([]byte, len(old), len(old)+compressed)
		copy(buf, old)
		buffer.buf = buf
		buffer.off = 0
	}
}

// Bytes returns the unread encoded bytes.
func (buffer *Buffer) Bytes() []byte {
	return buffer.buf[buffer.off:]
}
