// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import "github.com/SoftbearStudios/caldeira/noise"

// ToByte quantizes v in [0, 1] to a channel value, saturating outside that
// range. NaN maps to 0.
func ToByte(v float32) uint8 {
	if v >= 1.0 {
		return 255
	}
	if !(v > 0) {
		return 0
	}
	return uint8(v * 256)
}

// ToBytes applies ToByte component-wise.
func ToBytes(vec noise.Vec2f) [2]uint8 {
	return [2]uint8{ToByte(vec.X), ToByte(vec.Y)}
}
