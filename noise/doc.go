// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise implements deterministic 2D gradient and simplex noise over a
// shared, immutable Lattice, and fractal composition of either.
package noise
