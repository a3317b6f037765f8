// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dispatch evaluates a Pipeline once for every coordinate of a Grid,
// in parallel, storing the results to a render.Surface.
package dispatch
