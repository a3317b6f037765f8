// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Catalog records published renders.
type Catalog interface {
	PutRender(render Render) error
	// ReadRenders returns renders newest first.
	ReadRenders() ([]Render, error)
}
