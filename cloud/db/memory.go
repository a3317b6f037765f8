// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import "sync"

// MemoryCatalog is a Catalog for offline use. Renders with the same key
// replace each other.
type MemoryCatalog struct {
	mutex   sync.Mutex
	renders map[string]Render
}

func (catalog *MemoryCatalog) PutRender(render Render) error {
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()

	if catalog.renders == nil {
		catalog.renders = make(map[string]Render)
	}
	catalog.renders[render.Key] = render
	return nil
}

func (catalog *MemoryCatalog) ReadRenders() ([]Render, error) {
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()

	renders := make([]Render, 0, len(catalog.renders))
	for _, r := range catalog.renders {
		renders = append(renders, r)
	}
	sortRenders(renders)
	return renders, nil
}
