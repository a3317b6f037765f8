// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Render describes a published image.
type Render struct {
	Key    string  `dynamo:"key" json:"key"`
	Width  int     `dynamo:"width" json:"width"`
	Height int     `dynamo:"height" json:"height"`
	Scale  float32 `dynamo:"scale" json:"scale"`
	Family string  `dynamo:"family" json:"family"`
	Seed   int64   `dynamo:"seed" json:"seed"`
	// Items is the diagnostic counter after the dispatch.
	Items   uint32 `dynamo:"items" json:"items"`
	Bytes   int    `dynamo:"bytes" json:"bytes"`
	Created int64  `dynamo:"created" json:"created"`
	TTL     int64  `dynamo:"ttl,omitempty" json:"-"`
}
