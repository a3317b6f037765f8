// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package job runs a validated configuration end to end: dispatch, encoding
// and the catalog record used when publishing.
package job

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SoftbearStudios/caldeira/cloud/db"
	"github.com/SoftbearStudios/caldeira/config"
	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/render"
)

// Result is a finished render.
type Result struct {
	Config  config.Config
	Image   *render.Image
	Items   uint32
	Started time.Time
	Elapsed time.Duration
}

// Run validates c and dispatches it. diagnostics may be nil; if not, it is
// reset first and can be observed concurrently for progress.
func Run(c config.Config, diagnostics *dispatch.Diagnostics) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pipeline, err := c.Pipeline()
	if err != nil {
		return nil, err
	}

	if diagnostics == nil {
		diagnostics = new(dispatch.Diagnostics)
	} else {
		diagnostics.Reset()
	}

	result := &Result{
		Config:  c,
		Image:   render.NewImage(c.Width, c.Height),
		Started: time.Now(),
	}
	if err := dispatch.Run(c.Grid(), pipeline, result.Image, c.Options(diagnostics)); err != nil {
		return nil, err
	}

	result.Elapsed = time.Since(result.Started)
	result.Items = diagnostics.Items.Load()
	return result, nil
}

// Complete reports whether the diagnostic counter saw every pixel.
func (result *Result) Complete() bool {
	return int(result.Items) == result.Config.Width*result.Config.Height
}

// Encode the image in the configured format.
func (result *Result) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := render.Encode(&buf, result.Image, result.Config.Format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Key is a unique file name for publishing.
func (result *Result) Key() string {
	c := &result.Config
	return fmt.Sprintf("%s-%d-%dx%d-%d%s", c.Family, c.Seed, c.Width, c.Height, result.Started.UnixNano(), c.Format.Extension())
}

// Record describes the result for the catalog.
func (result *Result) Record() db.Render {
	c := &result.Config
	return db.Render{
		Key:     result.Key(),
		Width:   c.Width,
		Height:  c.Height,
		Scale:   c.Scale,
		Family:  c.Family.String(),
		Seed:    c.Seed,
		Items:   result.Items,
		Created: result.Started.Unix(),
	}
}
