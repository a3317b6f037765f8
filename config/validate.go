// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/SoftbearStudios/caldeira/render"
	"github.com/chewxy/math32"
)

// Error is a configuration parameter that cannot be rendered.
type Error struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func invalid(param string, value interface{}, reason string) *Error {
	return &Error{Param: param, Value: value, Reason: reason}
}

// Validate returns the first invalid parameter as an *Error.
// It is meant to be called once, before dispatching.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return invalid("width", c.Width, "must be positive")
	case c.Height <= 0:
		return invalid("height", c.Height, "must be positive")
	case uint64(c.Width)*uint64(c.Height) > 1<<32-1:
		return invalid("size", fmt.Sprintf("%dx%d", c.Width, c.Height), "too many pixels")
	case !(c.Scale > 0) || math32.IsInf(c.Scale, 0):
		return invalid("scale", c.Scale, "must be positive and finite")
	case c.Workers < 0:
		return invalid("workers", c.Workers, "must not be negative")
	}

	if _, err := c.Family.MarshalText(); err != nil {
		return invalid("family", c.Family, err.Error())
	}
	if _, err := c.Format.MarshalText(); err != nil {
		return invalid("format", c.Format, err.Error())
	}
	if _, err := render.ParseMapper(c.Mapper); err != nil {
		return invalid("mapper", c.Mapper, err.Error())
	}

	if c.Fractal {
		o := c.Octaves
		switch {
		case o.Count <= 0:
			return invalid("octaves.count", o.Count, "must be positive")
		case !(o.Frequency > 0) || math32.IsInf(o.Frequency, 0):
			return invalid("octaves.frequency", o.Frequency, "must be positive and finite")
		case !(o.Persistence > 0 && o.Persistence < 1):
			return invalid("octaves.persistence", o.Persistence, "must be in (0, 1)")
		case !(o.Offset >= 0) || math32.IsInf(o.Offset, 0):
			return invalid("octaves.offset", o.Offset, "must be non-negative and finite")
		}
	}

	return nil
}
