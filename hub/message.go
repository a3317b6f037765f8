// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"github.com/SoftbearStudios/caldeira/cloud/db"
	"github.com/SoftbearStudios/caldeira/preview"
)

type messageType string

const (
	messageProgress messageType = "progress"
	messagePreview  messageType = "preview"
	messageFailed   messageType = "failed"
)

// Message is the envelope of everything sent over a socket.
type Message struct {
	Type messageType `json:"type"`
	Data interface{} `json:"data"`
}

// Progress of the current render.
type Progress struct {
	Done  uint32 `json:"done"`
	Total int    `json:"total"`
}

// Preview of a finished render.
type Preview struct {
	db.Render
	Preview preview.Data `json:"preview"`
}

// Failed render.
type Failed struct {
	Error string `json:"error"`
}

// Status is served as JSON at the index.
type Status struct {
	Rendering bool       `json:"rendering"`
	Clients   int        `json:"clients"`
	Progress  *Progress  `json:"progress,omitempty"`
	Last      *db.Render `json:"last,omitempty"`
	Error     string     `json:"error,omitempty"`
}
