// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hub serves renders over HTTP and streams their progress to
// websocket clients.
package hub

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/SoftbearStudios/caldeira/cloud"
	"github.com/SoftbearStudios/caldeira/cloud/db"
	"github.com/SoftbearStudios/caldeira/config"
	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/job"
	"github.com/SoftbearStudios/caldeira/preview"
	"github.com/SoftbearStudios/caldeira/render"
)

const (
	progressPeriod = time.Second / 10

	// previewSize bounds both dimensions of previews in pixels.
	previewSize = 128
)

// ErrBusy is returned by Render while another render is running.
var ErrBusy = errors.New("a render is already running")

// finished is sent from a render goroutine back to the hub.
type finished struct {
	result *job.Result
	data   []byte
	err    error
}

// encoded is the last successful render, served atomically over HTTP.
type encoded struct {
	contentType string
	data        []byte
}

// Hub owns the set of socket clients and at most one running render.
type Hub struct {
	base  config.Config
	cloud *cloud.Cloud

	clients map[*SocketClient]struct{}

	// Render state
	rendering   atomic.Bool
	total       atomic.Int64
	diagnostics dispatch.Diagnostics

	// Only accessed by Run
	lastPreview *Message
	lastRender  *db.Render
	lastError   string

	// Served atomically by HTTP
	statusJSON atomic.Value // []byte
	image      atomic.Pointer[encoded]

	// Inbound channels
	register   chan *SocketClient
	unregister chan *SocketClient
	finished   chan finished
	done       chan struct{}

	progressTicker *time.Ticker
}

// New creates a Hub. base is the configuration render requests are decoded
// over. A nil cloud keeps renders in memory only.
func New(base config.Config, c *cloud.Cloud) *Hub {
	h := &Hub{
		base:           base,
		cloud:          c,
		clients:        make(map[*SocketClient]struct{}),
		register:       make(chan *SocketClient, 8),
		unregister:     make(chan *SocketClient, 16),
		finished:       make(chan finished, 1),
		done:           make(chan struct{}),
		progressTicker: time.NewTicker(progressPeriod),
	}
	h.updateStatus()
	return h
}

// Run handles clients and render completion until Close is called.
func (h *Hub) Run() {
	defer h.progressTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			client.Init()
			if h.lastPreview != nil {
				client.Send(*h.lastPreview)
			}
			h.updateStatus()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.updateStatus()
		case f := <-h.finished:
			h.finish(f)
		case <-h.progressTicker.C:
			if h.rendering.Load() {
				h.broadcast(Message{Type: messageProgress, Data: h.progress()})
				h.updateStatus()
			}
		case <-h.done:
			for client := range h.clients {
				client.Close()
			}
			return
		}
	}
}

// Close stops Run.
func (h *Hub) Close() {
	close(h.done)
}

// Render validates c and starts rendering it in the background.
// It returns a *config.Error for invalid configurations and ErrBusy if a
// render is already running.
func (h *Hub) Render(c config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !h.rendering.CompareAndSwap(false, true) {
		return ErrBusy
	}

	h.total.Store(int64(c.Width * c.Height))
	go h.execute(c)
	return nil
}

// execute runs on its own goroutine.
func (h *Hub) execute(c config.Config) {
	result, err := job.Run(c, &h.diagnostics)
	if err != nil {
		h.finished <- finished{err: err}
		return
	}

	data, err := result.Encode()
	if err == nil {
		err = h.cloud.Publish(result.Record(), c.Format.ContentType(), data)
		if err != nil {
			// Publishing is optional, keep the local result
			log.Printf("publish error: %v\n", err)
			err = nil
		}
	}
	h.finished <- finished{result: result, data: data, err: err}
}

func (h *Hub) finish(f finished) {
	h.rendering.Store(false)

	if f.err != nil {
		log.Println("render error:", f.err)
		h.broadcast(Message{Type: messageFailed, Data: Failed{Error: f.err.Error()}})
		h.lastError = f.err.Error()
		h.updateStatus()
		return
	}

	if !f.result.Complete() {
		log.Printf("render counted %d of %d pixels\n", f.result.Items, h.total.Load())
	}

	h.image.Store(&encoded{contentType: f.result.Config.Format.ContentType(), data: f.data})

	record := f.result.Record()
	message := Message{Type: messagePreview, Data: Preview{
		Render:  record,
		Preview: preview.Encode(render.Thumbnail(f.result.Image.RGBA, previewSize), 1),
	}}
	h.lastPreview = &message
	h.broadcast(message)

	h.lastRender = &record
	h.lastError = ""
	h.updateStatus()
}

func (h *Hub) progress() *Progress {
	return &Progress{Done: h.diagnostics.Items.Load(), Total: int(h.total.Load())}
}

func (h *Hub) broadcast(message Message) {
	for client := range h.clients {
		client.Send(message)
	}
}

// updateStatus must be called on the Run goroutine (or before it starts).
func (h *Hub) updateStatus() {
	status := Status{
		Rendering: h.rendering.Load(),
		Clients:   len(h.clients),
		Last:      h.lastRender,
		Error:     h.lastError,
	}
	if status.Rendering {
		status.Progress = h.progress()
	}

	buf, err := config.JSON.Marshal(status)
	if err != nil {
		log.Println("status marshal error:", err)
		return
	}
	h.statusJSON.Store(buf)
}
