// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SoftbearStudios/caldeira/config"
)

// maxConfigSize bounds render request bodies.
const maxConfigSize = 1 << 16

// Handler routes:
//
//	GET  /        status JSON
//	GET  /image   last render, encoded in its configured format
//	POST /render  JSON config, decoded over the hub's base config
//	GET  /ws      progress and preview stream
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serveIndex)
	mux.HandleFunc("/image", h.serveImage)
	mux.HandleFunc("/render", h.serveRender)
	mux.HandleFunc("/ws", h.serveWs)
	return mux
}

func (h *Hub) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	if buf, ok := h.statusJSON.Load().([]byte); ok {
		_, _ = w.Write(buf)
	}
}

func (h *Hub) serveImage(w http.ResponseWriter, r *http.Request) {
	img := h.image.Load()
	if img == nil {
		http.Error(w, "nothing rendered yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", img.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.data)))
	_, _ = w.Write(img.data)
}

func (h *Hub) serveRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "POST a render config", http.StatusMethodNotAllowed)
		return
	}

	c, err := config.Decode(http.MaxBytesReader(w, r.Body, maxConfigSize), h.base)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var cfgErr *config.Error
	switch err = h.Render(c); {
	case err == nil:
		w.WriteHeader(http.StatusAccepted)
	case errors.Is(err, ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &cfgErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Hub) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	h.register <- NewSocketClient(h, conn)
}
