// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/SoftbearStudios/caldeira/cloud"
	"github.com/SoftbearStudios/caldeira/config"
	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/hub"
	"golang.org/x/net/netutil"
)

func main() {
	var (
		configPath     string
		maxConnections int
		port           int
		preset         string
		region         string
		stage          string
		verbose        bool
	)

	flag.StringVar(&configPath, "config", "", "JSON config `file`, applied over the preset")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.IntVar(&port, "port", 8192, "http service port")
	flag.StringVar(&preset, "preset", "fractal", "base config of render requests, rendered at startup")
	flag.StringVar(&region, "region", "", "AWS region to publish renders to")
	flag.StringVar(&stage, "stage", "", "stage (bucket and table suffix) to publish renders to")
	flag.BoolVar(&verbose, "v", false, "log dispatch events")
	flag.Parse()

	base, err := config.Preset(preset)
	if err != nil {
		log.Fatal(err)
	}
	if configPath != "" {
		if base, err = config.Load(configPath, base); err != nil {
			log.Fatal(err)
		}
	}

	if verbose {
		dispatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var c *cloud.Cloud
	if region != "" || stage != "" {
		if c, err = cloud.New(region, stage); err != nil {
			// Cloud is not required for server to function, just log an error
			log.Printf("Cloud error: %v\n", err)
			c = nil
		}
	}

	h := hub.New(base, c)
	go h.Run()

	if err := h.Render(base); err != nil {
		log.Fatal("initial render: ", err)
	}

	log.Printf("preview server started on :%d %s\n", port, c)

	http.Handle("/", h.Handler())

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
