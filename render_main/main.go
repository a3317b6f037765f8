// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/SoftbearStudios/caldeira/cloud"
	"github.com/SoftbearStudios/caldeira/config"
	"github.com/SoftbearStudios/caldeira/dispatch"
	"github.com/SoftbearStudios/caldeira/job"
	"github.com/SoftbearStudios/caldeira/render"
)

func main() {
	var (
		configPath   string
		cpuProfile   string
		format       string
		height       int
		output       string
		preset       string
		seed         int64
		thumbnail    int
		uploadRegion string
		uploadStage  string
		verbose      bool
		width        int
		workers      int
	)

	flag.StringVar(&configPath, "config", "", "JSON config `file`, applied over the preset")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&format, "format", "", "image format (png, bmp or tiff)")
	flag.IntVar(&height, "height", 0, "image height in pixels")
	flag.StringVar(&output, "o", "", "output `file` (default out.<format>)")
	flag.StringVar(&preset, "preset", "fractal", "starting config, one of fractal, simplex or terrain")
	flag.Int64Var(&seed, "seed", 0, "lattice seed, 0 for the reference lattice")
	flag.IntVar(&thumbnail, "thumbnail", 0, "also write a PNG thumbnail at most this many pixels wide and high")
	flag.StringVar(&uploadRegion, "upload-region", "", "AWS region to publish to")
	flag.StringVar(&uploadStage, "upload-stage", "", "stage (bucket and table suffix) to publish to")
	flag.BoolVar(&verbose, "v", false, "log dispatch events")
	flag.IntVar(&width, "width", 0, "image width in pixels")
	flag.IntVar(&workers, "workers", 0, "maximum concurrent rows, 0 for unlimited")
	flag.Parse()

	c, err := config.Preset(preset)
	if err != nil {
		log.Fatal(err)
	}
	if configPath != "" {
		if c, err = config.Load(configPath, c); err != nil {
			log.Fatal(err)
		}
	}

	// Explicit flags win over the preset and the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			if c.Format, err = render.ParseFormat(format); err != nil {
				log.Fatal(err)
			}
		case "height":
			c.Height = height
		case "seed":
			c.Seed = seed
		case "width":
			c.Width = width
		case "workers":
			c.Workers = workers
		}
	})

	if output == "" {
		output = "out" + c.Format.Extension()
	}

	if verbose {
		dispatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(c, output, thumbnail, uploadRegion, uploadStage); err != nil {
		// Not log.Fatal, so the profile is flushed.
		log.Println(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(c config.Config, output string, thumbnail int, uploadRegion, uploadStage string) error {
	var diagnostics dispatch.Diagnostics
	result, err := job.Run(c, &diagnostics)
	if err != nil {
		return err
	}

	first, _ := diagnostics.FirstIndex()
	log.Printf("rendered %dx%d %s in %s (%d items, first %d)\n",
		c.Width, c.Height, c.Family, result.Elapsed, result.Items, first)
	if !result.Complete() {
		log.Printf("warning: counted %d items, expected %d\n", result.Items, c.Width*c.Height)
	}

	data, err := result.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s (%dkb)\n", output, len(data)/1024)

	if thumbnail > 0 {
		var buf bytes.Buffer
		if err := render.Encode(&buf, render.Thumbnail(result.Image.RGBA, thumbnail), render.FormatPNG); err != nil {
			return err
		}
		name := strings.TrimSuffix(output, filepath.Ext(output)) + ".thumb.png"
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	if uploadRegion == "" && uploadStage == "" {
		return nil
	}

	cl, err := cloud.New(uploadRegion, uploadStage)
	if err != nil {
		return err
	}
	record := result.Record()
	if err := cl.Publish(record, c.Format.ContentType(), data); err != nil {
		return err
	}
	log.Printf("published %s to %s\n", record.Key, cl)
	return nil
}
