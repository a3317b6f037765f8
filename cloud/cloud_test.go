// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SoftbearStudios/caldeira/cloud/db"
	"github.com/SoftbearStudios/caldeira/cloud/fs"
)

func TestCloud_Publish(t *testing.T) {
	dir := t.TempDir()
	c := NewWith("test", fs.LocalFilesystem{Dir: dir}, &db.MemoryCatalog{})

	data := []byte("not really a png")
	if err := c.Publish(db.Render{Key: "a/one.png", Width: 2, Height: 3, Items: 6, Created: 10}, "image/png", data); err != nil {
		t.Fatal(err)
	}
	if err := c.Publish(db.Render{Key: "two.png", Created: 20}, "image/png", nil); err != nil {
		t.Fatal(err)
	}

	written, err := os.ReadFile(filepath.Join(dir, "a", "one.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, data) {
		t.Errorf("expected %q, got %q", data, written)
	}

	renders, err := c.Renders()
	if err != nil {
		t.Fatal(err)
	}
	if len(renders) != 2 || renders[0].Key != "two.png" || renders[1].Key != "a/one.png" {
		t.Fatalf("expected newest first, got %+v", renders)
	}
	if renders[1].Bytes != len(data) {
		t.Errorf("expected %d bytes recorded, got %d", len(data), renders[1].Bytes)
	}
}

func TestCloud_Offline(t *testing.T) {
	var c *Cloud
	if err := c.Publish(db.Render{Key: "x"}, "", nil); err != nil {
		t.Error(err)
	}
	if renders, err := c.Renders(); err != nil || renders != nil {
		t.Errorf("expected no renders, got %v %v", renders, err)
	}
	if c.String() != "[offline]" {
		t.Errorf("unexpected %s", c)
	}
}

func TestLocalFilesystem_Escape(t *testing.T) {
	dir := t.TempDir()
	local := fs.LocalFilesystem{Dir: filepath.Join(dir, "inner")}

	if err := local.Upload("../../escape.txt", 0, "", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "inner", "escape.txt")); err != nil {
		t.Errorf("expected file to stay inside the directory: %v", err)
	}
}
