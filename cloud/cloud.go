// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"strings"
	"time"

	"github.com/SoftbearStudios/caldeira/cloud/db"
	"github.com/SoftbearStudios/caldeira/cloud/fs"
)

// secondsCache of published images. Renders are immutable once published.
const secondsCache = 60 * 60 * 24

// A nil Cloud is valid to use with any methods (acts as a no-op).
// This just means renders are only written locally.
type Cloud struct {
	stage   string
	fs      fs.Filesystem
	catalog db.Catalog
}

// New connects to S3 and DynamoDB in region.
func New(region, stage string) (*Cloud, error) {
	sess, err := Session(region)
	if err != nil {
		return nil, err
	}

	filesystem, err := fs.NewS3Filesystem(sess, stage)
	if err != nil {
		return nil, err
	}
	catalog, err := db.NewDynamoCatalog(sess, stage)
	if err != nil {
		return nil, err
	}
	return NewWith(stage, filesystem, catalog), nil
}

// NewWith uses existing backends, e.g. fs.LocalFilesystem and db.MemoryCatalog.
func NewWith(stage string, filesystem fs.Filesystem, catalog db.Catalog) *Cloud {
	return &Cloud{stage: stage, fs: filesystem, catalog: catalog}
}

func (cloud *Cloud) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	if cloud == nil {
		builder.WriteString("offline")
	} else {
		builder.WriteString(cloud.stage)
	}
	builder.WriteByte(']')
	return builder.String()
}

// Publish uploads an encoded image and records it in the catalog.
// render.Key is used as the file name; render.Created is filled in if zero.
func (cloud *Cloud) Publish(render db.Render, contentType string, data []byte) error {
	if cloud == nil {
		return nil
	}

	if render.Created == 0 {
		render.Created = time.Now().Unix()
	}
	render.Bytes = len(data)

	if err := cloud.fs.Upload(render.Key, secondsCache, contentType, data); err != nil {
		return err
	}
	return cloud.catalog.PutRender(render)
}

// Renders lists published renders, newest first.
func (cloud *Cloud) Renders() ([]db.Render, error) {
	if cloud == nil {
		return nil, nil
	}
	return cloud.catalog.ReadRenders()
}
