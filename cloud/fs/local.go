// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"os"
	"path/filepath"
)

// LocalFilesystem writes files under a directory. Cache hints are ignored.
type LocalFilesystem struct {
	Dir string
}

func (local LocalFilesystem) Upload(filename string, _ int, _ string, data []byte) error {
	path := filepath.Join(local.Dir, filepath.Clean("/"+filename))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
