// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
)

// relative paths are taken from directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// CreateDirectories - make the log and database directories
//
// the data directory itself must already exist
func (c *Configuration) CreateDirectories() error {
	for _, d := range []string{c.Logging.Directory, c.Database.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
