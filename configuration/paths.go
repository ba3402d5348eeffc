// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken to be under directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory setting
//
// "." means the directory holding the configuration file; empty and
// "~" are rejected and the result must be an existing directory
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	if "" == dataDirectory || "~" == dataDirectory {
		return "", fmt.Errorf("path: %q is not a valid directory", dataDirectory)
	}

	if "." == dataDirectory {
		absolute, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return "", err
		}
		dataDirectory, _ = filepath.Split(absolute)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fmt.Errorf("path: %q is not a directory", dataDirectory)
	}
	return dataDirectory, nil
}
