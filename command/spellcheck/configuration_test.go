// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
)

func writeConfiguration(t *testing.T, source string) (string, string) {
	dir, err := os.MkdirTemp("", "spellcheck")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "spellcheck.conf")
	if err := os.WriteFile(fileName, []byte(source), 0o600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return filepath.Clean(dir), fileName
}

func TestConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, "tree", c.Backend, "backend")
	assert.Equal(t, filepath.Join(dir, "english.0"), c.Dictionary, "dictionary")
	assert.Equal(t, filepath.Join(dir, "output.txt"), c.Output, "output")
	assert.Equal(t, 3, c.Suggestions, "suggestions")
	assert.True(t, c.Interactive, "interactive")
	assert.False(t, c.WatchDictionary, "watch")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "spellcheck.log", c.Logging.File, "log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "log level")
}

func TestConfigurationOverrides(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.backend = "TRIE"
M.dictionary = "/usr/share/dict/words"
M.output = "corrected.txt"
M.suggestions = 5
M.interactive = false
M.watch_dictionary = true
return M
`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")

	assert.Equal(t, "trie", c.Backend, "backend is lower cased")
	assert.Equal(t, "/usr/share/dict/words", c.Dictionary, "absolute dictionary")
	assert.Equal(t, filepath.Join(dir, "corrected.txt"), c.Output, "output")
	assert.Equal(t, 5, c.Suggestions, "suggestions")
	assert.False(t, c.Interactive, "interactive")
	assert.True(t, c.WatchDictionary, "watch")
}

func TestConfigurationErrors(t *testing.T) {
	sources := []string{
		`return { }`,
		`return { data_directory = "~" }`,
		`return { data_directory = ".", backend = "hash" }`,
		`return { data_directory = ".", suggestions = 0 }`,
		`return { data_directory = ".", suggestions = 1000 }`,
		`return { data_directory = "/no/such/directory" }`,
	}

	for i, source := range sources {
		dir, fileName := writeConfiguration(t, source)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: %s", i, source)
		os.RemoveAll(dir)
	}
}
