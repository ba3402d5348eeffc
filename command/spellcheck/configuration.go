// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spellcheck/configuration"
	"github.com/bitmark-inc/spellcheck/dictionary"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultBackend     = dictionary.Tree
	defaultDictionary  = "english.0"
	defaultOutput      = "output.txt"
	defaultSuggestions = 3
	maximumSuggestions = 100

	defaultLogDirectory = "log"
	defaultLogFile      = "spellcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the settings from the Lua configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Backend         string               `gluamapper:"backend" json:"backend"`
	Dictionary      string               `gluamapper:"dictionary" json:"dictionary"`
	Output          string               `gluamapper:"output" json:"output"`
	Suggestions     int                  `gluamapper:"suggestions" json:"suggestions"`
	Interactive     bool                 `gluamapper:"interactive" json:"interactive"`
	WatchDictionary bool                 `gluamapper:"watch_dictionary" json:"watch_dictionary"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		Backend:         defaultBackend,
		Dictionary:      defaultDictionary,
		Output:          defaultOutput,
		Suggestions:     defaultSuggestions,
		Interactive:     true,
		WatchDictionary: false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Backend = strings.ToLower(options.Backend)
	if !dictionary.ValidBackend(options.Backend) {
		return nil, fmt.Errorf("backend: %q is not supported", options.Backend)
	}

	if options.Suggestions <= 0 || options.Suggestions > maximumSuggestions {
		return nil, fmt.Errorf("suggestions: %d is outside 1..%d", options.Suggestions, maximumSuggestions)
	}

	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Dictionary,
		&options.Output,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}
