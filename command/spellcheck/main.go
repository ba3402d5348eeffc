// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spellcheck/corrector"
	"github.com/bitmark-inc/spellcheck/dictionary"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConfigurationFile = "spellcheck.conf"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if processCommand(program, arguments) {
		return
	}

	if 1 != len(arguments) {
		usageError(program, "exactly one INPUT-FILE is required, %d were given", len(arguments))
	}
	inputFile := arguments[0]

	configurationFile := defaultConfigurationFile
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	build := func() (dictionary.Dictionary, error) {
		d, duplicates, err := dictionary.Open(masterConfiguration.Backend, masterConfiguration.Dictionary)
		if nil != err {
			return nil, err
		}
		log.Infof("dictionary: %q  backend: %s  words: %d  duplicates: %d",
			masterConfiguration.Dictionary, masterConfiguration.Backend, d.Size(), duplicates)
		return d, nil
	}

	d, err := build()
	if nil != err {
		log.Criticalf("dictionary: %q  error: %s", masterConfiguration.Dictionary, err)
		exitwithstatus.Message("%s: failed to load dictionary: %q  error: %s", program, masterConfiguration.Dictionary, err)
	}
	shared := dictionary.NewShared(d)

	var chooser corrector.Chooser = corrector.First{}
	if masterConfiguration.Interactive {
		chooser = corrector.NewInteractive(os.Stdin, os.Stdout)
	}

	c, err := corrector.New(shared, chooser, masterConfiguration.Suggestions, logger.New("corrector"))
	if nil != err {
		exitwithstatus.Message("%s: corrector setup failed with error: %s", program, err)
	}

	if masterConfiguration.WatchDictionary {
		shared.OnReplace(c.Forget)
		reload := func() error {
			return shared.Reload(build)
		}
		watcher, err := dictionary.NewWatcher(masterConfiguration.Dictionary, logger.New("watcher"), reload)
		if nil != err {
			exitwithstatus.Message("%s: dictionary watcher setup failed with error: %s", program, err)
		}
		if err := watcher.Start(); nil != err {
			exitwithstatus.Message("%s: dictionary watcher start failed with error: %s", program, err)
		}
		defer watcher.Stop()
	}

	stats, err := run(c, inputFile, masterConfiguration.Output)
	if nil != err {
		log.Criticalf("input: %q  output: %q  error: %s", inputFile, masterConfiguration.Output, err)
		exitwithstatus.Message("%s: correction failed with error: %s", program, err)
	}

	if !quiet {
		fmt.Printf("output: %s\n", masterConfiguration.Output)
		fmt.Printf("%s\n", stats)
	}
}

// correct the input file into the output file
func run(c *corrector.Corrector, inputFile string, outputFile string) (corrector.Statistics, error) {
	in, err := os.Open(inputFile)
	if nil != err {
		return corrector.Statistics{}, err
	}
	defer in.Close()

	out, err := os.Create(outputFile)
	if nil != err {
		return corrector.Statistics{}, err
	}

	stats, err := c.Process(in, out)
	if e := out.Close(); nil == err {
		err = e
	}
	return stats, err
}
