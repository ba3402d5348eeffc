// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// command handler
//
// commands that do not need the configuration file; returns false
// if the arguments are not a command and should be processed as
// file names
func processCommand(program string, arguments []string) bool {
	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		usage(program)

	default:
		return false
	}
	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--version] --config-file=FILE INPUT-FILE\n", program)
	fmt.Printf("       %s [help|version]\n\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version string\n\n")

	fmt.Printf("otherwise INPUT-FILE is read one word per line and the corrected\n")
	fmt.Printf("words are written to the output file set in the configuration\n\n")
}

// terminate with the usage message
func usageError(program string, format string, arguments ...interface{}) {
	fmt.Printf("error: "+format+"\n", arguments...)
	usage(program)
	exitwithstatus.Exit(1)
}
