// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/spellcheck/avl"
	"github.com/bitmark-inc/spellcheck/dictionary"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type metadata struct {
	file    string
	tree    *avl.Tree[string]
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	m := &metadata{}

	app := cli.NewApp()
	app.Name = "wordtree"
	app.Usage = "query a word list held in an AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "dictionary, d",
			Value: "english.0",
			Usage: " word list, one word per line `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "contains",
			Usage:     "check whether words are in the dictionary",
			ArgsUsage: "WORD...",
			Action:    m.runContains,
		},
		{
			Name:      "successor",
			Usage:     "the smallest word greater than WORD",
			ArgsUsage: "WORD",
			Action:    m.runSuccessor,
		},
		{
			Name:      "predecessor",
			Usage:     "the largest word less than WORD",
			ArgsUsage: "WORD",
			Action:    m.runPredecessor,
		},
		{
			Name:      "neighbours",
			Usage:     "words nearest to WORD in dictionary order",
			ArgsUsage: "WORD",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 3,
					Usage: " number of neighbours `COUNT`",
				},
			},
			Action: m.runNeighbours,
		},
		{
			Name:   "stats",
			Usage:  "size, height and range of the tree",
			Action: m.runStats,
		},
		{
			Name:   "print",
			Usage:  "display the tree sideways",
			Action: m.runPrint,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m.e = c.App.ErrWriter
		m.w = c.App.Writer
		m.verbose = c.GlobalBool("verbose")

		// to suppress reading the dictionary for certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		m.file = c.GlobalString("dictionary")
		if m.verbose {
			fmt.Fprintf(m.e, "reading dictionary: %s\n", m.file)
		}

		d := dictionary.NewTree()
		added, duplicates, err := dictionary.LoadFile(d, m.file)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "words: %d  duplicates: %d\n", added, duplicates)
		}
		m.tree = d.Tree()
		return nil
	}

	return app
}
