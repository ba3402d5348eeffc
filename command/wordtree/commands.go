// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/spellcheck/dictionary"
	"github.com/bitmark-inc/spellcheck/fault"
)

const noWord = "-"

func (m *metadata) runContains(c *cli.Context) error {
	if 0 == c.NArg() {
		return fault.ErrInvalidArgumentCount
	}
	for _, word := range c.Args() {
		fmt.Fprintf(m.w, "%s: %t\n", word, m.tree.Contains(word))
	}
	return nil
}

func (m *metadata) runSuccessor(c *cli.Context) error {
	word, err := oneWord(c)
	if nil != err {
		return err
	}
	s, ok := m.tree.Successor(word)
	printWord(m.w, s, ok)
	return nil
}

func (m *metadata) runPredecessor(c *cli.Context) error {
	word, err := oneWord(c)
	if nil != err {
		return err
	}
	p, ok := m.tree.Predecessor(word)
	printWord(m.w, p, ok)
	return nil
}

func (m *metadata) runNeighbours(c *cli.Context) error {
	word, err := oneWord(c)
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count < 1 {
		return fault.ErrInvalidSuggestionCount
	}

	// same outward walk the spelling corrector uses
	d := dictionary.NewTreeFrom(m.tree)
	for _, s := range d.Suggest(word, count) {
		fmt.Fprintf(m.w, "%s\n", s)
	}
	return nil
}

type statistics struct {
	Dictionary string `json:"dictionary"`
	Size       int    `json:"size"`
	Height     int    `json:"height"`
	First      string `json:"first,omitempty"`
	Last       string `json:"last,omitempty"`
}

func (m *metadata) runStats(c *cli.Context) error {
	if err := m.tree.Check(); nil != err {
		return err
	}

	stats := statistics{
		Dictionary: m.file,
		Size:       m.tree.Size(),
		Height:     m.tree.Height(),
	}
	if first := m.tree.First(); nil != first {
		stats.First = first.Key()
	}
	if last := m.tree.Last(); nil != last {
		stats.Last = last.Key()
	}
	return printJson(m.w, stats)
}

func (m *metadata) runPrint(c *cli.Context) error {
	m.tree.Print(m.w)
	return nil
}

func oneWord(c *cli.Context) (string, error) {
	if 1 != c.NArg() {
		return "", fault.ErrInvalidArgumentCount
	}
	return c.Args().Get(0), nil
}

func printWord(w io.Writer, word string, ok bool) {
	if !ok {
		word = noWord
	}
	fmt.Fprintf(w, "%s\n", word)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
