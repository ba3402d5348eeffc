// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corrector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/spellcheck/fault"
)

// Chooser - pick the replacement for a misspelt word
type Chooser interface {
	Choose(word string, suggestions []string) (string, error)
}

// First - always take the first suggestion
type First struct{}

// Choose - the first suggestion
func (First) Choose(word string, suggestions []string) (string, error) {
	if 0 == len(suggestions) {
		return word, fault.ErrNoSuggestions
	}
	return suggestions[0], nil
}

// Keep - never change a word, for reporting only
type Keep struct{}

// Choose - the original word
func (Keep) Choose(word string, suggestions []string) (string, error) {
	return word, nil
}

// number of attempts to read a valid choice
const maximumAttempts = 3

// Interactive - ask the user to pick by number
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive - prompt on out and read the answers from in
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose - list the suggestions and read the number of the one to use
func (c *Interactive) Choose(word string, suggestions []string) (string, error) {
	if 0 == len(suggestions) {
		return word, fault.ErrNoSuggestions
	}

	fmt.Fprintf(c.out, "%q: Select among the following suggestions\n", word)
	for i, s := range suggestions {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, s)
	}

	for attempt := 0; attempt < maximumAttempts; attempt += 1 {
		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)

		if "" == line && nil != err {
			// end of input: no more answers are coming
			return word, fault.ErrInvalidChoice
		}

		n, e := strconv.Atoi(line)
		if nil == e && n >= 1 && n <= len(suggestions) {
			return suggestions[n-1], nil
		}
		fmt.Fprintf(c.out, "enter a number from 1 to %d\n", len(suggestions))

		if nil != err {
			return word, fault.ErrInvalidChoice
		}
	}
	return word, fault.ErrInvalidChoice
}
