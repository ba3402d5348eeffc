// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corrector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/spellcheck/dictionary"
	"github.com/bitmark-inc/spellcheck/fault"
)

// Statistics - counts from one Process run
type Statistics struct {
	Lines     int // all lines including blank ones
	Correct   int // found in the dictionary
	Corrected int // replaced by a suggestion
	Unchanged int // misspelt but left as is
}

// String - for the summary line
func (s Statistics) String() string {
	return fmt.Sprintf("lines: %d  correct: %d  corrected: %d  unchanged: %d",
		s.Lines, s.Correct, s.Corrected, s.Unchanged)
}

// Corrector - checks words against a dictionary
type Corrector struct {
	log         *logger.L
	dictionary  dictionary.Dictionary
	chooser     Chooser
	suggestions int

	// suggestions for each misspelt word seen, entries never expire
	// but are all dropped by Forget
	cache *cache.Cache

	// incremented by Forget so that a lookup that overlapped it is
	// not cached
	generation atomic.Uint64
}

// New - create a corrector offering up to count suggestions per word
func New(d dictionary.Dictionary, chooser Chooser, count int, log *logger.L) (*Corrector, error) {
	if nil == d || nil == chooser || nil == log {
		return nil, fault.ErrNotInitialised
	}
	if count < 1 {
		return nil, fault.ErrInvalidSuggestionCount
	}
	return &Corrector{
		log:         log,
		dictionary:  d,
		chooser:     chooser,
		suggestions: count,
		cache:       cache.New(cache.NoExpiration, 0),
	}, nil
}

// Suggest - suggestions for a word, remembered for repeated words
func (c *Corrector) Suggest(word string) []string {
	if s, found := c.cache.Get(word); found {
		return s.([]string)
	}
	generation := c.generation.Load()
	s := c.dictionary.Suggest(word, c.suggestions)
	if generation == c.generation.Load() {
		c.cache.Set(word, s, cache.NoExpiration)
	}
	return s
}

// Forget - drop remembered suggestions, needed after the dictionary
// has been reloaded
func (c *Corrector) Forget() {
	c.generation.Add(1)
	c.cache.Flush()
}

// Outcome - what happened to a word
type Outcome int

// possible outcomes
const (
	IsCorrect Outcome = iota
	IsCorrected
	IsUnchanged
)

// Correct - the replacement for a single word
//
// returns the word itself if it is spelt correctly or nothing better
// is available
//
// Contains and Suggest are separate lookups, so a reload between them
// can give suggestions from the new word list for a word that was
// missing from the old one
func (c *Corrector) Correct(word string) (string, Outcome, error) {
	if c.dictionary.Contains(word) {
		c.log.Debugf("word: %q is correctly spelled", word)
		return word, IsCorrect, nil
	}

	suggestions := c.Suggest(word)
	if 0 == len(suggestions) {
		c.log.Infof("word: %q has no suggestions", word)
		return word, IsUnchanged, nil
	}

	choice, err := c.chooser.Choose(word, suggestions)
	if nil != err {
		return word, IsUnchanged, err
	}
	c.log.Debugf("word: %q  suggestions: %q  chosen: %q", word, suggestions, choice)
	if choice == word {
		return word, IsUnchanged, nil
	}
	return choice, IsCorrected, nil
}

// Process - copy lines from in to out correcting each word
//
// blank lines are copied as they are; a line holding anything else is
// treated as a single word with its surrounding white space removed
//
// lines completed before an error are still written to out
func (c *Corrector) Process(in io.Reader, out io.Writer) (stats Statistics, err error) {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer func() {
		if e := w.Flush(); nil == err {
			err = e
		}
	}()

	for scanner.Scan() {
		line := scanner.Text()
		stats.Lines += 1

		word := strings.TrimSpace(line)
		if "" == word {
			if _, err := fmt.Fprintln(w, line); nil != err {
				return stats, err
			}
			continue
		}

		result, outcome, err := c.Correct(word)
		if nil != err {
			c.log.Errorf("line: %d  word: %q  error: %s", stats.Lines, word, err)
			return stats, err
		}

		switch outcome {
		case IsCorrect:
			stats.Correct += 1
		case IsCorrected:
			stats.Corrected += 1
		default:
			stats.Unchanged += 1
		}

		if _, err := fmt.Fprintln(w, result); nil != err {
			return stats, err
		}
	}
	if err := scanner.Err(); nil != err {
		c.log.Errorf("line: %d  read error: %s", stats.Lines+1, err)
		return stats, err
	}

	c.log.Infof("processed: %s", stats)
	return stats, nil
}
