// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"github.com/bitmark-inc/spellcheck/fault"
	"github.com/bitmark-inc/spellcheck/trie"
)

// TrieDictionary - words kept in a prefix tree
type TrieDictionary struct {
	trie *trie.Trie
}

// NewTrie - create an empty trie backed dictionary
func NewTrie() *TrieDictionary {
	return &TrieDictionary{
		trie: trie.New(),
	}
}

// Add - add a word, fault.ErrDuplicateKey if already present
func (d *TrieDictionary) Add(word string) error {
	if d.trie.Contains(word) {
		return fault.ErrDuplicateKey
	}
	return d.trie.Add(word)
}

// Contains - true if the word is spelt correctly
func (d *TrieDictionary) Contains(word string) bool {
	return d.trie.Contains(word)
}

// Size - number of words
func (d *TrieDictionary) Size() int {
	return d.trie.Size()
}

// Suggest - up to count words sharing the longest prefix with word
//
// the prefix starts as the whole word and is shortened one byte at a
// time down to a single byte
func (d *TrieDictionary) Suggest(word string, count int) []string {
	suggestions := make([]string, 0, max(count, 0))
	seen := map[string]struct{}{
		word: {},
	}

	for n := len(word); n > 0 && len(suggestions) < count; n -= 1 {
		d.trie.WalkPrefix(word[:n], func(s string) bool {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				suggestions = append(suggestions, s)
			}
			return len(suggestions) < count
		})
	}
	return suggestions
}
