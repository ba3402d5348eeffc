// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"github.com/bitmark-inc/spellcheck/avl"
	"github.com/bitmark-inc/spellcheck/fault"
)

// TreeDictionary - words kept in an AVL ordered set
type TreeDictionary struct {
	tree *avl.Tree[string]
}

// NewTree - create an empty tree backed dictionary
func NewTree() *TreeDictionary {
	return &TreeDictionary{
		tree: avl.NewOrdered[string](),
	}
}

// NewTreeFrom - a dictionary using an existing ordered set
func NewTreeFrom(tree *avl.Tree[string]) *TreeDictionary {
	return &TreeDictionary{
		tree: tree,
	}
}

// Add - add a word, fault.ErrDuplicateKey if already present
func (d *TreeDictionary) Add(word string) error {
	if "" == word {
		return fault.ErrEmptyWord
	}
	return d.tree.Insert(word)
}

// Contains - true if the word is spelt correctly
func (d *TreeDictionary) Contains(word string) bool {
	return d.tree.Contains(word)
}

// Size - number of words
func (d *TreeDictionary) Size() int {
	return d.tree.Size()
}

// Tree - access the underlying ordered set
func (d *TreeDictionary) Tree() *avl.Tree[string] {
	return d.tree
}

// Suggest - up to count words nearest to word in alphabetical order
//
// the words are taken alternately from above and below word, moving
// outwards: next, previous, second next, second previous and so on,
// until count words are found or the dictionary is exhausted in both
// directions
func (d *TreeDictionary) Suggest(word string, count int) []string {
	suggestions := make([]string, 0, max(count, 0))

	succ := word
	pred := word
	moreAbove := true
	moreBelow := true
	for len(suggestions) < count && (moreAbove || moreBelow) {
		if moreAbove {
			succ, moreAbove = d.tree.Successor(succ)
			if moreAbove {
				suggestions = append(suggestions, succ)
			}
		}
		if moreBelow && len(suggestions) < count {
			pred, moreBelow = d.tree.Predecessor(pred)
			if moreBelow {
				suggestions = append(suggestions, pred)
			}
		}
	}
	return suggestions
}
