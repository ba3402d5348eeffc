// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trie

import (
	"sort"

	"github.com/bitmark-inc/spellcheck/fault"
)

// one node per byte of a word
// children are kept sorted by edge byte so that words come out in
// byte order
type node struct {
	edges    []byte
	children []*node
	isWord   bool
}

// Trie - root of a prefix tree
type Trie struct {
	root  *node
	count int
}

// New - create an empty trie
func New() *Trie {
	return &Trie{
		root:  &node{},
		count: 0,
	}
}

// Size - number of words stored
func (t *Trie) Size() int {
	return t.count
}

// IsEmpty - true if no words are stored
func (t *Trie) IsEmpty() bool {
	return 0 == t.count
}

// Add - store a word, adding a word twice is not an error
func (t *Trie) Add(word string) error {
	if "" == word {
		return fault.ErrEmptyWord
	}
	n := t.root
	for i := 0; i < len(word); i += 1 {
		n = n.child(word[i], true)
	}
	if !n.isWord {
		n.isWord = true
		t.count += 1
	}
	return nil
}

// Contains - true if the word is stored
func (t *Trie) Contains(word string) bool {
	if "" == word {
		return false
	}
	n := t.get(word)
	return nil != n && n.isWord
}

// KeysWithPrefix - all words beginning with prefix in byte order
// an empty prefix returns every word
func (t *Trie) KeysWithPrefix(prefix string) []string {
	words := []string{}
	t.WalkPrefix(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// WalkPrefix - call f for every word beginning with prefix in byte
// order until f returns false
func (t *Trie) WalkPrefix(prefix string, f func(word string) bool) {
	n := t.get(prefix)
	if nil == n {
		return
	}
	collect(n, []byte(prefix), f)
}

// Walk - call f for every word in byte order until f returns false
func (t *Trie) Walk(f func(word string) bool) {
	collect(t.root, []byte{}, f)
}

// Delete - remove a word, returns false if it was not present
//
// nodes left with no words below them are removed
func (t *Trie) Delete(word string) bool {
	if "" == word {
		return false
	}
	deleted := false
	t.root.delete(word, 0, &deleted)
	if deleted {
		t.count -= 1
	}
	return deleted
}

// internal: the node reached by following the bytes of s
func (t *Trie) get(s string) *node {
	n := t.root
	for i := 0; i < len(s) && nil != n; i += 1 {
		n = n.child(s[i], false)
	}
	return n
}

// find (or create) the child on edge b
func (n *node) child(b byte, create bool) *node {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i] >= b })
	if i < len(n.edges) && n.edges[i] == b {
		return n.children[i]
	}
	if !create {
		return nil
	}

	c := &node{}
	n.edges = append(n.edges, 0)
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = b

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return c
}

// depth first, words before their extensions
func collect(n *node, prefix []byte, f func(string) bool) bool {
	if n.isWord && !f(string(prefix)) {
		return false
	}
	for i, c := range n.children {
		if !collect(c, append(prefix, n.edges[i]), f) {
			return false
		}
	}
	return true
}

// returns true if this node can be pruned
func (n *node) delete(word string, d int, deleted *bool) bool {
	if d == len(word) {
		if n.isWord {
			n.isWord = false
			*deleted = true
		}
	} else {
		b := word[d]
		i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i] >= b })
		if i == len(n.edges) || n.edges[i] != b {
			return false
		}
		if n.children[i].delete(word, d+1, deleted) {
			n.edges = append(n.edges[:i], n.edges[i+1:]...)
			n.children = append(n.children[:i], n.children[i+1:]...)
		}
	}
	return !n.isWord && 0 == len(n.children)
}
