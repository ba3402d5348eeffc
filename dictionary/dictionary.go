// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"strings"

	"github.com/bitmark-inc/spellcheck/fault"
)

// names of the backends
const (
	Tree = "tree"
	Trie = "trie"
)

// Dictionary - operations common to all backends
//
//go:generate mockgen -source=dictionary.go -destination=mocks/dictionary.go -package=mocks
type Dictionary interface {
	Add(word string) error
	Contains(word string) bool
	Suggest(word string, count int) []string
	Size() int
}

// New - create an empty dictionary using the named backend
func New(backend string) (Dictionary, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case Tree:
		return NewTree(), nil
	case Trie:
		return NewTrie(), nil
	default:
		return nil, fault.ErrInvalidBackend
	}
}

// ValidBackend - true if New would accept the name
func ValidBackend(backend string) bool {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case Tree, Trie:
		return true
	default:
		return false
	}
}
