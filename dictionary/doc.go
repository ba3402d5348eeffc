// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dictionary - a set of correctly spelt words that can offer
// suggestions for a misspelt one
//
// Two backends are available:
//   tree - an AVL ordered set, suggestions are the alphabetical
//          neighbours of the word
//   trie - a prefix tree, suggestions share the longest possible
//          prefix with the word
package dictionary
