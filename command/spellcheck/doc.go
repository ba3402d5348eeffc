// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Spelling correction program
//
// This program reads a file with one word on each line, checks every
// word against a dictionary held in an AVL tree or a trie and writes
// the corrected words to an output file.  Misspelt words are replaced
// by a suggestion chosen interactively or automatically.
package main
