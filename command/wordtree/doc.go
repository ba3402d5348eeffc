// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Query a word list loaded into an AVL tree
//
// e.g.  wordtree --dictionary=english.0 neighbours --count=4 speling
package main
