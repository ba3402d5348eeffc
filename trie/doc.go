// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trie - a byte-wise prefix tree holding a set of words
//
// Used as the alternative dictionary backend; its strength is
// listing every word that starts with some prefix.
//
// Note: not thread safe
package trie
