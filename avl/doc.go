// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with the addition of
// parent pointers to allow iteration through the nodes and to find
// the neighbours of any key without a full traversal
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Rotations leave the tree inconsistent until the
//       operation that caused them returns.
//
// Each node caches the height of its sub-tree (an empty sub-tree has
// a height of -1) and after every insert or delete the ancestors of
// the changed node are rebalanced with single or double rotations so
// that the heights of the two sub-trees of any node differ by at most
// one.
//
// Keys are unique, inserting a key that is already present fails
// with fault.ErrDuplicateKey and leaves the tree unchanged.
package avl
