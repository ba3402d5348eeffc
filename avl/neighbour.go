// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Successor - the smallest key strictly greater than key
//
// key does not need to be in the tree; the search continues from
// the position the key would occupy if it were inserted, and the tree
// is not modified.  ok is false if there is no larger key.
func (tree *Tree[K]) Successor(key K) (successor K, ok bool) {
	if tree.invalidKey(key) {
		return successor, false
	}

	var n *Node[K]
	p, up, c := tree.locate(key)
	switch {
	case nil != p:
		n = p.Next()
	case nil == up: // empty tree
		return successor, false
	case c < 0: // would be the left child of up
		n = up
	default: // would be the right child of up
		n = up.leftAncestor()
	}

	if nil == n {
		return successor, false
	}
	return n.key, true
}

// Predecessor - the largest key strictly less than key
//
// the mirror image of Successor
func (tree *Tree[K]) Predecessor(key K) (predecessor K, ok bool) {
	if tree.invalidKey(key) {
		return predecessor, false
	}

	var n *Node[K]
	p, up, c := tree.locate(key)
	switch {
	case nil != p:
		n = p.Prev()
	case nil == up:
		return predecessor, false
	case c > 0: // would be the right child of up
		n = up
	default: // would be the left child of up
		n = up.rightAncestor()
	}

	if nil == n {
		return predecessor, false
	}
	return n.key, true
}
