// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/spellcheck/fault"
)

// Insert - insert a new key into the tree
//
// returns fault.ErrDuplicateKey if the key is already present, the
// tree is not modified in that case
func (tree *Tree[K]) Insert(key K) error {
	if tree.invalidKey(key) {
		return fault.ErrInvalidKey
	}
	root, err := tree.insert(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.root.up = nil
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly new root of the sub-tree
func (tree *Tree[K]) insert(key K, p *Node[K]) (*Node[K], error) {
	if nil == p { // insert new node
		return tree.newNode(key), nil
	}

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		left, err := tree.insert(key, p.left)
		if nil != err {
			return p, err
		}
		p.setLeft(left)

	case c > 0: // key > p.key
		right, err := tree.insert(key, p.right)
		if nil != err {
			return p, err
		}
		p.setRight(right)

	default:
		return p, fault.ErrDuplicateKey
	}

	return rebalance(p), nil
}
