// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/spellcheck/fault"
)

// Remove - removes a specific key from the tree
//
// returns fault.ErrKeyNotFound if the key is not present
func (tree *Tree[K]) Remove(key K) error {
	if tree.invalidKey(key) {
		return fault.ErrInvalidKey
	}
	root, err := tree.delete(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	if nil != root {
		root.up = nil
	}
	tree.count -= 1
	return nil
}

// internal delete routine
// returns the possibly new root of the sub-tree
func (tree *Tree[K]) delete(key K, p *Node[K]) (*Node[K], error) {
	if nil == p { // key not in tree
		return nil, fault.ErrKeyNotFound
	}

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		left, err := tree.delete(key, p.left)
		if nil != err {
			return p, err
		}
		p.setLeft(left)

	case c > 0: // key > p.key
		right, err := tree.delete(key, p.right)
		if nil != err {
			return p, err
		}
		p.setRight(right)

	default: // found: delete p
		if nil != p.left && nil != p.right {
			// take over the key of the in-order predecessor
			// which has no right child, then delete that node
			q := p.left.last()
			p.key = q.key
			left, err := tree.delete(q.key, p.left)
			if nil != err {
				panic("avl: predecessor vanished: " + err.Error())
			}
			p.setLeft(left)
			break
		}

		// at most one child, splice it in
		child := p.left
		if nil == child {
			child = p.right
		}
		if nil != child {
			child.up = p.up
		}
		tree.freeNode(p)
		return child, nil
	}

	return rebalance(p), nil
}

func (p *Node[K]) setLeft(q *Node[K]) {
	p.left = q
	if nil != q {
		q.up = p
	}
}

func (p *Node[K]) setRight(q *Node[K]) {
	p.right = q
	if nil != q {
		q.up = p
	}
}
