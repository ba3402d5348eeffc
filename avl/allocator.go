// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K]) newNode(key K) *Node[K] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[K]{
			key:    key,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K]) freeNode(node *Node[K]) {
	var zero K

	node.up = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = zero
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}
