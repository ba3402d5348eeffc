// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K]) Next() *Node[K] {
	if nil == p.right {
		return p.leftAncestor()
	}
	return p.right.first()
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[K]) Prev() *Node[K] {
	if nil == p.left {
		return p.rightAncestor()
	}
	return p.left.last()
}

// internal: climb until the path arrives at an ancestor from its left
// child, that ancestor is the first one holding a larger key
func (p *Node[K]) leftAncestor() *Node[K] {
	for nil != p.up {
		if p == p.up.left {
			return p.up
		}
		p = p.up
	}
	return nil
}

// internal: mirror of leftAncestor
func (p *Node[K]) rightAncestor() *Node[K] {
	for nil != p.up {
		if p == p.up.right {
			return p.up
		}
		p = p.up
	}
	return nil
}

// Walk - call f for each key in ascending order until f returns false
func (tree *Tree[K]) Walk(f func(key K) bool) {
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p.key) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
