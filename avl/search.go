// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific key, nil if not present
func (tree *Tree[K]) Search(key K) *Node[K] {
	if tree.invalidKey(key) {
		return nil
	}
	p, _, _ := tree.locate(key)
	return p
}

// Contains - true if the key is present
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.Search(key)
}

// descend towards the key
//
// returns the node with the key if found, otherwise nil, the last
// node visited and the sign of the final comparison with it; the
// absent key would be inserted as the left child of that last node
// if the sign is negative and as its right child if positive
func (tree *Tree[K]) locate(key K) (*Node[K], *Node[K], int) {
	var up *Node[K]
	c := 0
	p := tree.root
	for nil != p {
		c = tree.compare(key, p.key)
		switch {
		case c < 0:
			up, p = p, p.left
		case c > 0:
			up, p = p, p.right
		default:
			return p, p.up, 0
		}
	}
	return nil, up, c
}
