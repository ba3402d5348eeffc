// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft rotates the sub-tree rooted at x
// turning (x a (y b c)) into (y (x a b) c) and returns y
//
// the caller must store the result in the link that pointed to x
func rotateLeft[K any](x *Node[K]) *Node[K] {
	y := x.right

	x.right = y.left
	if nil != x.right {
		x.right.up = x
	}
	y.up = x.up
	y.left = x
	x.up = y

	// x is now below y
	x.setHeight()
	y.setHeight()
	return y
}

// rotateRight rotates the sub-tree rooted at y
// turning (y (x a b) c) into (x a (y b c)) and returns x
func rotateRight[K any](y *Node[K]) *Node[K] {
	x := y.left

	y.left = x.right
	if nil != y.left {
		y.left.up = y
	}
	x.up = y.up
	x.right = y
	y.up = x

	y.setHeight()
	x.setHeight()
	return x
}

// rebalance a node whose sub-trees are balanced and differ in
// height by at most two, returns the new root of the sub-tree
//
// used by both insert and delete so that the choice between a single
// and double rotation is the same for both
func rebalance[K any](p *Node[K]) *Node[K] {
	switch b := p.balance(); {
	case b > 1: // left heavy
		p1 := p.left
		if p1.left.safeHeight() < p1.right.safeHeight() {
			// double LR rotation
			p.left = rotateLeft(p1)
		}
		return rotateRight(p)

	case b < -1: // right heavy
		p1 := p.right
		if p1.right.safeHeight() < p1.left.safeHeight() {
			// double RL rotation
			p.right = rotateRight(p1)
		}
		return rotateLeft(p)

	default:
		p.setHeight()
		return p
	}
}
