// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"
)

// Compare - three way comparison of two keys
// returns <0 if a < b, 0 if a == b and >0 if a > b
type Compare[K any] func(a K, b K) int

// Node - a node in the tree
type Node[K any] struct {
	left   *Node[K] // left sub-tree
	right  *Node[K] // right sub-tree
	up     *Node[K] // points to parent node
	key    K        // key part for ordering
	height int      // height of this sub-tree, leaf is zero
}

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root     *Node[K]
	count    int
	compare  Compare[K]
	nillable bool // K can hold a nil value

	// reclaimed nodes linked through their up pointers
	pool       *Node[K]
	totalNodes int
	freeNodes  int
}

// New - create an initially empty tree ordered by the compare function
func New[K any](compare func(a K, b K) int) *Tree[K] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K]{
		root:     nil,
		count:    0,
		compare:  compare,
		nillable: canBeNil(reflect.TypeOf((*K)(nil)).Elem()),
	}
}

// NewOrdered - create an empty tree using the natural order of K
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New[K](cmp.Compare[K])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of keys currently in the tree
func (tree *Tree[K]) Size() int {
	return tree.count
}

// Height - height of the whole tree, -1 for an empty tree
func (tree *Tree[K]) Height() int {
	return tree.root.safeHeight()
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Clear - remove all keys
func (tree *Tree[K]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *Tree[K]) release(p *Node[K]) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.freeNode(p)
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Parent - return parent node of a node
func (p *Node[K]) Parent() *Node[K] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K]) Height() int {
	return p.safeHeight()
}

// Depth - get the depth of a node
func (p *Node[K]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// height of a possibly empty sub-tree
func (p *Node[K]) safeHeight() int {
	if nil == p {
		return -1
	}
	return p.height
}

func (p *Node[K]) setHeight() {
	p.height = 1 + max(p.left.safeHeight(), p.right.safeHeight())
}

// left height minus right height
func (p *Node[K]) balance() int {
	return p.left.safeHeight() - p.right.safeHeight()
}

// a nil key is only possible for reference kinds
func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}

func (tree *Tree[K]) invalidKey(key K) bool {
	if !tree.nillable {
		return false
	}
	v := reflect.ValueOf(&key).Elem()
	return v.IsNil()
}
