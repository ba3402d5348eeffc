// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// position of a node relative to its parent
type branch int

const (
	root branch = iota
	left
	right
)

// connector drawn in front of a node's key
var connectors = map[branch]string{
	root:  "|------+ ",
	left:  "\\------+ ",
	right: "/------+ ",
}

const (
	blankIndent = "       "
	lineIndent  = "|      "
)

// Print - display the tree sideways, largest key at the top, one line
// per node showing: key ^parent-key h:height
//
// returns the number of levels printed
func (tree *Tree[K]) Print(w io.Writer) int {
	return printer[K]{w: w}.node(tree.root, "", root)
}

type printer[K any] struct {
	w io.Writer
}

// print a sub-tree, returns its number of levels
func (pr printer[K]) node(p *Node[K], prefix string, br branch) int {
	if nil == p {
		return 0
	}

	// a vertical line continues past a child only when the path
	// turns, so that it joins the parent's connector
	indent := func(child branch) string {
		if (child == right && br == left) || (child == left && br == right) {
			return prefix + lineIndent
		}
		return prefix + blankIndent
	}

	above := pr.node(p.right, indent(right), right)

	parent := "-"
	if nil != p.up {
		parent = fmt.Sprint(p.up.key)
	}
	fmt.Fprintf(pr.w, "%s%s%v ^%s h:%d\n", prefix, connectors[br], p.key, parent, p.height)

	below := pr.node(p.left, indent(left), left)

	return 1 + max(above, below)
}

// String - the keys in order as: {k1, k2, k3}
func (tree *Tree[K]) String() string {
	s := strings.Builder{}
	s.WriteByte('{')
	n := 0
	tree.Walk(func(key K) bool {
		if n > 0 {
			s.WriteString(", ")
		}
		fmt.Fprint(&s, key)
		n += 1
		return true
	})
	s.WriteByte('}')
	return s.String()
}
