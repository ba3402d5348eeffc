// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/spellcheck/fault"
)

// Check - verify the ordering, balance, heights, up pointers and the
// node count of the whole tree
//
// returns a fault.ProcessError describing the first problem found
func (tree *Tree[K]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return corrupt("root: %v has parent: %v", tree.root.key, tree.root.up.key)
	}
	n, err := tree.check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return corrupt("count: %d  nodes: %d", tree.count, n)
	}
	return nil
}

// internal: consistency checker for a sub-tree whose keys must lie
// strictly between low and high (nil for no bound)
// returns the number of nodes
func (tree *Tree[K]) check(p *Node[K], up *Node[K], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, corrupt("node: %v  parent mismatch", p.key)
	}
	if nil != low && tree.compare(p.key, *low) <= 0 {
		return 0, corrupt("node: %v  not above: %v", p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, corrupt("node: %v  not below: %v", p.key, *high)
	}

	nl, err := tree.check(p.left, p, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.right, p, &p.key, high)
	if nil != err {
		return 0, err
	}

	if h := 1 + max(p.left.safeHeight(), p.right.safeHeight()); h != p.height {
		return 0, corrupt("node: %v  height: %d  expected: %d", p.key, p.height, h)
	}
	if b := p.balance(); b < -1 || b > 1 {
		return 0, corrupt("node: %v  balance: %d", p.key, b)
	}
	return 1 + nl + nr, nil
}

func corrupt(format string, arguments ...interface{}) error {
	return fault.ProcessError(fault.ErrCorruptTree.Error() + ": " + fmt.Sprintf(format, arguments...))
}
