// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spellcheck/avl"
	"github.com/bitmark-inc/spellcheck/fault"
)

func makeTree(t *testing.T, keys ...int) *avl.Tree[int] {
	tree := avl.NewOrdered[int]()
	for _, key := range keys {
		assert.Nil(t, tree.Insert(key), "insert: %d", key)
		assert.Nil(t, tree.Check(), "after insert: %d", key)
	}
	return tree
}

func TestInsertOrder(t *testing.T) {
	tree := makeTree(t, 5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Keys(), "wrong in-order keys")
	assert.Equal(t, 7, tree.Size(), "wrong size")
	assert.Equal(t, "{1, 3, 4, 5, 7, 8, 9}", tree.String(), "wrong string")
}

func TestAscendingInsertIsBalanced(t *testing.T) {
	tree := makeTree(t, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 2, tree.Height(), "ascending insert not rebalanced")
	assert.Equal(t, 4, tree.Root().Key(), "wrong root")

	tree = makeTree(t, 7, 6, 5, 4, 3, 2, 1)
	assert.Equal(t, 2, tree.Height(), "descending insert not rebalanced")
	assert.Equal(t, 4, tree.Root().Key(), "wrong root")
}

func TestEmptyTree(t *testing.T) {
	tree := avl.NewOrdered[int]()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, -1, tree.Height(), "empty height")
	assert.Equal(t, 0, tree.Size(), "empty size")
	assert.Nil(t, tree.First(), "empty first")
	assert.Nil(t, tree.Last(), "empty last")
	assert.False(t, tree.Contains(1), "empty contains")
	assert.Equal(t, "{}", tree.String(), "empty string")

	_, ok := tree.Successor(1)
	assert.False(t, ok, "empty successor")
	_, ok = tree.Predecessor(1)
	assert.False(t, ok, "empty predecessor")

	assert.Equal(t, fault.ErrKeyNotFound, tree.Remove(1), "remove from empty")
	assert.Nil(t, tree.Check(), "empty check")
}

func TestSuccessorPredecessor(t *testing.T) {
	tree := makeTree(t, 5, 3, 8, 1, 4, 7, 9)

	tests := []struct {
		key     int
		succ    int
		hasSucc bool
		pred    int
		hasPred bool
	}{
		{4, 5, true, 3, true},
		{9, 0, false, 8, true},
		{1, 3, true, 0, false},
		{6, 7, true, 5, true},  // absent
		{0, 1, true, 0, false}, // absent, below minimum
		{10, 0, false, 9, true},
		{2, 3, true, 1, true},
		{5, 7, true, 4, true}, // root
	}

	for _, test := range tests {
		before := dump(tree)

		s, ok := tree.Successor(test.key)
		assert.Equal(t, test.hasSucc, ok, "successor(%d) found", test.key)
		if ok {
			assert.Equal(t, test.succ, s, "successor(%d)", test.key)
		}

		p, ok := tree.Predecessor(test.key)
		assert.Equal(t, test.hasPred, ok, "predecessor(%d) found", test.key)
		if ok {
			assert.Equal(t, test.pred, p, "predecessor(%d)", test.key)
		}

		assert.Equal(t, before, dump(tree), "tree changed by query: %d", test.key)
		assert.Equal(t, 7, tree.Size(), "size changed by query: %d", test.key)
	}
}

// every key from below the minimum to above the maximum compared
// against a sorted slice
func TestNeighboursAgainstSlice(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.NewOrdered[int]()
	keys := make([]int, 0, 500)
	for len(keys) < 500 {
		key := 2 * r.Intn(5000) // even numbers only, odd ones are absent
		if nil == tree.Insert(key) {
			keys = append(keys, key)
		}
	}
	sort.Ints(keys)

	before := dump(tree)
	for key := -1; key <= 10001; key += 1 {
		i := sort.SearchInts(keys, key+1) // first > key
		s, ok := tree.Successor(key)
		if i < len(keys) {
			if !ok || s != keys[i] {
				t.Fatalf("successor(%d): %d, %v  expected: %d", key, s, ok, keys[i])
			}
		} else if ok {
			t.Fatalf("successor(%d): %d  expected none", key, s)
		}

		j := sort.SearchInts(keys, key) - 1 // last < key
		p, ok := tree.Predecessor(key)
		if j >= 0 {
			if !ok || p != keys[j] {
				t.Fatalf("predecessor(%d): %d, %v  expected: %d", key, p, ok, keys[j])
			}
		} else if ok {
			t.Fatalf("predecessor(%d): %d  expected none", key, p)
		}
	}
	assert.Equal(t, before, dump(tree), "tree changed by queries")
}

func TestRemoveThenInsert(t *testing.T) {
	tree := makeTree(t, 5, 3, 8, 1, 4, 7, 9)
	keys := tree.Keys()

	assert.Nil(t, tree.Remove(5), "remove root")
	assert.Nil(t, tree.Check(), "after remove")
	assert.False(t, tree.Contains(5), "removed key still present")
	assert.Equal(t, 6, tree.Size(), "size after remove")

	assert.Nil(t, tree.Insert(5), "insert again")
	assert.Nil(t, tree.Check(), "after insert")
	assert.Equal(t, keys, tree.Keys(), "content not restored")
	assert.Equal(t, 7, tree.Size(), "size not restored")
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := avl.NewOrdered[int]()
	for i := 0; i < 200; i += 1 {
		_ = tree.Insert(r.Intn(1000))
	}

	for i := 0; i < 200; i += 1 {
		key := r.Intn(1000)
		if tree.Contains(key) {
			continue
		}
		keys := tree.Keys()
		size := tree.Size()

		assert.Nil(t, tree.Insert(key), "insert: %d", key)
		assert.Nil(t, tree.Remove(key), "remove: %d", key)
		assert.Nil(t, tree.Check(), "check: %d", key)
		assert.Equal(t, size, tree.Size(), "size: %d", key)
		assert.Equal(t, keys, tree.Keys(), "keys: %d", key)
	}
}

func TestDuplicateKey(t *testing.T) {
	tree := avl.NewOrdered[int]()

	assert.Nil(t, tree.Insert(3), "first insert")
	before := dump(tree)
	err := tree.Insert(3)
	assert.Equal(t, fault.ErrDuplicateKey, err, "second insert")
	assert.True(t, fault.IsErrExists(err), "error class")
	assert.Equal(t, 1, tree.Size(), "size after duplicate")
	assert.Equal(t, before, dump(tree), "tree changed by duplicate")

	tree = makeTree(t, 5, 3, 8, 1, 4, 7, 9)
	before = dump(tree)
	assert.Equal(t, fault.ErrDuplicateKey, tree.Insert(4), "duplicate leaf")
	assert.Equal(t, before, dump(tree), "tree changed by duplicate")
}

func TestRemoveMissing(t *testing.T) {
	tree := makeTree(t, 5, 3, 8, 1, 4, 7, 9)
	before := dump(tree)

	err := tree.Remove(6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "remove missing")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Equal(t, 7, tree.Size(), "size after failed remove")
	assert.Equal(t, before, dump(tree), "tree changed by failed remove")
}

func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tree := avl.NewOrdered[int]()

	check := func(n int) {
		bound := 1.4405*math.Log2(float64(n+2)) - 0.3277
		if float64(tree.Height()) > bound {
			t.Fatalf("n: %d  height: %d  exceeds: %f", n, tree.Height(), bound)
		}
	}

	for i := 0; i < 4096; i += 1 {
		_ = tree.Insert(i) // worst case for a plain search tree
		check(tree.Size())
	}
	for i := 0; i < 3000; i += 1 {
		_ = tree.Remove(r.Intn(4096))
		if !tree.IsEmpty() {
			check(tree.Size())
		}
	}
	assert.Nil(t, tree.Check(), "after deletes")
}

// the mix of inserts and removes keeps every invariant at every step
func TestInvariantsRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := avl.NewOrdered[int]()
	present := make(map[int]bool)

	for i := 0; i < 5000; i += 1 {
		key := r.Intn(300)
		if r.Intn(3) == 0 {
			err := tree.Remove(key)
			if present[key] {
				assert.Nil(t, err, "remove: %d", key)
			} else {
				assert.Equal(t, fault.ErrKeyNotFound, err, "remove: %d", key)
			}
			delete(present, key)
		} else {
			err := tree.Insert(key)
			if present[key] {
				assert.Equal(t, fault.ErrDuplicateKey, err, "insert: %d", key)
			} else {
				assert.Nil(t, err, "insert: %d", key)
			}
			present[key] = true
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("step: %d  key: %d  error: %s", i, key, err)
		}
		if len(present) != tree.Size() {
			t.Fatalf("step: %d  size: %d  expected: %d", i, tree.Size(), len(present))
		}
	}

	keys := tree.Keys()
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys out of order: %d, %d", keys[i-1], keys[i])
		}
	}
}

func TestCustomCompare(t *testing.T) {
	// reverse order
	tree := avl.New(func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	for _, key := range []string{"apple", "cherry", "banana"} {
		assert.Nil(t, tree.Insert(key), "insert: %q", key)
	}
	assert.Equal(t, []string{"cherry", "banana", "apple"}, tree.Keys(), "reverse order")

	s, ok := tree.Successor("blueberry")
	assert.True(t, ok, "successor found")
	assert.Equal(t, "banana", s, "successor in reverse order")
}

func TestNilKey(t *testing.T) {
	type word struct{ s string }

	tree := avl.New(func(a, b *word) int {
		switch {
		case a.s < b.s:
			return -1
		case a.s > b.s:
			return 1
		}
		return 0
	})

	assert.Nil(t, tree.Insert(&word{"one"}), "insert")
	assert.Equal(t, fault.ErrInvalidKey, tree.Insert(nil), "insert nil")
	assert.Equal(t, fault.ErrInvalidKey, tree.Remove(nil), "remove nil")
	assert.False(t, tree.Contains(nil), "contains nil")
	_, ok := tree.Successor(nil)
	assert.False(t, ok, "successor nil")
	_, ok = tree.Predecessor(nil)
	assert.False(t, ok, "predecessor nil")
	assert.Equal(t, 1, tree.Size(), "size")
}

func TestClear(t *testing.T) {
	tree := makeTree(t, 5, 3, 8, 1, 4, 7, 9)
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "cleared tree not empty")
	assert.Equal(t, 0, tree.Size(), "cleared size")
	assert.Nil(t, tree.Check(), "cleared check")

	for _, key := range []int{2, 1, 3} {
		assert.Nil(t, tree.Insert(key), "insert after clear: %d", key)
	}
	assert.Equal(t, []int{1, 2, 3}, tree.Keys(), "keys after clear")
	assert.Nil(t, tree.Check(), "check after clear")
}

func TestPrint(t *testing.T) {
	tree := makeTree(t, 2, 1, 3)
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	assert.Equal(t, 2, depth, "print depth")
	assert.Equal(t,
		"       /------+ 3 ^2 h:0\n"+
			"|------+ 2 ^- h:1\n"+
			"       \\------+ 1 ^2 h:0\n",
		buffer.String(), "print output")
}

// structure including heights, to detect any change by a query
func dump(tree *avl.Tree[int]) string {
	buffer := &bytes.Buffer{}
	tree.Print(buffer)
	return buffer.String()
}
