// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func makeTree(values ...int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func TestIteratorSorted(t *testing.T) {
	tree := makeTree(5, 3, 8, 1, 4, 7, 9)

	actual := []int{}
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		actual = append(actual, it.Value())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, actual)

	reverse := []int{}
	it := tree.End()
	for it.Prev(); it.Valid(); it.Prev() {
		reverse = append(reverse, it.Value())
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, reverse)
}

// a tree where the left-preferring leaf is not the minimum
func TestIteratorBeginIsMinimum(t *testing.T) {
	tree := makeTree(20, 10, 30, 15)

	it := tree.Begin()
	require.True(t, it.Valid())
	assert.Equal(t, 10, it.Value())
}

func TestIteratorEmpty(t *testing.T) {
	tree := avl.New[int]()

	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.False(t, tree.Begin().Valid())

	it := tree.End()
	it.Prev()
	assert.False(t, it.Valid())
}

func TestIteratorEquality(t *testing.T) {
	tree := makeTree(1, 2, 3)
	other := makeTree(1, 2, 3)

	a := tree.Begin()
	b := tree.Begin()
	assert.True(t, a.Equal(b))

	a.Next()
	assert.False(t, a.Equal(b))
	b.Next()
	assert.True(t, a.Equal(b))

	// same position reached from a different direction
	c := tree.End()
	c.Prev()
	c.Prev()
	assert.Equal(t, a.Value(), c.Value())
	assert.False(t, a.Equal(c))

	// iterators of different trees never match
	assert.False(t, tree.End().Equal(other.End()))

	// every way to run off the end is the same past the end iterator
	a.Next()
	a.Next()
	assert.True(t, a.Equal(tree.End()))
	a.Next()
	assert.True(t, a.Equal(tree.End()))
}

func TestIteratorPastEnd(t *testing.T) {
	tree := makeTree(1)

	assert.PanicsWithValue(t, fault.ErrIteratorPastEnd, func() {
		tree.End().Value()
	})
	assert.PanicsWithValue(t, fault.ErrIteratorPastEnd, func() {
		tree.DeleteAt(tree.End())
	})
	assert.Equal(t, 1, tree.Count())
}

func TestIteratorStale(t *testing.T) {
	tree := makeTree(1, 2, 3)

	it := tree.Begin()
	tree.Insert(2) // already present, iterators survive
	assert.Equal(t, 1, it.Value())

	tree.Insert(4)
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		it.Value()
	})
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		it.Next()
	})
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		it.Prev()
	})

	it = tree.Begin()
	tree.Delete(100) // absent, iterators survive
	assert.Equal(t, 1, it.Value())

	tree.Clear()
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		it.Value()
	})

	var zero avl.Iterator[int]
	assert.False(t, zero.Valid())
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		zero.Value()
	})
}

func TestDeleteAt(t *testing.T) {
	tree := makeTree(5, 3, 8, 1, 4, 7, 9)

	it := tree.Begin()
	it.Next()
	it.Next()
	require.Equal(t, 4, it.Value())

	assert.True(t, tree.DeleteAt(it))
	assert.Equal(t, []int{1, 3, 5, 7, 8, 9}, tree.Values())
	assert.NoError(t, tree.Check())

	// the iterator used for the delete is stale too
	assert.PanicsWithValue(t, fault.ErrStaleIterator, func() {
		tree.DeleteAt(it)
	})

	// delete everything through fresh iterators
	for !tree.IsEmpty() {
		require.True(t, tree.DeleteAt(tree.Begin()))
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, 0, tree.Count())
}

func TestDeleteAtForeign(t *testing.T) {
	tree := makeTree(1, 2)
	other := makeTree(1, 2)

	assert.PanicsWithValue(t, fault.ErrForeignIterator, func() {
		tree.DeleteAt(other.Begin())
	})
	assert.Equal(t, 2, tree.Count())
	assert.Equal(t, 2, other.Count())
}

func TestAllStopsEarly(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5)

	seen := []int{}
	for v := range tree.All() {
		if v > 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)

	seen = seen[:0]
	for v := range tree.Backward() {
		if v < 4 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{5, 4}, seen)
}
