// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func TestNewEmpty(t *testing.T) {
	tree := avl.New[int]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Contains(1))
	assert.NoError(t, tree.Check())

	_, ok := tree.First()
	assert.False(t, ok)
	_, ok = tree.Last()
	assert.False(t, ok)
	assert.Equal(t, "", tree.String())
}

func TestNewFuncNil(t *testing.T) {
	assert.PanicsWithValue(t, fault.ErrNilComparator, func() {
		avl.NewFunc[int](nil)
	})
}

func TestNewFuncOrder(t *testing.T) {
	// case insensitive, descending
	tree := avl.NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(b), strings.ToLower(a))
	})
	for _, s := range []string{"b", "A", "c", "B", "a"} {
		tree.Insert(s)
	}
	assert.Equal(t, []string{"c", "b", "A"}, tree.Values())
	assert.True(t, tree.Contains("C"))
	assert.NoError(t, tree.Check())
}

func TestMembership(t *testing.T) {
	tree := avl.New[int]()
	for v := 0; v < 200; v += 2 {
		assert.True(t, tree.Insert(v))
	}
	for v := 0; v < 200; v += 1 {
		assert.Equal(t, 0 == v%2, tree.Contains(v), "value: %d", v)
	}
	for v := 0; v < 200; v += 4 {
		assert.True(t, tree.Delete(v))
	}
	for v := 0; v < 200; v += 1 {
		assert.Equal(t, 2 == v%4, tree.Contains(v), "value: %d", v)
	}
	assert.Equal(t, 50, tree.Count())

	first, _ := tree.First()
	last, _ := tree.Last()
	assert.Equal(t, 2, first)
	assert.Equal(t, 198, last)
}

func TestClone(t *testing.T) {
	original := makeTree(20, 10, 30, 5, 15, 25, 35)
	before := original.String()

	c := original.Clone()
	assert.Equal(t, original.Values(), c.Values())
	assert.Equal(t, before, c.String())
	assert.NoError(t, c.Check())

	c.Insert(40)
	c.Delete(20)
	c.Delete(5)

	assert.Equal(t, 7, original.Count())
	assert.Equal(t, []int{5, 10, 15, 20, 25, 30, 35}, original.Values())
	assert.Equal(t, before, original.String())
	assert.NoError(t, original.Check())
	assert.Equal(t, []int{10, 15, 25, 30, 35, 40}, c.Values())

	// iterators of the original are unaffected by changes to the copy
	it := original.Begin()
	c.Clear()
	assert.Equal(t, 5, it.Value())
}

func TestCopyFrom(t *testing.T) {
	source := makeTree(1, 2, 3)
	target := makeTree(7, 8)

	target.CopyFrom(source)
	assert.Equal(t, []int{1, 2, 3}, target.Values())
	assert.Equal(t, 3, target.Count())

	target.Insert(4)
	assert.Equal(t, []int{1, 2, 3}, source.Values())

	// self assignment leaves the tree unchanged
	it := target.Begin()
	target.CopyFrom(target)
	assert.Equal(t, []int{1, 2, 3, 4}, target.Values())
	assert.Equal(t, 1, it.Value())
}

func TestMoveFrom(t *testing.T) {
	source := makeTree(1, 2, 3)
	target := makeTree(9)

	stale := source.Begin()
	target.MoveFrom(source)

	assert.Equal(t, []int{1, 2, 3}, target.Values())
	assert.Equal(t, 3, target.Count())
	assert.NoError(t, target.Check())

	assert.True(t, source.IsEmpty())
	assert.Equal(t, 0, source.Count())
	assert.NoError(t, source.Check())
	assert.Panics(t, func() {
		stale.Value()
	})

	// the emptied source is still a usable tree
	assert.True(t, source.Insert(5))
	assert.Equal(t, []int{5}, source.Values())
	assert.Equal(t, []int{1, 2, 3}, target.Values())

	// self move leaves the tree unchanged
	target.MoveFrom(target)
	assert.Equal(t, []int{1, 2, 3}, target.Values())
}

func TestClear(t *testing.T) {
	tree := makeTree(5, 3, 8, 1, 4, 7, 9)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 7, tree.Stats().Released)
	assert.NoError(t, tree.Check())

	tree.Clear()
	assert.Equal(t, 7, tree.Stats().Released)

	tree.Insert(1)
	assert.Equal(t, []int{1}, tree.Values())
}

func TestRoundTrip(t *testing.T) {
	values := []int{50, 20, 80, 10, 30, 70, 90, 5, 15, 25, 35, 65, 75, 85, 95}
	orders := [][]int{
		values,
		{5, 10, 15, 20, 25, 30, 35, 50, 65, 70, 75, 80, 85, 90, 95},
		{95, 90, 85, 80, 75, 70, 65, 50, 35, 30, 25, 20, 15, 10, 5},
		{50, 95, 5, 80, 20, 35, 65, 10, 90, 25, 70, 15, 85, 30, 75},
	}
	for _, order := range orders {
		tree := makeTree(values...)
		for _, v := range order {
			assert.True(t, tree.Delete(v))
			assert.NoError(t, tree.Check())
		}
		assert.True(t, tree.IsEmpty())
		assert.Equal(t, 0, tree.Count())
	}
}
