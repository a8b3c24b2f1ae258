// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlset/fault"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	count   int
	compare func(a, b T) int
	version uint64 // advanced by every successful mutation
	pool    allocator[T]
}

// New - create an initially empty tree ordered by the natural order of T
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative number when a < b, zero when a == b and a
// positive number when a > b
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if nil == compare {
		fault.PanicWithError("avl.NewFunc", fault.ErrNilComparator)
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[T]) Height() int {
	return tree.root.getHeight()
}

// Clear - release every node, children before parents, and leave
// an empty tree
func (tree *Tree[T]) Clear() {
	if nil == tree.root {
		return
	}

	// iterative post-order walk using the up links, so deep trees
	// cannot exhaust the stack
	p := tree.root
	for nil != p {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			up := p.up
			if nil != up {
				if up.left == p {
					up.left = nil
				} else {
					up.right = nil
				}
			}
			tree.pool.freeNode(p)
			p = up
		}
	}

	tree.root = nil
	tree.count = 0
	tree.version += 1
}

// Clone - create a structurally independent deep copy of the tree
func (tree *Tree[T]) Clone() *Tree[T] {
	c := NewFunc(tree.compare)
	c.root = c.copyNodes(tree.root, nil)
	c.count = tree.count
	return c
}

// CopyFrom - replace the contents of the tree with a deep copy of
// other; copying a tree onto itself does nothing
func (tree *Tree[T]) CopyFrom(other *Tree[T]) {
	if tree == other {
		return
	}
	tree.Clear()
	tree.compare = other.compare
	tree.root = tree.copyNodes(other.root, nil)
	tree.count = other.count
	tree.version += 1
}

// MoveFrom - transfer all nodes of other into the tree, other is left
// as a valid empty tree; moving a tree onto itself does nothing
func (tree *Tree[T]) MoveFrom(other *Tree[T]) {
	if tree == other {
		return
	}
	tree.Clear()
	tree.compare = other.compare
	tree.root = other.root
	tree.count = other.count
	tree.version += 1

	other.root = nil
	other.count = 0
	other.version += 1
}

// internal: duplicate a sub-tree, allocating from this tree's pool
func (tree *Tree[T]) copyNodes(p *node[T], up *node[T]) *node[T] {
	if nil == p {
		return nil
	}
	n := tree.pool.newNode(p.value)
	n.height = p.height
	n.nodes = p.nodes
	n.up = up
	n.left = tree.copyNodes(p.left, n)
	n.right = tree.copyNodes(p.right, n)
	return n
}
