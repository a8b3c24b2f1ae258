// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Iterator - a position in the sorted sequence of a tree's values,
// or past the end
//
// an iterator is only usable until the next successful mutation of
// its tree, after which every method except Valid and Equal panics
type Iterator[T any] struct {
	tree    *Tree[T]
	current *node[T] // nil when past the end
	prev    *node[T] // node visited before current
	version uint64
}

// Begin - iterator positioned at the lowest value, equal to End for
// an empty tree
func (tree *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{
		tree:    tree,
		current: tree.root.first(),
		version: tree.version,
	}
}

// End - the past the end iterator
func (tree *Tree[T]) End() Iterator[T] {
	return Iterator[T]{
		tree:    tree,
		version: tree.version,
	}
}

// Valid - true if positioned at a value
func (it Iterator[T]) Valid() bool {
	return nil != it.current
}

// Equal - true if both iterators are on the same tree and share the
// current and previous node
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree &&
		it.current == other.current &&
		it.prev == other.prev
}

// Value - the value at the iterator's position
func (it Iterator[T]) Value() T {
	it.checkVersion("avl.Iterator.Value")
	if nil == it.current {
		fault.PanicWithError("avl.Iterator.Value", fault.ErrIteratorPastEnd)
	}
	return it.current.value
}

// Next - advance to the next higher value or past the end
//
// advancing past the end stays past the end
func (it *Iterator[T]) Next() {
	it.checkVersion("avl.Iterator.Next")
	if nil == it.current {
		return
	}
	it.move(it.current.next())
}

// Prev - move to the next lower value, from past the end this is the
// highest value; moving back from the lowest value ends the iteration
func (it *Iterator[T]) Prev() {
	it.checkVersion("avl.Iterator.Prev")
	if nil == it.current {
		it.current = it.tree.root.last()
		it.prev = nil
		return
	}
	it.move(it.current.prev())
}

// every past the end iterator must compare equal to End
func (it *Iterator[T]) move(p *node[T]) {
	if nil == p {
		it.prev = nil
	} else {
		it.prev = it.current
	}
	it.current = p
}

func (it Iterator[T]) checkVersion(operation string) {
	if nil == it.tree || it.version != it.tree.version {
		fault.PanicWithError(operation, fault.ErrStaleIterator)
	}
}
