// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Delete - removes a specific item from the tree
// returns false if the value was not present
func (tree *Tree[T]) Delete(value T) bool {
	removed := false
	tree.root, removed = tree.delete(value, tree.root)
	if removed {
		tree.count -= 1
		tree.version += 1
	}
	return removed
}

// DeleteAt - removes the value referenced by an iterator
//
// the iterator must come from this tree, be positioned at a value and
// not be stale; afterwards all iterators on the tree are stale
func (tree *Tree[T]) DeleteAt(it Iterator[T]) bool {
	if it.tree != tree {
		fault.PanicWithError("avl.DeleteAt", fault.ErrForeignIterator)
	}
	return tree.Delete(it.Value())
}

// internal delete routine, returns the possibly new sub-tree root
func (tree *Tree[T]) delete(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(value, p.value); {
	case c < 0:
		p.left, removed = tree.delete(value, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case c > 0:
		p.right, removed = tree.delete(value, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			if nil != child {
				child.up = p.up
			}
			tree.pool.freeNode(p) // return deleted node to pool
			return child, true
		}

		// two children: take over the successor's value and
		// delete the successor, which has no left child
		successor := p.right.first()
		p.value = successor.value
		p.right, _ = tree.delete(successor.value, p.right)
		if nil != p.right {
			p.right.up = p
		}
		removed = true
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// restore the cached values of p and rotate if it is out of balance
func rebalance[T any](p *node[T]) *node[T] {
	p.update()

	balance := p.getBalance()
	switch {
	case balance > 1 && p.left.getBalance() >= 0:
		return rotateRight(p)

	case balance > 1:
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case balance < -1 && p.right.getBalance() <= 0:
		return rotateLeft(p)

	case balance < -1:
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
