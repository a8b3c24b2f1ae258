// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
// returns false if the value was already present
func (tree *Tree[T]) Insert(value T) bool {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if added {
		tree.count += 1
		tree.version += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree[T]) insert(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // insert new node
		return tree.pool.newNode(value), true
	}

	added := false
	switch c := tree.compare(value, p.value); {
	case c < 0:
		p.left, added = tree.insert(value, p.left)
		p.left.up = p
	case c > 0:
		p.right, added = tree.insert(value, p.right)
		p.right.up = p
	default: // already present
		return p, false
	}
	if !added {
		return p, false
	}

	p.update()

	// the new value lies below whichever grandchild grew, so
	// comparing against the child picks the rotation case
	balance := p.getBalance()
	switch {
	case balance > 1 && tree.compare(value, p.left.value) < 0:
		// LL: single right rotation
		return rotateRight(p), true

	case balance > 1:
		// LR: double rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true

	case balance < -1 && tree.compare(value, p.right.value) > 0:
		// RR: single left rotation
		return rotateLeft(p), true

	case balance < -1:
		// RL: double rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}
