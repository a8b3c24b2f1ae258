// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.find(value)
}

// Search - find a specific item
// returns its index in sorted order, or -1 and false if absent
func (tree *Tree[T]) Search(value T) (int, bool) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.left
		case c > 0:
			index += p.left.getNodes() + 1
			p = p.right
		default:
			return index + p.left.getNodes(), true
		}
	}
	return -1, false
}

// internal: locate the node holding value
func (tree *Tree[T]) find(value T) *node[T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
