// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Get - the value at a specific index in sorted order
func (tree *Tree[T]) Get(index int) (T, bool) {
	if index < 0 || index >= tree.Count() {
		var zero T
		return zero, false
	}
	p := tree.root
	for nil != p {
		nl := p.left.getNodes()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p.value, true
		}
	}
	fault.Panic("avl: node counts corrupt")
}

// First - the lowest value
func (tree *Tree[T]) First() (T, bool) {
	return tree.root.first().get()
}

// Last - the highest value
func (tree *Tree[T]) Last() (T, bool) {
	return tree.root.last().get()
}

// internal: value of a possibly absent node
func (p *node[T]) get() (T, bool) {
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor using only child and up links
func (p *node[T]) next() *node[T] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// internal: in-order predecessor, mirror of next
func (p *node[T]) prev() *node[T] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}
