// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// height of a possibly absent sub-tree
func (p *node[T]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// node count of a possibly absent sub-tree
func (p *node[T]) getNodes() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// balance factor: height(left) - height(right)
func (p *node[T]) getBalance() int {
	if nil == p {
		return 0
	}
	return p.left.getHeight() - p.right.getHeight()
}

// recompute the cached height and count from the children
func (p *node[T]) update() {
	lh := p.left.getHeight()
	rh := p.right.getHeight()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.nodes = 1 + p.left.getNodes() + p.right.getNodes()
}

// single right rotation, returns the new sub-tree root
//
//	    p            l
//	   / \          / \
//	  l   c  ==>   a   p
//	 / \              / \
//	a   b            b   c
//
// the new root takes over p's up link, the caller must store it in the
// parent's child slot (or the tree root)
func rotateRight[T any](p *node[T]) *node[T] {
	if nil == p {
		fault.PanicWithError("avl.rotateRight", fault.ErrAbsentRotationRoot)
	}
	l := p.left
	if nil == l {
		fault.PanicWithError("avl.rotateRight", fault.ErrAbsentRotationPivot)
	}

	b := l.right
	p.left = b
	if nil != b {
		b.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l

	p.update()
	l.update()
	return l
}

// single left rotation, mirror of rotateRight
func rotateLeft[T any](p *node[T]) *node[T] {
	if nil == p {
		fault.PanicWithError("avl.rotateLeft", fault.ErrAbsentRotationRoot)
	}
	r := p.right
	if nil == r {
		fault.PanicWithError("avl.rotateLeft", fault.ErrAbsentRotationPivot)
	}

	b := r.left
	p.right = b
	if nil != b {
		b.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r

	p.update()
	r.update()
	return r
}
