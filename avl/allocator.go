// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// upper limit on reclaimed nodes kept for reuse by one tree
const maxPooledNodes = 1024

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	up     *node[T] // points to parent node
	value  T        // the stored item
	height int      // 1 for a leaf
	nodes  int      // number of nodes in this sub-tree including this one
}

// Stats - node allocation counters for a tree
type Stats struct {
	Allocated int // nodes created from the heap
	Reused    int // nodes taken from the pool
	Released  int // nodes returned by delete or clear
	Pooled    int // nodes currently held in the pool
}

// per-tree free list, linked through the up pointer
type allocator[T any] struct {
	free  *node[T]
	stats Stats
}

// Stats - current allocation counters
func (tree *Tree[T]) Stats() Stats {
	return tree.pool.stats
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[T]) newNode(value T) *node[T] {
	p := a.free
	if nil == p {
		if 0 != a.stats.Pooled {
			fault.Criticalf("avl: pooled: %d with empty free list", a.stats.Pooled)
			fault.Panic("avl: pool corrupt")
		}
		a.stats.Allocated += 1
		return &node[T]{
			value:  value,
			height: 1,
			nodes:  1,
		}
	}
	a.free = p.up
	a.stats.Pooled -= 1
	a.stats.Reused += 1

	p.value = value
	p.height = 1
	p.nodes = 1
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the pool if there is room
func (a *allocator[T]) freeNode(p *node[T]) {
	var zero T

	p.left = nil
	p.right = nil
	p.up = nil
	p.value = zero // drop any reference held by the value
	p.height = 0
	p.nodes = 0
	a.stats.Released += 1

	if a.stats.Pooled >= maxPooledNodes {
		return
	}
	p.up = a.free // use as free list pointer
	a.free = p
	a.stats.Pooled += 1
}
