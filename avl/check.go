// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T any](p *node[T], up *node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkup(p.left, p) && checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
// returns the first violation found or nil
func (tree *Tree[T]) Check() error {
	if !tree.CheckUp() {
		return fault.ErrParentMismatch
	}
	n, err := tree.check(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	// strictly ascending in-order sequence covers both ordering and
	// uniqueness
	var previous *node[T]
	for p := tree.root.first(); nil != p; p = p.next() {
		if nil != previous {
			switch c := tree.compare(previous.value, p.value); {
			case 0 == c:
				return fault.ErrDuplicateValue
			case c > 0:
				return fault.ErrOrderViolation
			}
		}
		previous = p
	}
	return nil
}

// internal: verify cached heights, counts and balance, returns the
// number of nodes in the sub-tree
func (tree *Tree[T]) check(p *node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := tree.check(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.right)
	if nil != err {
		return 0, err
	}

	lh := p.left.getHeight()
	rh := p.right.getHeight()
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if p.height != h {
		return 0, fault.ErrHeightMismatch
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, fault.ErrBalanceViolation
	}
	if p.nodes != 1+nl+nr {
		return 0, fault.ErrSizeMismatch
	}
	return 1 + nl + nr, nil
}
