// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlset/fault"
)

// Order - visiting sequence for Traverse and Walk
type Order int

// traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder   Order = iota // left, node, right: ascending values
	PostOrder Order = iota // left, right, node
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name as produced by String back to an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "pre", "preorder":
		return PreOrder, nil
	case "in", "inorder":
		return InOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	default:
		return 0, fault.ErrUnknownTraversalOrder
	}
}

// Traverse - apply visit to every value in the requested order
func (tree *Tree[T]) Traverse(order Order, visit func(T)) {
	tree.Walk(order, func(value T) bool {
		visit(value)
		return true
	})
}

// Walk - like Traverse but stops as soon as visit returns false
// returns false if the walk was stopped
func (tree *Tree[T]) Walk(order Order, visit func(T) bool) bool {
	switch order {
	case PreOrder:
		return preOrder(tree.root, visit)
	case InOrder:
		return inOrder(tree.root, visit)
	case PostOrder:
		return postOrder(tree.root, visit)
	default:
		fault.PanicWithError("avl.Walk", fault.ErrUnknownTraversalOrder)
	}
	return false
}

func preOrder[T any](p *node[T], visit func(T) bool) bool {
	if nil == p {
		return true
	}
	return visit(p.value) && preOrder(p.left, visit) && preOrder(p.right, visit)
}

func inOrder[T any](p *node[T], visit func(T) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, visit) && visit(p.value) && inOrder(p.right, visit)
}

func postOrder[T any](p *node[T], visit func(T) bool) bool {
	if nil == p {
		return true
	}
	return postOrder(p.left, visit) && postOrder(p.right, visit) && visit(p.value)
}

// All - iterator over all values in ascending order
//
// the tree must not be modified during the iteration
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.root.first(); nil != p; p = p.next() {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Backward - iterator over all values in descending order
//
// the tree must not be modified during the iteration
func (tree *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.root.last(); nil != p; p = p.prev() {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	for v := range tree.All() {
		values = append(values, v)
	}
	return values
}
