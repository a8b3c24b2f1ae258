// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered set of unique
// values, with the addition of parent pointers to allow iteration
// through the nodes without an auxiliary stack
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Each node caches the height of its sub-tree (a leaf is 1, an absent
// sub-tree is 0) and the balance factor is derived from the heights
// of the two children.  Every node also counts the nodes in its
// sub-tree so that values can be fetched by sorted index.
//
// Inserting a value that is already present does nothing.  Deleting a
// node with two children copies the value of its in-order successor
// into it and then deletes the successor node instead.
//
// Any successful mutation invalidates all iterators on the tree;
// using a stale iterator panics.
package avl
