// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree is above the left one
//
// printData adds the parent, balance, height and node count to each line:
//
//	       /------+ 30 ^20 +0 h:1 n:1
//	|------+ 20 ^<nil> +0 h:2 n:3
//	       \------+ 10 ^20 +0 h:1 n:1
//
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// String - the tree as drawn by Print without node data
func (tree *Tree[T]) String() string {
	var b strings.Builder
	tree.Print(&b, false)
	return b.String()
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *node[T], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		up := interface{}(nil)
		if nil != tree.up {
			up = tree.up.value
		}
		fmt.Fprintf(w, "%v ^%v %+2d h:%d n:%d\n", tree.value, up, tree.getBalance(), tree.height, tree.nodes)
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
