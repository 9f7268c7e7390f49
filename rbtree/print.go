// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth
func (tree *Tree) Print(w io.Writer) int {
	if none == tree.root {
		return 0
	}
	return tree.printTree(w, tree.root, "", "|")
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, h handle, prefix string, mark string) int {
	n := &tree.nodes[h]

	rd := 0
	if none != n.right {
		t := "       "
		if "\\" == mark {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, "/")
	}

	up := "-"
	if none != n.parent {
		up = fmt.Sprintf("%d", tree.nodes[n.parent].key)
	}
	fmt.Fprintf(w, "%s%s------+ %d %s ^%s\n", prefix, mark, n.key, n.colour, up)

	ld := 0
	if none != n.left {
		t := "       "
		if "/" == mark {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, "\\")
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
