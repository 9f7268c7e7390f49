// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/treebench/fault"
)

// Remove - delete a key from the tree, an absent key is ignored
func (tree *Tree) Remove(key int64) {
	z := tree.search(key)
	if none == z {
		return
	}
	tree.deleteNode(z)
	tree.freeNode(z)
	tree.size -= 1
}

// unlink z from the tree and restore the colour invariants
func (tree *Tree) deleteNode(z handle) {
	nodes := tree.nodes

	// the position left behind by the node that was taken out;
	// its occupant (possibly none) carries the missing black
	var parent handle
	var side branch

	removedColour := nodes[z].colour

	if none == nodes[z].left || none == nodes[z].right {
		child := nodes[z].left
		if none == child {
			child = nodes[z].right
		}
		parent = nodes[z].parent
		side = tree.sideOf(parent, z)
		tree.transplant(z, child)

	} else {
		y := tree.first(nodes[z].right)
		removedColour = nodes[y].colour

		if nodes[y].parent == z {
			// y keeps its right sub-tree
			parent = y
			side = right
		} else {
			parent = nodes[y].parent
			side = left
			tree.transplant(y, nodes[y].right)
			nodes[y].right = nodes[z].right
			nodes[nodes[y].right].parent = y
		}

		// move the successor node itself into z's place
		tree.transplant(z, y)
		nodes[y].left = nodes[z].left
		nodes[nodes[y].left].parent = y
		nodes[y].colour = nodes[z].colour
	}

	if black == removedColour {
		tree.fixRemoveViolation(parent, side)
	}
}

// push a missing black up from the position (parent, side) until it
// can be absorbed; the occupant of the position may be none so it is
// always found through its parent
func (tree *Tree) fixRemoveViolation(parent handle, side branch) {
	nodes := tree.nodes

	x := tree.child(parent, side)
	for x != tree.root && !tree.isRed(x) {
		if left == side {
			w := nodes[parent].right
			if none == w {
				fault.Panicf("rbtree: black node: %d has no sibling", nodes[parent].key)
			}
			if tree.isRed(w) {
				nodes[w].colour = black
				nodes[parent].colour = red
				tree.rotateLeft(parent)
				w = nodes[parent].right
			}
			if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
				nodes[w].colour = red
				x = parent
				parent = nodes[x].parent
				side = tree.sideOf(parent, x)
				continue
			}
			if !tree.isRed(nodes[w].right) {
				// red child is on the near side: move it across
				nodes[nodes[w].left].colour = black
				nodes[w].colour = red
				tree.rotateRight(w)
				w = nodes[parent].right
			}
			nodes[w].colour = nodes[parent].colour
			nodes[parent].colour = black
			nodes[nodes[w].right].colour = black
			tree.rotateLeft(parent)
			x = tree.root

		} else {
			w := nodes[parent].left
			if none == w {
				fault.Panicf("rbtree: black node: %d has no sibling", nodes[parent].key)
			}
			if tree.isRed(w) {
				nodes[w].colour = black
				nodes[parent].colour = red
				tree.rotateRight(parent)
				w = nodes[parent].left
			}
			if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
				nodes[w].colour = red
				x = parent
				parent = nodes[x].parent
				side = tree.sideOf(parent, x)
				continue
			}
			if !tree.isRed(nodes[w].left) {
				nodes[nodes[w].right].colour = black
				nodes[w].colour = red
				tree.rotateLeft(w)
				w = nodes[parent].left
			}
			nodes[w].colour = nodes[parent].colour
			nodes[parent].colour = black
			nodes[nodes[w].left].colour = black
			tree.rotateRight(parent)
			x = tree.root
		}
	}
	if none != x {
		nodes[x].colour = black
	}
}
