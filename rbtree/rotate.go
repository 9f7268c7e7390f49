// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// lift the right child of x into its place
//
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (tree *Tree) rotateLeft(x handle) {
	nodes := tree.nodes
	y := nodes[x].right
	b := nodes[y].left

	nodes[x].right = b
	if none != b {
		nodes[b].parent = x
	}
	tree.replaceChild(nodes[x].parent, x, y)
	nodes[y].parent = nodes[x].parent
	nodes[y].left = x
	nodes[x].parent = y
}

// mirror of rotateLeft
func (tree *Tree) rotateRight(x handle) {
	nodes := tree.nodes
	y := nodes[x].left
	b := nodes[y].right

	nodes[x].left = b
	if none != b {
		nodes[b].parent = x
	}
	tree.replaceChild(nodes[x].parent, x, y)
	nodes[y].parent = nodes[x].parent
	nodes[y].right = x
	nodes[x].parent = y
}

// point the link in parent that held from at to instead
func (tree *Tree) replaceChild(parent handle, from handle, to handle) {
	switch {
	case none == parent:
		tree.root = to
	case tree.nodes[parent].left == from:
		tree.nodes[parent].left = to
	default:
		tree.nodes[parent].right = to
	}
}

// put v (possibly none) into the position of u
func (tree *Tree) transplant(u handle, v handle) {
	parent := tree.nodes[u].parent
	tree.replaceChild(parent, u, v)
	if none != v {
		tree.nodes[v].parent = parent
	}
}
