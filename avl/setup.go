// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int64 // key part for ordering
	height int   // height of the sub-tree rooted here, at least 1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
	size int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
		size: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree) Size() int {
	return tree.size
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func balanceOf(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

func updateHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
