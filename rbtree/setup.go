// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// index of a node in the arena
type handle int32

// the absent node
const none handle = 0

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if red == c {
		return "R"
	}
	return "B"
}

// which child link of a parent
type branch int

const (
	left branch = iota
	right
)

// a node in the tree
type node struct {
	left   handle // left sub-tree
	right  handle // right sub-tree
	parent handle // parent node, or next free slot while reclaimed
	key    int64  // key part for ordering
	colour color
}

// Tree - type to hold the node arena and the root handle
type Tree struct {
	nodes     []node // nodes[none] is never used
	root      handle
	free      handle // linked list of reclaimed slots
	freeNodes int    // number of slots in the free list
	size      int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1),
		root:  none,
		free:  none,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return none == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree) Size() int {
	return tree.size
}

// Height - longest root to leaf path, zero when empty
func (tree *Tree) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree) height(h handle) int {
	if none == h {
		return 0
	}
	hl := tree.height(tree.nodes[h].left)
	hr := tree.height(tree.nodes[h].right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// absent nodes count as black
func (tree *Tree) isRed(h handle) bool {
	return none != h && red == tree.nodes[h].colour
}

// the child of parent on a side, a parent of none means the root
func (tree *Tree) child(parent handle, side branch) handle {
	if none == parent {
		return tree.root
	}
	if left == side {
		return tree.nodes[parent].left
	}
	return tree.nodes[parent].right
}

// which side of parent h hangs from
func (tree *Tree) sideOf(parent handle, h handle) branch {
	if none != parent && tree.nodes[parent].right == h {
		return right
	}
	return left
}

// internal: lowest node in a sub-tree
func (tree *Tree) first(h handle) handle {
	for none != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}
