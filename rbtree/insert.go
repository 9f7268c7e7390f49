// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - add a key to the tree, a key already present is ignored
func (tree *Tree) Insert(key int64) {
	parent := none
	side := left
	for h := tree.root; none != h; {
		parent = h
		switch n := &tree.nodes[h]; {
		case key < n.key:
			h = n.left
			side = left
		case key > n.key:
			h = n.right
			side = right
		default:
			return // duplicate
		}
	}

	z := tree.newNode(key)
	tree.nodes[z].parent = parent
	switch {
	case none == parent:
		tree.root = z
	case left == side:
		tree.nodes[parent].left = z
	default:
		tree.nodes[parent].right = z
	}
	tree.size += 1

	tree.fixInsertViolation(z)
}

// climb from a new red node while it and its parent are both red
func (tree *Tree) fixInsertViolation(z handle) {
	nodes := tree.nodes

	for z != tree.root && tree.isRed(z) && tree.isRed(nodes[z].parent) {
		p := nodes[z].parent
		g := nodes[p].parent // p is red so cannot be the root

		if p == nodes[g].left {
			u := nodes[g].right
			if tree.isRed(u) {
				nodes[p].colour = black
				nodes[u].colour = black
				nodes[g].colour = red
				z = g
				continue
			}
			if z == nodes[p].right {
				// inner grandchild: make it the outer one
				tree.rotateLeft(p)
				z, p = p, z
			}
			tree.rotateRight(g)
			nodes[p].colour, nodes[g].colour = nodes[g].colour, nodes[p].colour
			z = p
		} else {
			u := nodes[g].left
			if tree.isRed(u) {
				nodes[p].colour = black
				nodes[u].colour = black
				nodes[g].colour = red
				z = g
				continue
			}
			if z == nodes[p].left {
				tree.rotateRight(p)
				z, p = p, z
			}
			tree.rotateLeft(g)
			nodes[p].colour, nodes[g].colour = nodes[g].colour, nodes[p].colour
			z = p
		}
	}
	nodes[tree.root].colour = black
}
