// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree, a key already present is ignored
func (tree *Tree) Insert(key int64) {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.size += 1
	}
}

// internal routine for insert
// returns the new sub-tree root and whether a node was created
func insert(key int64, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{key: key, height: 1}, true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default:
		return p, false // duplicate: nothing below has changed
	}
	if !added {
		return p, false
	}

	updateHeight(p)

	balance := balanceOf(p)
	if balance > 1 {
		if key < p.left.key {
			// single LL rotation
			return rotateRight(p), true
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true
	}
	if balance < -1 {
		if key > p.right.key {
			// single RR rotation
			return rotateLeft(p), true
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}
