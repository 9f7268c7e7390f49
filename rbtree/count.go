// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Count - number of occurrences of a key, 0 or 1
func (tree *Tree) Count(key int64) int {
	return tree.count(key, tree.root)
}

func (tree *Tree) count(key int64, h handle) int {
	if none == h {
		return 0
	}
	n := &tree.nodes[h]
	switch {
	case key < n.key:
		return tree.count(key, n.left)
	case key > n.key:
		return tree.count(key, n.right)
	default:
		// duplicates are never inserted, so both of these are zero
		return 1 + tree.count(key, n.left) + tree.count(key, n.right)
	}
}

// find the node holding key
func (tree *Tree) search(key int64) handle {
	h := tree.root
	for none != h {
		n := &tree.nodes[h]
		switch {
		case key < n.key:
			h = n.left
		case key > n.key:
			h = n.right
		default:
			return h
		}
	}
	return none
}
