// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete a key from the tree, an absent key is ignored
func (tree *Tree) Remove(key int64) {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.size -= 1
	}
}

// internal delete routine
// returns the new sub-tree root and whether a node was unlinked
func remove(key int64, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = remove(key, p.left)
	case key > p.key:
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the successor's key then
		// delete the successor, which has no left child
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = remove(successor.key, p.right)
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// delete: tree balancer, also refreshes the cached height
func rebalance(p *Node) *Node {
	updateHeight(p)

	balance := balanceOf(p)
	if balance > 1 {
		if balanceOf(p.left) >= 0 {
			// single LL rotation
			return rotateRight(p)
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	}
	if balance < -1 {
		if balanceOf(p.right) <= 0 {
			// single RR rotation
			return rotateLeft(p)
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}
