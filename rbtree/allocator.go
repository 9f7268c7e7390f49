// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/treebench/fault"
)

// allocate a new red node, reuses reclaimed slots if any are available
//
// may grow the arena so no *node may be held across this call
func (tree *Tree) newNode(key int64) handle {
	if none == tree.free {
		if 0 != tree.freeNodes {
			fault.Panic(fault.ErrArenaCorrupt.Error())
		}
		tree.nodes = append(tree.nodes, node{
			key:    key,
			colour: red,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	p := &tree.nodes[h]
	tree.free = p.parent
	*p = node{
		key:    key,
		colour: red,
	}
	tree.freeNodes -= 1
	return h
}

// reclaim a slot and keep it in the free list
func (tree *Tree) freeNode(h handle) {
	tree.nodes[h] = node{
		parent: tree.free, // use as free list pointer
		colour: black,
	}
	tree.free = h
	tree.freeNodes += 1
}
