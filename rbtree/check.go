// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/treebench/fault"
)

// Check - verify key order, parent links, colours, black height and
// node count
//
// returns nil if the tree is consistent
func (tree *Tree) Check() error {
	if none != tree.root {
		if none != tree.nodes[tree.root].parent {
			return fault.ErrParentLinkBroken
		}
		if tree.isRed(tree.root) {
			return fault.ErrRedRoot
		}
	}
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.size {
		return fault.ErrSizeMismatch
	}
	if len(tree.nodes)-1 != tree.size+tree.freeNodes {
		return fault.ErrArenaCorrupt
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between the
// optional bounds; returns the number of nodes and the black height
// of the sub-tree
func (tree *Tree) check(h handle, lower *int64, upper *int64) (int, int, error) {
	if none == h {
		return 0, 1, nil // absent leaves are black
	}
	n := &tree.nodes[h]
	if nil != lower && n.key <= *lower {
		return 0, 0, fault.ErrKeyOrder
	}
	if nil != upper && n.key >= *upper {
		return 0, 0, fault.ErrKeyOrder
	}
	for _, c := range []handle{n.left, n.right} {
		if none == c {
			continue
		}
		if tree.nodes[c].parent != h {
			return 0, 0, fault.ErrParentLinkBroken
		}
		if red == n.colour && tree.isRed(c) {
			return 0, 0, fault.ErrRedNodeHasRedChild
		}
	}

	nl, bl, err := tree.check(n.left, lower, &n.key)
	if nil != err {
		return 0, 0, err
	}
	nr, br, err := tree.check(n.right, &n.key, upper)
	if nil != err {
		return 0, 0, err
	}
	if bl != br {
		return 0, 0, fault.ErrBlackHeightMismatch
	}
	if black == n.colour {
		bl += 1
	}
	return 1 + nl + nr, bl, nil
}

// internal: in-order visit, stops early if f returns false
func (tree *Tree) walk(h handle, f func(handle) bool) bool {
	if none == h {
		return true
	}
	return tree.walk(tree.nodes[h].left, f) && f(h) && tree.walk(tree.nodes[h].right, f)
}
