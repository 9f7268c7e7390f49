// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treebench/fault"
)

// Check - verify key order, cached heights, balance and node count
//
// returns nil if the tree is consistent
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.size {
		return fault.ErrSizeMismatch
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between the
// optional bounds; returns the number of nodes in the sub-tree
func check(p *Node, lower *int64, upper *int64) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != lower && p.key <= *lower {
		return 0, fault.ErrKeyOrder
	}
	if nil != upper && p.key >= *upper {
		return 0, fault.ErrKeyOrder
	}

	nl, err := check(p.left, lower, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, upper)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	expected := 1 + hl
	if hr > hl {
		expected = 1 + hr
	}
	if p.height != expected {
		return 0, fault.ErrHeightMismatch
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fault.ErrUnbalancedNode
	}
	return 1 + nl + nr, nil
}

// internal: in-order visit, stops early if f returns false
func (p *Node) walk(f func(*Node) bool) bool {
	if nil == p {
		return true
	}
	return p.left.walk(f) && f(p) && p.right.walk(f)
}
