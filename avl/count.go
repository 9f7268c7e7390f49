// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Count - number of occurrences of a key, 0 or 1
func (tree *Tree) Count(key int64) int {
	return count(key, tree.root)
}

func count(key int64, p *Node) int {
	if nil == p {
		return 0
	}
	switch {
	case key < p.key:
		return count(key, p.left)
	case key > p.key:
		return count(key, p.right)
	default:
		// both sides are searched for further copies, there
		// never are any since duplicates are not inserted
		return 1 + count(key, p.left) + count(key, p.right)
	}
}
