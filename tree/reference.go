// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// a library ordered set used as a baseline
type reference struct {
	data *rbt.Tree
}

func newReference() *reference {
	return &reference{
		data: rbt.NewWith(utils.Int64Comparator),
	}
}

// a repeated Put only replaces the empty value
func (r *reference) Insert(key int64) {
	r.data.Put(key, struct{}{})
}

func (r *reference) Remove(key int64) {
	r.data.Remove(key)
}

func (r *reference) Count(key int64) int {
	if _, found := r.data.Get(key); found {
		return 1
	}
	return 0
}

// Size - number of keys held
func (r *reference) Size() int {
	return r.data.Size()
}

// Height - longest root to leaf path, zero when empty
func (r *reference) Height() int {
	return depth(r.data.Root)
}

func depth(n *rbt.Node) int {
	if nil == n {
		return 0
	}
	l := depth(n.Left)
	r := depth(n.Right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
