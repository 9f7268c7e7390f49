// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// in-order key list
func (tree *Tree) keys() []int64 {
	k := make([]int64, 0, tree.size)
	tree.root.walk(func(p *Node) bool {
		k = append(k, p.key)
		return true
	})
	return k
}

func span(from int64, to int64) []int64 {
	k := []int64{}
	for i := from; i <= to; i += 1 {
		k = append(k, i)
	}
	return k
}

func TestRotationCases(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int64
		root     int64
		expected []int64
	}{
		{"right-right", []int64{10, 20, 30}, 20, []int64{10, 20, 30}},
		{"left-left", []int64{30, 20, 10}, 20, []int64{10, 20, 30}},
		{"left-right", []int64{30, 10, 20}, 20, []int64{10, 20, 30}},
		{"right-left", []int64{10, 30, 20}, 20, []int64{10, 20, 30}},
	}

	for _, test := range tests {
		tree := New()
		for _, key := range test.keys {
			tree.Insert(key)
		}
		assert.Equal(t, test.root, tree.root.key, "%s: root", test.name)
		assert.Equal(t, 2, tree.root.height, "%s: root height", test.name)
		assert.Equal(t, 1, tree.root.left.height, "%s: left height", test.name)
		assert.Equal(t, 1, tree.root.right.height, "%s: right height", test.name)
		assert.Equal(t, test.expected, tree.keys(), "%s: keys", test.name)
	}
}

func TestFirstScenario(t *testing.T) {
	tree := New()
	for _, key := range []int64{10, 20, 30} {
		tree.Insert(key)
	}
	assert.Equal(t, int64(20), tree.root.key, "root")
	assert.Equal(t, 1, tree.Count(20), "count(20)")
	assert.Equal(t, 0, tree.Count(5), "count(5)")
}

func TestRemoveMiddleOfSequence(t *testing.T) {
	tree := New()
	for _, key := range span(1, 15) {
		tree.Insert(key)
	}
	assert.Equal(t, int64(8), tree.root.key, "root before delete")

	tree.Remove(8)

	assert.Equal(t, 0, tree.Count(8), "count(8)")
	assert.Equal(t, append(span(1, 7), span(9, 15)...), tree.keys(), "keys")
	assert.NoError(t, tree.Check(), "check")

	// successor key is copied into the old root node
	assert.Equal(t, int64(9), tree.root.key, "root after delete")
}

// deleting from the short side of a node whose other child is
// balanced needs a single rotation, only the child balance decides
func TestDeleteUsesChildBalance(t *testing.T) {
	tree := New()
	for _, key := range []int64{20, 10, 30, 5, 15, 40} {
		tree.Insert(key)
	}
	tree.Remove(40)
	tree.Remove(30)

	// left child 10 had balance 0, so a single right rotation
	assert.Equal(t, int64(10), tree.root.key, "root")
	assert.Equal(t, []int64{5, 10, 15, 20}, tree.keys(), "keys")
	assert.NoError(t, tree.Check(), "check")

	tree = New()
	for _, key := range []int64{20, 10, 30, 15, 40} {
		tree.Insert(key)
	}
	tree.Remove(40)
	tree.Remove(30)

	// left child 10 leans right, so a left-right double rotation
	assert.Equal(t, int64(15), tree.root.key, "root")
	assert.Equal(t, []int64{10, 15, 20}, tree.keys(), "keys")
	assert.NoError(t, tree.Check(), "check")
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New()
	for _, key := range span(1, 7) {
		tree.Insert(key)
	}
	assert.NoError(t, tree.Check(), "valid tree")

	tree.root.left.key = 100
	assert.Error(t, tree.Check(), "order")
	tree.root.left.key = 2

	tree.root.height = 7
	assert.Error(t, tree.Check(), "height")
	tree.root.height = 3

	tree.size = 3
	assert.Error(t, tree.Check(), "size")
	tree.size = 7

	// hang a two node chain under the rightmost leaf
	far := tree.root.right.right
	far.right = &Node{key: 8, height: 2, right: &Node{key: 9, height: 1}}
	far.height = 3
	tree.root.right.height = 4
	tree.root.height = 5
	tree.size = 9
	assert.Error(t, tree.Check(), "balance")
}
