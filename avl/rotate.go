// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// lift the right child above p, p's old right-left sub-tree becomes
// p's right; returns the new sub-tree root
//
//	  p              p1
//	 / \            /  \
//	a   p1   =>    p    c
//	   /  \       / \
//	  b    c     a   b
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	// p is now below p1 so must be first
	updateHeight(p)
	updateHeight(p1)
	return p1
}

// mirror of rotateLeft
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	updateHeight(p)
	updateHeight(p1)
	return p1
}
