// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black tree of int64 keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena owned by the tree and refer to each other
// by handle (the arena index) instead of by pointer; handle zero is
// "none".  The parent handle is only used to navigate rotations and
// the fixup walks.  Slots of deleted nodes are kept on a free list
// and reused by later inserts.
//
// Deleting a node with two children moves the successor node into
// its place rather than copying the key, so the successor keeps its
// handle.
//
// Keys are unique: inserting a key that is already present leaves
// the tree unchanged, so Count only ever returns 0 or 1.
package rbtree
