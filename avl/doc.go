// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced tree of int64 keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and there are no
// parent pointers; every operation descends from the root and the
// recursion returns the new sub-tree root on the way back up, so a
// rotation only has to replace the link held by its caller.
//
// Keys are unique: inserting a key that is already present leaves
// the tree unchanged, so Count only ever returns 0 or 1.
package avl
