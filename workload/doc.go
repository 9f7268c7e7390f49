// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - timed fill and mixed operation runs over a tree
//
// Each draw n picks one operation:
//
//	n divisible by 3          insert n
//	else n divisible by 5     remove n
//	otherwise                 count n
//
// so a key that is a multiple of 15 is always inserted, never removed.
package workload
