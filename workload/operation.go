// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

// Operation - what a single draw does to the tree
type Operation int

// the operation kinds
const (
	OpCount Operation = iota
	OpInsert
	OpRemove
)

// String - name of the operation
func (op Operation) String() string {
	switch op {
	case OpCount:
		return "count"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Classify - select the operation for a drawn value
func Classify(n int64) Operation {
	if 0 == n%3 {
		return OpInsert
	}
	if 0 == n%5 {
		return OpRemove
	}
	return OpCount
}
