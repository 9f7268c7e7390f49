// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - the common contract of the balanced trees
//
// Both implementations hold unique int64 keys: Insert of a present
// key and Remove of an absent key are no-ops and Count returns 0 or 1.
// The concrete trees also satisfy Checker and Statistics.
package tree

//go:generate mockgen -destination=mocks/mock_tree.go -package=mocks github.com/bitmark-inc/treebench/tree Tree
