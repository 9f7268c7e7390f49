// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/treebench/tree"
)

// Fill - insert every key in order, returns the elapsed time
func Fill(t tree.Tree, keys []int64) time.Duration {
	start := time.Now()
	for _, key := range keys {
		t.Insert(key)
	}
	return time.Since(start)
}
