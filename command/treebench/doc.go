// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command treebench - time balanced trees against a shared data file
//
// The data file is inserted into each configured tree in turn and
// the fill time is printed.  Then a run of randomly drawn insert,
// remove and count operations is applied to every tree using the
// same seed and the elapsed time is printed.
//
//	treebench generate data.txt 500000
//	treebench --config-file=treebench.conf
package main
