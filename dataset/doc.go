// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dataset - read and write the benchmark data file
//
// The file holds decimal signed integers separated by white space;
// reading stops quietly at the first word that is not an integer.
package dataset
