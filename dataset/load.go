// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/treebench/fault"
)

// Load - read integers until the end of input or the first word that
// does not parse as an integer
func Load(r io.Reader) ([]int64, error) {
	keys := make([]int64, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if nil != err {
			break
		}
		keys = append(keys, n)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return keys, nil
}

// LoadFile - open and read a data file
func LoadFile(fileName string) ([]int64, error) {
	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return nil, fault.ErrNotFoundDataFile
	}
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
