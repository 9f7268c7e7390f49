// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/treebench/fault"
)

// Generate - write count integers drawn uniformly from the closed
// range [minimum, maximum], one per line
func Generate(w io.Writer, count int, minimum int64, maximum int64, rng *rand.Rand) error {
	if count < 0 {
		return fault.ErrInvalidCount
	}
	if minimum > maximum {
		return fault.ErrInvalidRange
	}

	span := maximum - minimum + 1
	buffer := bufio.NewWriter(w)
	line := make([]byte, 0, 24)

	for i := 0; i < count; i += 1 {
		n := draw(rng, minimum, maximum, span)
		line = strconv.AppendInt(line[:0], n, 10)
		line = append(line, '\n')
		if _, err := buffer.Write(line); nil != err {
			return err
		}
	}
	return buffer.Flush()
}

// span is zero or negative when maximum - minimum overflows, then
// the range holds more than half of all int64 values
func draw(rng *rand.Rand, minimum int64, maximum int64, span int64) int64 {
	if span > 0 {
		return minimum + rng.Int63n(span)
	}
	for {
		n := int64(rng.Uint64())
		if n >= minimum && n <= maximum {
			return n
		}
	}
}
