// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treebench/avl"
)

func TestListShort(t *testing.T) {
	addList := []int64{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int64{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int64{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
		8579, 1012, 5935, 8278, 5761,
		1871, 6257, 2649, 8643, 1239,
		3416, 6146, 7127, 9517, 5788,
		9025, 6880, 9064, 4849, 4503,
		4898, 6815, 8811, 6745, 6907,
		7503, 9869, 5491, 9940, 5955,
		3764, 3254, 8048, 5339, 2406,
		3137, 251, 486, 4202, 1844,
		1741, 7154, 4286, 5160, 9472,
		2998, 1935, 4758, 6478, 9572,
		9254, 6848, 3126, 1848, 7692,
		2791, 1504, 3469, 9701, 5077,
		7928, 7978, 5383, 4319, 8197,
		9227, 1166, 4216, 866, 1791,
		5395, 4310, 4452, 6140, 1494,
		8859, 3394, 5507, 7295, 5408,
		7789, 8237, 6990, 6882, 8243,
		8894, 4352, 6727, 7019, 3126,
		3102, 2948, 8242, 5027, 8892,
		3492, 1323, 1101, 4526, 5177,
		6175, 6664, 2742, 6094, 9877,
		2534, 2105, 6588, 9982, 3696,
		3480, 2244, 7487, 2844, 3199,
		5829, 6952, 6915, 905, 7615,
	}
	doList(t, addList)
}

// insert the whole list, then for each prefix length delete the
// prefix, verify, then delete the remainder
func doList(t *testing.T, addList []int64) {

	unique := make(map[int64]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
	}

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int64]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Check(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("add: inconsistent tree: %s", err)
		}
		if len(unique) != tree.Size() {
			t.Fatalf("size: actual: %d  expected: %d", tree.Size(), len(unique))
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if 1 != tree.Count(key) {
				t.Fatalf("count before delete: %d  expected: 1", tree.Count(key))
			}
			tree.Remove(key)
			if 0 != tree.Count(key) {
				t.Fatalf("key: %d still present after delete", key)
			}
		}

		if err := tree.Check(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			tree.Remove(key)
		}
		if !tree.IsEmpty() {
			dumpTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Size() {
			t.Fatalf("remaining size not zero: %d", tree.Size())
		}
	}
}

func dumpTree(t *testing.T, tree *avl.Tree) {
	var b bytes.Buffer
	depth := tree.Print(&b)
	t.Logf("depth: %d\n%s", depth, b.String())
}

func makeKey() int64 {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int64(binary.BigEndian.Uint32(b))
	return n%20000 - 10000
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	present := make(map[int64]struct{})
	d := make([]int64, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
		present[key] = struct{}{}
	}

	require.NoError(t, tree.Check(), "after insert")
	require.Equal(t, len(present), tree.Size(), "size after insert")

	for _, key := range d {
		tree.Remove(key)
		delete(present, key)
		if err := tree.Check(); nil != err {
			dumpTree(t, tree)
			t.Fatalf("inconsistent tree: %s", err)
		}
	}
	assert.Equal(t, len(present), tree.Size(), "size after delete")

	for key := range present {
		assert.Equal(t, 1, tree.Count(key), "surviving key: %d", key)
	}
	for _, key := range d {
		assert.Equal(t, 0, tree.Count(key), "deleted key: %d", key)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty(), "new tree")
	assert.Equal(t, 0, tree.Height(), "height")

	tree.Remove(42)

	assert.True(t, tree.IsEmpty(), "after removing absent key")
	assert.Equal(t, 0, tree.Count(42), "count")
	assert.Equal(t, 0, tree.Count(-42), "count")
	assert.NoError(t, tree.Check(), "check")

	var b bytes.Buffer
	assert.Equal(t, 0, tree.Print(&b), "print depth")
	assert.Equal(t, 0, b.Len(), "print output")
}

func TestDuplicateInsertIsIgnored(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 3; i += 1 {
		tree.Insert(5)
	}

	assert.Equal(t, 1, tree.Size(), "size")
	assert.Equal(t, 1, tree.Count(5), "count")
	assert.Equal(t, 1, tree.Height(), "height")

	for _, key := range []int64{8, 3, 9, 1, 4} {
		tree.Insert(key)
	}
	h := tree.Height()
	n := tree.Size()
	for _, key := range []int64{8, 3, 9, 1, 4, 5} {
		tree.Insert(key)
	}
	assert.Equal(t, h, tree.Height(), "height after duplicates")
	assert.Equal(t, n, tree.Size(), "size after duplicates")
	assert.NoError(t, tree.Check(), "check")
}

func TestInsertThenRemoveRoundTrip(t *testing.T) {
	tree := avl.New()
	for key := int64(-20); key <= 20; key += 3 {
		tree.Insert(key)
	}
	before := tree.Size()

	tree.Insert(1000)
	assert.Equal(t, 1, tree.Count(1000), "after insert")
	tree.Remove(1000)
	assert.Equal(t, 0, tree.Count(1000), "after remove")

	assert.Equal(t, before, tree.Size(), "size restored")
	for key := int64(-20); key <= 20; key += 3 {
		assert.Equal(t, 1, tree.Count(key), "key: %d", key)
	}
	assert.NoError(t, tree.Check(), "check")
}

// heights must stay logarithmic for sequential input
func TestAscendingInsertHeight(t *testing.T) {
	tree := avl.New()
	for key := int64(1); key <= 1023; key += 1 {
		tree.Insert(key)
	}
	assert.Equal(t, 10, tree.Height(), "perfect tree height")
	assert.NoError(t, tree.Check(), "check")
}
