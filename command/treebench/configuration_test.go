// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treebench/fault"
	"github.com/bitmark-inc/treebench/tree"
)

// create a scratch directory holding one configuration file
func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "treebench")
	require.Nil(t, err, "temp dir")

	dir, err = filepath.EvalSymlinks(dir)
	require.Nil(t, err, "resolve temp dir")

	fileName := filepath.Join(dir, "treebench.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write")
	return dir, fileName
}

func TestConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "read")

	assert.Equal(t, dir, options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, defaultDataFile), options.DataFile, "data file")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, tree.Kinds(), options.kinds, "kinds")
	assert.Equal(t, defaultDraws, options.Workload.Draws, "draws")
	assert.Equal(t, int64(defaultMinimum), options.Workload.Minimum, "minimum")
	assert.Equal(t, int64(defaultMaximum), options.Workload.Maximum, "maximum")
	assert.Equal(t, int64(0), options.Workload.Seed, "seed")
	assert.Equal(t, 0, options.ProgressInterval, "progress interval")
}

func TestConfigurationValues(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.data_file = "/tmp/values.txt"
M.trees = { "rb", "AVL", "gods" }
M.workload = {
    draws = 10,
    minimum = -5,
    maximum = 5,
    seed = 1234,
    report_counts = true,
}
M.progress_interval = 3
return M
`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "read")

	assert.Equal(t, "/tmp/values.txt", options.DataFile, "absolute data file is kept")
	assert.Equal(t, []tree.Kind{tree.RedBlack, tree.AVL, tree.Reference}, options.kinds, "kinds")
	assert.Equal(t, 10, options.Workload.Draws, "draws")
	assert.Equal(t, int64(-5), options.Workload.Minimum, "minimum")
	assert.Equal(t, int64(5), options.Workload.Maximum, "maximum")
	assert.Equal(t, int64(1234), options.Workload.Seed, "seed")
	assert.True(t, options.Workload.ReportCounts, "report counts")
	assert.Equal(t, 3, options.ProgressInterval, "progress interval")
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"no data directory", `return { }`, fault.ErrInvalidDataDirectory},
		{"home data directory", `return { data_directory = "~" }`, fault.ErrInvalidDataDirectory},
		{"absent data directory", `return { data_directory = "no/such/place" }`, fault.ErrNotADirectory},
		{"unknown tree", `return { data_directory = ".", trees = { "avl", "splay" } }`, fault.ErrInvalidTreeKind},
		{"negative draws", `return { data_directory = ".", workload = { draws = -1 } }`, fault.ErrInvalidDraws},
		{"reversed range", `return { data_directory = ".", workload = { minimum = 10, maximum = 1 } }`, fault.ErrInvalidRange},
		{"not a table", `return 42`, fault.ErrConfigurationNotTable},
	}

	for _, test := range tests {
		dir, fileName := writeConfiguration(t, test.content)
		_, err := getConfiguration(fileName)
		assert.Equal(t, test.expected, err, test.name)
		os.RemoveAll(dir)
	}
}

func TestConfigurationEmptyTreeList(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = ".", trees = {} }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "empty tree list")
}
