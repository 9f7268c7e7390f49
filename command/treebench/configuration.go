// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treebench/configuration"
	"github.com/bitmark-inc/treebench/fault"
	"github.com/bitmark-inc/treebench/tree"
	"github.com/bitmark-inc/treebench/util"
	"github.com/bitmark-inc/treebench/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultDataFile      = "data.txt"

	defaultDraws   = 50000
	defaultMinimum = -9999
	defaultMaximum = 9999

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the benchmark settings
type Configuration struct {
	DataDirectory    string                 `gluamapper:"data_directory" json:"data_directory"`
	DataFile         string                 `gluamapper:"data_file" json:"data_file"`
	Trees            []string               `gluamapper:"trees" json:"trees"`
	Workload         workload.Configuration `gluamapper:"workload" json:"workload"`
	ProgressInterval int                    `gluamapper:"progress_interval" json:"progress_interval"`
	Logging          logger.Configuration   `gluamapper:"logging" json:"logging"`

	kinds []tree.Kind // parsed from Trees
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		DataFile:      defaultDataFile,
		Trees:         nil, // all default kinds

		Workload: workload.Configuration{
			Draws:   defaultDraws,
			Minimum: defaultMinimum,
			Maximum: defaultMaximum,
			Seed:    0, // time based
		},
		ProgressInterval: 0,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return nil, fault.ErrNotADirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.DataFile,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// tree selection
	if nil == options.Trees {
		options.kinds = tree.Kinds()
	} else {
		if 0 == len(options.Trees) {
			return nil, fault.ErrNoTreesConfigured
		}
		for _, s := range options.Trees {
			k, err := tree.ParseKind(s)
			if nil != err {
				return nil, err
			}
			options.kinds = append(options.kinds, k)
		}
	}

	if options.Workload.Draws < 0 {
		return nil, fault.ErrInvalidDraws
	}
	if options.Workload.Minimum > options.Workload.Maximum {
		return nil, fault.ErrInvalidRange
	}
	if options.ProgressInterval < 0 {
		options.ProgressInterval = 0
	}

	return options, nil
}
