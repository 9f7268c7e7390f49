// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/treebench/dataset"
	"github.com/bitmark-inc/treebench/util"
)

// data file generation defaults
const (
	defaultGenerateCount = 500000
)

// setup command handler
//
// commands that run to create data files these commands cannot
// access the configuration file
func processSetupCommand(program string, arguments []string, quiet bool) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate", "gen":
		if len(arguments) < 1 || len(arguments) > 2 {
			exitwithstatus.Message("%s: generate requires: FILE [COUNT]", program)
		}
		fileName := arguments[0]

		count := defaultGenerateCount
		if 2 == len(arguments) {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n < 0 {
				exitwithstatus.Message("%s: invalid count: %q", program, arguments[1])
			}
			count = n
		}

		err := generateDataFile(fileName, count, !quiet)
		if nil != err {
			fmt.Printf("cannot generate data file: %q\n", fileName)
			fmt.Printf("error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated: %d values in data file: %q\n", count, fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		printUsage(os.Stdout, program)
		exitwithstatus.Exit(1)
	}
	return true
}

// display the command summary
func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")

	fmt.Fprintf(w, "  generate FILE [COUNT]      (gen)    - write COUNT random integers to FILE\n")
	fmt.Fprintf(w, "                                        default count: %d  range: [%d, %d]\n", defaultGenerateCount, defaultMinimum, defaultMaximum)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  start                      (run)    - just run the program, same as no arguments\n")
	fmt.Fprintf(w, "                                        for convenience when passing script arguments\n")
	fmt.Fprintf(w, "\n")
}

// create a new data file, an existing file is never overwritten
func generateDataFile(fileName string, count int, showProgress bool) error {
	if util.EnsureFileExists(fileName) {
		return fmt.Errorf("file: %q already exists", fileName)
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0644)
	if nil != err {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetDescription("generating "+fileName),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n")
			}),
		)
		w = io.MultiWriter(f, bar)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	err = dataset.Generate(w, count, defaultMinimum, defaultMaximum, rng)
	if nil != bar {
		_ = bar.Finish()
	}
	if nil != err {
		return err
	}
	return f.Sync()
}
