// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treebench/background"
	"github.com/bitmark-inc/treebench/dataset"
	"github.com/bitmark-inc/treebench/fault"
	"github.com/bitmark-inc/treebench/tree"
	"github.com/bitmark-inc/treebench/workload"
)

// a tree under test
type subject struct {
	kind tree.Kind
	tree tree.Tree
}

// load the data file, fill every configured tree then run the same
// workload on each of them, timings are written to out
//
// with verify set each tree checks its invariants at the end
func benchmark(log *logger.L, options *Configuration, out io.Writer, verify bool) error {

	keys, err := dataset.LoadFile(options.DataFile)
	if nil != err {
		log.Criticalf("data file: %q  error: %s", options.DataFile, err)
		return err
	}
	if 0 == len(keys) {
		log.Warnf("data file: %q contains no integers", options.DataFile)
	}
	log.Infof("data file: %q  keys: %d", options.DataFile, len(keys))

	subjects := make([]subject, 0, len(options.kinds))
	for _, kind := range options.kinds {
		// kinds were validated with the configuration
		t, err := tree.New(kind)
		fault.PanicIfError(fmt.Sprintf("create %s tree", kind), err)

		d := workload.Fill(t, keys)
		fmt.Fprintf(out, "%s fill time: %d ms\n", kind.Name(), d.Milliseconds())
		log.Infof("%s: fill: %v", kind.Name(), d)

		subjects = append(subjects, subject{
			kind: kind,
			tree: t,
		})
	}

	// every tree gets an identically seeded generator so all of
	// them see the same sequence of draws
	seed := options.Workload.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("workload seed: %d", seed)

	runner := workload.NewRunner(logger.New("workload"))

	var progress *workload.Progress
	if options.ProgressInterval > 0 {
		interval := time.Duration(options.ProgressInterval) * time.Second
		progress = workload.NewProgress(logger.New("progress"), runner, interval)
	}

	for _, s := range subjects {
		var p *background.T
		if nil != progress {
			p = background.Start(background.Processes{progress}, s.kind.Name())
		}

		result, err := runner.Run(s.kind, s.tree, rand.New(rand.NewSource(seed)), options.Workload)
		p.Stop()
		if nil != err {
			log.Criticalf("%s: workload error: %s", s.kind.Name(), err)
			return err
		}

		fmt.Fprintf(out, "%s operations time: %d ms\n", s.kind.Name(), result.Elapsed.Milliseconds())
		fmt.Fprintf(out, "%s draws: %d  inserts: %d  removes: %d  counts: %d  hits: %d\n",
			s.kind.Name(), result.Draws, result.Inserts, result.Removes, result.Counts, result.Hits)
	}

	if !verify {
		return nil
	}

	for _, s := range subjects {
		if c, ok := s.tree.(tree.Checker); ok {
			if err := c.Check(); nil != err {
				log.Criticalf("%s: inconsistent tree: %s", s.kind.Name(), err)
				return err
			}
		}
		if st, ok := s.tree.(tree.Statistics); ok {
			fmt.Fprintf(out, "%s check: ok  size: %d  height: %d\n", s.kind.Name(), st.Size(), st.Height())
		}
	}
	return nil
}
