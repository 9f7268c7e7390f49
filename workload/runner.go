// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treebench/counter"
	"github.com/bitmark-inc/treebench/fault"
	"github.com/bitmark-inc/treebench/tree"
)

// Configuration - parameters of a run
type Configuration struct {
	Draws        int   `gluamapper:"draws" json:"draws"`
	Minimum      int64 `gluamapper:"minimum" json:"minimum"`
	Maximum      int64 `gluamapper:"maximum" json:"maximum"`
	Seed         int64 `gluamapper:"seed" json:"seed"`
	ReportCounts bool  `gluamapper:"report_counts" json:"report_counts"`
}

// Tallies - snapshot of the running totals
type Tallies struct {
	Draws   uint64 `json:"draws"`
	Inserts uint64 `json:"inserts"`
	Removes uint64 `json:"removes"`
	Counts  uint64 `json:"counts"`
	Hits    uint64 `json:"hits"` // counts that found the key
}

// Result - outcome of a complete run
type Result struct {
	Kind tree.Kind `json:"kind"`
	Tallies
	Elapsed time.Duration `json:"elapsed"`
}

// Runner - applies drawn operations to a tree and keeps tallies that
// may be read while a run is in progress
type Runner struct {
	log *logger.L

	draws   counter.Counter
	inserts counter.Counter
	removes counter.Counter
	counts  counter.Counter
	hits    counter.Counter
}

// NewRunner - create a runner that logs to the given channel
func NewRunner(log *logger.L) *Runner {
	if nil == log {
		fault.Panic(fault.ErrInvalidLoggerChannel.Error())
	}
	return &Runner{
		log: log,
	}
}

// Run - perform cfg.Draws operations on t
//
// each value is drawn uniformly from [cfg.Minimum, cfg.Maximum] and
// its operation is chosen by Classify
func (r *Runner) Run(kind tree.Kind, t tree.Tree, rng *rand.Rand, cfg Configuration) (Result, error) {
	if cfg.Draws < 0 {
		return Result{}, fault.ErrInvalidDraws
	}
	span := cfg.Maximum - cfg.Minimum + 1
	if cfg.Minimum > cfg.Maximum || span <= 0 {
		return Result{}, fault.ErrInvalidRange
	}

	r.reset()
	log := r.log
	log.Infof("%s: %d draws in [%d, %d]", kind.Name(), cfg.Draws, cfg.Minimum, cfg.Maximum)

	start := time.Now()
	for i := 0; i < cfg.Draws; i += 1 {
		n := cfg.Minimum + rng.Int63n(span)

		switch Classify(n) {
		case OpInsert:
			t.Insert(n)
			r.inserts.Increment()
		case OpRemove:
			t.Remove(n)
			r.removes.Increment()
		default:
			c := t.Count(n)
			r.counts.Increment()
			if 0 != c {
				r.hits.Increment()
			}
			if cfg.ReportCounts {
				log.Debugf("number %d occurs %d times", n, c)
			}
		}
		r.draws.Increment()
	}

	result := Result{
		Kind:    kind,
		Tallies: r.Tallies(),
		Elapsed: time.Since(start),
	}
	log.Infof("%s: finished: %+v", kind.Name(), result)
	return result, nil
}

// Tallies - current totals, safe to call during a run
func (r *Runner) Tallies() Tallies {
	return Tallies{
		Draws:   r.draws.Uint64(),
		Inserts: r.inserts.Uint64(),
		Removes: r.removes.Uint64(),
		Counts:  r.counts.Uint64(),
		Hits:    r.hits.Uint64(),
	}
}

func (r *Runner) reset() {
	r.draws.Reset()
	r.inserts.Reset()
	r.removes.Reset()
	r.counts.Reset()
	r.hits.Reset()
}
