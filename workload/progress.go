// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treebench/fault"
)

// Progress - background process to log a runner's tallies
type Progress struct {
	log      *logger.L
	runner   *Runner
	interval time.Duration
}

// NewProgress - create a reporter for use with background.Start
func NewProgress(log *logger.L, runner *Runner, interval time.Duration) *Progress {
	if nil == log {
		fault.Panic(fault.ErrInvalidLoggerChannel.Error())
	}
	if interval <= 0 {
		fault.Panicf("progress interval: %v is not positive", interval)
	}
	return &Progress{
		log:      log,
		runner:   runner,
		interval: interval,
	}
}

// Run - report until shutdown, args is the name of the tree
func (p *Progress) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log
	log.Infof("starting: %v", args)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	previous := uint64(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			t := p.runner.Tallies()
			log.Infof("%v: draws: %d (+%d)  inserts: %d  removes: %d  counts: %d  hits: %d",
				args, t.Draws, t.Draws-previous, t.Inserts, t.Removes, t.Counts, t.Hits)
			previous = t.Draws
		}
	}
	log.Infof("stopped: %v", args)
}
