// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workproof/counter"
)

const (
	statisticsLoggerPrefix = "statistics"

	statisticsInterval = 10 * time.Second

	// difficulty thresholds counted per interval
	// score n corresponds to "n nines" of improbability
	ninesCount = 5
)

// statistics - shared recorder for all hashing workers
//
// the interval data is mutex guarded; lifetime totals are atomic so
// they can be read without taking the lock
type statistics struct {
	sync.Mutex

	log     *logger.L
	started time.Time

	// interval data, reset after each report
	iterations   int
	totalSeconds float64
	nines        [ninesCount]int

	// lifetime totals
	attempts counter.Counter
	accepted counter.Counter
}

func newStatistics() *statistics {
	return &statistics{
		log:     logger.New(statisticsLoggerPrefix),
		started: time.Now(),
	}
}

// record one iteration's duration and score
func (s *statistics) record(seconds float64, score float64) {

	s.attempts.Increment()

	s.Lock()
	s.iterations += 1
	s.totalSeconds += seconds
	for i := 0; i < ninesCount; i += 1 {
		if score >= float64(i+1) {
			s.nines[i] += 1
		}
	}
	s.Unlock()
}

// count a proof that met the target
func (s *statistics) recordAccepted() {
	s.accepted.Increment()
}

// background process entry: periodic report and reset
func (s *statistics) Run(args interface{}, shutdown <-chan struct{}) {

	s.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(statisticsInterval):
			s.report()
		}
	}

	s.report()
	s.log.Info("shutting down…")
}

// log one interval's data and reset it
func (s *statistics) report() {

	s.Lock()
	iterations := s.iterations
	totalSeconds := s.totalSeconds
	nines := s.nines
	s.iterations = 0
	s.totalSeconds = 0
	s.nines = [ninesCount]int{}
	s.Unlock()

	if 0 == iterations {
		s.log.Info("no iterations this interval")
		return
	}

	average := totalSeconds / float64(iterations)
	s.log.Infof("%0.1fs: %d iterations: avg %0.4fs, nines: %v, total: %d, accepted: %d",
		time.Since(s.started).Seconds(),
		iterations,
		average,
		nines,
		s.attempts.Uint64(),
		s.accepted.Uint64(),
	)
}
