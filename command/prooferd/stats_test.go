// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
)

// recording must accumulate interval data and lifetime totals
func TestStatisticsRecord(t *testing.T) {

	s := newStatistics()

	s.record(0.010, 0.5)
	s.record(0.020, 1.5)
	s.record(0.030, 4.2)

	s.Lock()
	iterations := s.iterations
	totalSeconds := s.totalSeconds
	nines := s.nines
	s.Unlock()

	if 3 != iterations {
		t.Errorf("iterations: actual: %d  expected: 3", iterations)
	}
	if totalSeconds < 0.059 || totalSeconds > 0.061 {
		t.Errorf("total seconds: actual: %f  expected: 0.06", totalSeconds)
	}

	// 0.5 counts nowhere, 1.5 counts for ≥1, 4.2 counts for ≥1..4
	expectedNines := [ninesCount]int{2, 1, 1, 1, 0}
	if expectedNines != nines {
		t.Errorf("nines: actual: %v  expected: %v", nines, expectedNines)
	}

	if 3 != s.attempts.Uint64() {
		t.Errorf("attempts: actual: %d  expected: 3", s.attempts.Uint64())
	}

	s.recordAccepted()
	if 1 != s.accepted.Uint64() {
		t.Errorf("accepted: actual: %d  expected: 1", s.accepted.Uint64())
	}
}

// report must reset interval data but keep lifetime totals
func TestStatisticsReport(t *testing.T) {

	s := newStatistics()

	s.record(0.010, 2.0)
	s.report()

	s.Lock()
	iterations := s.iterations
	totalSeconds := s.totalSeconds
	nines := s.nines
	s.Unlock()

	if 0 != iterations {
		t.Errorf("iterations not reset: %d", iterations)
	}
	if 0.0 != totalSeconds {
		t.Errorf("total seconds not reset: %f", totalSeconds)
	}
	if ([ninesCount]int{}) != nines {
		t.Errorf("nines not reset: %v", nines)
	}

	if 1 != s.attempts.Uint64() {
		t.Errorf("attempts lost by report: %d", s.attempts.Uint64())
	}
}
