// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workproof/candidate"
	"github.com/bitmark-inc/workproof/difficulty"
	"github.com/bitmark-inc/workproof/proof"
)

const (
	prooferLoggerPrefix = "proofer"

	// at most one "proof found" log line per interval, early in a run
	// low difficulty proofs are found on nearly every iteration
	foundLogInterval = 5 * time.Second
)

// a proof that met the target, queued for the submitter
type foundProof struct {
	Proof      candidate.Candidate
	Hash       [proof.HashLength]byte
	Difficulty float64
}

// proofer - one hashing worker bound to one generator
//
// the generator is single owner state: only this worker's Run touches it
type proofer struct {
	log       *logger.L
	n         int
	generator *proof.Generator
	target    *difficulty.Difficulty
	stats     *statistics
	found     chan<- foundProof
	limiter   *rate.Limiter
}

func newProofer(n int, generator *proof.Generator, target *difficulty.Difficulty, stats *statistics, found chan<- foundProof) *proofer {
	return &proofer{
		log:       logger.New(prooferLoggerPrefix),
		n:         n,
		generator: generator,
		target:    target,
		stats:     stats,
		found:     found,
		limiter:   rate.NewLimiter(rate.Every(foundLogInterval), 1),
	}
}

// background process entry
func (p *proofer) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log
	log.Infof("worker[%d]: starting…", p.n)
	log.Infof("worker[%d]: initial difficulty: %f", p.n, p.generator.Difficulty())

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		start := time.Now()
		score, err := p.generator.Next()
		if nil != err {
			// a misconfigured primitive will fail identically on
			// retry, so the worker stops rather than spinning
			log.Criticalf("worker[%d]: hashing failed: %s", p.n, err)
			break loop
		}
		p.stats.record(time.Since(start).Seconds(), score)

		if score >= p.target.Value() {
			if p.limiter.Allow() {
				log.Infof("worker[%d]: proof: %s  difficulty: %f", p.n, p.generator.Proof(), score)
			}
			select {
			case p.found <- foundProof{
				Proof:      p.generator.Proof(),
				Hash:       p.generator.Hash(),
				Difficulty: score,
			}:
			default:
				// submitter is behind; the proof is only a statistic
				// at this point, better to drop than to stall hashing
				log.Warnf("worker[%d]: submit queue full, dropping proof", p.n)
			}
		}
	}

	log.Infof("worker[%d]: shutting down…", p.n)
}
