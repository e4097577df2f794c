// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/workproof/candidate"
	"github.com/bitmark-inc/workproof/fault"
)

// number of bytes in the hash a proof is bound to
const HashLength = 32

// Generator - one worker's proof search state
//
// a generator is owned by exactly one worker at a time; there is no
// internal locking and none is needed as partitioning at Init time is
// the sole coordination between workers
type Generator struct {
	candidate candidate.Candidate
	hash      [HashLength]byte
	counter   candidate.Counter
	score     float64
}

// Init - create generators for parallel proof searching
//
// count is the number of generators to produce, one per concurrent
// worker.  seed is 1 to 20 bytes of starting entropy, repeated
// cyclically to fill the 20 byte search value; it need not be
// cryptographically secure provided the hash itself came from a well
// distributed hashing function.  hash is the 32 byte value the proofs
// will be bound to and is used as the argon2 salt.
//
// for fixed (count, seed, hash) the result is fully deterministic and
// the count starting positions are pairwise distinct, spread evenly
// across the 128 bit counter space with a fixed jitter added so that
// neighbouring workers also differ in their low order bytes
func Init(count int, seed []byte, hash []byte) ([]*Generator, error) {

	// check sizes of input data
	if count < 1 {
		return nil, fault.ErrInvalidWorkerCount
	}
	if 0 == len(seed) || len(seed) > candidate.Length {
		return nil, fault.ErrInvalidSeedLength
	}
	if HashLength != len(hash) {
		return nil, fault.ErrInvalidHashLength
	}

	// fill the search value with cyclically repeated seed data
	var cand candidate.Candidate
	for i := 0; i < candidate.Length; i += 1 {
		cand[i] = seed[i%len(seed)]
	}

	counter := cand.Counter()
	tag := cand.Tag()

	// even spacing across the whole counter and tag spaces
	spacing := candidate.Spacing(uint64(count))
	tagSpacing := ^uint32(0) / uint32(count)

	generators := make([]*Generator, 0, count)

	for i := 0; i < count; i += 1 {

		// advance the starting position, all arithmetic wraps
		counter.Add(spacing)
		counter.Add(bigJitter[i%len(bigJitter)])
		tag += tagSpacing + smallJitter[i%len(smallJitter)]

		cand.SetCounter(counter)
		cand.SetTag(tag)

		// initial difficulty for this starting position
		score, err := Verify(cand[:], hash)
		if nil != err {
			return nil, err
		}

		g := &Generator{
			candidate: cand,
			counter:   counter,
			score:     score,
		}
		copy(g.hash[:], hash)

		generators = append(generators, g)
	}

	return generators, nil
}

// Next - try the next candidate, returning its difficulty
//
// increments the counter by one (wrapping), leaving the worker tag
// untouched.  if the underlying hashing fails the stored difficulty is
// not updated and the previous value remains authoritative
func (g *Generator) Next() (float64, error) {
	g.counter.Increment()
	g.candidate.SetCounter(g.counter)

	score, err := Verify(g.candidate[:], g.hash[:])
	if nil != err {
		return 0, err
	}
	g.score = score
	return score, nil
}

// Proof - a copy of the current candidate
//
// this is the value to persist once an acceptable difficulty is
// reached; any party can later re-check it with Verify
func (g *Generator) Proof() candidate.Candidate {
	return g.candidate
}

// Difficulty - the last computed difficulty, no recomputation
func (g *Generator) Difficulty() float64 {
	return g.score
}

// Hash - a copy of the bound 32 byte hash
func (g *Generator) Hash() [HashLength]byte {
	return g.hash
}
