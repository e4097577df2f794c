// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"
	"math"
	"math/big"
	"sync"
)

// number of hash output bytes that are scored
const Length = 16

// the default target score for acceptance of a proof
const DefaultTarget = 1.0

// Difficulty - an adjustable acceptance threshold
//
// the score itself is computed by Score; this type only guards the
// target value that may be re-read from configuration while workers
// are running
type Difficulty struct {
	sync.RWMutex

	target float64 // cache: current acceptance threshold
}

// New - create a difficulty with the default target
func New() *Difficulty {
	d := new(Difficulty)
	d.target = DefaultTarget
	return d
}

// Value - get the current acceptance threshold
func (difficulty *Difficulty) Value() float64 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.target
}

// Set - change the acceptance threshold
// negative values are treated as zero
func (difficulty *Difficulty) Set(f float64) {
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	difficulty.Lock()
	difficulty.target = f
	difficulty.Unlock()
}

// String - the threshold for use by the fmt package (for %s)
func (difficulty *Difficulty) String() string {
	return fmt.Sprintf("%f", difficulty.Value())
}

// 2^128 as a 64 bit float
// this is the value that the maximum 128 bit integer rounds to
var maxHashValue = math.Ldexp(1.0, 8*Length)

// Score - the log10 difficulty of a 16 byte hash output
//
// the bytes are interpreted as a little endian unsigned 128 bit
// integer v and the score is log10(1 / (1 - v/2^128))
//
// monotonic non-decreasing in v: 0 for v = 0 and +Inf in the
// (astronomically unlikely) case that v/2^128 rounds to exactly 1.0;
// +Inf is a valid maximal score, not an error
func Score(out []byte) float64 {
	if Length != len(out) {
		panic("hash output must be 16 bytes")
	}

	v := new(big.Int).SetBytes(reversed(out))
	value, _ := new(big.Float).SetInt(v).Float64() // round to nearest

	fraction := value / maxHashValue
	return math.Log10(1.0 / (1.0 - fraction))
}

// internal function to return a reversed byte order copy of the output
// (little endian storage, but big.Int wants big endian)
func reversed(out []byte) []byte {
	result := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		result[i] = out[Length-1-i]
	}
	return result
}
