// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package candidate

import (
	"encoding/binary"
	"math/bits"
)

// Counter - a 128 bit unsigned integer with silently wrapping
// arithmetic, stored as two 64 bit words
//
// Go has no native 128 bit integer so the wrap around behaviour is
// done with explicit carry propagation
type Counter struct {
	lo uint64
	hi uint64
}

// NewCounter - build a counter from its 64 bit words
func NewCounter(lo uint64, hi uint64) Counter {
	return Counter{lo: lo, hi: hi}
}

// CounterFromLE - read a counter from 16 little endian bytes
func CounterFromLE(buffer []byte) Counter {
	return Counter{
		lo: binary.LittleEndian.Uint64(buffer[:8]),
		hi: binary.LittleEndian.Uint64(buffer[8:16]),
	}
}

// PutLE - write the counter as 16 little endian bytes
func (counter Counter) PutLE(buffer []byte) {
	binary.LittleEndian.PutUint64(buffer[:8], counter.lo)
	binary.LittleEndian.PutUint64(buffer[8:16], counter.hi)
}

// Add - add another counter, wrapping on overflow
func (counter *Counter) Add(delta Counter) {
	lo, carry := bits.Add64(counter.lo, delta.lo, 0)
	hi, _ := bits.Add64(counter.hi, delta.hi, carry)
	counter.lo = lo
	counter.hi = hi
}

// Increment - add one, wrapping on overflow
func (counter *Counter) Increment() {
	counter.Add(Counter{lo: 1})
}

// Spacing - the even partition stride (2^128-1)/n
//
// note: n must not be zero
func Spacing(n uint64) Counter {
	const allOnes = ^uint64(0)
	hi := allOnes / n
	remainder := allOnes % n
	lo, _ := bits.Div64(remainder, allOnes, n)
	return Counter{lo: lo, hi: hi}
}
