// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package candidate

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/workproof/fault"
)

// number of bytes in a candidate
const Length = 20

// layout of a candidate
// bytes 0..16 little endian 128 bit counter
// bytes 16..20 little endian 32 bit worker tag
const (
	CounterLength = 16
	TagLength     = Length - CounterLength
)

// type for the search value hashed to produce a proof attempt
// stored as a little endian byte array
type Candidate [Length]byte

// extract the counter portion
func (candidate Candidate) Counter() Counter {
	return CounterFromLE(candidate[:CounterLength])
}

// store a counter into the first 16 bytes, tag bytes unchanged
func (candidate *Candidate) SetCounter(counter Counter) {
	counter.PutLE(candidate[:CounterLength])
}

// extract the worker tag portion
func (candidate Candidate) Tag() uint32 {
	return binary.LittleEndian.Uint32(candidate[CounterLength:])
}

// store a worker tag into the last 4 bytes, counter bytes unchanged
func (candidate *Candidate) SetTag(tag uint32) {
	binary.LittleEndian.PutUint32(candidate[CounterLength:], tag)
}

// convert a candidate to its little endian hex string for use by the fmt package (for %s)
func (candidate Candidate) String() string {
	return hex.EncodeToString(candidate[:])
}

// convert a candidate to little endian hex for use by the fmt package (for %#v)
func (candidate Candidate) GoString() string {
	return "<candidate:" + hex.EncodeToString(candidate[:]) + ">"
}

// convert a candidate to little endian hex text
func (candidate Candidate) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(candidate))
	buffer := make([]byte, size)
	hex.Encode(buffer, candidate[:])
	return buffer, nil
}

// convert little endian hex text into a candidate
func (candidate *Candidate) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidProofLength
	}
	copy(candidate[:], buffer)
	return nil
}

// convert and validate a little endian binary byte slice to a candidate
func CandidateFromBytes(candidate *Candidate, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidProofLength
	}
	copy(candidate[:], buffer)
	return nil
}
