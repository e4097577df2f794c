// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/workproof/candidate"
	"github.com/bitmark-inc/workproof/difficulty"
	"github.com/bitmark-inc/workproof/fault"
)

// internal hashing parameters
//
// chosen to require real work per attempt while keeping verification
// of a single proof cheap enough for any receiver
const (
	hashMode        = argon2.ModeArgon2id
	hashMemory      = 16384 // KiB = 16,777,216 bytes
	hashIterations  = 1
	hashParallelism = 1
	hashVersion     = argon2.Version13
)

// the single hashing configuration, constructed once and shared
// read-only by every verification; libargon2 owns the working memory
// for each call
var hashContext = &argon2.Context{
	Iterations:  hashIterations,
	Memory:      hashMemory,
	Parallelism: hashParallelism,
	HashLen:     difficulty.Length,
	Mode:        hashMode,
	Version:     hashVersion,
}

// Verify - recompute the difficulty of a proof against a hash
//
// standalone: usable by a third party holding only the saved
// (proof, hash) pair, independent of any generator.  proof must be
// exactly 20 bytes and hash exactly 32 bytes.  the proof is hashed
// with argon2id using the hash as salt and the 16 output bytes are
// scored; identical inputs always produce the identical score
func Verify(proof []byte, hash []byte) (float64, error) {
	if candidate.Length != len(proof) {
		return 0, fault.ErrInvalidProofLength
	}
	if HashLength != len(hash) {
		return 0, fault.ErrInvalidHashLength
	}

	out, err := argon2.Hash(hashContext, proof, hash)
	if nil != err {
		return 0, fault.ProcessError("argon2 hash failed: " + err.Error())
	}

	return difficulty.Score(out), nil
}
