// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - argon2 based proof-of-work generation and validation
//
// key pairs are trivial to generate; binding a proof-of-work to a
// public key (or any other 32 byte hash) makes minting large numbers
// of identities expensive while keeping each verification a single
// memory hard hash
//
// a proof is a 20 byte value: a wrapping 128 bit counter that is the
// search space, plus a 32 bit worker tag so parallel workers never
// duplicate work.  the hash being bound is used as the argon2 salt and
// the 16 output bytes are scored as a log10 difficulty: if difficulty
// 1.0 takes on average one second of hashing to reach, difficulty 2.0
// takes ten
package proof
