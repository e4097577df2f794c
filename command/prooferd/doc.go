// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Proofer daemon
//
// runs a set of parallel proof workers against a configured 32 byte
// hash, logging timing statistics and appending any proof that meets
// the target difficulty to the proofs file
//
// the target difficulty is re-read from the configuration file while
// running; worker count, seed and hash are fixed at startup
package main
