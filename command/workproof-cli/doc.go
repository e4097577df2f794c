// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line interface
//
// generate an ed25519 keypair together with a proof-of-work over the
// public key, or verify a previously saved proof
package main
