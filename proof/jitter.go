// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/workproof/candidate"
)

// fixed repeating jitter tables
//
// added on top of the even spacing so that nearby workers start with
// very different counter and tag bytes.  the values are arbitrary, not
// cryptographically meaningful, and must never change: existing proofs
// were generated against exactly these constants

// 128 bit jitter (little endian word pairs)
var bigJitter = []candidate.Counter{
	candidate.NewCounter(0x604c83ef46024a0e, 0xaf4053310f97fd49),
	candidate.NewCounter(0x5e674f00925ef336, 0xb5e39bbd5cae75d0),
	candidate.NewCounter(0xe5c6f506c9e50ee4, 0x65e9eb86787a3017),
	candidate.NewCounter(0x888518255c10bf7e, 0x11f02e435780cec3),
	candidate.NewCounter(0xac090138ca1f690f, 0x02feb2c9cae736ca),
	candidate.NewCounter(0x943c2f3f3acc5948, 0xd06392cf37efcd7d),
	candidate.NewCounter(0x1f2f37a6431b865c, 0x4cf9260b5d2c3150),
	candidate.NewCounter(0x8f30025a0ed45c5b, 0x82accfcf94efd2a9),
	candidate.NewCounter(0xdc6eb2cba53c020d, 0xbac02392338e99f5),
	candidate.NewCounter(0x0558c16eb55f65c4, 0x8904cf1a1c674aff),
	candidate.NewCounter(0xe77e4efcbb9f1f9c, 0xaaab50e60b3856c9),
	candidate.NewCounter(0xa4be37d0c593afe6, 0xef02ebb21ded616c),
	candidate.NewCounter(0xf3016211500a5074, 0xc1d8f1dddcf45f6a),
}

// 32 bit jitter
var smallJitter = []uint32{
	0x9cf9cf41, 0x65f13920, 0xd32f3b43, 0xc8e552ef,
	0x893d4ce1, 0x45cd57a0, 0xc5fc3f4a, 0xd1be784e,
	0x3f3cbbc9, 0xad4c18ba, 0xa78f2e77, 0xa96932ee,
	0x219b455d,
}
