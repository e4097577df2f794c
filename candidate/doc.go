// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package candidate - the 20 byte proof search value
//
// a candidate is a little endian wrapping 128 bit counter followed by
// a little endian 32 bit worker tag
package candidate
