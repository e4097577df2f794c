// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/workproof/proof"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	proofBytes, err := hex.DecodeString(c.String("proof"))
	if nil != err {
		return err
	}
	hashBytes, err := hex.DecodeString(c.String("hash"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "verifying proof: %x against hash: %x\n", proofBytes, hashBytes)
	}

	score, err := proof.Verify(proofBytes, hashBytes)
	if nil != err {
		return err
	}

	out := struct {
		Proof      string  `json:"proof"`
		Hash       string  `json:"hash"`
		Difficulty float64 `json:"difficulty"`
	}{
		Proof:      hex.EncodeToString(proofBytes),
		Hash:       hex.EncodeToString(hashBytes),
		Difficulty: score,
	}
	printJson(m.w, out)

	minimum := c.Float64("minimum")
	if score < minimum {
		return cli.NewExitError("proof difficulty below minimum", 1)
	}
	return nil
}
