// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "workproof-cli"
	app.Usage = "generate and verify argon2 proofs of work"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair and a proof over its public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "difficulty, d",
					Value: 1.0,
					Usage: " stop once this difficulty is reached `SCORE`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " 1 to 20 bytes of starting entropy `HEX` [random]",
				},
				cli.IntFlag{
					Name:  "workers, j",
					Value: 0,
					Usage: " number of parallel workers `COUNT` [CPUs-1]",
				},
				cli.IntFlag{
					Name:  "iterations, i",
					Value: 0,
					Usage: " give up after this many attempts per worker `COUNT` [unlimited]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "verify",
			Usage:     "recompute the difficulty of a saved proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*the 20 byte proof `HEX`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*the 32 byte hash the proof is bound to `HEX`",
				},
				cli.Float64Flag{
					Name:  "minimum, m",
					Value: 0,
					Usage: " fail unless the difficulty reaches `SCORE`",
				},
			},
			Action: runVerify,
		},
	}

	m := &metadata{
		e: app.ErrWriter,
		w: app.Writer,
	}
	app.Before = func(c *cli.Context) error {
		m.verbose = c.GlobalBool("verbose")
		return nil
	}
	app.Metadata = map[string]interface{}{
		"config": m,
	}

	if err := app.Run(os.Args); nil != err {
		os.Exit(1)
	}
}
