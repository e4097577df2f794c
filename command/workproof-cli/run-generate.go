// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/workproof/candidate"
	"github.com/bitmark-inc/workproof/proof"
)

// one worker's best attempt
type searchResult struct {
	proof      candidate.Candidate
	difficulty float64
	iterations int
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target := c.Float64("difficulty")
	budget := c.Int("iterations")

	workers := c.Int("workers")
	if workers <= 0 {
		workers = runtime.NumCPU() - 1
		if workers < 1 {
			workers = 1
		}
	}

	seed, err := seedFromFlag(c.String("seed"))
	if nil != err {
		return err
	}

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "public key: %x\n", publicKey)
		fmt.Fprintf(m.e, "searching with %d workers for difficulty %f\n", workers, target)
	}

	// an ed25519 public key is exactly the 32 bytes a proof binds to
	generators, err := proof.Init(workers, seed, publicKey)
	if nil != err {
		return err
	}

	// workers stop as soon as any of them reaches the target
	var stop uint32
	results := make(chan searchResult, workers)

	var wg sync.WaitGroup
	for _, g := range generators {
		wg.Add(1)
		go func(g *proof.Generator) {
			defer wg.Done()

			best := searchResult{
				proof:      g.Proof(),
				difficulty: g.Difficulty(),
			}

			for i := 0; 0 == budget || i < budget; i += 1 {
				if 1 == atomic.LoadUint32(&stop) {
					break
				}
				score, err := g.Next()
				if nil != err {
					break
				}
				best.iterations = i + 1
				if score > best.difficulty {
					best.proof = g.Proof()
					best.difficulty = score
				}
				if score >= target {
					atomic.StoreUint32(&stop, 1)
					break
				}
			}

			results <- best
		}(g)
	}
	wg.Wait()
	close(results)

	overall := searchResult{difficulty: -1}
	totalIterations := 0
	for r := range results {
		totalIterations += r.iterations
		if r.difficulty > overall.difficulty {
			overall.proof = r.proof
			overall.difficulty = r.difficulty
		}
	}

	out := struct {
		PublicKey  string  `json:"public_key"`
		PrivateKey string  `json:"private_key"`
		Proof      string  `json:"proof"`
		Difficulty float64 `json:"difficulty"`
		Iterations int     `json:"iterations"`
	}{
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey),
		Proof:      overall.proof.String(),
		Difficulty: overall.difficulty,
		Iterations: totalIterations,
	}
	printJson(m.w, out)

	if overall.difficulty < target {
		return cli.NewExitError("target difficulty not reached", 1)
	}
	return nil
}

// decode the seed flag, or generate a random seed if unset
func seedFromFlag(seedHex string) ([]byte, error) {
	if "" == seedHex {
		seed := make([]byte, candidate.Length)
		if _, err := rand.Read(seed); nil != err {
			return nil, err
		}
		return seed, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if nil != err {
		return nil, err
	}
	return seed, nil
}
