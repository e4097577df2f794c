// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/workproof/proof"
)

const testConfiguration = `
local M = {}

M.data_directory = "."

M.workers = 2
M.seed = "deadbeef"
M.hash = "` + testHashHex + `"
M.target_difficulty = 2.0
M.proof_file = "found.json"

return M
`

const testHashHex = "dbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdbdb"

func writeTestConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "prooferd-config-test")
	if nil != err {
		t.Fatalf("temp dir failed: %s", err)
	}
	fileName := filepath.Join(dir, "prooferd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write config failed: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {

	fileName, cleanup := writeTestConfiguration(t, testConfiguration)
	defer cleanup()

	config, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	if 2 != config.Workers {
		t.Errorf("workers: actual: %d  expected: 2", config.Workers)
	}
	if 2.0 != config.TargetDifficulty {
		t.Errorf("target: actual: %f  expected: 2.0", config.TargetDifficulty)
	}
	if !filepath.IsAbs(config.ProofFile) {
		t.Errorf("proof file not absolute: %q", config.ProofFile)
	}

	hash, err := config.hashBytes()
	if nil != err {
		t.Fatalf("hash decode error: %s", err)
	}
	if proof.HashLength != len(hash) {
		t.Errorf("hash length: actual: %d  expected: %d", len(hash), proof.HashLength)
	}

	seed, err := config.seedBytes()
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	if 4 != len(seed) {
		t.Errorf("seed length: actual: %d  expected: 4", len(seed))
	}
}

func TestGetConfigurationDefaults(t *testing.T) {

	minimal := `
local M = {}
M.data_directory = "."
M.hash = "` + testHashHex + `"
return M
`
	fileName, cleanup := writeTestConfiguration(t, minimal)
	defer cleanup()

	config, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	if config.Workers < 1 {
		t.Errorf("default workers below 1: %d", config.Workers)
	}
	if defaultTargetDifficulty != config.TargetDifficulty {
		t.Errorf("default target: actual: %f  expected: %f", config.TargetDifficulty, defaultTargetDifficulty)
	}

	// an unset seed becomes a random full length seed
	seed, err := config.seedBytes()
	if nil != err {
		t.Fatalf("seed error: %s", err)
	}
	if 20 != len(seed) {
		t.Errorf("random seed length: actual: %d  expected: 20", len(seed))
	}
}

func TestGetConfigurationBadHash(t *testing.T) {

	bad := `
local M = {}
M.data_directory = "."
M.hash = "0011223344"
return M
`
	fileName, cleanup := writeTestConfiguration(t, bad)
	defer cleanup()

	_, err := getConfiguration(fileName)
	if nil == err {
		t.Fatal("expected an error for a short hash")
	}
	if !strings.Contains(err.Error(), "must be 32 bytes") {
		t.Errorf("unexpected error: %s", err)
	}
}
