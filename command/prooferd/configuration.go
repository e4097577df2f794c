// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workproof/candidate"
	"github.com/bitmark-inc/workproof/configuration"
	"github.com/bitmark-inc/workproof/proof"
	"github.com/bitmark-inc/workproof/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultProofFile = "proofs.json"

	defaultLogDirectory = "log"
	defaultLogFile      = "prooferd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultTargetDifficulty = 1.0
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory    string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile          string               `gluamapper:"pidfile" json:"pidfile"`
	Workers          int                  `gluamapper:"workers" json:"workers"`
	Seed             string               `gluamapper:"seed" json:"seed"`
	Hash             string               `gluamapper:"hash" json:"hash"`
	TargetDifficulty float64              `gluamapper:"target_difficulty" json:"target_difficulty"`
	ProofFile        string               `gluamapper:"proof_file" json:"proof_file"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:    defaultDataDirectory,
		PidFile:          "", // no PidFile by default
		Workers:          0,  // zero selects a worker per CPU, less one
		Seed:             "", // empty seed selects a random one
		Hash:             "",
		TargetDifficulty: defaultTargetDifficulty,
		ProofFile:        defaultProofFile,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Workers <= 0 {
		w := runtime.NumCPU() - 1
		if w < 1 {
			w = 1
		}
		options.Workers = w
	}

	if options.TargetDifficulty < 0 {
		return nil, errors.New(fmt.Sprintf("Target_difficulty: %f must not be negative", options.TargetDifficulty))
	}

	// hash is required and must decode to exactly 32 bytes
	if _, err := options.hashBytes(); nil != err {
		return nil, err
	}

	// seed is optional, but if present must decode to 1..20 bytes
	if "" != options.Seed {
		if _, err := options.seedBytes(); nil != err {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
		&options.ProofFile,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// decode the configured hash, exactly 32 bytes
func (c *Configuration) hashBytes() ([]byte, error) {
	hash, err := hex.DecodeString(c.Hash)
	if nil != err {
		return nil, errors.New(fmt.Sprintf("Hash: %q is not valid hex: %s", c.Hash, err))
	}
	if proof.HashLength != len(hash) {
		return nil, errors.New(fmt.Sprintf("Hash: %q must be %d bytes", c.Hash, proof.HashLength))
	}
	return hash, nil
}

// decode the configured seed, or generate a random one if unset
func (c *Configuration) seedBytes() ([]byte, error) {
	if "" == c.Seed {
		seed := make([]byte, candidate.Length)
		if _, err := rand.Read(seed); nil != err {
			return nil, err
		}
		return seed, nil
	}
	seed, err := hex.DecodeString(c.Seed)
	if nil != err {
		return nil, errors.New(fmt.Sprintf("Seed: %q is not valid hex: %s", c.Seed, err))
	}
	if 0 == len(seed) || len(seed) > candidate.Length {
		return nil, errors.New(fmt.Sprintf("Seed: %q must be 1 to %d bytes", c.Seed, candidate.Length))
	}
	return seed, nil
}
