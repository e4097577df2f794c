// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

// logging setup for all tests in this package
func TestMain(m *testing.M) {

	dir, err := ioutil.TempDir("", "prooferd-test")
	if nil != err {
		panic(fmt.Sprintf("temp dir failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "prooferd-test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}
