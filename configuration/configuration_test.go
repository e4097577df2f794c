// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/workproof/configuration"
)

type testConfig struct {
	Name    string  `gluamapper:"name"`
	Workers int     `gluamapper:"workers"`
	Target  float64 `gluamapper:"target"`
	Nested  struct {
		Flag bool `gluamapper:"flag"`
	} `gluamapper:"nested"`
}

const testLua = `
local M = {}

M.name = "proofer"
M.workers = 4
M.target = 2.5

M.nested = {
    flag = true,
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(testLua), 0600)
	assert.Nil(t, err, "write config")

	config := &testConfig{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse")

	assert.Equal(t, "proofer", config.Name, "name")
	assert.Equal(t, 4, config.Workers, "workers")
	assert.Equal(t, 2.5, config.Target, "target")
	assert.Equal(t, true, config.Nested.Flag, "nested flag")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfig{}
	err := configuration.ParseConfigurationFile("/nonexistent/no.conf", config)
	assert.NotNil(t, err, "missing file must error")
}

func TestParseBrokenFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "broken.conf")
	err = ioutil.WriteFile(fileName, []byte("this is not lua {{{"), 0600)
	assert.Nil(t, err, "write config")

	config := &testConfig{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.NotNil(t, err, "broken file must error")
}
