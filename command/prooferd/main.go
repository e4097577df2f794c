// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workproof/background"
	"github.com/bitmark-inc/workproof/difficulty"
	"github.com/bitmark-inc/workproof/fault"
	"github.com/bitmark-inc/workproof/proof"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// channel of last resort for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	// the adjustable acceptance threshold, shared by all workers
	target := difficulty.New()
	target.Set(masterConfiguration.TargetDifficulty)
	log.Infof("target difficulty: %s", target)

	// decode the search inputs
	hash, err := masterConfiguration.hashBytes()
	if nil != err {
		exitwithstatus.Message("%s: hash decode failed: %s", program, err)
	}
	seed, err := masterConfiguration.seedBytes()
	if nil != err {
		exitwithstatus.Message("%s: seed decode failed: %s", program, err)
	}
	log.Infof("hash: %x", hash)
	log.Infof("seed: %x", seed)
	log.Infof("workers: %d", masterConfiguration.Workers)

	// partition the search space, one generator per worker
	// this also computes each worker's starting difficulty so it can
	// take a while with many workers
	generators, err := proof.Init(masterConfiguration.Workers, seed, hash)
	if nil != err {
		exitwithstatus.Message("%s: proof setup failed: %s", program, err)
	}

	// watch the configuration file to pick up target changes
	watcherChannels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, watcherChannels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	go func() {
		for {
			select {
			case <-watcherChannels.change:
				newConfiguration, err := getConfiguration(configurationFile)
				if nil != err {
					log.Errorf("configuration reload failed: %s", err)
					continue
				}
				target.Set(newConfiguration.TargetDifficulty)
				log.Infof("target difficulty now: %s", target)
			case <-watcherChannels.remove:
				log.Warn("configuration file removed, keeping current target")
				return
			}
		}
	}()

	// assemble the background processes: statistics, submitter and
	// one hashing worker per generator
	stats := newStatistics()
	foundQueue := make(chan foundProof, submitQueueSize)

	processes := background.Processes{
		stats,
		newSubmitter(masterConfiguration.ProofFile, foundQueue, stats),
	}
	for i, generator := range generators {
		processes = append(processes, newProofer(i, generator, target, stats, foundQueue))
	}

	proc := background.Start(processes, nil)
	defer proc.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}
}
