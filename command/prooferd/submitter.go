// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	submitterLoggerPrefix = "submitter"

	// buffered so workers never block on a slow disk
	submitQueueSize = 64
)

// record layout of the proofs file, one JSON object per line
// this is the (proof, hash, difficulty) tuple that any third party can
// re-check with the standalone verify
type proofRecord struct {
	Proof      string  `json:"proof"`
	Hash       string  `json:"hash"`
	Difficulty float64 `json:"difficulty"`
}

// submitter - appends found proofs to the proofs file
type submitter struct {
	log      *logger.L
	fileName string
	queue    <-chan foundProof
	stats    *statistics
}

func newSubmitter(fileName string, queue <-chan foundProof, stats *statistics) *submitter {
	return &submitter{
		log:      logger.New(submitterLoggerPrefix),
		fileName: fileName,
		queue:    queue,
		stats:    stats,
	}
}

// background process entry
func (s *submitter) Run(args interface{}, shutdown <-chan struct{}) {

	s.log.Info("starting…")
	s.log.Infof("proofs file: %s", s.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case found := <-s.queue:
			s.save(found)
		}
	}

	// drain anything the workers queued before they stopped
drain:
	for {
		select {
		case found := <-s.queue:
			s.save(found)
		default:
			break drain
		}
	}

	s.log.Info("shutting down…")
}

// append one record to the proofs file
func (s *submitter) save(found foundProof) {

	record := proofRecord{
		Proof:      found.Proof.String(),
		Hash:       hex.EncodeToString(found.Hash[:]),
		Difficulty: found.Difficulty,
	}
	data, err := json.Marshal(record)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
		return
	}

	file, err := os.OpenFile(s.fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if nil != err {
		s.log.Errorf("open %q error: %s", s.fileName, err)
		return
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); nil != err {
		s.log.Errorf("write %q error: %s", s.fileName, err)
		return
	}

	s.stats.recordAccepted()
	s.log.Debugf("saved proof: %s  difficulty: %f", record.Proof, found.Difficulty)
}
