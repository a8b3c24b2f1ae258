// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

const logCategory = "test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "avl-cli-test")
	if nil != err {
		fmt.Printf("cannot create log directory: %s\n", err)
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		fmt.Printf("logger setup failed with error: %s\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}
	if err := fault.Initialise(); nil != err {
		fmt.Printf("fault setup failed with error: %s\n", err)
		logger.Finalise()
		os.RemoveAll(dir)
		os.Exit(1)
	}

	rc := m.Run()

	fault.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}
