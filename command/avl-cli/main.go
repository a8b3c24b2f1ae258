// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
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
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	s := settings{
		verbose:     len(options["verbose"]) > 0,
		quiet:       len(options["quiet"]) > 0,
		memoryStats: len(options["memory-stats"]) > 0,
	}

	switch theConfiguration.KeyType {
	case keyTypeString:
		err = runShell(avl.New[string](), parseString, theConfiguration.Values, s, log)
	default:
		err = runShell(avl.New[int64](), parseInt, theConfiguration.Values, s, log)
	}
	if nil != err {
		log.Criticalf("shell error: %s", err)
		exitwithstatus.Message("%s: shell error: %s", program, err)
	}
}

// command line switches that affect the shell
type settings struct {
	verbose     bool
	quiet       bool
	memoryStats bool
}

// load the initial values and process standard input
func runShell[T any](tree *avl.Tree[T], parse func(string) (T, error), values []string, s settings, log *logger.L) error {

	sh := newShell(tree, parse, os.Stdout, logger.New("shell"))
	sh.verbose = s.verbose
	sh.quiet = s.quiet

	if len(values) > 0 {
		log.Infof("initial values: %d", len(values))
		err := sh.eachValue(values, func(_ string, v T) {
			tree.Insert(v)
		})
		if nil != err {
			return err
		}
		log.Infof("tree size: %d  height: %d", tree.Count(), tree.Height())
	}

	err := sh.run(os.Stdin)

	if s.memoryStats {
		stats := tree.Stats()
		log.Infof("memory stats: %+v", stats)
		sh.execute("stats")
	}
	return err
}
