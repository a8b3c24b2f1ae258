// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  start                      (run)    - read shell commands from standard input, one per line\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("configuration file is a Lua chunk returning a table with:\n\n")
		fmt.Printf("  data_directory  - \".\" for the directory of the file\n")
		fmt.Printf("  key_type        - %q or %q\n", keyTypeInt, keyTypeString)
		fmt.Printf("  values          - list of initial values\n")
		fmt.Printf("  logging         - directory, file, size, count and levels\n")
		fmt.Printf("\n")

		fmt.Printf("shell commands:\n\n")
		printShellHelp(os.Stdout)
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
