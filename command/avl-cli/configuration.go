// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyType = keyTypeInt

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// supported value types
const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Values        []string             `gluamapper:"values" json:"values"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser merges into this map, so never hand it the global
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInt, keyTypeString:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	return options, nil
}
