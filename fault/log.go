// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must already have been called
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string
func Critical(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) "+message, file, line)
	} else {
		internalCriticalf("%s", message)
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panicf - final panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	Panic(fmt.Sprintf(format, arguments...))
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	finalPanic(message)
}

// PanicWithError - final panic, the panic value is err itself so that
// a recover can classify it with the IsErrX functions
func PanicWithError(message string, err error) {
	internalCriticalf("%s failed with error: %v", message, err)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(err)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

func finalPanic(message string) {
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
