// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a panic
var log *logger.L

// Initialise - open the panic log channel
//
// without it panics are reported on stderr only
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

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panic - log the message then panic
func Panic(message string) {
	abort(message)
}

// Panicf - formatted Panic prefixed with the caller's position
func Panicf(format string, arguments ...interface{}) {
	abort(caller() + fmt.Sprintf(format, arguments...))
}

// PanicIfError - Panic when err is set
func PanicIfError(message string, err error) {
	if nil != err {
		abort(fmt.Sprintf("%s failed with error: %v", message, err))
	}
}

func abort(message string) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
	} else {
		log.Criticalf("%s", message)
		log.Flush()
	}
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

func caller() string {
	if _, file, line, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("(%s:%d) ", filepath.Base(file), line)
	}
	return ""
}
