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

const (
	logCategory = "testing"
)

// the directory holding the test log files
var logDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "bstree")
	if nil != err {
		fmt.Printf("temporary directory error: %s\n", err)
		os.Exit(1)
	}
	logDirectory = dir

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
		fmt.Printf("logger initialise error: %s\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}
