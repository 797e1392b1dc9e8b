// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "script", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}
	if len(options["script"]) > 1 {
		exitwithstatus.Message("%s: at most one script option is allowed, %d were detected", program, len(options["script"]))
	}
	if 0 == len(options["script"]) && 0 == len(arguments) {
		exitwithstatus.Message("%s: either a command or a script is required", program)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	items, err := theConfiguration.initialItems()
	if nil != err {
		log.Criticalf("initial items error: %s", err)
		exitwithstatus.Message("%s: initial items error: %s", program, err)
	}
	log.Infof("key type: %s  initial items: %d", theConfiguration.KeyType, len(items))

	var script io.Reader
	if 1 == len(options["script"]) {
		f, err := os.Open(options["script"][0])
		if nil != err {
			log.Criticalf("open script: %q  error: %s", options["script"][0], err)
			exitwithstatus.Message("%s: open script: %q  error: %s", program, options["script"][0], err)
		}
		defer f.Close()
		script = f
	}

	switch theConfiguration.KeyType {
	case keyTypeInteger:
		err = execute[int](log, items, parseInteger, theConfiguration.Rebalance, script, arguments)
	default:
		err = execute[string](log, items, parseString, theConfiguration.Rebalance, script, arguments)
	}
	if nil != err {
		log.Errorf("failed with error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

// build the tree then run the script or the single command
func execute[T constraints.Ordered](log *logger.L, items []string, parse parser[T], rebalance bool, script io.Reader, arguments []string) error {
	tree, err := loadTree(items, parse, rebalance)
	if nil != err {
		return err
	}
	log.Infof("tree size: %d  height: %d  balanced: %t", tree.Size(), tree.Height(), tree.IsBalanced())

	sh := newShell(tree, parse, logger.New("shell"), os.Stdout)

	if nil != script {
		return sh.runScript(script)
	}
	return sh.run(arguments[0], arguments[1:])
}
