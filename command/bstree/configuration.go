// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/linkedbst/configuration"
	"github.com/bitmark-inc/linkedbst/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultKeyType       = keyTypeString

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// supported key types
const (
	keyTypeString  = "string"
	keyTypeInteger = "integer"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"shell":           "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Items         []string             `gluamapper:"items" json:"items"`
	ItemsFile     string               `gluamapper:"items_file" json:"items_file"`
	Rebalance     bool                 `gluamapper:"rebalance" json:"rebalance"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,
		Items:         []string{},
		ItemsFile:     "",
		Rebalance:     false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeString, keyTypeInteger:
	default:
		return nil, fmt.Errorf("key type: %q  error: %s", options.KeyType, fault.ErrInvalidKeyType)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %s", options.DataDirectory, fault.ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory  error: %s", options.DataDirectory, fault.ErrInvalidDataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	if "" != options.ItemsFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.ItemsFile)
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// create the log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// all the initial items: those listed in the configuration followed
// by the lines of the items file, blank lines are skipped
func (config *Configuration) initialItems() ([]string, error) {
	items := make([]string, 0, len(config.Items))
	items = append(items, config.Items...)

	if "" == config.ItemsFile {
		return items, nil
	}

	f, err := os.Open(config.ItemsFile)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" != line {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return items, nil
}
