// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/linkedbst/fault"
)

func writeTestFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write: %q", fileName)
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "bstree-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writeTestFile(t, dir, "words.txt", "kiwi\n\n  lime  \nmango\n")
	fileName := writeTestFile(t, dir, "bstree.conf", `
return {
    data_directory = ".",
    key_type = "STRING",
    items = { "fig", "date" },
    items_file = "words.txt",
    rebalance = true,
    logging = {
        directory = "log",
        levels = {
            main = "debug",
        },
    },
}
`)

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(absDir), config.DataDirectory, "data directory")
	assert.Equal(t, keyTypeString, config.KeyType, "key type")
	assert.True(t, config.Rebalance, "rebalance")
	assert.Equal(t, filepath.Join(config.DataDirectory, "words.txt"), config.ItemsFile, "items file")
	assert.Equal(t, filepath.Join(config.DataDirectory, "log"), config.Logging.Directory, "log directory")

	fileInfo, err := os.Stat(config.Logging.Directory)
	require.NoError(t, err, "log directory was not created")
	assert.True(t, fileInfo.IsDir(), "log directory is not a directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "default log file")
	assert.Equal(t, "debug", config.Logging.Levels["main"], "main log level")

	items, err := config.initialItems()
	require.NoError(t, err, "initial items")
	assert.Equal(t, []string{"fig", "date", "kiwi", "lime", "mango"}, items, "items")
}

func TestSampleConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "bstree-sample")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	sample, err := ioutil.ReadFile("bstree.conf.sample")
	require.NoError(t, err, "read sample")
	fileName := writeTestFile(t, dir, "bstree.conf", string(sample))

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "sample configuration")

	assert.Equal(t, keyTypeString, config.KeyType, "key type")
	fileInfo, err := os.Stat(filepath.Join(config.DataDirectory, "log"))
	require.NoError(t, err, "sample log directory was not created")
	assert.True(t, fileInfo.IsDir(), "sample log directory is not a directory")

	items, err := config.initialItems()
	require.NoError(t, err, "initial items")
	assert.Equal(t, []string{"kiwi", "apple", "mango", "fig"}, items, "items")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "bstree-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	badKey := writeTestFile(t, dir, "key.conf", `return { data_directory = ".", key_type = "float" }`)
	noData := writeTestFile(t, dir, "data.conf", `return { key_type = "integer" }`)
	notDir := writeTestFile(t, dir, "file.conf", `return { data_directory = arg[0] }`)

	_, err = getConfiguration(badKey)
	assert.Error(t, err, "invalid key type")
	assert.Contains(t, err.Error(), fault.ErrInvalidKeyType.Error(), "invalid key type")

	_, err = getConfiguration(noData)
	assert.Error(t, err, "missing data directory")
	assert.Contains(t, err.Error(), fault.ErrInvalidDataDirectory.Error(), "missing data directory")

	_, err = getConfiguration(notDir)
	assert.Error(t, err, "data directory is a file")

	_, err = getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Error(t, err, "missing configuration")
}

func TestInitialItemsMissingFile(t *testing.T) {
	config := &Configuration{
		Items:     []string{"a"},
		ItemsFile: filepath.Join(logDirectory, "no-such-file"),
	}
	_, err := config.initialItems()
	assert.Error(t, err, "missing items file")

	config.ItemsFile = ""
	items, err := config.initialItems()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items, "items")
}
