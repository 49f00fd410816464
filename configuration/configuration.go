// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the Lua configuration file and produce
// the settings used to start the node
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sidechaind/chain"
	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechain"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultMainnetDatabase  = chain.Mainnet + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "sidechaind.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	"config":          "info",
	logger.DefaultTag: "critical",
}

// DatabaseType - the key-value store settings
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
	CacheSize int    `gluamapper:"cache_size"`
	Wipe      bool   `gluamapper:"wipe"`
}

// SidechainType - the state engine settings
type SidechainType struct {
	PersistencePolicy string `gluamapper:"persistence_policy"`
	CoinsMaturity     int    `gluamapper:"coins_maturity"`
}

// LoggerType - the log rotation settings
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - the full settings tree
type Configuration struct {
	DataDirectory string        `gluamapper:"data_directory"`
	Chain         string        `gluamapper:"chain"`
	Database      DatabaseType  `gluamapper:"database"`
	Sidechain     SidechainType `gluamapper:"sidechain"`
	Logging       LoggerType    `gluamapper:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Chain:         chain.Mainnet,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultMainnetDatabase,
		},

		Sidechain: SidechainType{
			PersistencePolicy: "persist",
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default pick the chain variant
	if defaultMainnetDatabase == options.Database.Name {
		switch options.Chain {
		case chain.Mainnet:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	// maturity not named in the file follows the chain parameter table
	if 0 == options.Sidechain.CoinsMaturity {
		options.Sidechain.CoinsMaturity = int(chain.ScCoinsMaturity(options.Chain))
	}
	if options.Sidechain.CoinsMaturity <= 0 {
		return nil, fault.ErrInvalidSidechainMaturity
	}

	if _, err := options.Policy(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// Policy - decode the persistence policy name
func (options *Configuration) Policy() (sidechain.PersistencePolicy, error) {
	switch strings.ToLower(options.Sidechain.PersistencePolicy) {
	case "stub":
		return sidechain.Stub, nil
	case "persist":
		return sidechain.Persist, nil
	default:
		return sidechain.Stub, fault.ErrInvalidPersistencePolicy
	}
}

// DatabasePath - where the store lives on disk
func (options *Configuration) DatabasePath() string {
	return filepath.Join(options.Database.Directory, options.Database.Name)
}

// LoggerConfiguration - adapt the logging section for the logger package
func (options *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
}

// ensureAbsolute - convert a possibly relative path to absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
