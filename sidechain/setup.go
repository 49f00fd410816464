// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
	"github.com/bitmark-inc/sidechaind/storage"
)

// PersistencePolicy - selection of the storage variant
type PersistencePolicy int

// possible persistence policies
const (
	Stub    PersistencePolicy = iota // in-memory, for tests
	Persist                          // durable LevelDB store
)

// globals
type globalDataType struct {
	sync.RWMutex
	log           *logger.L
	store         persister
	scTable       sidechainrecord.ScInfoMap
	coinsMaturity int32
}

// global storage
var globalData globalDataType

// Initialise - build the persistence variant and load the committed
// table from it
//
// must be called exactly once per process; a second call fails and
// leaves all state unchanged
func Initialise(database string, cacheSize int, wipe bool, policy PersistencePolicy, coinsMaturity int32) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.store {
		return fault.ErrAlreadyInitialised
	}

	if coinsMaturity <= 0 {
		return fault.ErrInvalidSidechainMaturity
	}

	log := logger.New("sidechain")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	log.Info("starting…")

	var store persister
	switch policy {
	case Stub:
		store = &stubStore{}
	case Persist:
		err := storage.Initialise(database, cacheSize, wipe)
		if nil != err {
			return err
		}
		store = &levelStore{pool: storage.Pool.Sidechains}
	default:
		return fault.ErrInvalidPersistencePolicy
	}

	table, err := store.loadAll()
	if nil != err {
		if Persist == policy {
			storage.Finalise()
		}
		return err
	}

	globalData.log = log
	globalData.store = store
	globalData.scTable = table
	globalData.coinsMaturity = coinsMaturity

	log.Infof("loaded %d sidechain records, coins maturity: %d", len(table), coinsMaturity)
	return nil
}

// Finalise - tear down the persistence layer and clear the committed
// table
//
// intended for process shutdown and test isolation; a later
// Initialise starts from the persisted state again
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.store {
		return
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if _, usesStorage := globalData.store.(*levelStore); usesStorage {
		storage.Finalise()
	}

	globalData.store = nil
	globalData.scTable = nil
	globalData.coinsMaturity = 0
}

// CoinsMaturity - the configured number of blocks before forwarded
// amounts join a balance
func CoinsMaturity() int32 {
	globalData.RLock()
	result := globalData.coinsMaturity
	globalData.RUnlock()
	return result
}

// IsInitialised - check the manager has a persistence layer attached
func IsInitialised() bool {
	globalData.RLock()
	result := nil != globalData.store
	globalData.RUnlock()
	return result
}
