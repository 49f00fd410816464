// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/sidechaind/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Sidechains *PoolHandle `prefix:"S"`
}

// Pool - the set of exported pools
var Pool pools

// holds the database handle
var poolData struct {
	sync.RWMutex
	db *leveldb.DB
}

// Initialise - open up the database connection
//
// cacheSize is a block cache hint in bytes, zero selects the LevelDB
// default; wipe discards any on-disk contents before opening
//
// this must be called before any pool is accessed
func Initialise(database string, cacheSize int, wipe bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	if "" == database {
		return fault.ErrInvalidDBName
	}

	if wipe {
		err := os.RemoveAll(database)
		if nil != err {
			return err
		}
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:       false,
		ErrorIfMissing:     false,
		BlockCacheCapacity: cacheSize,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return err
	}
	poolData.db = db

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			dbClose()
			return fault.ErrInvalidDBName
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// IsInitialised - check the database connection is open
func IsInitialised() bool {
	poolData.RLock()
	result := nil != poolData.db
	poolData.RUnlock()
	return result
}
