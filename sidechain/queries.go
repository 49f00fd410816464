// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"strings"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
)

// Exists - check an id against the visible state
//
// with a view the overlay shadows the committed table: an id staged
// for erasure is gone, a cached id is present; without a view only
// the committed table answers
func Exists(scId sidechainrecord.ScId, view *CoinsViewCache) bool {
	if nil != view {
		if _, erased := view.erase[scId]; erased {
			return false
		}
		if _, cached := view.cache[scId]; cached {
			return true
		}
	}

	globalData.RLock()
	_, ok := globalData.scTable[scId]
	globalData.RUnlock()
	return ok
}

// Info - copy a committed record out of the manager
func Info(scId sidechainrecord.ScId) (sidechainrecord.ScInfo, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	info, ok := globalData.scTable[scId]
	if !ok {
		return sidechainrecord.ScInfo{}, false
	}
	return info.Copy(), true
}

// Balance - committed balance of a sidechain, -1 when absent
func Balance(scId sidechainrecord.ScId) amount.Amount {
	globalData.RLock()
	defer globalData.RUnlock()

	info, ok := globalData.scTable[scId]
	if !ok {
		return -1
	}
	return info.Balance
}

// IdSet - the full set of committed ids
func IdSet() map[sidechainrecord.ScId]struct{} {
	globalData.RLock()
	defer globalData.RUnlock()

	result := make(map[sidechainrecord.ScId]struct{}, len(globalData.scTable))
	for scId := range globalData.scTable {
		result[scId] = struct{}{}
	}
	return result
}

// InfoMap - an independent copy of the whole committed table
func InfoMap() sidechainrecord.ScInfoMap {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.scTable.Copy()
}

// DumpInfo - render one committed record
func DumpInfo(scId sidechainrecord.ScId) (string, bool) {
	info, ok := Info(scId)
	if !ok {
		return "", false
	}
	return info.String(), true
}

// Dump - render the whole committed table and the backing store
func Dump() string {
	globalData.RLock()
	table := globalData.scTable.Copy()
	store := globalData.store
	globalData.RUnlock()

	s := strings.Builder{}
	for scId, info := range table {
		s.WriteString(scId.String())
		s.WriteString(": ")
		s.WriteString(info.String())
		s.WriteString("\n")
	}
	if nil != store {
		s.WriteString("store: ")
		s.WriteString(store.dump())
	}
	return s.String()
}
