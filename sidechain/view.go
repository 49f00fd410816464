// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
	"github.com/bitmark-inc/sidechaind/transactionrecord"
)

// CoinsViewCache - transactional overlay over the committed table
//
// scoped to a single block processing pass and used from one
// goroutine only; do not share or copy one - the overlay itself is
// the rollback unit, discarding it undoes everything staged in it
type CoinsViewCache struct {
	cache sidechainrecord.ScInfoMap
	erase map[sidechainrecord.ScId]struct{}
	dirty map[sidechainrecord.ScId]struct{}
}

// NewCoinsViewCache - an empty overlay
func NewCoinsViewCache() *CoinsViewCache {
	return &CoinsViewCache{
		cache: make(sidechainrecord.ScInfoMap),
		erase: make(map[sidechainrecord.ScId]struct{}),
		dirty: make(map[sidechainrecord.ScId]struct{}),
	}
}

// Exists - check an id against the overlay shadowed state
func (view *CoinsViewCache) Exists(scId sidechainrecord.ScId) bool {
	return Exists(scId, view)
}

// InfoMap - the state visible through the overlay: committed records
// minus staged erasures, shadowed by cached records
func (view *CoinsViewCache) InfoMap() sidechainrecord.ScInfoMap {
	result := InfoMap()
	for scId := range view.erase {
		delete(result, scId)
	}
	for scId, info := range view.cache {
		result[scId] = info.Copy()
	}
	return result
}

// fetch a record for mutation: the cached version if present, else a
// copy of the committed one; nothing enters the overlay until the
// caller stages it with writeBack
func (view *CoinsViewCache) mutableInfo(scId sidechainrecord.ScId) (sidechainrecord.ScInfo, bool) {
	if info, ok := view.cache[scId]; ok {
		return info, true
	}
	if _, erased := view.erase[scId]; erased {
		return sidechainrecord.ScInfo{}, false
	}
	info, ok := Info(scId)
	if !ok {
		return sidechainrecord.ScInfo{}, false
	}
	return info, true
}

// stage a mutated record
func (view *CoinsViewCache) writeBack(scId sidechainrecord.ScId, info sidechainrecord.ScInfo) {
	view.cache[scId] = info
	view.dirty[scId] = struct{}{}
}

// UpdateScInfo - apply one transaction's sidechain outputs to the
// overlay: creations first, then forward transfers, each group in
// output order
//
// application is deliberately not atomic: outputs staged before a
// failing one stay in the overlay; callers wanting all-or-nothing
// discard the whole overlay
func (view *CoinsViewCache) UpdateScInfo(tx *transactionrecord.Transaction, blockHash digest.Digest, height int32) error {

	for _, creation := range tx.ScCreations {
		if view.Exists(creation.ScId) {
			globalData.log.Warnf("creation of existing sidechain: %s", creation.ScId)
			return fault.ErrSidechainAlreadyExists
		}

		// recreating an id staged for erasure revives it
		delete(view.erase, creation.ScId)

		info := sidechainrecord.NewScInfo()
		info.CreationBlockHash = blockHash
		info.CreationBlockHeight = height
		info.CreationTxHash = tx.TxHash
		if nil != creation.CreationData {
			info.CreationData = make(sidechainrecord.CreationData, len(creation.CreationData))
			copy(info.CreationData, creation.CreationData)
		}
		view.writeBack(creation.ScId, info)
	}

	maturityHeight := height + CoinsMaturity()
	for _, forward := range tx.ScForwards {
		info, ok := view.mutableInfo(forward.ScId)
		if !ok {
			globalData.log.Warnf("forward transfer to missing sidechain: %s", forward.ScId)
			return fault.ErrSidechainNotFound
		}

		info.ImmatureAmounts = info.ImmatureAmounts.Add(maturityHeight, forward.Value)
		err := info.Validate()
		if nil != err {
			return err
		}
		view.writeBack(forward.ScId, info)
	}

	return nil
}

// RevertTxOutputs - undo one transaction's sidechain outputs during a
// block disconnect, in reverse output order
//
// any failure aborts the remaining reversals; the overlay is then
// partially reverted and must be discarded
func (view *CoinsViewCache) RevertTxOutputs(tx *transactionrecord.Transaction, height int32) error {

	maturityHeight := height + CoinsMaturity()
	for i := len(tx.ScForwards) - 1; i >= 0; i -= 1 {
		forward := tx.ScForwards[i]

		info, ok := view.mutableInfo(forward.ScId)
		if !ok {
			return fault.ErrSidechainNotFound
		}

		// the entry must have been produced at exactly this height
		pipeline, err := info.ImmatureAmounts.Subtract(maturityHeight, forward.Value)
		if nil != err {
			globalData.log.Warnf("reverting forward transfer at wrong height %d for: %s", height, forward.ScId)
			return err
		}
		info.ImmatureAmounts = pipeline
		view.writeBack(forward.ScId, info)
	}

	for i := len(tx.ScCreations) - 1; i >= 0; i -= 1 {
		creation := tx.ScCreations[i]

		info, ok := view.mutableInfo(creation.ScId)
		if !ok {
			return fault.ErrSidechainNotFound
		}
		if info.CreationBlockHeight != height {
			globalData.log.Warnf("reverting creation at wrong height %d for: %s", height, creation.ScId)
			return fault.ErrWrongCreationHeight
		}

		delete(view.cache, creation.ScId)
		delete(view.dirty, creation.ScId)
		if Exists(creation.ScId, nil) {
			view.erase[creation.ScId] = struct{}{}
		}
	}

	return nil
}

// ApplyMatureBalances - move every pending amount whose maturity is
// reached into its balance, recording reversal data into undo
//
// committed records not yet in the overlay are loaded on first touch;
// the call must coincide with the exact maturity height of at least
// one processed entry - a sweep that matches nothing means the driver
// skipped a height and fails
func (view *CoinsViewCache) ApplyMatureBalances(height int32, undo *BlockUndo) error {

	coinsMaturity := CoinsMaturity()
	maturedExactly := false

	for scId := range view.visibleIds() {
		info, ok := view.mutableInfo(scId)
		if !ok {
			continue
		}

		changed := false
		for len(info.ImmatureAmounts) > 0 && info.ImmatureAmounts[0].MaturityHeight <= height {
			entry := info.ImmatureAmounts[0]
			if entry.MaturityHeight == height {
				maturedExactly = true
			}

			sum, ok := amount.AddWithinRange(info.Balance, entry.Value)
			if !ok {
				return fault.ErrAmountExceedsMaximum
			}
			info.Balance = sum
			info.ImmatureAmounts = info.ImmatureAmounts.Remove(entry.MaturityHeight)
			undo.Add(scId, entry.MaturityHeight-coinsMaturity, entry.Value)

			globalData.log.Debugf("matured %d for %s at height %d", entry.Value, scId, height)
			changed = true
		}
		if changed {
			view.writeBack(scId, info)
		}
	}

	if !maturedExactly {
		globalData.log.Warnf("no amount matures at height %d", height)
		return fault.ErrNoMaturingAmounts
	}
	return nil
}

// RestoreImmatureBalances - the inverse of ApplyMatureBalances for a
// disconnected block
//
// each affected record is checked before it is touched, so a failing
// record is left unmodified
func (view *CoinsViewCache) RestoreImmatureBalances(height int32, undo *BlockUndo) error {

	coinsMaturity := CoinsMaturity()

	for scId, perHeight := range undo.matured {
		info, ok := view.mutableInfo(scId)
		if !ok {
			globalData.log.Warnf("restore for missing sidechain: %s", scId)
			return fault.ErrSidechainNotFound
		}

		total := amount.Amount(0)
		for _, value := range perHeight {
			total += value
		}
		if info.Balance < total {
			globalData.log.Warnf("restore of %d exceeds balance %d for: %s at height %d",
				total, info.Balance, scId, height)
			return fault.ErrInsufficientBalance
		}

		for origHeight, value := range perHeight {
			info.Balance -= value
			info.ImmatureAmounts = info.ImmatureAmounts.Add(origHeight+coinsMaturity, value)
		}
		err := info.Validate()
		if nil != err {
			return err
		}
		view.writeBack(scId, info)
	}

	return nil
}

// Flush - commit the overlay into the manager and its store in one
// exclusive step, then reset the overlay
//
// a storage failure leaves memory and disk diverged; the caller must
// treat it as fatal
func (view *CoinsViewCache) Flush() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.store {
		return fault.ErrNotInitialised
	}

	for scId := range view.erase {
		delete(globalData.scTable, scId)
		err := globalData.store.remove(scId)
		if nil != err {
			globalData.log.Criticalf("flush delete failed for %s: %s", scId, err)
			return err
		}
	}

	for scId := range view.dirty {
		info := view.cache[scId].Copy()
		globalData.scTable[scId] = info
		err := globalData.store.put(scId, info)
		if nil != err {
			globalData.log.Criticalf("flush put failed for %s: %s", scId, err)
			return err
		}
	}

	view.cache = make(sidechainrecord.ScInfoMap)
	view.erase = make(map[sidechainrecord.ScId]struct{})
	view.dirty = make(map[sidechainrecord.ScId]struct{})
	return nil
}

// the ids reachable through the overlay: committed plus cached minus
// staged erasures
func (view *CoinsViewCache) visibleIds() map[sidechainrecord.ScId]struct{} {
	result := IdSet()
	for scId := range view.erase {
		delete(result, scId)
	}
	for scId := range view.cache {
		result[scId] = struct{}{}
	}
	return result
}
