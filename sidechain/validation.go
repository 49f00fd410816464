// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"fmt"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/mempool"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
	"github.com/bitmark-inc/sidechaind/transactionrecord"
)

// RejectInvalid - reject code for transactions that can never become
// valid
const RejectInvalid byte = 16

// ValidationState - outcome carrier for the transaction validators
//
// a fresh state is valid; the first rejection latches the code and
// reason
type ValidationState struct {
	invalid    bool
	rejectCode byte
	reason     string
}

// Invalid - latch a rejection, returns false for tail call use
func (state *ValidationState) Invalid(rejectCode byte, reason string) bool {
	if !state.invalid {
		state.invalid = true
		state.rejectCode = rejectCode
		state.reason = reason
	}
	return false
}

// IsValid - no rejection recorded so far
func (state *ValidationState) IsValid() bool {
	return !state.invalid
}

// RejectCode - code of the first rejection
func (state *ValidationState) RejectCode() byte {
	return state.rejectCode
}

// Reason - reason of the first rejection
func (state *ValidationState) Reason() string {
	return state.reason
}

// CheckTxSemanticValidity - static checks that need no knowledge of
// the current sidechain state
//
// a pure function of the transaction: repeated calls produce the same
// outcome
func CheckTxSemanticValidity(tx *transactionrecord.Transaction, state *ValidationState) bool {

	// a transaction without sidechain outputs is trivially valid
	// here, whatever its other payload looks like
	if tx.IsSidechainNull() {
		return true
	}

	if tx.Shielded {
		return state.Invalid(RejectInvalid, "sidechain outputs in shielded transaction")
	}

	cumulative := amount.Amount(0)
	for _, forward := range tx.ScForwards {
		if forward.Value <= 0 || forward.Value > amount.MaxMoney {
			return state.Invalid(RejectInvalid,
				fmt.Sprintf("forward transfer amount out of range: %d", forward.Value))
		}
		sum, ok := amount.AddWithinRange(cumulative, forward.Value)
		if !ok {
			return state.Invalid(RejectInvalid, "cumulative forward transfer amount too large")
		}
		cumulative = sum
	}

	for _, creation := range tx.ScCreations {
		if !checkSidechainCreation(tx, creation.ScId, state) {
			return false
		}
	}
	return true
}

// creation specific rules, shared with the mempool gate
func checkSidechainCreation(tx *transactionrecord.Transaction, scId sidechainrecord.ScId, state *ValidationState) bool {
	if !tx.AnyForwardTransfer(scId) {
		return state.Invalid(RejectInvalid,
			fmt.Sprintf("sidechain creation without forward transfer: %s", scId))
	}
	total, ok := tx.ForwardTotal(scId)
	if !ok || total <= 0 || total > amount.MaxMoney {
		return state.Invalid(RejectInvalid,
			fmt.Sprintf("sidechain creation funding out of range: %s", scId))
	}
	return true
}

// IsTxApplicableToState - check a transaction against the visible
// state: creations must be fresh, forward targets must exist
//
// stops at the first violation; nothing is mutated
func IsTxApplicableToState(tx *transactionrecord.Transaction, view *CoinsViewCache) bool {
	for _, creation := range tx.ScCreations {
		if Exists(creation.ScId, view) {
			return false
		}
	}
	for _, forward := range tx.ScForwards {
		// a forward funding a same-transaction creation is applied
		// together with that creation
		if tx.HasCreationOutput(forward.ScId) {
			continue
		}
		if !Exists(forward.ScId, view) {
			return false
		}
	}
	return true
}

// IsTxAllowedInMempool - admission gate: every creation must pass the
// creation rules, and a creation already pending in the pool blocks
// any other creation of the same id
//
// forward transfers are not restricted here
func IsTxAllowedInMempool(pool *mempool.Pool, tx *transactionrecord.Transaction, state *ValidationState) bool {
	for _, creation := range tx.ScCreations {
		if !checkSidechainCreation(tx, creation.ScId, state) {
			return false
		}
	}
	if hasScCreationConflictsInMempool(pool, tx) {
		return state.Invalid(RejectInvalid, "sidechain creation conflicts with mempool transaction")
	}
	return true
}

// scan the pool for any transaction whose creation set intersects the
// candidate's creation set
func hasScCreationConflictsInMempool(pool *mempool.Pool, tx *transactionrecord.Transaction) bool {
	if 0 == len(tx.ScCreations) {
		return false
	}
	for _, poolTx := range pool.Transactions() {
		for _, creation := range tx.ScCreations {
			if poolTx.HasCreationOutput(creation.ScId) {
				return true
			}
		}
	}
	return false
}
