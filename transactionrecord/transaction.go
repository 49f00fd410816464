// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
)

// SidechainCreation - an output declaring a new sidechain
type SidechainCreation struct {
	ScId         sidechainrecord.ScId
	CreationData sidechainrecord.CreationData
}

// ForwardTransfer - an output paying value from the main chain into a
// sidechain
type ForwardTransfer struct {
	ScId  sidechainrecord.ScId
	Value amount.Amount
}

// Transaction - the engine's view of one transaction
//
// sidechain outputs are applied creations first, then forward
// transfers, each group in the order it appears
type Transaction struct {
	TxHash digest.Digest

	// a shielded payload cannot be combined with sidechain outputs
	// in this iteration
	Shielded bool

	ScCreations []SidechainCreation
	ScForwards  []ForwardTransfer
}

// IsSidechainNull - true when the transaction carries no sidechain
// outputs at all
func (tx *Transaction) IsSidechainNull() bool {
	return 0 == len(tx.ScCreations) && 0 == len(tx.ScForwards)
}

// HasCreationOutput - true iff the transaction creates the given id
func (tx *Transaction) HasCreationOutput(scId sidechainrecord.ScId) bool {
	for _, creation := range tx.ScCreations {
		if creation.ScId == scId {
			return true
		}
	}
	return false
}

// AnyForwardTransfer - true iff any forward output targets the given id
func (tx *Transaction) AnyForwardTransfer(scId sidechainrecord.ScId) bool {
	for _, forward := range tx.ScForwards {
		if forward.ScId == scId {
			return true
		}
	}
	return false
}

// ForwardTotal - sum of the forward values targeting one id
//
// second result is false when the running sum leaves the money domain
func (tx *Transaction) ForwardTotal(scId sidechainrecord.ScId) (amount.Amount, bool) {
	total := amount.Amount(0)
	for _, forward := range tx.ScForwards {
		if forward.ScId != scId {
			continue
		}
		sum, ok := amount.AddWithinRange(total, forward.Value)
		if !ok {
			return total, false
		}
		total = sum
	}
	return total, true
}
