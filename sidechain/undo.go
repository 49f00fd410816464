// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
)

// BlockUndo - per block reversal record for matured amounts
//
// for every affected sidechain it maps the height at which an amount
// was originally accepted to the amount that matured; this is exactly
// what RestoreImmatureBalances needs to rebuild the pipeline when the
// block is disconnected
type BlockUndo struct {
	matured map[sidechainrecord.ScId]map[int32]amount.Amount
}

// NewBlockUndo - an empty reversal record
func NewBlockUndo() *BlockUndo {
	return &BlockUndo{
		matured: make(map[sidechainrecord.ScId]map[int32]amount.Amount),
	}
}

// Add - accumulate a matured amount for one sidechain at its original
// acceptance height
func (undo *BlockUndo) Add(scId sidechainrecord.ScId, origHeight int32, value amount.Amount) {
	perHeight, ok := undo.matured[scId]
	if !ok {
		perHeight = make(map[int32]amount.Amount)
		undo.matured[scId] = perHeight
	}
	perHeight[origHeight] += value
}

// IsEmpty - nothing matured in this block
func (undo *BlockUndo) IsEmpty() bool {
	return 0 == len(undo.matured)
}

// Amounts - copy of the per height amounts recorded for one sidechain
func (undo *BlockUndo) Amounts(scId sidechainrecord.ScId) map[int32]amount.Amount {
	perHeight, ok := undo.matured[scId]
	if !ok {
		return nil
	}
	result := make(map[int32]amount.Amount, len(perHeight))
	for height, value := range perHeight {
		result[height] = value
	}
	return result
}
