// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/fault"
)

// UnsetHeight - sentinel for an unset creation block height
const UnsetHeight int32 = -1

// CreationData - opaque creation parameters, round-tripped verbatim
type CreationData []byte

// ImmatureAmount - one pending entry of the maturity pipeline
type ImmatureAmount struct {
	MaturityHeight int32
	Value          amount.Amount
}

// ImmatureAmounts - the ordered maturity pipeline
//
// entries are kept in strictly ascending maturity height order with
// unique heights; an insertion order container would break both the
// serialisation format and the maturity sweep
type ImmatureAmounts []ImmatureAmount

// ScInfo - the state record of one live sidechain
type ScInfo struct {
	CreationBlockHash   digest.Digest
	CreationBlockHeight int32
	CreationTxHash      digest.Digest
	Balance             amount.Amount
	CreationData        CreationData
	ImmatureAmounts     ImmatureAmounts
}

// ScInfoMap - committed or overlay mapping from id to record
type ScInfoMap map[ScId]ScInfo

// NewScInfo - a default record with the unset height sentinel
func NewScInfo() ScInfo {
	return ScInfo{
		CreationBlockHeight: UnsetHeight,
	}
}

// At - pending value at an exact maturity height
func (im ImmatureAmounts) At(height int32) (amount.Amount, bool) {
	for _, entry := range im {
		if entry.MaturityHeight == height {
			return entry.Value, true
		}
		if entry.MaturityHeight > height {
			break
		}
	}
	return 0, false
}

// Total - sum of all pending values
//
// the result can exceed MaxMoney only if the record invariant was
// already broken, callers validate after mutation
func (im ImmatureAmounts) Total() amount.Amount {
	total := amount.Amount(0)
	for _, entry := range im {
		total += entry.Value
	}
	return total
}

// Add - merge a value into the entry at the given maturity height,
// creating the entry in ascending position if it is not present
func (im ImmatureAmounts) Add(height int32, value amount.Amount) ImmatureAmounts {
	for i, entry := range im {
		if entry.MaturityHeight == height {
			im[i].Value += value
			return im
		}
		if entry.MaturityHeight > height {
			result := make(ImmatureAmounts, 0, len(im)+1)
			result = append(result, im[:i]...)
			result = append(result, ImmatureAmount{MaturityHeight: height, Value: value})
			result = append(result, im[i:]...)
			return result
		}
	}
	return append(im, ImmatureAmount{MaturityHeight: height, Value: value})
}

// Subtract - remove part of the entry at the given maturity height
// deleting the entry when it reaches zero
func (im ImmatureAmounts) Subtract(height int32, value amount.Amount) (ImmatureAmounts, error) {
	for i, entry := range im {
		if entry.MaturityHeight == height {
			if entry.Value < value {
				return im, fault.ErrInsufficientImmatureAmount
			}
			if entry.Value == value {
				return append(im[:i:i], im[i+1:]...), nil
			}
			im[i].Value -= value
			return im, nil
		}
		if entry.MaturityHeight > height {
			break
		}
	}
	return im, fault.ErrImmatureAmountNotFound
}

// Remove - drop the entry at the given maturity height
func (im ImmatureAmounts) Remove(height int32) ImmatureAmounts {
	for i, entry := range im {
		if entry.MaturityHeight == height {
			return append(im[:i:i], im[i+1:]...)
		}
	}
	return im
}

// Copy - an independent copy of the pipeline
func (im ImmatureAmounts) Copy() ImmatureAmounts {
	if nil == im {
		return nil
	}
	result := make(ImmatureAmounts, len(im))
	copy(result, im)
	return result
}

// Equal - ordered key/value sequence comparison
func (im ImmatureAmounts) Equal(rhs ImmatureAmounts) bool {
	if len(im) != len(rhs) {
		return false
	}
	for i, entry := range im {
		if entry != rhs[i] {
			return false
		}
	}
	return true
}

// isOrdered - strictly ascending unique heights
func (im ImmatureAmounts) isOrdered() bool {
	for i := 1; i < len(im); i += 1 {
		if im[i-1].MaturityHeight >= im[i].MaturityHeight {
			return false
		}
	}
	return true
}

// Copy - an independent deep copy of the record
func (info ScInfo) Copy() ScInfo {
	result := info
	result.ImmatureAmounts = info.ImmatureAmounts.Copy()
	if nil != info.CreationData {
		result.CreationData = make(CreationData, len(info.CreationData))
		copy(result.CreationData, info.CreationData)
	}
	return result
}

// Equal - bytewise comparison of all fields
func (info ScInfo) Equal(rhs ScInfo) bool {
	return info.CreationBlockHash == rhs.CreationBlockHash &&
		info.CreationBlockHeight == rhs.CreationBlockHeight &&
		info.CreationTxHash == rhs.CreationTxHash &&
		info.Balance == rhs.Balance &&
		bytes.Equal(info.CreationData, rhs.CreationData) &&
		info.ImmatureAmounts.Equal(rhs.ImmatureAmounts)
}

// Validate - the record invariants
//
// balance must be non-negative, the pipeline strictly ascending, and
// balance plus all pending values inside the money domain
func (info ScInfo) Validate() error {
	if info.Balance < 0 {
		return fault.ErrAmountOutOfRange
	}
	if !info.ImmatureAmounts.isOrdered() {
		return fault.ErrWrongMaturityHeight
	}
	total := info.Balance
	for _, entry := range info.ImmatureAmounts {
		if entry.Value < 0 {
			return fault.ErrAmountOutOfRange
		}
		sum, ok := amount.AddWithinRange(total, entry.Value)
		if !ok {
			return fault.ErrAmountExceedsMaximum
		}
		total = sum
	}
	return nil
}

// String - render a record the way the manager dumps it
func (info ScInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("creation block: %s height: %d tx: %s balance: %d",
		info.CreationBlockHash, info.CreationBlockHeight, info.CreationTxHash, info.Balance))
	for _, entry := range info.ImmatureAmounts {
		s.WriteString(fmt.Sprintf(" immature[%d]: %d", entry.MaturityHeight, entry.Value))
	}
	return s.String()
}

// Copy - an independent copy of a whole map
func (m ScInfoMap) Copy() ScInfoMap {
	result := make(ScInfoMap, len(m))
	for id, info := range m {
		result[id] = info.Copy()
	}
	return result
}

// Equal - compare two maps record by record
func (m ScInfoMap) Equal(rhs ScInfoMap) bool {
	if len(m) != len(rhs) {
		return false
	}
	for id, info := range m {
		other, ok := rhs[id]
		if !ok || !info.Equal(other) {
			return false
		}
	}
	return true
}
