// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/fault"
)

// Unpack - turn a byte slice back into a record
//
// also returns the number of bytes consumed so that records can be
// concatenated in a stream
func (record Packed) Unpack() (*ScInfo, int, error) {
	info := NewScInfo()
	n := 0

	if len(record) < n+32 {
		return nil, 0, fault.ErrNotPackedSidechainInfo
	}
	copy(info.CreationBlockHash[:], record[n:n+32])
	n += 32

	height, heightLength, err := clippedInt32(record[n:])
	if nil != err {
		return nil, 0, err
	}
	info.CreationBlockHeight = height
	n += heightLength

	if len(record) < n+32 {
		return nil, 0, fault.ErrSerialisedRecordIsTruncated
	}
	copy(info.CreationTxHash[:], record[n:n+32])
	n += 32

	balance, balanceLength, err := clippedInt64(record[n:])
	if nil != err {
		return nil, 0, err
	}
	info.Balance = amount.Amount(balance)
	n += balanceLength

	// creation data
	dataCount, dataOffset := fromVarint64(record[n:])
	if 0 == dataOffset {
		return nil, 0, fault.ErrSerialisedRecordIsTruncated
	}
	n += dataOffset
	if uint64(len(record)-n) < dataCount {
		return nil, 0, fault.ErrSerialisedRecordIsTruncated
	}
	if dataCount > 0 {
		info.CreationData = make(CreationData, dataCount)
		copy(info.CreationData, record[n:n+int(dataCount)])
		n += int(dataCount)
	}

	// immature amounts
	entryCount, entryOffset := fromVarint64(record[n:])
	if 0 == entryOffset {
		return nil, 0, fault.ErrSerialisedRecordIsTruncated
	}
	n += entryOffset
	if entryCount > 0 {
		info.ImmatureAmounts = make(ImmatureAmounts, 0, entryCount)
	}
	for i := uint64(0); i < entryCount; i += 1 {
		entryHeight, entryHeightLength, err := clippedInt32(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += entryHeightLength

		value, valueLength, err := clippedInt64(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += valueLength

		info.ImmatureAmounts = append(info.ImmatureAmounts, ImmatureAmount{
			MaturityHeight: entryHeight,
			Value:          amount.Amount(value),
		})
	}
	if !info.ImmatureAmounts.isOrdered() {
		return nil, 0, fault.ErrWrongMaturityHeight
	}

	return &info, n, nil
}

// read a little endian int32 from a buffer
func clippedInt32(buffer []byte) (int32, int, error) {
	if len(buffer) < 4 {
		return 0, 0, fault.ErrSerialisedRecordIsTruncated
	}
	return int32(binary.LittleEndian.Uint32(buffer[:4])), 4, nil
}

// read a little endian int64 from a buffer
func clippedInt64(buffer []byte) (int64, int, error) {
	if len(buffer) < 8 {
		return 0, 0, fault.ErrSerialisedRecordIsTruncated
	}
	return int64(binary.LittleEndian.Uint64(buffer[:8])), 8, nil
}
