// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/sidechaind/fault"
)

// Packed - a serialised record is just a byte slice
type Packed []byte

// maximum possible number of bytes in a varint
const varintMaximumBytes = 9

// Pack - serialise a record to the stable byte format
//
// field order:
//   1. creationBlockHash    32 raw bytes
//   2. creationBlockHeight  int32 little endian
//   3. creationTxHash       32 raw bytes
//   4. balance              int64 little endian
//   5. creationData         varint count + raw bytes
//   6. immatureAmounts      varint count + ascending (int32, int64) pairs
func (info ScInfo) Pack() (Packed, error) {
	if !info.ImmatureAmounts.isOrdered() {
		return nil, fault.ErrWrongMaturityHeight
	}

	message := make(Packed, 0, 128)
	message = append(message, info.CreationBlockHash[:]...)
	message = appendInt32(message, info.CreationBlockHeight)
	message = append(message, info.CreationTxHash[:]...)
	message = appendInt64(message, int64(info.Balance))

	message = append(message, toVarint64(uint64(len(info.CreationData)))...)
	message = append(message, info.CreationData...)

	message = append(message, toVarint64(uint64(len(info.ImmatureAmounts)))...)
	for _, entry := range info.ImmatureAmounts {
		message = appendInt32(message, entry.MaturityHeight)
		message = appendInt64(message, int64(entry.Value))
	}
	return message, nil
}

// append a little endian int32 to a buffer
func appendInt32(buffer Packed, value int32) Packed {
	valueBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(valueBytes, uint32(value))
	return append(buffer, valueBytes...)
}

// append a little endian int64 to a buffer
func appendInt64(buffer Packed, value int64) Packed {
	valueBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(valueBytes, uint64(value))
	return append(buffer, valueBytes...)
}

// toVarint64 - convert a 64 bit unsigned integer to a varint
//
// seven value bits per byte, high bit set on all but the final byte;
// the ninth byte, if present, carries a full eight bits
func toVarint64(value uint64) []byte {
	result := make([]byte, 0, varintMaximumBytes)
	if value < 0x80 {
		result = append(result, byte(value))
		return result
	}

	for i := 0; i < varintMaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		result = append(result, byte(value|ext))
		value >>= 7
	}
	return result
}

// fromVarint64 - convert an array of up to varintMaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if the varint buffer is truncated
func fromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currByte := uint64(buffer[count])
		count += 1
		if count < varintMaximumBytes {
			result |= currByte & 0x7f << shift
			if 0 == currByte&0x80 {
				return result, count
			}
		} else {
			result |= currByte << shift
			return result, count
		}
		shift += 7
	}
	return 0, 0
}
