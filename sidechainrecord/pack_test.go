// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
)

// the serialised byte layout is a stable external interface, so the
// exact bytes are pinned here rather than just round-tripped
func TestPackKnownBytes(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	for i := 0; i < 32; i += 1 {
		info.CreationBlockHash[i] = byte(i)
		info.CreationTxHash[i] = byte(0x80 + i)
	}
	info.CreationBlockHeight = 1992
	info.Balance = 1000
	info.CreationData = sidechainrecord.CreationData{0xde, 0xad, 0xbe}
	info.ImmatureAmounts = info.ImmatureAmounts.Add(107, 1000)

	packed, err := info.Pack()
	assert.Nil(t, err, "pack error")

	expected := []byte{}
	expected = append(expected, info.CreationBlockHash[:]...)
	expected = append(expected, 0xc8, 0x07, 0x00, 0x00) // 1992 LE
	expected = append(expected, info.CreationTxHash[:]...)
	expected = append(expected, 0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00) // 1000 LE
	expected = append(expected, 0x03, 0xde, 0xad, 0xbe)                         // creation data
	expected = append(expected, 0x01)                                           // one pipeline entry
	expected = append(expected, 0x6b, 0x00, 0x00, 0x00)                         // height 107 LE
	expected = append(expected, 0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00) // amount 1000 LE

	assert.Equal(t, sidechainrecord.Packed(expected), packed, "wrong packed bytes")
}

func TestPackUnpackRoundTrip(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	info.CreationBlockHash[0] = 0xaa
	info.CreationTxHash[0] = 0xbb
	info.CreationBlockHeight = 7
	info.Balance = 34
	info.CreationData = sidechainrecord.CreationData{0x01, 0x02, 0x03, 0x04}
	info.ImmatureAmounts = info.ImmatureAmounts.Add(107, 1000)
	info.ImmatureAmounts = info.ImmatureAmounts.Add(205, amount.MaxMoney-2000)

	packed, err := info.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "unpack consumed wrong byte count")
	assert.True(t, info.Equal(*unpacked), "round trip mismatch:\n%v\n%v", info, *unpacked)
}

func TestUnpackDefaultRecord(t *testing.T) {
	info := sidechainrecord.NewScInfo()

	packed, err := info.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, _, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, sidechainrecord.UnsetHeight, unpacked.CreationBlockHeight, "sentinel lost")
	assert.True(t, info.Equal(*unpacked), "round trip mismatch")
}

func TestUnpackTruncated(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	info.CreationData = sidechainrecord.CreationData{0x01, 0x02}
	info.ImmatureAmounts = info.ImmatureAmounts.Add(10, 1)

	packed, err := info.Pack()
	assert.Nil(t, err, "pack error")

	for i := 0; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack()
		assert.NotNil(t, err, "truncation to %d bytes accepted", i)
		assert.True(t, fault.IsErrInvalid(err), "truncation error has wrong class: %v", err)
	}
}

func TestUnpackRejectsUnorderedPipeline(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	info.ImmatureAmounts = sidechainrecord.ImmatureAmounts{
		{MaturityHeight: 20, Value: 1},
		{MaturityHeight: 10, Value: 1},
	}

	_, err := info.Pack()
	assert.Equal(t, fault.ErrWrongMaturityHeight, err, "unordered pipeline packed")

	// hand-build a descending stream: the codec must refuse it
	broken := make(sidechainrecord.Packed, 0, 128)
	broken = append(broken, make([]byte, 32)...)                                  // creation block hash
	broken = append(broken, 0xff, 0xff, 0xff, 0xff)                               // height -1
	broken = append(broken, make([]byte, 32)...)                                  // creation tx hash
	broken = append(broken, make([]byte, 8)...)                                   // balance 0
	broken = append(broken, 0x00)                                                 // no creation data
	broken = append(broken, 0x02)                                                 // two pipeline entries
	broken = append(broken, 0x14, 0x00, 0x00, 0x00)                               // height 20
	broken = append(broken, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)      // amount 1
	broken = append(broken, 0x0a, 0x00, 0x00, 0x00)                               // height 10
	broken = append(broken, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)      // amount 1

	_, _, err = broken.Unpack()
	assert.Equal(t, fault.ErrWrongMaturityHeight, err, "unordered stream unpacked")
}
