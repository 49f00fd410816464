// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sidechaind/amount"
	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
)

func TestScIdFromHex(t *testing.T) {
	id, err := sidechainrecord.ScIdFromHex("1492")
	assert.Nil(t, err, "hex convert error")

	// value 0x1492 stored little endian
	expected := sidechainrecord.ScId{0x92, 0x14}
	assert.Equal(t, expected, id, "wrong little endian storage")
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000001492",
		id.String(), "wrong big endian rendering")

	// odd digit counts are zero extended
	id, err = sidechainrecord.ScIdFromHex("a1b2c")
	assert.Nil(t, err, "hex convert error")
	assert.Equal(t, sidechainrecord.ScId{0x2c, 0x1b, 0x0a}, id, "wrong odd digit handling")

	_, err = sidechainrecord.ScIdFromHex("zz")
	assert.NotNil(t, err, "invalid digits accepted")
}

func TestImmatureAmountsOrdering(t *testing.T) {
	im := sidechainrecord.ImmatureAmounts{}
	im = im.Add(120, 7)
	im = im.Add(100, 3)
	im = im.Add(110, 5)
	im = im.Add(100, 2)

	expected := sidechainrecord.ImmatureAmounts{
		{MaturityHeight: 100, Value: 5},
		{MaturityHeight: 110, Value: 5},
		{MaturityHeight: 120, Value: 7},
	}
	assert.True(t, im.Equal(expected), "pipeline not in ascending merged order: %v", im)
	assert.Equal(t, amount.Amount(17), im.Total(), "wrong pending total")

	value, ok := im.At(110)
	assert.True(t, ok, "entry at 110 missing")
	assert.Equal(t, amount.Amount(5), value, "wrong entry value")

	_, ok = im.At(105)
	assert.False(t, ok, "phantom entry found")
}

func TestImmatureAmountsSubtract(t *testing.T) {
	im := sidechainrecord.ImmatureAmounts{}
	im = im.Add(100, 10)
	im = im.Add(200, 20)

	im, err := im.Subtract(100, 4)
	assert.Nil(t, err, "subtract error")
	value, _ := im.At(100)
	assert.Equal(t, amount.Amount(6), value, "wrong value after subtract")

	// draining an entry removes its key
	im, err = im.Subtract(100, 6)
	assert.Nil(t, err, "subtract error")
	_, ok := im.At(100)
	assert.False(t, ok, "drained entry still present")

	_, err = im.Subtract(200, 21)
	assert.Equal(t, fault.ErrInsufficientImmatureAmount, err, "oversubtraction allowed")

	_, err = im.Subtract(150, 1)
	assert.Equal(t, fault.ErrImmatureAmountNotFound, err, "subtract from missing entry allowed")
}

func TestScInfoValidate(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	assert.Nil(t, info.Validate(), "default record invalid")

	info.Balance = 100
	info.ImmatureAmounts = info.ImmatureAmounts.Add(10, amount.MaxMoney-100)
	assert.Nil(t, info.Validate(), "record at exact maximum invalid")

	info.ImmatureAmounts = info.ImmatureAmounts.Add(20, 1)
	assert.Equal(t, fault.ErrAmountExceedsMaximum, info.Validate(), "overflowing record valid")

	info = sidechainrecord.NewScInfo()
	info.Balance = -1
	assert.Equal(t, fault.ErrAmountOutOfRange, info.Validate(), "negative balance valid")
}

func TestScInfoCopyIsIndependent(t *testing.T) {
	info := sidechainrecord.NewScInfo()
	info.CreationBlockHash = digest.NewDigest([]byte("block"))
	info.CreationTxHash = digest.NewDigest([]byte("tx"))
	info.CreationBlockHeight = 1992
	info.Balance = 34
	info.CreationData = sidechainrecord.CreationData{0xde, 0xad}
	info.ImmatureAmounts = info.ImmatureAmounts.Add(100, 10)

	clone := info.Copy()
	assert.True(t, info.Equal(clone), "copy differs from original")

	clone.ImmatureAmounts[0].Value = 99
	clone.CreationData[0] = 0x00
	assert.Equal(t, amount.Amount(10), info.ImmatureAmounts[0].Value, "copy aliases pipeline")
	assert.Equal(t, byte(0xde), info.CreationData[0], "copy aliases creation data")
}

func TestScInfoMapEqual(t *testing.T) {
	idA, _ := sidechainrecord.ScIdFromHex("a123")
	idB, _ := sidechainrecord.ScIdFromHex("b987")

	infoA := sidechainrecord.NewScInfo()
	infoA.CreationBlockHeight = 1992
	infoB := sidechainrecord.NewScInfo()
	infoB.CreationBlockHeight = 1993

	lhs := sidechainrecord.ScInfoMap{idA: infoA, idB: infoB}
	rhs := lhs.Copy()
	assert.True(t, lhs.Equal(rhs), "copied map differs")

	modified := infoB.Copy()
	modified.Balance = 1
	rhs[idB] = modified
	assert.False(t, lhs.Equal(rhs), "modified map still equal")
}
