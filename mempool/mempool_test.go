// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/mempool"
	"github.com/bitmark-inc/sidechaind/transactionrecord"
)

func TestMembership(t *testing.T) {
	pool := mempool.New()

	txA := &transactionrecord.Transaction{TxHash: digest.NewDigest([]byte("a"))}
	txB := &transactionrecord.Transaction{TxHash: digest.NewDigest([]byte("b"))}

	assert.Equal(t, 0, pool.Count(), "fresh pool not empty")
	assert.False(t, pool.Has(txA.TxHash), "phantom member")

	pool.Add(txA)
	pool.Add(txB)
	assert.Equal(t, 2, pool.Count(), "wrong count")
	assert.True(t, pool.Has(txA.TxHash), "member missing")

	pool.Remove(txA.TxHash)
	assert.False(t, pool.Has(txA.TxHash), "removed member still present")
	assert.Equal(t, 1, pool.Count(), "wrong count after remove")
}

func TestSnapshotIsolation(t *testing.T) {
	pool := mempool.New()
	txA := &transactionrecord.Transaction{TxHash: digest.NewDigest([]byte("a"))}
	pool.Add(txA)

	snapshot := pool.Transactions()
	pool.Remove(txA.TxHash)

	assert.Equal(t, 1, len(snapshot), "snapshot tracked later removal")
	assert.Equal(t, txA.TxHash, snapshot[0].TxHash, "wrong snapshot entry")
}
