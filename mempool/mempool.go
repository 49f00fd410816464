// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool - the set of transactions waiting for a block
//
// the sidechain engine only consumes membership queries; fee
// accounting and eviction policy live elsewhere, so this container
// stays a plain indexed set
package mempool

import (
	"sync"

	"github.com/bitmark-inc/sidechaind/digest"
	"github.com/bitmark-inc/sidechaind/transactionrecord"
)

// Pool - an indexed set of pending transactions
//
// safe for concurrent use; iteration works on a snapshot so callers
// never hold the pool lock while validating
type Pool struct {
	sync.RWMutex
	entries map[digest.Digest]*transactionrecord.Transaction
}

// New - create an empty pool
func New() *Pool {
	return &Pool{
		entries: make(map[digest.Digest]*transactionrecord.Transaction),
	}
}

// Add - insert a transaction, replacing any previous one with the
// same hash
func (pool *Pool) Add(tx *transactionrecord.Transaction) {
	pool.Lock()
	pool.entries[tx.TxHash] = tx
	pool.Unlock()
}

// Remove - drop a transaction by hash
func (pool *Pool) Remove(txHash digest.Digest) {
	pool.Lock()
	delete(pool.entries, txHash)
	pool.Unlock()
}

// Has - membership by transaction hash
func (pool *Pool) Has(txHash digest.Digest) bool {
	pool.RLock()
	_, ok := pool.entries[txHash]
	pool.RUnlock()
	return ok
}

// Count - number of pending transactions
func (pool *Pool) Count() int {
	pool.RLock()
	n := len(pool.entries)
	pool.RUnlock()
	return n
}

// Transactions - snapshot of the pending transactions
func (pool *Pool) Transactions() []*transactionrecord.Transaction {
	pool.RLock()
	result := make([]*transactionrecord.Transaction, 0, len(pool.entries))
	for _, tx := range pool.entries {
		result = append(result, tx)
	}
	pool.RUnlock()
	return result
}
