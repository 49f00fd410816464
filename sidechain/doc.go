// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sidechain - the authoritative model of registered sidechains
//
// the manager owns the committed in-memory table of sidechain records,
// mirrors it to persistent storage, and answers existence, lookup and
// balance queries; it also hosts the pure transaction validators
//
// a CoinsViewCache is the transactional overlay used by one block
// processing pass: transaction effects are staged into it, maturation
// or reversal is applied at a specific block height, and the overlay
// is either flushed into the committed table and storage in one step
// or simply discarded
//
// one reader/writer lock guards the committed table and storage;
// overlay operations never take it in exclusive mode except Flush, so
// concurrent readers observe either the pre-flush or the post-flush
// state and never an intermediate one
package sidechain
