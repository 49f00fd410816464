// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// one LevelDB database holds every keyspace; each keyspace is a pool
// selected by a one byte prefix so that a range scan over the prefix
// enumerates exactly that pool
//
//	S ⇒ sidechain records keyed by the 32 byte sidechain identifier
package storage
