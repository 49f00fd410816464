// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the 32 byte hash value used for block hashes,
// transaction hashes and raw sidechain identifiers
//
// the engine treats these values as opaque byte strings; the only
// computation performed here is SHA3-256 for deriving fresh digests
package digest
