// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sidechainrecord - the sidechain state records
//
// one ScInfo record exists per live sidechain; it carries the
// creation references, the matured balance and the ordered pipeline
// of immature amounts
//
// the Pack/Unpack pair implements the stable byte format used for
// persistent storage; integers are little endian and the immature
// pipeline is a varint count followed by ascending (height, amount)
// pairs
package sidechainrecord
