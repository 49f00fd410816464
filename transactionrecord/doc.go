// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the transaction view consumed by the
// sidechain state engine
//
// only the parts of a transaction that matter to sidechain state are
// modelled: the already computed transaction digest, the transparent
// or shielded flavour, and the ordered sidechain outputs; signature
// checking and wire parsing happen in other subsystems
package transactionrecord
