// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechain

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/sidechaind/fault"
	"github.com/bitmark-inc/sidechaind/sidechainrecord"
	"github.com/bitmark-inc/sidechaind/storage"
)

// the narrow capability set the manager needs from a store
//
// the manager never names the concrete backend; variants are selected
// once at Initialise through the persistence policy
type persister interface {
	loadAll() (sidechainrecord.ScInfoMap, error)
	put(scId sidechainrecord.ScId, info sidechainrecord.ScInfo) error
	remove(scId sidechainrecord.ScId) error
	dump() string
}

// in-memory variant used by tests: loads nothing, stores nothing,
// always succeeds
type stubStore struct{}

func (*stubStore) loadAll() (sidechainrecord.ScInfoMap, error) {
	return make(sidechainrecord.ScInfoMap), nil
}

func (*stubStore) put(_ sidechainrecord.ScId, _ sidechainrecord.ScInfo) error {
	return nil
}

func (*stubStore) remove(_ sidechainrecord.ScId) error {
	return nil
}

func (*stubStore) dump() string {
	return "stub"
}

// durable variant over the sidechain storage pool
type levelStore struct {
	pool *storage.PoolHandle
}

// batch size for the start-up scan
const loadBatchSize = 100

func (s *levelStore) loadAll() (sidechainrecord.ScInfoMap, error) {
	table := make(sidechainrecord.ScInfoMap)

	cursor := s.pool.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(loadBatchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			return table, nil
		}
		for _, e := range elements {
			scId := sidechainrecord.ScId{}
			err := sidechainrecord.ScIdFromBytes(&scId, e.Key)
			if nil != err {
				return nil, err
			}
			info, n, err := sidechainrecord.Packed(e.Value).Unpack()
			if nil != err {
				return nil, err
			}
			if n != len(e.Value) {
				return nil, fault.ErrNotPackedSidechainInfo
			}
			table[scId] = *info
		}
	}
}

func (s *levelStore) put(scId sidechainrecord.ScId, info sidechainrecord.ScInfo) error {
	packed, err := info.Pack()
	if nil != err {
		return err
	}
	return s.pool.Put(scId[:], packed)
}

func (s *levelStore) remove(scId sidechainrecord.ScId) error {
	return s.pool.Delete(scId[:])
}

func (s *levelStore) dump() string {
	table, err := s.loadAll()
	if nil != err {
		return fmt.Sprintf("dump error: %s", err)
	}
	s1 := strings.Builder{}
	s1.WriteString(fmt.Sprintf("%d records", len(table)))
	for scId, info := range table {
		s1.WriteString(fmt.Sprintf("\n%s: %s", scId, info))
	}
	return s1.String()
}
