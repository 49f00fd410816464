// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/sidechaind/fault"
)

// ScIdLength - number of bytes in a sidechain identifier
const ScIdLength = 32

// ScId - the opaque 256 bit sidechain identifier
// stored as little endian byte array
// represented as big endian hex value for print
// equality and hashing are bytewise
type ScId [ScIdLength]byte

// internal function to return a reversed byte order copy of an id
func reversed(id ScId) []byte {
	result := make([]byte, ScIdLength)
	for i := 0; i < ScIdLength; i += 1 {
		result[i] = id[ScIdLength-1-i]
	}
	return result
}

// String - convert a binary id to hex string for use by the fmt package (for %s)
func (id ScId) String() string {
	return hex.EncodeToString(reversed(id))
}

// GoString - convert a binary id to big endian hex string for use by the fmt package (for %#v)
func (id ScId) GoString() string {
	return "<ScId:" + hex.EncodeToString(reversed(id)) + ">"
}

// MarshalText - convert id to little endian hex text
func (id ScId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(ScIdLength))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into an id
func (id *ScId) UnmarshalText(s []byte) error {
	if ScIdLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotADigest
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	for i, v := range buffer[:byteCount] {
		id[i] = v
	}
	return nil
}

// ScIdFromHex - build an id from a big endian hex string of up to 64
// digits; shorter strings set only the low order bytes
//
// an odd number of digits is zero extended on the left
func ScIdFromHex(s string) (ScId, error) {
	id := ScId{}
	if len(s) > 2*ScIdLength {
		return id, fault.ErrNotADigest
	}
	if 1 == len(s)%2 {
		s = "0" + s
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return id, err
	}
	// big endian digits to little endian storage
	for i, v := range buffer {
		id[len(buffer)-1-i] = v
	}
	return id, nil
}

// ScIdFromBytes - convert and validate a little endian binary byte slice to an id
func ScIdFromBytes(id *ScId, buffer []byte) error {
	if ScIdLength != len(buffer) {
		return fault.ErrNotADigest
	}
	copy(id[:], buffer)
	return nil
}
