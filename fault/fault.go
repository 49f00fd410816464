// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = ProcessError("already initialised")
	ErrAmountExceedsMaximum        = InvalidError("amount exceeds maximum money")
	ErrAmountOutOfRange            = InvalidError("amount is out of range")
	ErrImmatureAmountNotFound      = NotFoundError("immature amount not found at height")
	ErrInsufficientBalance         = InvalidError("sidechain balance is insufficient")
	ErrInsufficientImmatureAmount  = InvalidError("immature amount is insufficient")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidDBName               = InvalidError("invalid database name")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidPersistencePolicy    = InvalidError("invalid persistence policy")
	ErrInvalidSidechainMaturity    = InvalidError("sidechain coins maturity must be positive")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrNoMaturingAmounts           = InvalidError("no immature amount matures at this height")
	ErrNotADigest                  = InvalidError("not a digest")
	ErrNotInitialised              = ProcessError("not initialised")
	ErrNotPackedSidechainInfo      = InvalidError("not packed sidechain info")
	ErrRequiredChainName           = InvalidError("chain name is required")
	ErrRequiredDatabaseDirectory   = InvalidError("database directory is required")
	ErrSerialisedRecordIsTruncated = InvalidError("serialised record is truncated")
	ErrSidechainAlreadyExists      = ExistsError("sidechain already exists")
	ErrSidechainNotFound           = NotFoundError("sidechain not found")
	ErrWrongCreationHeight         = InvalidError("creation height does not match")
	ErrWrongMaturityHeight         = InvalidError("maturity height does not match")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
