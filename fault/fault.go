// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrArenaCorrupt          = ProcessError("node arena is corrupt")
	ErrBlackHeightMismatch   = InvalidError("black height differs between paths")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrHeightMismatch        = InvalidError("cached height is incorrect")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidDataDirectory  = InvalidError("invalid data directory")
	ErrInvalidDraws          = InvalidError("invalid number of draws")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRange          = InvalidError("invalid range")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind       = InvalidError("invalid tree kind")
	ErrKeyOrder              = InvalidError("keys are not in ascending order")
	ErrNoTreesConfigured     = LengthError("no trees configured")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundDataFile      = NotFoundError("data file is not found")
	ErrParentLinkBroken      = InvalidError("parent link is inconsistent")
	ErrRedNodeHasRedChild    = InvalidError("red node has a red child")
	ErrRedRoot               = InvalidError("root node is red")
	ErrSizeMismatch          = InvalidError("node count does not match size")
	ErrUnbalancedNode        = InvalidError("node balance factor out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

