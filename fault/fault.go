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
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrAbsentRotationPivot   = InvalidError("rotation pivot child is absent")
	ErrAbsentRotationRoot    = InvalidError("rotation root node is absent")
	ErrBalanceViolation      = InvalidError("node is out of balance")
	ErrCountMismatch         = InvalidError("stored count differs from reachable nodes")
	ErrDuplicateValue        = ExistsError("value occurs more than once")
	ErrForeignIterator       = InvalidError("iterator belongs to a different tree")
	ErrHeightMismatch        = InvalidError("cached height is incorrect")
	ErrInvalidConfigResult   = InvalidError("configuration did not return a table")
	ErrInvalidKeyType        = InvalidError("key type is not supported")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorPastEnd       = InvalidError("iterator is past the end")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNilComparator         = InvalidError("comparison function is nil")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = InvalidError("values are not in ascending order")
	ErrParentMismatch        = InvalidError("parent link is inconsistent")
	ErrSizeMismatch          = InvalidError("cached subtree size is incorrect")
	ErrStaleIterator         = ProcessError("iterator was invalidated by a tree mutation")
	ErrUnknownCommand        = NotFoundError("unknown command")
	ErrUnknownTraversalOrder = InvalidError("unknown traversal order")
	ErrValueParseFail        = ProcessError("value parse failed")
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
