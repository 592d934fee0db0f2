// Package errors provides error handling for the oifits module.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping and sentinel comparison, plus the two distinguished
// conditions of the OIFITS table protocol:
//
//	// Recoverable lookup failure
//	if errors.IsNotFound(err) { ... }
//
//	// Expected termination of a per-kind table scan
//	if errors.IsEndOfData(err) { ... }
//
// Any other error from the tabular I/O layer is fatal to the call that
// received it.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	WithHint    = crdb.WithHint
	WithDetail  = crdb.WithDetail
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors for the table protocol.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a name or index did not resolve to a table,
	// element or target. Always recoverable.
	ErrNotFound = New("not found")

	// ErrEndOfData is the distinguished status terminating a per-kind
	// table scan. It is not a failure.
	ErrEndOfData = New("end of data")

	// ErrExists indicates the destination path already exists; the file
	// pipeline never silently overwrites.
	ErrExists = New("already exists")
)

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsEndOfData reports whether err is or wraps ErrEndOfData.
func IsEndOfData(err error) bool {
	return err != nil && Is(err, ErrEndOfData)
}

// IsExists reports whether err is or wraps ErrExists.
func IsExists(err error) bool {
	return err != nil && Is(err, ErrExists)
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
