// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import "fmt"

// ErrorCode identifies a kind of Bulletproofs error.
type ErrorCode int

const (
	// ErrBadRangeProof indicates Verify or BatchVerify found a failing
	// equation; mirrors the original BadRangeProof rejection reason.
	ErrBadRangeProof ErrorCode = iota

	// ErrTooManyValues indicates Prove was asked to aggregate more values
	// than the RangeParams' MaxValues supports.
	ErrTooManyValues

	// ErrValueOutOfRange indicates a value passed to Prove does not fit
	// in [0, 2^BitWidth).
	ErrValueOutOfRange

	// ErrMismatchedLengths indicates the values and blinding-factor
	// vectors passed to Prove have different lengths.
	ErrMismatchedLengths

	// ErrInsufficientGenerators indicates a GroupParams' Vector is too
	// short to slice into the requested BitWidth/MaxValues bases.
	ErrInsufficientGenerators
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadRangeProof:          "ErrBadRangeProof",
	ErrTooManyValues:          "ErrTooManyValues",
	ErrValueOutOfRange:        "ErrValueOutOfRange",
	ErrMismatchedLengths:      "ErrMismatchedLengths",
	ErrInsufficientGenerators: "ErrInsufficientGenerators",
}

func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error is the error type returned by this package.
type Error struct {
	ErrorCode   ErrorCode
	Description string
	Err         error
}

func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

func (e Error) Unwrap() error { return e.Err }

func newError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
