// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spend

import "fmt"

// ErrorCode identifies a kind of spend-package error, per spec.md §7's
// BadProof taxonomy.
type ErrorCode int

const (
	// ErrBadCommitmentPoK indicates the cross-group equality proof binding
	// the serial and accumulator commitments to the same coin value failed.
	ErrBadCommitmentPoK ErrorCode = iota

	// ErrBadAccumulatorPoK indicates the accumulator membership proof
	// failed.
	ErrBadAccumulatorPoK

	// ErrBadSerialSoK indicates the serial-number signature of knowledge
	// failed, either because it does not verify or because it was not
	// bound to the spend's own transaction hash.
	ErrBadSerialSoK

	// ErrBadSerialPoK indicates the standalone serial-number subgroup
	// proof failed.
	ErrBadSerialPoK

	// ErrWitnessInvalid indicates Sign was asked to build a spend from a
	// witness that does not verify against the supplied accumulator.
	ErrWitnessInvalid
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadCommitmentPoK:  "ErrBadCommitmentPoK",
	ErrBadAccumulatorPoK: "ErrBadAccumulatorPoK",
	ErrBadSerialSoK:      "ErrBadSerialSoK",
	ErrBadSerialPoK:      "ErrBadSerialPoK",
	ErrWitnessInvalid:    "ErrWitnessInvalid",
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
