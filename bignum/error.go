// Copyright (c) 2014 Conformal Systems LLC <info@conformal.com>
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// ErrorCode identifies a kind of bignum/group-parameter error.
type ErrorCode int

const (
	// ErrBadBitLength indicates a requested group parameter bit length
	// was too small to be cryptographically meaningful, or that
	// GroupParams.Verify found a modulus or subgroup order that is not
	// prime.
	ErrBadBitLength ErrorCode = iota

	// ErrDerivationExhausted indicates the deterministic hash-to-candidate
	// loop used to derive group generators did not converge within its
	// iteration budget.
	ErrDerivationExhausted

	// ErrNotQuadraticResidue indicates GroupParams.Verify found a
	// generator that is trivial or does not have order SubgroupOrder.
	ErrNotQuadraticResidue

	// ErrShortRead indicates a CBigNum wire encoding was truncated.
	ErrShortRead

	// ErrBadFlagValue indicates a BigFlag config value could not be
	// parsed as a base-10 integer.
	ErrBadFlagValue
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadBitLength:         "ErrBadBitLength",
	ErrDerivationExhausted:  "ErrDerivationExhausted",
	ErrNotQuadraticResidue:  "ErrNotQuadraticResidue",
	ErrShortRead:            "ErrShortRead",
	ErrBadFlagValue:         "ErrBadFlagValue",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error is the single error type returned by this package. It mirrors the
// wtxmgr.TxStoreError layout used throughout this codebase's other stores.
type Error struct {
	ErrorCode   ErrorCode
	Description string
	Err         error
}

// Error satisfies the error interface.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap allows errors.Is/As to see through to the underlying cause.
func (e Error) Unwrap() error {
	return e.Err
}

func newError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
