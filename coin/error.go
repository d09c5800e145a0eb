// Copyright (c) 2014 Conformal Systems LLC <info@conformal.com>
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import "fmt"

// ErrorCode identifies a kind of coin-package error, per spec.md §7's
// InvalidCoin/MintExhausted taxonomy.
type ErrorCode int

const (
	// ErrInvalidCoin indicates a public coin's commitment value failed a
	// structural check (see Error.Description for which one: too small,
	// too large, or not prime).
	ErrInvalidCoin ErrorCode = iota

	// ErrMintExhausted indicates mint rejection sampling hit its attempt
	// cap (coin.MaxMintAttempts) without landing on a valid commitment.
	ErrMintExhausted

	// ErrNotOwner indicates Recover's re-derivation did not reproduce the
	// candidate public coin's value, i.e. it was minted to someone else.
	ErrNotOwner
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidCoin:   "ErrInvalidCoin",
	ErrMintExhausted: "ErrMintExhausted",
	ErrNotOwner:      "ErrNotOwner",
}

// String returns the ErrorCode as a human-readable name.
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
