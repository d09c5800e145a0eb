// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletshim

import "fmt"

// ErrorCode identifies a kind of wallet-shim error.
type ErrorCode int

const (
	// ErrNoRecipients indicates PlanRecipients was asked to break down a
	// non-positive amount.
	ErrNoRecipients ErrorCode = iota

	// ErrMintTooYoung indicates SignSpend was asked to spend a mint
	// that has not yet reached the configured maturity depth.
	ErrMintTooYoung

	// ErrWitnessInvalid wraps a spend.Sign failure caused by a witness
	// that does not verify against the tip it was asked to spend
	// against.
	ErrWitnessInvalid

	// ErrChainState wraps an underlying chainstate error encountered
	// while reading the current tip or a mint's confirmation depth.
	ErrChainState
)

var errorCodeStrings = map[ErrorCode]string{
	ErrNoRecipients:   "ErrNoRecipients",
	ErrMintTooYoung:   "ErrMintTooYoung",
	ErrWitnessInvalid: "ErrWitnessInvalid",
	ErrChainState:     "ErrChainState",
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
