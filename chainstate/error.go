// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import "fmt"

// ErrorCode identifies a kind of chain-engine error.
type ErrorCode int

const (
	// ErrDuplicateMint indicates a mint's commitment value already
	// exists in the commitment index, or repeats within the same block.
	ErrDuplicateMint ErrorCode = iota

	// ErrDoubleSpend indicates a spend's serial number already exists in
	// the spend index, or repeats within the same block.
	ErrDoubleSpend

	// ErrWrongAccumulatorState indicates a CoinSpend references an
	// accumulator checksum this chain state has no record of.
	ErrWrongAccumulatorState

	// ErrBadProof indicates CoinSpend.Verify failed.
	ErrBadProof

	// ErrMintTooYoung indicates a spend was rejected because the coin's
	// anonymity set has not grown by MinMintSecurity later mints yet.
	ErrMintTooYoung

	// ErrStorageError wraps an underlying chainkv error.
	ErrStorageError

	// ErrCancelled indicates an operation observed its cancellation
	// token.
	ErrCancelled

	// ErrMintTooSmall indicates a mint's commitment value fell below the
	// configured MinAcceptedMintValue floor.
	ErrMintTooSmall

	// ErrInvalidMint indicates a mint failed PublicCoin.IsValid (bad range
	// or non-prime commitment), distinct from ErrDuplicateMint's
	// already-seen case.
	ErrInvalidMint
)

var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateMint:         "ErrDuplicateMint",
	ErrDoubleSpend:           "ErrDoubleSpend",
	ErrWrongAccumulatorState: "ErrWrongAccumulatorState",
	ErrBadProof:              "ErrBadProof",
	ErrMintTooYoung:          "ErrMintTooYoung",
	ErrStorageError:          "ErrStorageError",
	ErrCancelled:             "ErrCancelled",
	ErrMintTooSmall:          "ErrMintTooSmall",
	ErrInvalidMint:           "ErrInvalidMint",
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
