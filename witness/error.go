// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package witness

import "fmt"

// ErrorCode identifies a kind of witness-updater error.
type ErrorCode int

const (
	// ErrRecoveryFailed indicates a batch failed to verify both on first
	// attempt and after recovering from the last snapshot; the witness
	// has been reset to its initial state and the caller must call
	// Advance again to restart the replay from scratch.
	ErrRecoveryFailed ErrorCode = iota

	// ErrChainState wraps an underlying chainstate error encountered
	// while replaying blocks.
	ErrChainState
)

var errorCodeStrings = map[ErrorCode]string{
	ErrRecoveryFailed: "ErrRecoveryFailed",
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
