// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialsok

import "fmt"

// ErrorCode identifies a kind of serial-number proof error.
type ErrorCode int

const (
	// ErrBadChallengeBits indicates a proof was built or verified with a
	// non-positive challenge bit length.
	ErrBadChallengeBits ErrorCode = iota
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadChallengeBits: "ErrBadChallengeBits",
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
