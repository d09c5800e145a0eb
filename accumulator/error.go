// Copyright (c) 2014 Conformal Systems LLC <info@conformal.com>
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accumulator

import "fmt"

// ErrorCode identifies a kind of accumulator error.
type ErrorCode int

const (
	// ErrUninitialized indicates an Accumulator was used before New.
	ErrUninitialized ErrorCode = iota

	// ErrInvalidElement indicates Insert was called with a value outside
	// the admissible coin range or composite.
	ErrInvalidElement
)

var errorCodeStrings = map[ErrorCode]string{
	ErrUninitialized:  "ErrUninitialized",
	ErrInvalidElement: "ErrInvalidElement",
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
