// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainkv

import "errors"

// Errors that the various database functions may return.
var (
	// ErrDbDoesNotExist is returned when opening a database that has not
	// been created yet.
	ErrDbDoesNotExist = errors.New("database does not exist")

	// ErrDbExists is returned when creating a database that already
	// exists.
	ErrDbExists = errors.New("database already exists")

	// ErrTxNotWritable is returned when an operation requiring write
	// access is attempted against a read-only transaction.
	ErrTxNotWritable = errors.New("tx not writable")

	// ErrBucketNotFound is returned when accessing a bucket that has not
	// been created yet.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrBucketExists is returned when creating a bucket that already
	// exists.
	ErrBucketExists = errors.New("bucket already exists")

	// ErrBucketNameRequired is returned when creating a bucket with a
	// blank name.
	ErrBucketNameRequired = errors.New("bucket name required")

	// ErrIncompatibleValue is returned when the value of a key cannot be
	// used for the requested operation.
	ErrIncompatibleValue = errors.New("incompatible value")
)
