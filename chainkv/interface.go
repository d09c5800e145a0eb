// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainkv defines the key/value storage contract chainstate uses
// to persist the block index, commitment index, and spend index. It is
// walletdb's Bucket/Tx/DB contract, trimmed to what an append-mostly chain
// index needs and renamed so chainstate does not take a dependency on the
// wallet-specific walletdb module.
package chainkv

import "io"

// ReadBucket is the read-only subset of the operations a Bucket provides.
type ReadBucket interface {
	NestedReadBucket(key []byte) ReadBucket
	ForEach(func(k, v []byte) error) error
	Get(key []byte) []byte
	ReadCursor() ReadCursor
}

// ReadWriteBucket represents a collection of key/value pairs, optionally
// nesting further buckets keyed the same way.
type ReadWriteBucket interface {
	ReadBucket

	NestedReadWriteBucket(key []byte) ReadWriteBucket

	// CreateBucket creates and returns a new nested bucket with the given
	// key. Returns ErrBucketExists if the bucket already exists,
	// ErrBucketNameRequired if the key is empty, or ErrIncompatibleValue
	// if the key is otherwise invalid for the backend.
	CreateBucket(key []byte) (ReadWriteBucket, error)

	// CreateBucketIfNotExists creates and returns a new nested bucket
	// with the given key if it does not already exist.
	CreateBucketIfNotExists(key []byte) (ReadWriteBucket, error)

	// DeleteNestedBucket removes a nested bucket with the given key.
	DeleteNestedBucket(key []byte) error

	// Put saves the key/value pair to the bucket, overwriting any
	// existing value. Returns ErrTxNotWritable against a read-only
	// transaction.
	Put(key, value []byte) error

	// Delete removes the specified key. Deleting a key that does not
	// exist is not an error.
	Delete(key []byte) error

	ReadWriteCursor() ReadWriteCursor
}

// ReadCursor iterates a bucket's key/value pairs without mutating them.
type ReadCursor interface {
	First() (key, value []byte)
	Last() (key, value []byte)
	Next() (key, value []byte)
	Prev() (key, value []byte)
	Seek(seek []byte) (key, value []byte)
}

// ReadWriteCursor additionally allows deleting the pair the cursor is on
// without invalidating the cursor's position.
type ReadWriteCursor interface {
	ReadCursor
	Delete() error
}

// ReadTx is a read-only view over a DB's root bucket, fixed to the state of
// the DB when the transaction began.
type ReadTx interface {
	ReadBucket(key []byte) ReadBucket
	Rollback() error
}

// ReadWriteTx is a read-write transaction. No change is durable until
// Commit returns nil. Its method set is a superset of ReadTx's, so a
// ReadWriteTx can be passed anywhere a ReadTx is expected.
type ReadWriteTx interface {
	ReadBucket(key []byte) ReadBucket
	ReadWriteBucket(key []byte) ReadWriteBucket
	CreateTopLevelBucket(key []byte) (ReadWriteBucket, error)
	DeleteTopLevelBucket(key []byte) error
	Commit() error
	Rollback() error
}

// DB is a persisted collection of top-level buckets, each addressed by a
// fixed key (the block index, commitment index, and spend index each get
// their own). All access happens through a transaction.
type DB interface {
	BeginReadTx() (ReadTx, error)
	BeginReadWriteTx() (ReadWriteTx, error)

	// View runs fn in a managed read-only transaction. Any error fn
	// returns is returned from View; the transaction is always rolled
	// back afterward.
	View(fn func(ReadTx) error) error

	// Update runs fn in a managed read-write transaction, committing on a
	// nil return and rolling back otherwise.
	Update(fn func(ReadWriteTx) error) error

	// Copy writes a consistent snapshot of the database to w.
	Copy(w io.Writer) error

	Close() error
}
