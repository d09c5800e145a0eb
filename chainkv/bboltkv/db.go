// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bboltkv implements chainkv.DB on top of go.etcd.io/bbolt, the
// maintained fork of the boltdb engine walletdb/bdb uses. It exists so
// chainstate's tests (and any embedder that doesn't want to run a full
// node's block storage) can exercise the real chain index code against an
// on-disk, ACID-transactional backend instead of an in-memory fake.
package bboltkv

import (
	"io"
	"os"

	"go.etcd.io/bbolt"

	"github.com/shieldcoin/zerocore/chainkv"
)

func convertErr(err error) error {
	switch err {
	case bbolt.ErrBucketNotFound:
		return chainkv.ErrBucketNotFound
	case bbolt.ErrBucketExists:
		return chainkv.ErrBucketExists
	case bbolt.ErrBucketNameRequired:
		return chainkv.ErrBucketNameRequired
	case bbolt.ErrIncompatibleValue:
		return chainkv.ErrIncompatibleValue
	case bbolt.ErrTxNotWritable:
		return chainkv.ErrTxNotWritable
	}
	return err
}

// transaction implements chainkv.ReadTx and chainkv.ReadWriteTx.
type transaction struct {
	boltTx *bbolt.Tx
}

func (tx *transaction) ReadBucket(key []byte) chainkv.ReadBucket {
	return tx.ReadWriteBucket(key)
}

func (tx *transaction) ReadWriteBucket(key []byte) chainkv.ReadWriteBucket {
	b := tx.boltTx.Bucket(key)
	if b == nil {
		return nil
	}
	return (*bucket)(b)
}

func (tx *transaction) CreateTopLevelBucket(key []byte) (chainkv.ReadWriteBucket, error) {
	b, err := tx.boltTx.CreateBucketIfNotExists(key)
	if err != nil {
		return nil, convertErr(err)
	}
	return (*bucket)(b), nil
}

func (tx *transaction) DeleteTopLevelBucket(key []byte) error {
	return convertErr(tx.boltTx.DeleteBucket(key))
}

func (tx *transaction) Commit() error {
	return convertErr(tx.boltTx.Commit())
}

func (tx *transaction) Rollback() error {
	return convertErr(tx.boltTx.Rollback())
}

// bucket implements chainkv.ReadWriteBucket over a bbolt.Bucket.
type bucket bbolt.Bucket

var _ chainkv.ReadWriteBucket = (*bucket)(nil)

func (b *bucket) NestedReadBucket(key []byte) chainkv.ReadBucket {
	return b.NestedReadWriteBucket(key)
}

func (b *bucket) NestedReadWriteBucket(key []byte) chainkv.ReadWriteBucket {
	nested := (*bbolt.Bucket)(b).Bucket(key)
	if nested == nil {
		return nil
	}
	return (*bucket)(nested)
}

func (b *bucket) CreateBucket(key []byte) (chainkv.ReadWriteBucket, error) {
	nested, err := (*bbolt.Bucket)(b).CreateBucket(key)
	if err != nil {
		return nil, convertErr(err)
	}
	return (*bucket)(nested), nil
}

func (b *bucket) CreateBucketIfNotExists(key []byte) (chainkv.ReadWriteBucket, error) {
	nested, err := (*bbolt.Bucket)(b).CreateBucketIfNotExists(key)
	if err != nil {
		return nil, convertErr(err)
	}
	return (*bucket)(nested), nil
}

func (b *bucket) DeleteNestedBucket(key []byte) error {
	return convertErr((*bbolt.Bucket)(b).DeleteBucket(key))
}

func (b *bucket) ForEach(fn func(k, v []byte) error) error {
	return convertErr((*bbolt.Bucket)(b).ForEach(fn))
}

func (b *bucket) Put(key, value []byte) error {
	return convertErr((*bbolt.Bucket)(b).Put(key, value))
}

func (b *bucket) Get(key []byte) []byte {
	return (*bbolt.Bucket)(b).Get(key)
}

func (b *bucket) Delete(key []byte) error {
	return convertErr((*bbolt.Bucket)(b).Delete(key))
}

func (b *bucket) ReadCursor() chainkv.ReadCursor {
	return b.ReadWriteCursor()
}

func (b *bucket) ReadWriteCursor() chainkv.ReadWriteCursor {
	return (*cursor)((*bbolt.Bucket)(b).Cursor())
}

// cursor implements chainkv.ReadWriteCursor over a bbolt.Cursor.
type cursor bbolt.Cursor

func (c *cursor) Delete() error {
	return convertErr((*bbolt.Cursor)(c).Delete())
}

func (c *cursor) First() (key, value []byte) { return (*bbolt.Cursor)(c).First() }
func (c *cursor) Last() (key, value []byte)  { return (*bbolt.Cursor)(c).Last() }
func (c *cursor) Next() (key, value []byte)  { return (*bbolt.Cursor)(c).Next() }
func (c *cursor) Prev() (key, value []byte)  { return (*bbolt.Cursor)(c).Prev() }
func (c *cursor) Seek(seek []byte) (key, value []byte) {
	return (*bbolt.Cursor)(c).Seek(seek)
}

// DB implements chainkv.DB backed by a single bbolt file.
type DB struct {
	bolt *bbolt.DB
}

var _ chainkv.DB = (*DB)(nil)

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// Create initializes a new database file at dbPath. Returns
// chainkv.ErrDbExists if one is already there.
func Create(dbPath string) (*DB, error) {
	if fileExists(dbPath) {
		return nil, chainkv.ErrDbExists
	}
	boltDB, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, convertErr(err)
	}
	return &DB{bolt: boltDB}, nil
}

// Open opens the database file at dbPath. Returns chainkv.ErrDbDoesNotExist
// if it has not been created yet.
func Open(dbPath string) (*DB, error) {
	if !fileExists(dbPath) {
		return nil, chainkv.ErrDbDoesNotExist
	}
	boltDB, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, convertErr(err)
	}
	return &DB{bolt: boltDB}, nil
}

func (db *DB) beginTx(writable bool) (*transaction, error) {
	boltTx, err := db.bolt.Begin(writable)
	if err != nil {
		return nil, convertErr(err)
	}
	return &transaction{boltTx: boltTx}, nil
}

func (db *DB) BeginReadTx() (chainkv.ReadTx, error) {
	return db.beginTx(false)
}

func (db *DB) BeginReadWriteTx() (chainkv.ReadWriteTx, error) {
	return db.beginTx(true)
}

func (db *DB) View(fn func(chainkv.ReadTx) error) error {
	tx, err := db.beginTx(false)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return fn(tx)
}

func (db *DB) Update(fn func(chainkv.ReadWriteTx) error) error {
	tx, err := db.beginTx(true)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (db *DB) Copy(w io.Writer) error {
	return convertErr(db.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Copy(w)
	}))
}

func (db *DB) Close() error {
	return convertErr(db.bolt.Close())
}
