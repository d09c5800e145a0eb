// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bboltkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/chainkv"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "chain.db")
}

func TestCreateOpenFail(t *testing.T) {
	path := tempDBPath(t)

	_, err := Open(path)
	require.Equal(t, chainkv.ErrDbDoesNotExist, err)

	db, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Create(path)
	require.Equal(t, chainkv.ErrDbExists, err)
}

func TestUpdateViewRoundTrip(t *testing.T) {
	db, err := Create(tempDBPath(t))
	require.NoError(t, err)
	defer db.Close()

	bucketKey := []byte("blocks")

	err = db.Update(func(tx chainkv.ReadWriteTx) error {
		b, err := tx.CreateTopLevelBucket(bucketKey)
		if err != nil {
			return err
		}
		return b.Put([]byte("tip"), []byte("genesis"))
	})
	require.NoError(t, err)

	err = db.View(func(tx chainkv.ReadTx) error {
		b := tx.ReadBucket(bucketKey)
		require.NotNil(t, b)
		require.Equal(t, []byte("genesis"), b.Get([]byte("tip")))
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	db, err := Create(tempDBPath(t))
	require.NoError(t, err)
	defer db.Close()

	bucketKey := []byte("blocks")
	require.NoError(t, db.Update(func(tx chainkv.ReadWriteTx) error {
		_, err := tx.CreateTopLevelBucket(bucketKey)
		return err
	}))

	failErr := require.New(t)
	err = db.Update(func(tx chainkv.ReadWriteTx) error {
		b := tx.ReadWriteBucket(bucketKey)
		if err := b.Put([]byte("tip"), []byte("bad")); err != nil {
			return err
		}
		return chainkv.ErrIncompatibleValue
	})
	failErr.Equal(chainkv.ErrIncompatibleValue, err)

	require.NoError(t, db.View(func(tx chainkv.ReadTx) error {
		b := tx.ReadBucket(bucketKey)
		require.Nil(t, b.Get([]byte("tip")))
		return nil
	}))
}

func TestNestedBuckets(t *testing.T) {
	db, err := Create(tempDBPath(t))
	require.NoError(t, err)
	defer db.Close()

	err = db.Update(func(tx chainkv.ReadWriteTx) error {
		top, err := tx.CreateTopLevelBucket([]byte("commitments"))
		if err != nil {
			return err
		}
		nested, err := top.CreateBucket([]byte("denom1"))
		if err != nil {
			return err
		}
		return nested.Put([]byte("value"), []byte("seen"))
	})
	require.NoError(t, err)

	require.NoError(t, db.View(func(tx chainkv.ReadTx) error {
		top := tx.ReadBucket([]byte("commitments"))
		nested := top.NestedReadBucket([]byte("denom1"))
		require.NotNil(t, nested)
		require.Equal(t, []byte("seen"), nested.Get([]byte("value")))
		return nil
	}))
}
