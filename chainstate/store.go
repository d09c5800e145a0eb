// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/chainkv"
)

// Top-level bucket keys. Mirrors wtxmgr's namespacing-by-bucket-key
// convention rather than nesting everything under one root bucket.
var (
	bucketBlocksByHeight = []byte("blocksbyheight")
	bucketHeightByHash   = []byte("heightbyhash")
	bucketHeightByChecksum = []byte("heightbychecksum")
	bucketCommitments   = []byte("commitments")
	bucketSpends         = []byte("spends")
)

func heightKey(height uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], height)
	return b[:]
}

func decodeHeight(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// blockIndexEntry is the per-height record of the chain's accumulator
// state, following spec.md §4.8(b)'s "stamp the resulting value onto the
// block index entry as (nAccumulatorValue, blockHash)".
type blockIndexEntry struct {
	Hash             chainhash.Hash
	AccumulatorValue *bignum.BigNum
	Checksum         chainhash.Hash
}

func (e *blockIndexEntry) encode() []byte {
	var buf bytes.Buffer
	buf.Write(e.Hash[:])
	buf.Write(e.Checksum[:])
	// Serialize never fails against a bytes.Buffer.
	_ = e.AccumulatorValue.Serialize(&buf)
	return buf.Bytes()
}

func decodeBlockIndexEntry(b []byte) (*blockIndexEntry, error) {
	if len(b) < 64 {
		return nil, newError(ErrStorageError, "truncated block index entry", nil)
	}
	e := &blockIndexEntry{}
	copy(e.Hash[:], b[:32])
	copy(e.Checksum[:], b[32:64])
	v, _, err := bignum.DeserializeBytes(b[64:])
	if err != nil {
		return nil, newError(ErrStorageError, "decoding accumulator value", err)
	}
	e.AccumulatorValue = v
	return e, nil
}

// checksumOf hashes an accumulator value into the 32-byte checksum a
// CoinSpend's AccumulatorChecksum field references, matching spec.md §6's
// "accumulatorChecksum/blockHash (32B)" wire field.
func checksumOf(v *bignum.BigNum) chainhash.Hash {
	return chainhash.HashH(v.SerializeBytes())
}

func putBlockIndexEntry(tx chainkv.ReadWriteTx, height uint32, e *blockIndexEntry) error {
	blocks, err := tx.CreateTopLevelBucket(bucketBlocksByHeight)
	if err != nil {
		return err
	}
	if err := blocks.Put(heightKey(height), e.encode()); err != nil {
		return err
	}
	byHash, err := tx.CreateTopLevelBucket(bucketHeightByHash)
	if err != nil {
		return err
	}
	if err := byHash.Put(e.Hash[:], heightKey(height)); err != nil {
		return err
	}
	byChecksum, err := tx.CreateTopLevelBucket(bucketHeightByChecksum)
	if err != nil {
		return err
	}
	return byChecksum.Put(e.Checksum[:], heightKey(height))
}

func getBlockIndexEntry(tx chainkv.ReadTx, height uint32) (*blockIndexEntry, error) {
	blocks := tx.ReadBucket(bucketBlocksByHeight)
	if blocks == nil {
		return nil, nil
	}
	raw := blocks.Get(heightKey(height))
	if raw == nil {
		return nil, nil
	}
	return decodeBlockIndexEntry(raw)
}

func getHeightByChecksum(tx chainkv.ReadTx, checksum chainhash.Hash) (uint32, bool) {
	byChecksum := tx.ReadBucket(bucketHeightByChecksum)
	if byChecksum == nil {
		return 0, false
	}
	raw := byChecksum.Get(checksum[:])
	if raw == nil {
		return 0, false
	}
	return decodeHeight(raw), true
}

func getHeightByHash(tx chainkv.ReadTx, hash chainhash.Hash) (uint32, bool) {
	byHash := tx.ReadBucket(bucketHeightByHash)
	if byHash == nil {
		return 0, false
	}
	raw := byHash.Get(hash[:])
	if raw == nil {
		return 0, false
	}
	return decodeHeight(raw), true
}

// putCommitment records that coin value v was minted at height, returning
// ErrDuplicateMint if it was already recorded (at any height).
func putCommitment(tx chainkv.ReadWriteTx, v *bignum.BigNum, height uint32) error {
	b, err := tx.CreateTopLevelBucket(bucketCommitments)
	if err != nil {
		return err
	}
	key := v.SerializeBytes()
	if b.Get(key) != nil {
		return newError(ErrDuplicateMint, "commitment value already minted", nil)
	}
	return b.Put(key, heightKey(height))
}

func getCommitmentHeight(tx chainkv.ReadTx, v *bignum.BigNum) (uint32, bool) {
	b := tx.ReadBucket(bucketCommitments)
	if b == nil {
		return 0, false
	}
	raw := b.Get(v.SerializeBytes())
	if raw == nil {
		return 0, false
	}
	return decodeHeight(raw), true
}

// putSpend records that serial number s was spent at height, returning
// ErrDoubleSpend if it was already recorded.
func putSpend(tx chainkv.ReadWriteTx, s *bignum.BigNum, height uint32) error {
	b, err := tx.CreateTopLevelBucket(bucketSpends)
	if err != nil {
		return err
	}
	key := s.SerializeBytes()
	if b.Get(key) != nil {
		return newError(ErrDoubleSpend, "serial number already spent", nil)
	}
	return b.Put(key, heightKey(height))
}

func getSpendHeight(tx chainkv.ReadTx, s *bignum.BigNum) (uint32, bool) {
	b := tx.ReadBucket(bucketSpends)
	if b == nil {
		return 0, false
	}
	raw := b.Get(s.SerializeBytes())
	if raw == nil {
		return 0, false
	}
	return decodeHeight(raw), true
}

// getTipHeight returns the highest height recorded in the block index.
func getTipHeight(tx chainkv.ReadTx) (uint32, bool) {
	blocks := tx.ReadBucket(bucketBlocksByHeight)
	if blocks == nil {
		return 0, false
	}
	k, _ := blocks.ReadCursor().Last()
	if k == nil {
		return 0, false
	}
	return decodeHeight(k), true
}

// deleteBlockIndexEntry removes the block index entry at height from all
// three of its buckets.
func deleteBlockIndexEntry(tx chainkv.ReadWriteTx, height uint32) error {
	blocks := tx.ReadWriteBucket(bucketBlocksByHeight)
	if blocks == nil {
		return nil
	}
	raw := blocks.Get(heightKey(height))
	if raw == nil {
		return nil
	}
	e, err := decodeBlockIndexEntry(raw)
	if err != nil {
		return err
	}
	if err := blocks.Delete(heightKey(height)); err != nil {
		return err
	}
	if byHash := tx.ReadWriteBucket(bucketHeightByHash); byHash != nil {
		if err := byHash.Delete(e.Hash[:]); err != nil {
			return err
		}
	}
	if byChecksum := tx.ReadWriteBucket(bucketHeightByChecksum); byChecksum != nil {
		if err := byChecksum.Delete(e.Checksum[:]); err != nil {
			return err
		}
	}
	return nil
}

// forEachCommitmentAboveHeight calls fn for every commitment whose minted
// height is strictly greater than height, used by Rewind.
func forEachCommitmentAboveHeight(tx chainkv.ReadWriteTx, height uint32, fn func(value []byte, mintedAt uint32) error) error {
	b := tx.ReadWriteBucket(bucketCommitments)
	if b == nil {
		return nil
	}
	var toVisit [][]byte
	if err := b.ForEach(func(k, v []byte) error {
		if decodeHeight(v) > height {
			toVisit = append(toVisit, append([]byte(nil), k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range toVisit {
		mintedAt := decodeHeight(b.Get(k))
		if err := fn(k, mintedAt); err != nil {
			return err
		}
	}
	return nil
}

// forEachSpendAboveHeight calls fn for every spend whose height is
// strictly greater than height, used by Rewind.
func forEachSpendAboveHeight(tx chainkv.ReadWriteTx, height uint32, fn func(serial []byte, spentAt uint32) error) error {
	b := tx.ReadWriteBucket(bucketSpends)
	if b == nil {
		return nil
	}
	var toVisit [][]byte
	if err := b.ForEach(func(k, v []byte) error {
		if decodeHeight(v) > height {
			toVisit = append(toVisit, append([]byte(nil), k...))
		}
		return nil
	}); err != nil {
		return err
	}
	for _, k := range toVisit {
		spentAt := decodeHeight(b.Get(k))
		if err := fn(k, spentAt); err != nil {
			return err
		}
	}
	return nil
}
