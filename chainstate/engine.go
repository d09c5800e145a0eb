// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstate implements the chain engine: per-block acceptance of
// coin mints into the global accumulator, per-spend verification of
// CoinSpend proofs against the accumulator snapshot they were built
// against, and the double-spend/duplicate-mint bookkeeping needed to keep
// both checks sound across a reorg. Mirrors the block-acceptance half of
// zerochain.cpp.
package chainstate

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/chainkv"
	"github.com/shieldcoin/zerocore/coin"
	"github.com/shieldcoin/zerocore/params"
	"github.com/shieldcoin/zerocore/spend"
)

// Engine is the chain validator's view of Zerocoin state: the global
// accumulator, the block index that records its value at every height, the
// commitment and spend indexes, and a bounded cache of spend-proof
// verification results. One Engine per chain (cs_main in the original).
type Engine struct {
	db  chainkv.DB
	zp  *params.ZeroParams
	cfg *Config

	mu sync.Mutex // guards cache, matches spec.md §5's single-mutex cache

	cache map[chainhash.Hash]bool
}

// NewEngine opens (creating buckets as needed) the chain state stored in
// db and returns an Engine ready to accept blocks.
func NewEngine(db chainkv.DB, zp *params.ZeroParams, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		db:    db,
		zp:    zp,
		cfg:   cfg,
		cache: make(map[chainhash.Hash]bool),
	}

	err := db.Update(func(tx chainkv.ReadWriteTx) error {
		for _, key := range [][]byte{bucketBlocksByHeight, bucketHeightByHash,
			bucketHeightByChecksum, bucketCommitments, bucketSpends} {
			if _, err := tx.CreateTopLevelBucket(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, newError(ErrStorageError, "initializing chain state buckets", err)
	}

	return e, nil
}

// Tip returns the accumulator as of the highest block this engine has
// accepted, and that block's height, or (nil, 0, false) if no block has
// been accepted yet.
func (e *Engine) Tip() (*accumulator.Accumulator, uint32, bool, error) {
	var acc *accumulator.Accumulator
	var height uint32
	var ok bool
	err := e.db.View(func(tx chainkv.ReadTx) error {
		h, found := getTipHeight(tx)
		if !found {
			return nil
		}
		entry, err := getBlockIndexEntry(tx, h)
		if err != nil {
			return err
		}
		acc = accumulator.NewWithValue(e.zp.Acc, entry.AccumulatorValue)
		height, ok = h, true
		return nil
	})
	if err != nil {
		return nil, 0, false, newError(ErrStorageError, "reading tip", err)
	}
	return acc, height, ok, nil
}

// ConnectBlock accepts a block at height with hash blockHash, inserting
// each mint into the global accumulator (in transaction+output order, i.e.
// the order of the mints slice) and verifying each spend against the
// accumulator snapshot its own proof references. It mirrors spec.md
// §4.8(a)-(d). On any rejected mint or spend the whole block is rejected
// and no partial state is persisted.
func (e *Engine) ConnectBlock(blockHash chainhash.Hash, height uint32, mints []*coin.PublicCoin, spends []*spend.CoinSpend) error {
	return e.db.Update(func(tx chainkv.ReadWriteTx) error {
		tipEntry, haveTip, err := e.loadTipEntry(tx)
		if err != nil {
			return err
		}

		var tip *accumulator.Accumulator
		if haveTip {
			tip = accumulator.NewWithValue(e.zp.Acc, tipEntry.AccumulatorValue)
		} else {
			tip = accumulator.New(e.zp.Acc)
		}

		seenInBlock := make(map[string]bool, len(mints))
		for _, m := range mints {
			if err := m.IsValid(e.zp.Acc); err != nil {
				return newError(ErrInvalidMint, "mint failed validity check", err)
			}
			if e.cfg.MinAcceptedMintValue != nil && m.Value.Cmp(e.cfg.MinAcceptedMintValue.BigNum) < 0 {
				return newError(ErrMintTooSmall, "mint value below configured minimum", nil)
			}
			key := string(m.Value.SerializeBytes())
			if seenInBlock[key] {
				return newError(ErrDuplicateMint, "duplicate mint within block", nil)
			}
			seenInBlock[key] = true

			if err := putCommitment(tx, m.Value, height); err != nil {
				return err
			}
			if err := tip.Insert(m.Value); err != nil {
				return newError(ErrStorageError, "inserting mint into accumulator", err)
			}
		}

		entry := &blockIndexEntry{
			Hash:             blockHash,
			AccumulatorValue: tip.Value,
			Checksum:         checksumOf(tip.Value),
		}
		if err := putBlockIndexEntry(tx, height, entry); err != nil {
			return err
		}

		seenSerials := make(map[string]bool, len(spends))
		for _, cs := range spends {
			serialKey := string(cs.CoinSerialNumber.SerializeBytes())
			if seenSerials[serialKey] {
				return newError(ErrDoubleSpend, "duplicate serial number within block", nil)
			}
			seenSerials[serialKey] = true

			if err := e.verifySpendInTx(tx, cs); err != nil {
				return err
			}
			if err := putSpend(tx, cs.CoinSerialNumber, height); err != nil {
				return err
			}
		}

		log.Debugf("connected block height=%d hash=%v mints=%d spends=%d",
			height, blockHash, len(mints), len(spends))
		return nil
	})
}

// loadTipEntry returns the current tip's block index entry, or
// (nil, false, nil) if the chain is empty.
func (e *Engine) loadTipEntry(tx chainkv.ReadWriteTx) (*blockIndexEntry, bool, error) {
	blocks := tx.ReadWriteBucket(bucketBlocksByHeight)
	if blocks == nil {
		return nil, false, nil
	}
	k, _ := blocks.ReadCursor().Last()
	if k == nil {
		return nil, false, nil
	}
	raw := blocks.Get(k)
	entry, err := decodeBlockIndexEntry(raw)
	if err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// verifySpendInTx verifies cs against the accumulator snapshot its
// AccumulatorChecksum references, consulting and updating the
// verification cache. Mirrors spec.md §4.8(c)-(d).
func (e *Engine) verifySpendInTx(tx chainkv.ReadWriteTx, cs *spend.CoinSpend) error {
	proofHash := cs.Hash()

	e.mu.Lock()
	cached, known := e.cache[proofHash]
	e.mu.Unlock()
	if known {
		if !cached {
			return newError(ErrBadProof, "coin spend previously failed verification", nil)
		}
		return nil
	}

	refHeight, found := getHeightByChecksum(tx, cs.AccumulatorChecksum)
	if !found {
		return newError(ErrWrongAccumulatorState, "coin spend references unknown accumulator checksum", nil)
	}
	refEntry, err := getBlockIndexEntry(tx, refHeight)
	if err != nil {
		return err
	}
	refAcc := accumulator.NewWithValue(e.zp.Acc, refEntry.AccumulatorValue)

	verifyErr := cs.Verify(e.zp, refAcc)

	e.mu.Lock()
	if len(e.cache) >= e.cfg.CoinSpendCacheSize {
		e.cache = make(map[chainhash.Hash]bool)
	}
	e.cache[proofHash] = verifyErr == nil
	e.mu.Unlock()

	if verifyErr != nil {
		return newError(ErrBadProof, "coin spend proof failed verification", verifyErr)
	}
	return nil
}

// Rewind unwinds the chain state to height, returning every mint and spend
// above it to UNKNOWN/unspent, matching spec.md §4.8's reorg state
// machine and §5's "recomputed from a snapshot" note: since the
// accumulator is not decrementable, nothing below height is touched, and
// no accumulator value above height survives for a caller to resume from —
// the next ConnectBlock after a Rewind must start at height+1 and replay
// every live mint through the accumulator again.
func (e *Engine) Rewind(height uint32) error {
	return e.db.Update(func(tx chainkv.ReadWriteTx) error {
		tipHeight, ok := getTipHeight(tx)
		if !ok || tipHeight <= height {
			return nil
		}

		if err := forEachCommitmentAboveHeight(tx, height, func(value []byte, mintedAt uint32) error {
			b := tx.ReadWriteBucket(bucketCommitments)
			return b.Delete(value)
		}); err != nil {
			return err
		}
		if err := forEachSpendAboveHeight(tx, height, func(serial []byte, spentAt uint32) error {
			b := tx.ReadWriteBucket(bucketSpends)
			return b.Delete(serial)
		}); err != nil {
			return err
		}
		for h := tipHeight; h > height; h-- {
			if err := deleteBlockIndexEntry(tx, h); err != nil {
				return err
			}
		}

		e.mu.Lock()
		e.cache = make(map[chainhash.Hash]bool)
		e.mu.Unlock()

		log.Debugf("rewound chain state to height=%d", height)
		return nil
	})
}

// MintsSinceHeight counts how many distinct coins have been minted at a
// height strictly greater than mintHeight, i.e. how large a spend's
// anonymity set has grown since it was minted. Mirrors
// CountMintsFromHeight in zerochain.h, used to enforce MinMintSecurity.
func (e *Engine) MintsSinceHeight(mintHeight uint32) (int, error) {
	count := 0
	err := e.db.View(func(tx chainkv.ReadTx) error {
		b := tx.ReadBucket(bucketCommitments)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			if decodeHeight(v) > mintHeight {
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, newError(ErrStorageError, "counting mints since height", err)
	}
	return count, nil
}

// CheckMintSecurity returns ErrMintTooYoung if a coin minted at mintHeight
// has not yet accumulated MinMintSecurity other mints.
func (e *Engine) CheckMintSecurity(mintHeight uint32) error {
	n, err := e.MintsSinceHeight(mintHeight)
	if err != nil {
		return err
	}
	if n < e.cfg.MinMintSecurity {
		return newError(ErrMintTooYoung, "coin's anonymity set has not aged enough to spend", nil)
	}
	return nil
}

// CommitmentHeight returns the height a coin value was minted at, and
// whether it has been minted at all.
func (e *Engine) CommitmentHeight(v *bignum.BigNum) (uint32, bool, error) {
	var height uint32
	var found bool
	err := e.db.View(func(tx chainkv.ReadTx) error {
		height, found = getCommitmentHeight(tx, v)
		return nil
	})
	if err != nil {
		return 0, false, newError(ErrStorageError, "reading commitment height", err)
	}
	return height, found, nil
}

// ChecksumAt returns the AccumulatorChecksum a CoinSpend built against the
// accumulator snapshot at height must reference, and whether a block index
// entry exists at that height at all.
func (e *Engine) ChecksumAt(height uint32) (chainhash.Hash, bool, error) {
	var checksum chainhash.Hash
	var found bool
	err := e.db.View(func(tx chainkv.ReadTx) error {
		entry, err := getBlockIndexEntry(tx, height)
		if err != nil {
			return err
		}
		if entry != nil {
			checksum, found = entry.Checksum, true
		}
		return nil
	})
	if err != nil {
		return chainhash.Hash{}, false, newError(ErrStorageError, "reading checksum at height", err)
	}
	return checksum, found, nil
}

// AccumulatorAt returns the accumulator value recorded at height.
func (e *Engine) AccumulatorAt(height uint32) (*accumulator.Accumulator, error) {
	var acc *accumulator.Accumulator
	err := e.db.View(func(tx chainkv.ReadTx) error {
		entry, err := getBlockIndexEntry(tx, height)
		if err != nil {
			return err
		}
		if entry == nil {
			return newError(ErrWrongAccumulatorState, "no block index entry at height", nil)
		}
		acc = accumulator.NewWithValue(e.zp.Acc, entry.AccumulatorValue)
		return nil
	})
	if err != nil {
		if ce, ok := err.(Error); ok {
			return nil, ce
		}
		return nil, newError(ErrStorageError, "reading accumulator at height", err)
	}
	return acc, nil
}

// MintsInRange returns every coin value minted at a height in
// (fromHeight, toHeight], in no particular order. Used by the witness
// updater to replay blocks looking for other mints to fold into a
// witness.
func (e *Engine) MintsInRange(fromHeight, toHeight uint32) ([]*bignum.BigNum, error) {
	var values []*bignum.BigNum
	err := e.db.View(func(tx chainkv.ReadTx) error {
		b := tx.ReadBucket(bucketCommitments)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			h := decodeHeight(v)
			if h > fromHeight && h <= toHeight {
				val, _, err := bignum.DeserializeBytes(k)
				if err != nil {
					return err
				}
				values = append(values, val)
			}
			return nil
		})
	})
	if err != nil {
		return nil, newError(ErrStorageError, "scanning mints in range", err)
	}
	return values, nil
}

// SpendHeight returns the height a serial number was spent at, and whether
// it has been spent at all.
func (e *Engine) SpendHeight(s *bignum.BigNum) (uint32, bool, error) {
	var height uint32
	var found bool
	err := e.db.View(func(tx chainkv.ReadTx) error {
		height, found = getSpendHeight(tx, s)
		return nil
	})
	if err != nil {
		return 0, false, newError(ErrStorageError, "reading spend height", err)
	}
	return height, found, nil
}
