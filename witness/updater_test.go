// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package witness

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/chainkv/bboltkv"
	"github.com/shieldcoin/zerocore/chainstate"
	"github.com/shieldcoin/zerocore/coin"
	"github.com/shieldcoin/zerocore/params"
)

func newTestChain(t *testing.T) (*chainstate.Engine, *params.ZeroParams) {
	t.Helper()
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	db, err := bboltkv.Create(filepath.Join(t.TempDir(), "chain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e, err := chainstate.NewEngine(db, zp, nil)
	require.NoError(t, err)
	return e, zp
}

func mintAt(t *testing.T, e *chainstate.Engine, zp *params.ZeroParams, height uint32) *coin.PublicCoin {
	t.Helper()
	spendKey, blindingCommitment, err := coin.GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)
	pc, _, _, _, err := coin.Mint(zp.SerialGroup, coin.Denom1, spendKey.ZeroPrivKey.PubKey(),
		blindingCommitment, bignum.FromInt64(int64(height)+100), zp.Acc)
	require.NoError(t, err)

	blockHash := chainhash.HashH([]byte{byte(height)})
	require.NoError(t, e.ConnectBlock(blockHash, height, []*coin.PublicCoin{pc}, nil))
	return pc
}

// TestAdvanceReplaysOtherMints checks that a multi-batch Advance folds in
// every other mint between the witness's starting height and the tip, while
// skipping the coin's own mint, and ends up verifying against the live tip.
func TestAdvanceReplaysOtherMints(t *testing.T) {
	e, zp := newTestChain(t)

	own := mintAt(t, e, zp, 1)

	wd := NewWitnessData(own.Value, accumulator.NewWitness(accumulator.New(zp.Acc), own.Value), 1)

	for h := uint32(2); h <= 7; h++ {
		mintAt(t, e, zp, h)
	}

	u := NewUpdater(&Config{BlocksPerRound: 2, BlockSnapshot: 3})
	require.NoError(t, u.Advance(e, wd, 7))
	require.Equal(t, uint32(7), wd.Height)

	tip, tipHeight, ok, err := e.Tip()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(7), tipHeight)
	require.True(t, wd.Current.Verify(tip))
}

// TestAdvanceRecoversFromBadSnapshot forces Current out of sync with the
// snapshot history so the first batch fails to verify, and checks Advance
// recovers from Prev and still reaches the tip.
func TestAdvanceRecoversFromBadSnapshot(t *testing.T) {
	e, zp := newTestChain(t)

	own := mintAt(t, e, zp, 1)
	for h := uint32(2); h <= 4; h++ {
		mintAt(t, e, zp, h)
	}

	wd := NewWitnessData(own.Value, accumulator.NewWitness(accumulator.New(zp.Acc), own.Value), 1)
	wd.Snapshot()

	// Corrupt Current so the next batch's trial witness cannot verify,
	// but leave Prev (the just-taken snapshot) good.
	wd.Current.AddElement(bignum.FromInt64(999999937))

	u := NewUpdater(&Config{BlocksPerRound: 4, BlockSnapshot: 10})
	require.NoError(t, u.Advance(e, wd, 4))

	tip, _, ok, err := e.Tip()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, wd.Current.Verify(tip))
}
