// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/chainkv/bboltkv"
	"github.com/shieldcoin/zerocore/coin"
	"github.com/shieldcoin/zerocore/params"
	"github.com/shieldcoin/zerocore/spend"
)

const testChallengeBits = 64

func newTestEngine(t *testing.T) (*Engine, *params.ZeroParams) {
	t.Helper()
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	db, err := bboltkv.Create(filepath.Join(t.TempDir(), "chain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e, err := NewEngine(db, zp, nil)
	require.NoError(t, err)
	return e, zp
}

func mintOwnCoin(t *testing.T, zp *params.ZeroParams) *coin.PrivateCoin {
	t.Helper()
	spendKey, blindingCommitment, err := coin.GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)
	pc, _, _, _, err := coin.Mint(zp.SerialGroup, coin.Denom1, spendKey.ZeroPrivKey.PubKey(),
		blindingCommitment, bignum.FromInt64(3), zp.Acc)
	require.NoError(t, err)
	priv, err := coin.Recover(zp.SerialGroup, spendKey, blindingCommitment, pc)
	require.NoError(t, err)
	return priv
}

func TestConnectBlockAdvancesAccumulator(t *testing.T) {
	e, zp := newTestEngine(t)

	priv := mintOwnCoin(t, zp)
	blockHash := chainhash.HashH([]byte("block 1"))

	err := e.ConnectBlock(blockHash, 1, []*coin.PublicCoin{priv.Public}, nil)
	require.NoError(t, err)

	tip, height, ok, err := e.Tip()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1), height)
	require.False(t, tip.Value.Equal(zp.Acc.A0))
}

func TestConnectBlockRejectsDuplicateMint(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b1")), 1,
		[]*coin.PublicCoin{priv.Public}, nil))

	err := e.ConnectBlock(chainhash.HashH([]byte("b2")), 2,
		[]*coin.PublicCoin{priv.Public}, nil)
	require.Error(t, err)
	require.Equal(t, ErrDuplicateMint, err.(Error).ErrorCode)
}

func TestConnectBlockRejectsMintBelowConfiguredFloor(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	db, err := bboltkv.Create(filepath.Join(t.TempDir(), "chain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := DefaultConfig()
	cfg.MinAcceptedMintValue = bignum.NewBigFlag(zp.Acc.MaxCoinValue)

	e, err := NewEngine(db, zp, cfg)
	require.NoError(t, err)

	priv := mintOwnCoin(t, zp)
	err = e.ConnectBlock(chainhash.HashH([]byte("b1")), 1, []*coin.PublicCoin{priv.Public}, nil)
	require.Error(t, err)
	require.Equal(t, ErrMintTooSmall, err.(Error).ErrorCode)
}

func TestConnectBlockSignAndSpendRoundTrip(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	blockHash := chainhash.HashH([]byte("b1"))
	require.NoError(t, e.ConnectBlock(blockHash, 1, []*coin.PublicCoin{priv.Public}, nil))

	tip, _, ok, err := e.Tip()
	require.NoError(t, err)
	require.True(t, ok)

	before := accumulator.New(zp.Acc)
	w := accumulator.NewWitness(before, priv.Public.Value)
	require.True(t, w.Verify(tip))

	ptxHash := chainhash.HashH([]byte("tx"))
	accChecksum := checksumOf(tip.Value)

	cs, err := spend.Sign(zp, priv, tip, accChecksum, w, ptxHash, spend.SpendRegular, testChallengeBits)
	require.NoError(t, err)

	err = e.ConnectBlock(chainhash.HashH([]byte("b2")), 2, nil, []*spend.CoinSpend{cs})
	require.NoError(t, err)

	height, found, err := e.SpendHeight(cs.CoinSerialNumber)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint32(2), height)
}

func TestConnectBlockRejectsDoubleSpend(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	blockHash := chainhash.HashH([]byte("b1"))
	require.NoError(t, e.ConnectBlock(blockHash, 1, []*coin.PublicCoin{priv.Public}, nil))

	tip, _, _, err := e.Tip()
	require.NoError(t, err)

	before := accumulator.New(zp.Acc)
	w := accumulator.NewWitness(before, priv.Public.Value)

	cs, err := spend.Sign(zp, priv, tip, checksumOf(tip.Value), w, chainhash.HashH([]byte("tx")), spend.SpendRegular, testChallengeBits)
	require.NoError(t, err)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b2")), 2, nil, []*spend.CoinSpend{cs}))

	err = e.ConnectBlock(chainhash.HashH([]byte("b3")), 3, nil, []*spend.CoinSpend{cs})
	require.Error(t, err)
	require.Equal(t, ErrDoubleSpend, err.(Error).ErrorCode)
}

func TestRewindReturnsMintsToUnknown(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b1")), 1, []*coin.PublicCoin{priv.Public}, nil))

	_, found, err := e.CommitmentHeight(priv.Public.Value)
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, e.Rewind(0))

	_, found, err = e.CommitmentHeight(priv.Public.Value)
	require.NoError(t, err)
	require.False(t, found)

	_, _, ok, err := e.Tip()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b1-again")), 1, []*coin.PublicCoin{priv.Public}, nil))
	_, found, err = e.CommitmentHeight(priv.Public.Value)
	require.NoError(t, err)
	require.True(t, found)
}

func TestMintsSinceHeightAndSecurityGuard(t *testing.T) {
	e, zp := newTestEngine(t)

	for i := uint32(1); i <= 3; i++ {
		priv := mintOwnCoin(t, zp)
		require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte{byte(i)}), i,
			[]*coin.PublicCoin{priv.Public}, nil))
	}

	n, err := e.MintsSinceHeight(1)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	e.cfg.MinMintSecurity = 5
	err = e.CheckMintSecurity(1)
	require.Error(t, err)
	require.Equal(t, ErrMintTooYoung, err.(Error).ErrorCode)

	e.cfg.MinMintSecurity = 1
	require.NoError(t, e.CheckMintSecurity(1))
}
