// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletshim

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
	"github.com/shieldcoin/zerocore/spend"
)

func newTestEngine(t *testing.T) (*chainstate.Engine, *params.ZeroParams) {
	t.Helper()
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	db, err := bboltkv.Create(filepath.Join(t.TempDir(), "chain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := chainstate.DefaultConfig()
	cfg.MinMintSecurity = 0
	e, err := chainstate.NewEngine(db, zp, cfg)
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

func TestSignSpendRejectsImmatureMint(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b1")), 1,
		[]*coin.PublicCoin{priv.Public}, nil))

	w := accumulator.NewWitness(accumulator.New(zp.Acc), priv.Public.Value)

	sp := NewSpendPlanner(&Config{ChallengeBits: 64, MintMaturity: 10})
	_, err := sp.SignSpend(zp, e, priv, w, 1, chainhash.HashH([]byte("tx")), spend.SpendRegular)
	require.Error(t, err)
	require.Equal(t, ErrMintTooYoung, err.(Error).ErrorCode)
}

func TestSignSpendRoundTrip(t *testing.T) {
	e, zp := newTestEngine(t)
	priv := mintOwnCoin(t, zp)

	require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte("b1")), 1,
		[]*coin.PublicCoin{priv.Public}, nil))

	// Advance the tip past the wallet shim's confirmation depth without
	// minting anything else, so only MintMaturity gates this spend.
	for h := uint32(2); h <= 11; h++ {
		require.NoError(t, e.ConnectBlock(chainhash.HashH([]byte{byte(h)}), h, nil, nil))
	}

	w := accumulator.NewWitness(accumulator.New(zp.Acc), priv.Public.Value)

	sp := NewSpendPlanner(&Config{ChallengeBits: 64, MintMaturity: 10})
	cs, err := sp.SignSpend(zp, e, priv, w, 1, chainhash.HashH([]byte("tx")), spend.SpendRegular)
	require.NoError(t, err)
	require.NotNil(t, cs)

	_, found, err := e.SpendHeight(cs.CoinSerialNumber)
	require.NoError(t, err)
	require.False(t, found)
}
