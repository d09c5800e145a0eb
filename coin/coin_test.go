// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

func TestMintRecoverRoundTrip(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	spendKey, blindingCommitment, err := GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)

	destPub := spendKey.ZeroPrivKey.PubKey()

	pc, _, _, _, err := Mint(zp.SerialGroup, Denom1, destPub, blindingCommitment,
		bignum.FromInt64(99), zp.Acc)
	require.NoError(t, err)
	require.NoError(t, pc.IsValid(zp.Acc))

	require.True(t, QuickCheckIsMine(zp.SerialGroup, spendKey.ZeroPrivKey, pc))

	priv, err := Recover(zp.SerialGroup, spendKey, blindingCommitment, pc)
	require.NoError(t, err)
	require.True(t, priv.Valid)

	recomputed := commitmentValue(zp.SerialGroup, priv.SerialNumber, blindingCommitment, priv.Randomness)
	require.True(t, recomputed.Equal(pc.Value),
		"recomputed commitment does not match public coin value:\nrecovered = %s\npublic coin = %s",
		spew.Sdump(priv), spew.Sdump(pc))
}

func TestRecoverRejectsWrongKey(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	spendKey, blindingCommitment, err := GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)
	otherKey, otherBC, err := GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)

	pc, _, _, _, err := Mint(zp.SerialGroup, Denom1, spendKey.ZeroPrivKey.PubKey(),
		blindingCommitment, bignum.FromInt64(1), zp.Acc)
	require.NoError(t, err)

	_, err = Recover(zp.SerialGroup, otherKey, otherBC, pc)
	require.Error(t, err)
}

func TestMintAcceptsEveryDenominationInTheSameRange(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	spendKey, blindingCommitment, err := GenerateSpendKey(zp.SerialGroup)
	require.NoError(t, err)

	for d := Denom1; d <= Denom1000; d++ {
		pc, _, _, _, err := Mint(zp.SerialGroup, d, spendKey.ZeroPrivKey.PubKey(),
			blindingCommitment, bignum.FromInt64(1), zp.Acc)
		require.NoError(t, err)
		require.Equal(t, d, pc.Denomination)
		// Every denomination shares the same admissible commitment range;
		// denomination is metadata only, never a mint-acceptance gate.
		require.True(t, pc.Value.Cmp(zp.Acc.MinCoinValue) > 0)
		require.True(t, pc.Value.Cmp(zp.Acc.MaxCoinValue) <= 0)
		require.NoError(t, pc.IsValid(zp.Acc))
	}
}
