// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialsok

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/commitment"
	"github.com/shieldcoin/zerocore/params"
)

func TestSignatureOfKnowledgeRoundTrip(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	gp := zp.SerialGroup

	s, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	r, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	c := commitment.CommitWithRandomness(gp, s, r)
	pubKey := gp.Generator.PowMod(s, gp.Modulus)

	message := []byte("transaction-hash-placeholder")
	sig, err := Sign(gp, c, s, r, message, 80)
	require.NoError(t, err)

	require.True(t, sig.Verify(gp, pubKey, c, message))
}

func TestSignatureOfKnowledgeRejectsWrongMessage(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	gp := zp.SerialGroup

	s, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	r, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	c := commitment.CommitWithRandomness(gp, s, r)
	pubKey := gp.Generator.PowMod(s, gp.Modulus)

	sig, err := Sign(gp, c, s, r, []byte("tx-1"), 80)
	require.NoError(t, err)

	require.False(t, sig.Verify(gp, pubKey, c, []byte("tx-2")))
}

func TestSignatureOfKnowledgeRejectsWrongCommitment(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	gp := zp.SerialGroup

	s, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	r, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	c := commitment.CommitWithRandomness(gp, s, r)
	pubKey := gp.Generator.PowMod(s, gp.Modulus)

	message := []byte("transaction-hash-placeholder")
	sig, err := Sign(gp, c, s, r, message, 80)
	require.NoError(t, err)

	otherR, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	otherC := commitment.CommitWithRandomness(gp, s, otherR)

	require.False(t, sig.Verify(gp, pubKey, otherC, message))
}

func TestProofOfKnowledgeRoundTrip(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	gp := zp.SerialGroup

	s, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	pubKey := gp.Generator.PowMod(s, gp.Modulus)

	pok, err := Prove(gp, s)
	require.NoError(t, err)
	require.True(t, pok.Verify(gp, pubKey))
}

func TestProofOfKnowledgeRejectsWrongPubKey(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	gp := zp.SerialGroup

	s, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)

	pok, err := Prove(gp, s)
	require.NoError(t, err)

	otherS, err := bignum.RandomInRange(gp.SubgroupOrder)
	require.NoError(t, err)
	otherPubKey := gp.Generator.PowMod(otherS, gp.Modulus)

	require.False(t, pok.Verify(gp, otherPubKey))
}
