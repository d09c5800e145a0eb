// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

const (
	testBitWidth  = 8
	testMaxValues = 2
)

func testRangeParams(t *testing.T) *RangeParams {
	t.Helper()
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	rp, err := NewRangeParams(zp.SerialGroup, testBitWidth, testMaxValues)
	require.NoError(t, err)
	return rp
}

func randomGamma(t *testing.T, rp *RangeParams) *bignum.BigNum {
	t.Helper()
	g, err := bignum.RandomInRange(rp.Group.SubgroupOrder)
	require.NoError(t, err)
	return g
}

func TestProveVerifySingleValue(t *testing.T) {
	rp := testRangeParams(t)

	values := []*bignum.BigNum{bignum.FromInt64(42)}
	gammas := []*bignum.BigNum{randomGamma(t, rp)}

	proof, err := Prove(rp, values, gammas)
	require.NoError(t, err)
	require.True(t, Verify(rp, proof))
}

func TestProveVerifyAggregated(t *testing.T) {
	rp := testRangeParams(t)

	values := []*bignum.BigNum{bignum.FromInt64(0), bignum.FromInt64(255)}
	gammas := []*bignum.BigNum{randomGamma(t, rp), randomGamma(t, rp)}

	proof, err := Prove(rp, values, gammas)
	require.NoError(t, err)
	require.True(t, Verify(rp, proof))
}

func TestProveRejectsOutOfRangeValue(t *testing.T) {
	rp := testRangeParams(t)

	values := []*bignum.BigNum{bignum.FromInt64(1 << 20)}
	gammas := []*bignum.BigNum{randomGamma(t, rp)}

	_, err := Prove(rp, values, gammas)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	rp := testRangeParams(t)

	values := []*bignum.BigNum{bignum.FromInt64(7)}
	gammas := []*bignum.BigNum{randomGamma(t, rp)}

	proof, err := Prove(rp, values, gammas)
	require.NoError(t, err)

	proof.V[0] = proof.V[0].MulMod(rp.Group.Generator, rp.Group.Modulus)
	require.False(t, Verify(rp, proof))
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	rp := testRangeParams(t)

	values := []*bignum.BigNum{bignum.FromInt64(7)}
	gammas := []*bignum.BigNum{randomGamma(t, rp)}

	proof, err := Prove(rp, values, gammas)
	require.NoError(t, err)

	proof.FinalA = proof.FinalA.AddMod(bignum.FromInt64(1), rp.Group.SubgroupOrder)
	require.False(t, Verify(rp, proof))
}

func TestBatchVerifyMixedProofs(t *testing.T) {
	rp := testRangeParams(t)

	p1, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(3)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)
	p2, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(9)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)

	require.True(t, BatchVerify(rp, []*Proof{p1, p2}))

	p2.T = p2.T.AddMod(bignum.FromInt64(1), rp.Group.SubgroupOrder)
	require.False(t, BatchVerify(rp, []*Proof{p1, p2}))
}
