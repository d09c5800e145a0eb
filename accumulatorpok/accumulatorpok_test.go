// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accumulatorpok

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/commitment"
	"github.com/shieldcoin/zerocore/params"
)

// buildMembership accumulates a handful of small primes, including v, and
// derives the membership witness for v the way accumulator.Witness does.
func buildMembership(t *testing.T, ap *params.AccParams, v *bignum.BigNum) (*accumulator.Accumulator, *bignum.BigNum) {
	t.Helper()

	before := accumulator.New(ap)
	w := accumulator.NewWitness(before, v)

	tip := accumulator.New(ap)
	require.NoError(t, tip.Insert(v))

	cand := ap.MinCoinValue.Add(bignum.FromInt64(1))
	added := 0
	for added < 5 {
		if cand.Equal(v) {
			cand = cand.Add(bignum.FromInt64(1))
			continue
		}
		if cand.IsPrime(20) {
			require.NoError(t, tip.Insert(cand))
			w.AddElement(cand)
			added++
		}
		cand = cand.Add(bignum.FromInt64(1))
	}

	require.True(t, w.Verify(tip))
	return tip, w.Value()
}

func TestProveVerifyRoundTrip(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	ap := zp.Acc

	v := ap.MinCoinValue.Add(bignum.FromInt64(3))
	for !v.IsPrime(20) {
		v = v.Add(bignum.FromInt64(1))
	}

	tip, witnessValue := buildMembership(t, ap, v)

	rv, err := bignum.RandomInRange(ap.AccPoKGroup.SubgroupOrder)
	require.NoError(t, err)
	cv := commitment.CommitWithRandomness(ap.AccPoKGroup, v, rv)

	proof, err := Prove(ap, tip, cv, v, rv, witnessValue, 64)
	require.NoError(t, err)
	require.True(t, Verify(ap, tip, cv, proof))
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	ap := zp.Acc

	v := ap.MinCoinValue.Add(bignum.FromInt64(3))
	for !v.IsPrime(20) {
		v = v.Add(bignum.FromInt64(1))
	}

	tip, witnessValue := buildMembership(t, ap, v)

	rv, err := bignum.RandomInRange(ap.AccPoKGroup.SubgroupOrder)
	require.NoError(t, err)
	cv := commitment.CommitWithRandomness(ap.AccPoKGroup, v, rv)

	proof, err := Prove(ap, tip, cv, v, rv, witnessValue, 64)
	require.NoError(t, err)

	// A commitment to a different value must not verify against the same
	// proof, even though the proof itself is internally consistent.
	otherRv, err := bignum.RandomInRange(ap.AccPoKGroup.SubgroupOrder)
	require.NoError(t, err)
	wrongCv := commitment.CommitWithRandomness(ap.AccPoKGroup, v.Add(bignum.FromInt64(2)), otherRv)

	require.False(t, Verify(ap, tip, wrongCv, proof))
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	ap := zp.Acc

	v := ap.MinCoinValue.Add(bignum.FromInt64(3))
	for !v.IsPrime(20) {
		v = v.Add(bignum.FromInt64(1))
	}

	tip, witnessValue := buildMembership(t, ap, v)

	rv, err := bignum.RandomInRange(ap.AccPoKGroup.SubgroupOrder)
	require.NoError(t, err)
	cv := commitment.CommitWithRandomness(ap.AccPoKGroup, v, rv)

	proof, err := Prove(ap, tip, cv, v, rv, witnessValue, 64)
	require.NoError(t, err)

	proof.Sv = proof.Sv.Add(bignum.FromInt64(1))
	require.False(t, Verify(ap, tip, cv, proof))
}

func TestVerifyRejectsWrongWitness(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)
	ap := zp.Acc

	v := ap.MinCoinValue.Add(bignum.FromInt64(3))
	for !v.IsPrime(20) {
		v = v.Add(bignum.FromInt64(1))
	}
	tip, _ := buildMembership(t, ap, v)

	rv, err := bignum.RandomInRange(ap.AccPoKGroup.SubgroupOrder)
	require.NoError(t, err)
	cv := commitment.CommitWithRandomness(ap.AccPoKGroup, v, rv)

	// A bogus witness (the accumulator's own A0) does not satisfy
	// witness^v ≡ A (mod N), so the resulting proof must not verify.
	proof, err := Prove(ap, tip, cv, v, rv, ap.A0, 64)
	require.NoError(t, err)
	require.False(t, Verify(ap, tip, cv, proof))
}
