// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accumulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

// smallPrimesAbove finds n small primes above the parameter set's
// MinCoinValue, cheap stand-ins for real coin commitment values in these
// pure-accumulator tests.
func smallPrimesAbove(t *testing.T, ap *params.AccParams, n int) []*bignum.BigNum {
	t.Helper()
	var out []*bignum.BigNum
	cand := ap.MinCoinValue.Add(bignum.FromInt64(1))
	for len(out) < n {
		if cand.IsPrime(20) {
			out = append(out, cand)
		}
		cand = cand.Add(bignum.FromInt64(1))
	}
	require.True(t, out[len(out)-1].Cmp(ap.MaxCoinValue) <= 0, "ran out of admissible small primes")
	return out
}

func TestAccumulatorCommutativity(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	values := smallPrimesAbove(t, zp.Acc, 10)

	fwd := New(zp.Acc)
	for _, v := range values {
		require.NoError(t, fwd.Insert(v))
	}

	shuffled := append([]*bignum.BigNum{}, values...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	rev := New(zp.Acc)
	for _, v := range shuffled {
		require.NoError(t, rev.Insert(v))
	}

	require.True(t, fwd.Equal(rev))
}

func TestWitnessVerify(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	values := smallPrimesAbove(t, zp.Acc, 10)
	c0 := values[0]
	rest := values[1:]

	before := New(zp.Acc)
	w := NewWitness(before, c0)

	tip := New(zp.Acc)
	require.NoError(t, tip.Insert(c0))
	for _, v := range rest {
		require.NoError(t, tip.Insert(v))
		w.AddElement(v)
	}

	require.True(t, w.Verify(tip))
}

func TestWitnessVerifyFailsWithoutElement(t *testing.T) {
	zp, err := params.TestZeroParams()
	require.NoError(t, err)

	values := smallPrimesAbove(t, zp.Acc, 10)
	c0 := values[0]
	rest := values[1:]

	before := New(zp.Acc)
	w := NewWitness(before, c0)

	// Tip omits c0 entirely; witness should not verify against it.
	tipMissingC0 := New(zp.Acc)
	for _, v := range rest {
		require.NoError(t, tipMissingC0.Insert(v))
		w.AddElement(v)
	}

	require.False(t, w.Verify(tipMissingC0))
}
