// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shieldcoin/zerocore/bignum"
)

func TestVerifyConcurrentAllValid(t *testing.T) {
	rp := testRangeParams(t)

	p1, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(3)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)
	p2, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(9)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)
	p3, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(27)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)

	ok := VerifyConcurrent(rp, [][]*Proof{{p1}, {p2}, {p3}})
	require.True(t, ok)
}

func TestVerifyConcurrentOneBadSetFails(t *testing.T) {
	rp := testRangeParams(t)

	p1, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(3)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)
	p2, err := Prove(rp, []*bignum.BigNum{bignum.FromInt64(9)}, []*bignum.BigNum{randomGamma(t, rp)})
	require.NoError(t, err)

	p2.T = p2.T.AddMod(bignum.FromInt64(1), rp.Group.SubgroupOrder)

	ok := VerifyConcurrent(rp, [][]*Proof{{p1}, {p2}})
	require.False(t, ok)
}
