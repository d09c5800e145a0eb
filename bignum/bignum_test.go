// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		m    int64
		want int64
	}{
		{name: "mulmod basic", a: 7, b: 6, m: 10, want: 2},
		{name: "mulmod zero", a: 0, b: 5, m: 7, want: 0},
		{name: "addmod wraps", a: 9, b: 9, m: 11, want: 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b, m := FromInt64(tc.a), FromInt64(tc.b), FromInt64(tc.m)
			require.Equal(t, tc.want, a.MulMod(b, m).Int().Int64(), "mulmod")
			require.Equal(t, new(big.Int).Mod(new(big.Int).Add(a.Int(), b.Int()), m.Int()).Int64(),
				a.AddMod(b, m).Int().Int64(), "addmod")
		})
	}
}

func TestInverse(t *testing.T) {
	m := FromInt64(11)
	a := FromInt64(3)
	inv := a.Inverse(m)
	require.NotNil(t, inv)
	require.True(t, a.MulMod(inv, m).Equal(FromInt64(1)))

	// gcd(4, 8) != 1, no inverse exists.
	require.Nil(t, FromInt64(4).Inverse(FromInt64(8)))
}

func TestPowMod(t *testing.T) {
	base, exp, mod := FromInt64(4), FromInt64(13), FromInt64(497)
	got := base.PowMod(exp, mod)
	require.Equal(t, int64(445), got.Int().Int64())
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 12345, -98765, 1 << 40}
	for _, v := range tests {
		bn := FromInt64(v)
		var buf bytes.Buffer
		require.NoError(t, bn.Serialize(&buf))

		got, err := Deserialize(&buf)
		require.NoError(t, err)
		require.True(t, bn.Equal(got), "round trip mismatch for %d", v)
	}
}

func TestDeserializeShort(t *testing.T) {
	_, err := Deserialize(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestIsPrime(t *testing.T) {
	require.True(t, FromInt64(97).IsPrime(20))
	require.False(t, FromInt64(100).IsPrime(20))
}
