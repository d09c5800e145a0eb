// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// VectorExponent computes ∏ bases[i]^exps[i] mod p. This is the general
// multi-base commitment helper Math.h's original VectorExponent was meant
// to be: that version reassigned its accumulator on every loop iteration
// instead of folding into it, so only the last term ever survived. This
// version accumulates via MulMod into a running product seeded at the
// group identity, matching the fix spec.md's Design Notes direct.
func VectorExponent(bases, exps []*bignum.BigNum, mod *bignum.BigNum) *bignum.BigNum {
	out := bignum.FromInt64(1)
	for i := range bases {
		out = out.MulMod(bases[i].PowMod(exps[i], mod), mod)
	}
	return out
}

// VectorPowers returns [x^0, x^1, ..., x^(n-1)], with exponentiation over
// the integers (not reduced mod q) since callers reduce as needed.
func VectorPowers(x *bignum.BigNum, n int) []*bignum.BigNum {
	out := make([]*bignum.BigNum, n)
	cur := bignum.FromInt64(1)
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = cur.Mul(x)
	}
	return out
}

// VectorPowersMod is VectorPowers with every power reduced mod q, the form
// the Fiat-Shamir-derived scalar vectors (y^i, z^i) actually need.
func VectorPowersMod(x *bignum.BigNum, n int, q *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, n)
	cur := bignum.FromInt64(1).Mod(q)
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = cur.MulMod(x, q)
	}
	return out
}

// InnerProduct returns Σ a[i]*b[i] mod q.
func InnerProduct(a, b []*bignum.BigNum, q *bignum.BigNum) *bignum.BigNum {
	out := bignum.FromInt64(0)
	for i := range a {
		out = out.AddMod(a[i].MulMod(b[i], q), q)
	}
	return out
}

// SumPowers returns Σ_{i=0}^{n-1} x^i mod q, the closed-form sum
// VectorPowerSum computes over InnerProduct(1^n, x^n) in the original.
func SumPowers(x *bignum.BigNum, n int, q *bignum.BigNum) *bignum.BigNum {
	out := bignum.FromInt64(0)
	for _, p := range VectorPowersMod(x, n, q) {
		out = out.AddMod(p, q)
	}
	return out
}

// Hadamard returns the entrywise product a[i]*b[i] mod q.
func Hadamard(a, b []*bignum.BigNum, q *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, len(a))
	for i := range a {
		out[i] = a[i].MulMod(b[i], q)
	}
	return out
}

// VectorAddMod returns a[i]+b[i] mod q.
func VectorAddMod(a, b []*bignum.BigNum, q *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, len(a))
	for i := range a {
		out[i] = a[i].AddMod(b[i], q)
	}
	return out
}

// VectorSubScalarMod returns a[i]-x mod q for every entry.
func VectorSubScalarMod(a []*bignum.BigNum, x, q *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, len(a))
	for i := range a {
		out[i] = a[i].Sub(x).Mod(q)
	}
	return out
}

// VectorScalarMod returns a[i]*x mod q.
func VectorScalarMod(a []*bignum.BigNum, x, q *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, len(a))
	for i := range a {
		out[i] = a[i].MulMod(x, q)
	}
	return out
}

// VectorScalarExpMod returns a[i]^x mod p (used to fold basis vectors by a
// per-round Fiat-Shamir challenge).
func VectorScalarExpMod(a []*bignum.BigNum, x, p *bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, len(a))
	for i := range a {
		out[i] = a[i].PowMod(x, p)
	}
	return out
}
