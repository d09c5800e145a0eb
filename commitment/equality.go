// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// statisticalHidingBits adds slack on top of the group order's bit length
// when sampling the Σ-protocol's blinders, so the response (tx + c·x) leaks
// no information about x beyond what the challenge already fixes. This
// mirrors the integer-commitment equality-of-opening technique used for
// RSA-group Pedersen commitments (Camenisch-Michels style cross-group PoK),
// rather than the EC-only Generalized Schnorr PoK in
// mit-dci-zkledger's GSPFS, which this protocol's transcript-hashing
// style otherwise follows.
const statisticalHidingBits = 128

// EqualityProof proves that two Pedersen commitments, in two possibly
// different prime-order groups, open to the same integer value x.
type EqualityProof struct {
	T1, T2      *bignum.BigNum
	Sx          *bignum.BigNum
	Sr1, Sr2    *bignum.BigNum
	ChallengeBits int
}

// ProveEquality builds an EqualityProof that c1 and c2 open to the same x,
// given the openings (x, r1) of c1 and (x, r2) of c2. challengeBits sets the
// Fiat-Shamir challenge space, and therefore the soundness error (2^-k).
func ProveEquality(c1, c2 *Commitment, x, r1, r2 *bignum.BigNum, challengeBits int) (*EqualityProof, error) {
	blindBits := maxBitLen(c1.Group.SubgroupOrder, c2.Group.SubgroupOrder) + challengeBits + statisticalHidingBits

	tx, err := bignum.RandomOddBits(blindBits)
	if err != nil {
		return nil, err
	}
	tr1, err := bignum.RandomOddBits(blindBits)
	if err != nil {
		return nil, err
	}
	tr2, err := bignum.RandomOddBits(blindBits)
	if err != nil {
		return nil, err
	}

	t1 := CommitWithRandomness(c1.Group, tx, tr1).Value
	t2 := CommitWithRandomness(c2.Group, tx, tr2).Value

	challengeMod := bignum.FromInt64(1).Int()
	challengeMod.Lsh(challengeMod, uint(challengeBits))
	c := bignum.HashChallenge(bignum.New(challengeMod),
		c1.Value.SerializeBytes(), c2.Value.SerializeBytes(),
		t1.SerializeBytes(), t2.SerializeBytes())

	sx := tx.Add(c.Mul(x))
	sr1 := tr1.Add(c.Mul(r1))
	sr2 := tr2.Add(c.Mul(r2))

	return &EqualityProof{T1: t1, T2: t2, Sx: sx, Sr1: sr1, Sr2: sr2, ChallengeBits: challengeBits}, nil
}

// VerifyEquality recomputes the challenge and checks both response
// equations. It returns false on any structural or algebraic mismatch.
func VerifyEquality(c1, c2 *Commitment, proof *EqualityProof) bool {
	if proof == nil {
		return false
	}
	challengeMod := bignum.FromInt64(1).Int()
	challengeMod.Lsh(challengeMod, uint(proof.ChallengeBits))
	c := bignum.HashChallenge(bignum.New(challengeMod),
		c1.Value.SerializeBytes(), c2.Value.SerializeBytes(),
		proof.T1.SerializeBytes(), proof.T2.SerializeBytes())

	lhs1 := CommitWithRandomness(c1.Group, proof.Sx, proof.Sr1).Value
	rhs1 := proof.T1.MulMod(c1.Value.PowMod(c, c1.Group.Modulus), c1.Group.Modulus)
	if !lhs1.Equal(rhs1) {
		return false
	}

	lhs2 := CommitWithRandomness(c2.Group, proof.Sx, proof.Sr2).Value
	rhs2 := proof.T2.MulMod(c2.Value.PowMod(c, c2.Group.Modulus), c2.Group.Modulus)
	return lhs2.Equal(rhs2)
}

func maxBitLen(a, b *bignum.BigNum) int {
	if a.BitLen() > b.BitLen() {
		return a.BitLen()
	}
	return b.BitLen()
}
