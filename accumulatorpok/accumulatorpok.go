// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accumulatorpok implements the Σ-protocol proving that a hidden
// coin value, committed to in accPoKGroup, is a member of the RSA
// accumulator — without revealing which coin, and without revealing the
// membership witness used to build the proof. See spec.md §4.5.
package accumulatorpok

import (
	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/commitment"
	"github.com/shieldcoin/zerocore/params"
)

// statisticalHidingBits is the slack added on top of a secret's natural bit
// length when sizing Σ-protocol blinders, following the same convention as
// commitment.ProveEquality.
const statisticalHidingBits = 128

// Proof is a non-interactive accumulator proof of knowledge. Its shape
// follows Camenisch–Lysyanskaya accumulator proofs: a blinded witness
// commitment E, two auxiliary Pedersen commitments (Cu for the witness'
// blinding exponent, Cz for their product with the coin value), three
// accPoKGroup opening/product commitments, one RSA-side accumulator
// commitment, and the six integer responses tying them together under a
// single Fiat-Shamir challenge.
type Proof struct {
	E  *bignum.BigNum // mod N
	Cu *bignum.BigNum // mod p2
	Cz *bignum.BigNum // mod p2

	Tv, Tu, Tz *bignum.BigNum // mod p2
	Tacc       *bignum.BigNum // mod N

	Sv, Srv, Su, Sru, Sz, Ss *bignum.BigNum

	ChallengeBits int
}

// Prove builds a Proof that cv (a commitment to v with randomness rv, in
// ap.AccPoKGroup) is accumulated into acc, given a witness value w such
// that w^v ≡ acc.Value (mod ap.N).
func Prove(ap *params.AccParams, acc *accumulator.Accumulator, cv *commitment.Commitment,
	v, rv, w *bignum.BigNum, challengeBits int) (*Proof, error) {

	gp := ap.AccPoKGroup
	g2, h2, p2, q2 := gp.Generator, gp.AltGenerator, gp.Modulus, gp.SubgroupOrder

	// u blinds the witness inside E = w·G^u mod N; its bit length must
	// cover N so G^u ranges over enough of the group to hide w.
	u, err := bignum.RandomOddBits(ap.N.BitLen() + statisticalHidingBits)
	if err != nil {
		return nil, err
	}
	ru, err := bignum.RandomInRange(q2)
	if err != nil {
		return nil, err
	}
	rz, err := bignum.RandomInRange(q2)
	if err != nil {
		return nil, err
	}

	e := w.MulMod(ap.WitnessGenerator.PowMod(u, ap.N), ap.N)
	cu := commitment.CommitWithRandomness(gp, u, ru).Value
	z := u.Mul(v)
	cz := commitment.CommitWithRandomness(gp, z, rz).Value

	blindBitsV := q2.BitLen() + challengeBits + statisticalHidingBits
	blindBitsU := ap.N.BitLen() + challengeBits + statisticalHidingBits
	blindBitsZ := blindBitsV + blindBitsU

	aV, err := bignum.RandomOddBits(blindBitsV)
	if err != nil {
		return nil, err
	}
	aRv, err := bignum.RandomOddBits(blindBitsV)
	if err != nil {
		return nil, err
	}
	aU, err := bignum.RandomOddBits(blindBitsU)
	if err != nil {
		return nil, err
	}
	aRu, err := bignum.RandomOddBits(blindBitsV)
	if err != nil {
		return nil, err
	}
	aZ, err := bignum.RandomOddBits(blindBitsZ)
	if err != nil {
		return nil, err
	}
	aS, err := bignum.RandomOddBits(blindBitsZ)
	if err != nil {
		return nil, err
	}

	tv := g2.PowMod(aV, p2).MulMod(h2.PowMod(aRv, p2), p2)
	tu := g2.PowMod(aU, p2).MulMod(h2.PowMod(aRu, p2), p2)
	tz := cu.PowMod(aV, p2).MulMod(h2.PowMod(aS, p2), p2)
	tacc := e.PowMod(aV, ap.N).MulMod(ap.WitnessGenerator.PowMod(aZ, ap.N).Inverse(ap.N), ap.N)

	challengeMod := pow2(challengeBits)
	c := bignum.HashChallenge(challengeMod,
		acc.Value.SerializeBytes(), cv.Value.SerializeBytes(), cu.SerializeBytes(),
		cz.SerializeBytes(), e.SerializeBytes(),
		tv.SerializeBytes(), tu.SerializeBytes(), tz.SerializeBytes(), tacc.SerializeBytes())

	sv := aV.Add(c.Mul(v))
	srv := aRv.Add(c.Mul(rv))
	su := aU.Add(c.Mul(u))
	sru := aRu.Add(c.Mul(ru))
	sz := aZ.Add(c.Mul(z))
	// rz - v·ru, the product-proof response; may go negative, which is
	// fine since every exponentiation below is over *big.Int and handles
	// negative exponents by inverting the base first.
	ss := aS.Add(c.Mul(rz.Sub(v.Mul(ru))))

	return &Proof{
		E: e, Cu: cu, Cz: cz,
		Tv: tv, Tu: tu, Tz: tz, Tacc: tacc,
		Sv: sv, Srv: srv, Su: su, Sru: sru, Sz: sz, Ss: ss,
		ChallengeBits: challengeBits,
	}, nil
}

// Verify recomputes the Fiat-Shamir challenge and checks all four response
// equations: the two Pedersen-opening proofs (for v and u), the product
// proof binding z = u·v, and the RSA-side accumulator membership check.
func Verify(ap *params.AccParams, acc *accumulator.Accumulator, cv *commitment.Commitment, p *Proof) bool {
	if p == nil {
		return false
	}
	gp := ap.AccPoKGroup
	g2, h2, modP2 := gp.Generator, gp.AltGenerator, gp.Modulus

	challengeMod := pow2(p.ChallengeBits)
	c := bignum.HashChallenge(challengeMod,
		acc.Value.SerializeBytes(), cv.Value.SerializeBytes(), p.Cu.SerializeBytes(),
		p.Cz.SerializeBytes(), p.E.SerializeBytes(),
		p.Tv.SerializeBytes(), p.Tu.SerializeBytes(), p.Tz.SerializeBytes(), p.Tacc.SerializeBytes())

	// (1) opening proof for Cv.
	lhs1 := g2.PowMod(p.Sv, modP2).MulMod(h2.PowMod(p.Srv, modP2), modP2)
	rhs1 := p.Tv.MulMod(cv.Value.PowMod(c, modP2), modP2)
	if !lhs1.Equal(rhs1) {
		return false
	}

	// (2) opening proof for Cu.
	lhs2 := g2.PowMod(p.Su, modP2).MulMod(h2.PowMod(p.Sru, modP2), modP2)
	rhs2 := p.Tu.MulMod(p.Cu.PowMod(c, modP2), modP2)
	if !lhs2.Equal(rhs2) {
		return false
	}

	// (3) product proof: Cz commits to z = u·v.
	lhs3 := p.Cu.PowMod(p.Sv, modP2).MulMod(h2.PowMod(p.Ss, modP2), modP2)
	rhs3 := p.Tz.MulMod(p.Cz.PowMod(c, modP2), modP2)
	if !lhs3.Equal(rhs3) {
		return false
	}

	// (4) accumulator membership: E^v · G^{-z} ≡ acc.Value (mod N).
	ginv := ap.WitnessGenerator.Inverse(ap.N)
	lhs4 := p.E.PowMod(p.Sv, ap.N).MulMod(ginv.PowMod(p.Sz, ap.N), ap.N)
	rhs4 := p.Tacc.MulMod(acc.Value.PowMod(c, ap.N), ap.N)
	return lhs4.Equal(rhs4)
}

func pow2(bits int) *bignum.BigNum {
	m := bignum.FromInt64(1).Int()
	m.Lsh(m, uint(bits))
	return bignum.New(m)
}
