// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serialsok implements the two serial-number Σ-protocols spend
// verification relies on: a signature of knowledge binding a revealed
// serial-number public key and its Pedersen commitment to a transaction
// hash, and a standalone proof that the revealed public key's discrete log
// lies in the serial group's prime-order subgroup. See spec.md §4.6.
package serialsok

import (
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/commitment"
)

// SignatureOfKnowledge proves knowledge of (s, r) opening a commitment
// C' = g^s · h^r in serialGroup, binding the statement to an external
// message (the spend's transaction hash) so the proof cannot be replayed
// against a different spend.
type SignatureOfKnowledge struct {
	T1, T2   *bignum.BigNum
	Ss, Sr   *bignum.BigNum
	ChallengeBits int
}

// Sign builds a SignatureOfKnowledge for commitment c' (c'.Group must be
// the serial group), given its opening (s, r) and a message to bind to.
func Sign(gp *bignum.GroupParams, c *commitment.Commitment, s, r *bignum.BigNum, message []byte, challengeBits int) (*SignatureOfKnowledge, error) {
	if challengeBits <= 0 {
		return nil, newError(ErrBadChallengeBits, "challengeBits must be positive", nil)
	}

	as, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, err
	}
	ar, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, err
	}

	t1 := gp.Generator.PowMod(as, gp.Modulus)
	t2 := commitment.CommitWithRandomness(gp, as, ar).Value

	pubKey := gp.Generator.PowMod(s, gp.Modulus)
	c_ := challenge(gp, pubKey, c.Value, t1, t2, message, challengeBits)

	ss := as.AddMod(c_.Mul(s), gp.SubgroupOrder)
	sr := ar.AddMod(c_.Mul(r), gp.SubgroupOrder)

	return &SignatureOfKnowledge{T1: t1, T2: t2, Ss: ss, Sr: sr, ChallengeBits: challengeBits}, nil
}

// Verify recomputes the challenge from pubKey, c' and message and checks
// both response equations.
func (sig *SignatureOfKnowledge) Verify(gp *bignum.GroupParams, pubKey *bignum.BigNum, c *commitment.Commitment, message []byte) bool {
	if sig == nil || sig.ChallengeBits <= 0 {
		return false
	}
	c_ := challenge(gp, pubKey, c.Value, sig.T1, sig.T2, message, sig.ChallengeBits)

	lhs1 := gp.Generator.PowMod(sig.Ss, gp.Modulus)
	rhs1 := sig.T1.MulMod(pubKey.PowMod(c_, gp.Modulus), gp.Modulus)
	if !lhs1.Equal(rhs1) {
		return false
	}

	lhs2 := commitment.CommitWithRandomness(gp, sig.Ss, sig.Sr).Value
	rhs2 := sig.T2.MulMod(c.Value.PowMod(c_, gp.Modulus), gp.Modulus)
	return lhs2.Equal(rhs2)
}

func challenge(gp *bignum.GroupParams, pubKey, commitmentValue, t1, t2 *bignum.BigNum, message []byte, challengeBits int) *bignum.BigNum {
	mod := bignum.FromInt64(1).Int()
	mod.Lsh(mod, uint(challengeBits))
	return bignum.HashChallenge(bignum.New(mod),
		gp.Modulus.SerializeBytes(), gp.SubgroupOrder.SerializeBytes(),
		pubKey.SerializeBytes(), commitmentValue.SerializeBytes(),
		t1.SerializeBytes(), t2.SerializeBytes(), message)
}
