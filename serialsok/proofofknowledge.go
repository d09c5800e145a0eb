// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialsok

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// ProofOfKnowledge is a standalone, message-unbound proof that the discrete
// log of a revealed serial-number public key, in base g of serialGroup, is
// known and lies in the subgroup order's range. It guards against a
// malicious public key chosen from outside the prime-order subgroup
// (small-subgroup attacks), independent of whatever SignatureOfKnowledge
// the same public key also appears in.
type ProofOfKnowledge struct {
	T *bignum.BigNum
	R *bignum.BigNum
}

// Prove builds a ProofOfKnowledge for serialNumber, the discrete log of
// gp.Generator.PowMod(serialNumber, gp.Modulus).
func Prove(gp *bignum.GroupParams, serialNumber *bignum.BigNum) (*ProofOfKnowledge, error) {
	pubKey := gp.Generator.PowMod(serialNumber, gp.Modulus)

	v, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, err
	}
	t := gp.Generator.PowMod(v, gp.Modulus)

	c := hashPoK(gp, pubKey, t)

	// r is an unreduced integer difference, not a mod-q response: this
	// mirrors the original construction exactly rather than the
	// compressed mod-q Schnorr response used elsewhere in this module.
	r := v.Sub(c.Mul(serialNumber))

	return &ProofOfKnowledge{T: t, R: r}, nil
}

// Verify checks that g^R · pubKey^c ≡ T (mod p) for the recomputed
// challenge c.
func (pok *ProofOfKnowledge) Verify(gp *bignum.GroupParams, pubKey *bignum.BigNum) bool {
	if pok == nil {
		return false
	}
	c := hashPoK(gp, pubKey, pok.T)
	u := gp.Generator.PowMod(pok.R, gp.Modulus).MulMod(pubKey.PowMod(c, gp.Modulus), gp.Modulus)
	return u.Equal(pok.T)
}

func hashPoK(gp *bignum.GroupParams, pubKey, t *bignum.BigNum) *bignum.BigNum {
	// No modulus bound on the challenge: the original hashes the full
	// digest into the exponent rather than reducing it to a fixed
	// challenge-bit budget, relying on v's bit length for hiding instead.
	return bignum.FromBytes(bignum.HashDigest(
		gp.Modulus.SerializeBytes(), gp.SubgroupOrder.SerializeBytes(),
		pubKey.SerializeBytes(), t.SerializeBytes()))
}
