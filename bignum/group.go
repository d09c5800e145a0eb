// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"crypto/sha256"
	"fmt"
)

// GroupParams describes a cyclic group of prime order q inside Z_p^*, the
// setting every Σ-protocol in this module operates in: Pedersen commitments
// use (g, h); the accumulator's proof of knowledge runs in a second,
// separately derived group of this type (params.AccParams.AccPoKGroup) with
// its own (p, q) pair and generators.
//
// Modulus and SubgroupOrder are both required to be prime; Generator and
// AltGenerator must both have order SubgroupOrder. Vector holds any
// additional independent generators a commitment scheme needs (one per
// committed coordinate), mirroring libzerocoin's g_i vector used for vector
// Pedersen commitments.
type GroupParams struct {
	Modulus       *BigNum
	SubgroupOrder *BigNum
	Generator     *BigNum
	AltGenerator  *BigNum
	Vector        []*BigNum
}

// maxDeriveIterations bounds the hash-to-candidate loop in DeriveGroup and
// deriveGenerator so a bad seed fails fast instead of spinning forever.
const maxDeriveIterations = 1 << 20

// DeriveGroup deterministically derives a GroupParams from seed, producing a
// prime modulus of pBits, a prime subgroup order of qBits dividing p-1, and
// vectorLen+2 independent generators of that subgroup. The derivation is a
// hash-to-candidate loop: identical inputs always yield identical
// parameters, which is what lets TUTORIAL_TEST_MODULUS-style fixtures be
// reproduced from a short seed instead of being embedded as literals.
//
// This does not attempt to produce a safe prime with a verifiable proof of
// non-trapdoor construction (the "public-coin setup" extensions some
// accumulator papers require); it follows the original implementation's
// candidate-and-test approach, documented as a known limitation in spec.md's
// Design Notes.
func DeriveGroup(seed []byte, pBits, qBits, vectorLen int) (*GroupParams, error) {
	if qBits < 8 || pBits <= qBits {
		return nil, newError(ErrBadBitLength,
			fmt.Sprintf("bad group bit lengths p=%d q=%d", pBits, qBits), nil)
	}

	q, err := deriveSubgroupOrder(seed, qBits)
	if err != nil {
		return nil, err
	}

	p, cofactor, err := deriveModulus(seed, q, pBits)
	if err != nil {
		return nil, err
	}

	gens := make([]*BigNum, 0, vectorLen+2)
	for i := 0; i < vectorLen+2; i++ {
		g, err := deriveGenerator(seed, p, q, cofactor, i)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}

	return &GroupParams{
		Modulus:       p,
		SubgroupOrder: q,
		Generator:     gens[0],
		AltGenerator:  gens[1],
		Vector:        gens[2:],
	}, nil
}

// deriveSubgroupOrder hashes seed with an incrementing counter until it
// lands on a qBits-length prime.
func deriveSubgroupOrder(seed []byte, qBits int) (*BigNum, error) {
	for ctr := 0; ctr < maxDeriveIterations; ctr++ {
		cand := candidateFromHash(seed, "q", ctr, qBits)
		if cand.IsPrime(20) {
			return cand, nil
		}
	}
	return nil, newError(ErrDerivationExhausted, "subgroup order derivation did not converge", nil)
}

// deriveModulus searches for a prime p = cofactor*q + 1 of pBits, so that
// Z_p^* has a subgroup of order exactly q. cofactor is returned so
// deriveGenerator can exponentiate it away when finding elements of that
// subgroup.
func deriveModulus(seed []byte, q *BigNum, pBits int) (p, cofactor *BigNum, err error) {
	for ctr := 0; ctr < maxDeriveIterations; ctr++ {
		k := candidateFromHash(seed, "k", ctr, pBits-q.BitLen())
		// candidateFromHash returns odd values; an odd cofactor times the odd
		// q plus one would always be even, so clear the low bit.
		kn := k.Int()
		kn.SetBit(kn, 0, 0)
		k = New(kn)
		cand := k.Mul(q).Add(FromInt64(1))
		if cand.BitLen() != pBits {
			continue
		}
		if cand.IsPrime(20) {
			return cand, k, nil
		}
	}
	return nil, nil, newError(ErrDerivationExhausted, "modulus derivation did not converge", nil)
}

// deriveGenerator finds an element of order exactly q in Z_p^*, indexed by
// idx so DeriveGroup can pull out as many independent generators as needed.
func deriveGenerator(seed []byte, p, q, cofactor *BigNum, idx int) (*BigNum, error) {
	one := FromInt64(1)
	for ctr := 0; ctr < maxDeriveIterations; ctr++ {
		h := candidateFromHash(seed, fmt.Sprintf("g%d", idx), ctr, p.BitLen())
		h = h.Mod(p)
		if h.IsZero() {
			continue
		}
		g := h.PowMod(cofactor, p)
		if g.Equal(one) {
			continue
		}
		if g.PowMod(q, p).Equal(one) {
			return g, nil
		}
	}
	return nil, newError(ErrDerivationExhausted,
		fmt.Sprintf("generator %d derivation did not converge", idx), nil)
}

// candidateFromHash expands seed/label/ctr into a bits-length odd value via
// repeated SHA-256, the way a deterministic KDF-style candidate generator
// would; used for prime candidates, generator candidates, and the cofactor
// in deriveModulus (which clears the low bit again).
func candidateFromHash(seed []byte, label string, ctr, bits int) *BigNum {
	need := (bits + 7) / 8
	out := make([]byte, 0, need+sha256.Size)
	for block := 0; len(out) < need; block++ {
		h := sha256.New()
		h.Write(seed)
		h.Write([]byte(label))
		h.Write([]byte{byte(ctr), byte(ctr >> 8), byte(ctr >> 16), byte(ctr >> 24), byte(block)})
		out = append(out, h.Sum(nil)...)
	}
	out = out[:need]
	v := FromBytes(out)
	// Force the top bit so the candidate has exactly bits length, and the
	// bottom bit so it is never even.
	n := v.Int()
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return New(n)
}

// Verify checks the algebraic relationships a GroupParams must satisfy:
// q and p prime, g and h nontrivial elements of the order-q subgroup, and
// every vector generator likewise.
func (gp *GroupParams) Verify() error {
	if !gp.SubgroupOrder.IsPrime(20) {
		return newError(ErrBadBitLength, "subgroup order is not prime", nil)
	}
	if !gp.Modulus.IsPrime(20) {
		return newError(ErrBadBitLength, "modulus is not prime", nil)
	}
	one := FromInt64(1)
	check := func(g *BigNum) error {
		if g.Equal(one) {
			return newError(ErrNotQuadraticResidue, "generator is trivial", nil)
		}
		if !g.PowMod(gp.SubgroupOrder, gp.Modulus).Equal(one) {
			return newError(ErrNotQuadraticResidue, "generator has wrong order", nil)
		}
		return nil
	}
	if err := check(gp.Generator); err != nil {
		return err
	}
	if err := check(gp.AltGenerator); err != nil {
		return err
	}
	for _, v := range gp.Vector {
		if err := check(v); err != nil {
			return err
		}
	}
	return nil
}
