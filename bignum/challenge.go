// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "crypto/sha256"

// HashChallenge derives a Fiat-Shamir challenge by hashing the concatenation
// of parts and reducing the result modulo mod. Every Σ-protocol in this
// module (commitment equality, accumulator PoK, serial-number SoK,
// Bulletproofs) builds its challenge this way: hash the transcript, reduce.
//
// A zero-valued challenge is disallowed and replaced by rehashing with an
// extra counter byte appended, since several of the response equations
// downstream divide or invert by the challenge.
func HashChallenge(mod *BigNum, parts ...[]byte) *BigNum {
	for ctr := byte(0); ; ctr++ {
		h := sha256.New()
		for _, p := range parts {
			h.Write(p)
		}
		h.Write([]byte{ctr})
		c := FromBytes(h.Sum(nil)).Mod(mod)
		if !c.IsZero() {
			return c
		}
	}
}

// HashDigest hashes the concatenation of parts and returns the raw SHA-256
// digest bytes, with no modular reduction. Used by the rare Σ-protocol
// whose original construction interprets the full digest as the exponent
// itself rather than reducing it to a fixed challenge-bit budget.
func HashDigest(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
