// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"fmt"

	"github.com/shieldcoin/zerocore/bignum"
)

// tutorialTestSeed is the fixed seed behind TUTORIAL_TEST_MODULUS: every
// parameter below is rederived deterministically from it, so fixtures never
// need to embed literal primes and every test run reproduces the same
// values spec.md §8's concrete scenarios (S1-S6) assume.
var tutorialTestSeed = []byte("TUTORIAL_TEST_MODULUS/zerocore/v1")

// TestZeroParams builds the deterministic, intentionally small parameter
// set spec.md §8 calls TUTORIAL_TEST_MODULUS. It is fast enough to use
// inside ordinary unit tests and MUST NEVER be used outside of tests: the
// bit lengths are far too small to be secure, and the RSA modulus'
// factorization is derivable by trial division.
func TestZeroParams() (*ZeroParams, error) {
	// serialGroup's vector generators back both vector Pedersen commitments
	// and, sliced via bulletproofs.NewRangeParams, the Bulletproofs g_i/h_i
	// bases: 2*TestBitWidth*TestMaxValues bases plus one inner-product base u.
	serialGroup, err := bignum.DeriveGroup(append(tutorialTestSeed, "serial"...), 96, 48, 33)
	if err != nil {
		return nil, fmt.Errorf("params: deriving test serial group: %w", err)
	}

	accPoKGroup, err := bignum.DeriveGroup(append(tutorialTestSeed, "accpok"...), 96, 48, 2)
	if err != nil {
		return nil, fmt.Errorf("params: deriving test accPoK group: %w", err)
	}

	p1, err := derivePrime(append(tutorialTestSeed, "rsa-p1"...), 64)
	if err != nil {
		return nil, err
	}
	p2, err := derivePrime(append(tutorialTestSeed, "rsa-p2"...), 64)
	if err != nil {
		return nil, err
	}
	n := p1.Mul(p2)

	// A0 must be a quadratic residue mod N; a fixed square achieves that
	// regardless of N's factorization.
	a0 := bignum.FromInt64(4)

	// The admissible coin range is sized relative to serialGroup's modulus
	// (almost all of [2^16, p)) rather than to an arbitrary small window,
	// since a mint's commitment value is a residue mod p: a narrow window
	// unrelated to p's scale would make rejection sampling fail almost
	// certainly instead of landing inside the range with the couple-percent
	// probability isPrime(v) alone already costs.
	acc := &AccParams{
		N:             n,
		A0:            a0,
		MinCoinValue:  bignum.FromInt64(1 << 16),
		MaxCoinValue:  serialGroup.Modulus,
		ZKPIterations: 20,
		AccPoKGroup:   accPoKGroup,
		// 9 = 3^2 is a quadratic residue mod N regardless of N's
		// factorization, same trick as A0 above.
		WitnessGenerator: bignum.FromInt64(9),
	}

	zp := &ZeroParams{
		SerialGroup:        serialGroup,
		Acc:                acc,
		BlindingCommitment: serialGroup.Generator.PowMod(bignum.FromInt64(7), serialGroup.Modulus),
	}
	if err := zp.Validate(); err != nil {
		return nil, err
	}
	return zp, nil
}

// derivePrime hashes seed via bignum's group-derivation candidate loop until
// it lands on a bits-length prime; factored out here since AccParams needs
// two independent primes rather than a (p, q) pair tied by p = kq+1.
func derivePrime(seed []byte, bits int) (*bignum.BigNum, error) {
	gp, err := bignum.DeriveGroup(seed, bits+16, bits, 0)
	if err != nil {
		return nil, fmt.Errorf("params: deriving test prime: %w", err)
	}
	return gp.SubgroupOrder, nil
}
