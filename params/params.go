// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params bundles the named cryptographic parameter sets the rest of
// the module is built against: the two Schnorr-like prime-order groups
// (serialGroup, accPoKGroup), the RSA accumulator modulus and its admissible
// coin range, and the combined ZeroParams handle every coin/spend/accumulator
// operation takes by value. This mirrors the way wallet.Manager bundles
// waddrmgr.ScopedKeyManager handles into a single value threaded through the
// package instead of reaching for process-global state.
package params

import (
	"fmt"

	"github.com/shieldcoin/zerocore/bignum"
)

// AccParams is the RSA accumulator parameter tuple from the Data Model:
// modulus N, initial value A0, the admissible coin-value range, the number
// of Miller-Rabin rounds coin primality checks use, and the prime-order
// group the accumulator proof of knowledge runs in.
type AccParams struct {
	N            *bignum.BigNum
	A0           *bignum.BigNum
	MinCoinValue *bignum.BigNum
	MaxCoinValue *bignum.BigNum
	ZKPIterations int
	AccPoKGroup  *bignum.GroupParams

	// WitnessGenerator is an auxiliary quadratic residue mod N, independent
	// of A0, used by accumulatorpok to blind a membership witness inside a
	// commitment E = W · WitnessGenerator^u mod N without revealing W.
	WitnessGenerator *bignum.BigNum
}

// ZeroParams bundles everything a coin-protocol operation needs: the group
// used for serial-number statements, the accumulator parameters (which
// themselves carry accPoKGroup), and the owner's blinding commitment used to
// obfuscate newly minted coins.
//
// ZeroParams is an immutable handle acquired by value, per spec.md §9's
// "pointer-to-parameter sharing" note — callers pass *ZeroParams around but
// never mutate the pointee after construction.
type ZeroParams struct {
	SerialGroup        *bignum.GroupParams
	Acc                *AccParams
	BlindingCommitment *bignum.BigNum
}

// Validate checks the algebraic relationships every exported constructor in
// this module assumes hold: both groups pass bignum.GroupParams.Verify, N is
// composite odd, A0 is in [1, N), and the coin-value range is sane.
func (zp *ZeroParams) Validate() error {
	if zp == nil || zp.Acc == nil || zp.SerialGroup == nil || zp.Acc.AccPoKGroup == nil {
		return fmt.Errorf("params: incomplete ZeroParams")
	}
	if err := zp.SerialGroup.Verify(); err != nil {
		return fmt.Errorf("params: serial group: %w", err)
	}
	if err := zp.Acc.AccPoKGroup.Verify(); err != nil {
		return fmt.Errorf("params: accumulator PoK group: %w", err)
	}
	if zp.Acc.N.Sign() <= 0 {
		return fmt.Errorf("params: accumulator modulus must be positive")
	}
	if zp.Acc.N.Int().Bit(0) == 0 || zp.Acc.N.IsPrime(20) {
		return fmt.Errorf("params: accumulator modulus must be composite odd")
	}
	if zp.Acc.A0.Sign() <= 0 || zp.Acc.A0.Cmp(zp.Acc.N) >= 0 {
		return fmt.Errorf("params: A0 must be in [1, N)")
	}
	if zp.Acc.MinCoinValue.Cmp(zp.Acc.MaxCoinValue) >= 0 {
		return fmt.Errorf("params: minCoin must be < maxCoin")
	}
	if zp.Acc.WitnessGenerator == nil || zp.Acc.WitnessGenerator.Sign() <= 0 {
		return fmt.Errorf("params: witness generator must be set")
	}
	return nil
}

// DefaultZKPIterations is used when a caller does not specify an explicit
// iteration count for coin primality checks, matching the
// `zkp_iterations` configuration default from spec.md §6.
const DefaultZKPIterations = 80
