// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accumulator implements the RSA-modulus accumulator and its
// per-coin membership witnesses: A = A0^{∏ v_i} mod N over the multiset of
// inserted coin values.
package accumulator

import (
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

// Accumulator holds the current accumulator value for a parameter set. It
// is commutative: inserting the same multiset of values in any order
// produces the same Value, per spec.md §8 invariant 1.
type Accumulator struct {
	Params *params.AccParams
	Value  *bignum.BigNum
}

// New returns an Accumulator initialized to the parameter set's base value
// A0, mirroring Accumulator::Accumulator(params, denomination).
func New(ap *params.AccParams) *Accumulator {
	return &Accumulator{Params: ap, Value: ap.A0}
}

// NewWithValue returns an Accumulator starting from an explicit value
// instead of A0, used when restoring from a block-index snapshot.
func NewWithValue(ap *params.AccParams, value *bignum.BigNum) *Accumulator {
	return &Accumulator{Params: ap, Value: value}
}

// Increment raises the accumulator to the power of a raw coin value,
// mirroring Accumulator::increment. Callers that have already validated the
// coin should prefer Insert, which performs that validation.
func (a *Accumulator) Increment(v *bignum.BigNum) {
	a.Value = a.Value.PowMod(v, a.Params.N)
}

// Insert validates that v is a well-formed coin value (prime, within the
// accumulator's admissible range) before folding it in, mirroring
// Accumulator::accumulate's isValid() guard.
func (a *Accumulator) Insert(v *bignum.BigNum) error {
	if v.Cmp(a.Params.MinCoinValue) <= 0 || v.Cmp(a.Params.MaxCoinValue) > 0 {
		return newError(ErrInvalidElement, "coin value outside admissible range", nil)
	}
	if !v.IsPrime(a.Params.ZKPIterations) {
		return newError(ErrInvalidElement, "coin value is not prime", nil)
	}
	a.Increment(v)
	return nil
}

// SetValue bulk-overwrites the accumulator's value, used when loading a
// block-index snapshot.
func (a *Accumulator) SetValue(v *bignum.BigNum) {
	a.Value = v
}

// Equal reports whether two accumulators hold the same value.
func (a *Accumulator) Equal(o *Accumulator) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.Value.Equal(o.Value)
}

// Clone returns an independent copy so callers can fork accumulator state
// (e.g. the chain engine replaying from a snapshot) without aliasing.
func (a *Accumulator) Clone() *Accumulator {
	return &Accumulator{Params: a.Params, Value: a.Value}
}
