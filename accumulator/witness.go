// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accumulator

import "github.com/shieldcoin/zerocore/bignum"

// Witness is a membership witness for a specific coin value: an
// accumulator built from every *other* coin inserted so far. The invariant
// Witness^v ≡ A (mod N) holds once the witness has also absorbed every coin
// accumulated after its own element (spec.md §4.4).
type Witness struct {
	witness     *Accumulator
	elementValue *bignum.BigNum
}

// NewWitness builds a Witness for a coin of value elementValue, starting
// from a checkpoint accumulator that must not itself include elementValue
// (typically: the accumulator's value immediately before the coin's own
// mint was inserted).
func NewWitness(checkpoint *Accumulator, elementValue *bignum.BigNum) *Witness {
	return &Witness{witness: checkpoint.Clone(), elementValue: elementValue}
}

// Value returns the witness's current accumulator value.
func (w *Witness) Value() *bignum.BigNum {
	return w.witness.Value
}

// AddElement folds another coin's value into the witness, mirroring
// AccumulatorWitness::AddElement. It is a caller error to add the witness's
// own element value; per the original's guard, doing so is silently
// skipped rather than treated as fatal, since a replay that (harmlessly)
// re-presents the same mint should not abort the witness update loop.
func (w *Witness) AddElement(v *bignum.BigNum) {
	if v.Equal(w.elementValue) {
		return
	}
	w.witness.Increment(v)
}

// ResetValue rebuilds the witness from a fresh checkpoint, discarding all
// progress made since — used by the witness updater's Reset recovery path.
func (w *Witness) ResetValue(checkpoint *Accumulator, elementValue *bignum.BigNum) {
	w.witness = checkpoint.Clone()
	w.elementValue = elementValue
}

// Verify checks Witness^v ≡ tip (mod N), mirroring
// AccumulatorWitness::VerifyWitness.
func (w *Witness) Verify(tip *Accumulator) bool {
	candidate := w.witness.Clone()
	candidate.Increment(w.elementValue)
	return candidate.Equal(tip)
}

// Clone returns an independent copy of the witness.
func (w *Witness) Clone() *Witness {
	return &Witness{witness: w.witness.Clone(), elementValue: w.elementValue}
}
