// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package witness implements the per-wallet witness updater: replaying
// blocks to fold newly-seen mints into a coin's accumulator membership
// witness, with a bounded-depth recovery mechanism for when a replayed
// batch doesn't check out. Mirrors zerowitnesser.cpp.
package witness

import (
	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/bignum"
)

// WitnessData tracks one coin's membership witness alongside the recovery
// bookkeeping the updater needs: a snapshot to roll back to on a failed
// batch (Prev), and a last-resort full restart point (Initial). Named
// Snapshot/Recover/Reset here rather than the original's Backup/Recover/
// Reset, since "backup" elsewhere in this tree means a database backup, a
// different thing entirely.
type WitnessData struct {
	CoinValue *bignum.BigNum

	Current *accumulator.Witness
	Prev    *accumulator.Witness
	Initial *accumulator.Witness

	// Height is the chain height Current's witness is valid through:
	// Current.Verify(tipAtHeight) should hold for the accumulator
	// recorded at this height.
	Height     uint32
	PrevHeight uint32
	InitialHeight uint32
}

// NewWitnessData starts tracking coinValue's witness from initial, known
// to be valid as of initialHeight.
func NewWitnessData(coinValue *bignum.BigNum, initial *accumulator.Witness, initialHeight uint32) *WitnessData {
	return &WitnessData{
		CoinValue:     coinValue,
		Current:       initial,
		Prev:          initial.Clone(),
		Initial:       initial.Clone(),
		Height:        initialHeight,
		PrevHeight:    initialHeight,
		InitialHeight: initialHeight,
	}
}

// Snapshot copies Current into Prev, advancing the recovery point. Called
// every BlockSnapshot blocks of successful replay so Recover never has to
// roll back further than that.
func (wd *WitnessData) Snapshot() {
	wd.Prev = wd.Current.Clone()
	wd.PrevHeight = wd.Height
}

// Recover restores Current from the last snapshot, discarding any replay
// progress since.
func (wd *WitnessData) Recover() {
	wd.Current = wd.Prev.Clone()
	wd.Height = wd.PrevHeight
}

// Reset restores Current all the way back to the witness's initial state,
// the updater's last resort when Recover's snapshot also fails to verify.
func (wd *WitnessData) Reset() {
	wd.Current = wd.Initial.Clone()
	wd.Prev = wd.Initial.Clone()
	wd.Height = wd.InitialHeight
	wd.PrevHeight = wd.InitialHeight
}
