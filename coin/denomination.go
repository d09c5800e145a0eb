// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"github.com/btcsuite/btcd/btcutil"
)

// Denomination is face-value metadata stamped on a minted coin, exactly as
// in the original: it plays no role in what commitment values Mint will
// accept (every denomination shares the same (minCoin, maxCoin] admissible
// range — see Coin.cpp), and every denomination still accumulates into the
// single global accumulator rather than a denomination-keyed one (see
// DESIGN.md's Open Question on AccumulatorMap).
type Denomination uint8

const (
	Denom1 Denomination = iota
	Denom10
	Denom100
	Denom1000
	denomCount
)

// denomWeight returns d's face value in whole coins, feeding Amount and
// the recipient planner's greedy decomposition.
func (d Denomination) denomWeight() int64 {
	switch d {
	case Denom1:
		return 1
	case Denom10:
		return 10
	case Denom100:
		return 100
	case Denom1000:
		return 1000
	default:
		return 1
	}
}

// Denominations lists every denomination from largest to smallest, the
// order a greedy recipient planner wants to try first.
var Denominations = []Denomination{Denom1000, Denom100, Denom10, Denom1}

// Amount returns d's face value, mirroring
// ZerocoinDenominationToInt(d) * COIN from the original's recipient planner.
func (d Denomination) Amount() btcutil.Amount {
	return btcutil.Amount(d.denomWeight()) * btcutil.SatoshiPerBitcoin
}

// String implements fmt.Stringer for logging.
func (d Denomination) String() string {
	switch d {
	case Denom1:
		return "1"
	case Denom10:
		return "10"
	case Denom100:
		return "100"
	case Denom1000:
		return "1000"
	default:
		return "unknown"
	}
}
