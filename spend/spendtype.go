// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spend implements CoinSpend: the combined proof that a private
// coin is both accumulated on chain and being revealed exactly once,
// binding a transaction's metadata via its serial-number signature of
// knowledge.
package spend

import "fmt"

// SpendType discriminates why a serial number is being revealed, following
// libzerocoin's SpendType.h. This is folded into the signature hash so a
// proof generated for one purpose cannot be replayed as another.
type SpendType uint8

const (
	// SpendRegular is an ordinary spend to a new destination.
	SpendRegular SpendType = iota

	// SpendDonation funds a proposal/treasury-style payment.
	SpendDonation

	// SpendStake is consumed when claiming a staking reward.
	SpendStake

	// SpendFeeChange returns leftover value as change within the same
	// transaction that spent the original coin.
	SpendFeeChange
)

var spendTypeStrings = map[SpendType]string{
	SpendRegular:   "SpendRegular",
	SpendDonation:  "SpendDonation",
	SpendStake:     "SpendStake",
	SpendFeeChange: "SpendFeeChange",
}

func (t SpendType) String() string {
	if s := spendTypeStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("SpendType(%d)", uint8(t))
}
