// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletshim

import (
	"math/rand"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/shieldcoin/zerocore/coin"
)

// Recipient is one output a planned transaction should pay: either a plain
// payment to pkScript, or a mint of the given denomination to the same
// script (interpreted by the output-construction layer as a zerocoin mint
// script rather than a plain payment one).
type Recipient struct {
	PkScript     []byte
	Amount       btcutil.Amount
	IsMint       bool
	Denomination coin.Denomination
}

// Planner breaks a send amount down into mint-denomination recipients (when
// minting is requested) or a single plaintext recipient (otherwise),
// mirroring zerowallet.h's DestinationToVecRecipients/MintVecRecipients.
type Planner struct {
	// Shuffle reorders a freshly-built mint recipient list, mirroring
	// the original's random_shuffle so an observer watching output
	// order across transactions cannot infer denomination composition
	// from position alone. Defaults to a Fisher-Yates shuffle using
	// math/rand; tests substitute a deterministic no-op.
	Shuffle func([]Recipient)
}

// NewPlanner returns a Planner with the default randomized shuffle.
func NewPlanner() *Planner {
	return &Planner{Shuffle: defaultShuffle}
}

func defaultShuffle(r []Recipient) {
	rand.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
}

// PlanRecipients breaks amount down into recipients paying pkScript. When
// mint is false it returns a single plaintext recipient for the full
// amount, matching the original's non-mint-script branch. When mint is
// true it decomposes amount into Denominations-sized mints that cover it
// exactly (not always the fewest: 3000 becomes 30 mints rather than three
// 1000s), largest denomination first, falling back to
// smaller denominations once the largest no longer fits — mirroring the
// original's two-pass loop (bulk-fill with one of each denomination while a
// full set still fits, then top up with individual denominations). amount
// must be an exact multiple of the smallest denomination; any remainder is
// rejected rather than silently dropped, since the original's loop would
// otherwise spin forever below minDenomination.
func (p *Planner) PlanRecipients(amount btcutil.Amount, pkScript []byte, mint bool) ([]Recipient, error) {
	if amount <= 0 {
		return nil, newError(ErrNoRecipients, "amount must be positive", nil)
	}

	if !mint {
		return []Recipient{{PkScript: pkScript, Amount: amount, IsMint: false}}, nil
	}

	var sumOfOne btcutil.Amount
	minDenom := coin.Denominations[len(coin.Denominations)-1].Amount()
	for _, d := range coin.Denominations {
		sumOfOne += d.Amount()
	}
	if amount%minDenom != 0 {
		return nil, newError(ErrNoRecipients, "amount is not a multiple of the smallest denomination", nil)
	}

	var recipients []Recipient
	remaining := amount
	for remaining >= sumOfOne {
		for _, d := range coin.Denominations {
			recipients = append(recipients, Recipient{PkScript: pkScript, Amount: d.Amount(), IsMint: true, Denomination: d})
		}
		remaining -= sumOfOne
	}
	for _, d := range coin.Denominations {
		for remaining >= d.Amount() {
			recipients = append(recipients, Recipient{PkScript: pkScript, Amount: d.Amount(), IsMint: true, Denomination: d})
			remaining -= d.Amount()
		}
	}

	if p.Shuffle != nil {
		p.Shuffle(recipients)
	}
	return recipients, nil
}
