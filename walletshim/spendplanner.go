// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletshim

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/chainstate"
	"github.com/shieldcoin/zerocore/coin"
	"github.com/shieldcoin/zerocore/params"
	"github.com/shieldcoin/zerocore/spend"
)

// SpendPlanner assembles and signs a CoinSpend against the chain engine's
// current tip, mirroring zerowallet.h's PrepareAndSignCoinSpend.
type SpendPlanner struct {
	cfg *Config
}

// NewSpendPlanner returns a SpendPlanner using cfg, or DefaultConfig if cfg
// is nil.
func NewSpendPlanner(cfg *Config) *SpendPlanner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SpendPlanner{cfg: cfg}
}

// SignSpend checks pc's mint has matured past the configured confirmation
// depth, then signs a CoinSpend proving pc is accumulated into e's current
// tip and revealing its serial number bound to ptxHash. witness must
// already be caught up to that tip (see package witness); callers that
// drive a witness updater pass its WitnessData.Current here.
func (sp *SpendPlanner) SignSpend(zp *params.ZeroParams, e *chainstate.Engine, pc *coin.PrivateCoin,
	witness *accumulator.Witness, mintHeight uint32, ptxHash chainhash.Hash,
	spendType spend.SpendType) (*spend.CoinSpend, error) {

	tip, tipHeight, ok, err := e.Tip()
	if err != nil {
		return nil, newError(ErrChainState, "reading chain tip", err)
	}
	if !ok {
		return nil, newError(ErrChainState, "chain has no blocks yet", nil)
	}

	if tipHeight < mintHeight || tipHeight-mintHeight < sp.cfg.MintMaturity {
		return nil, newError(ErrMintTooYoung, "mint has not reached the required confirmation depth", nil)
	}
	if err := e.CheckMintSecurity(mintHeight); err != nil {
		return nil, newError(ErrMintTooYoung, "coin's anonymity set has not aged enough to spend", err)
	}

	checksum, ok, err := e.ChecksumAt(tipHeight)
	if err != nil {
		return nil, newError(ErrChainState, "reading tip checksum", err)
	}
	if !ok {
		return nil, newError(ErrChainState, "tip has no block index entry", nil)
	}

	cs, err := spend.Sign(zp, pc, tip, checksum, witness, ptxHash, spendType, sp.cfg.ChallengeBits)
	if err != nil {
		if _, ok := err.(spend.Error); ok {
			return nil, newError(ErrWitnessInvalid, "signing coin spend", err)
		}
		return nil, err
	}
	return cs, nil
}
