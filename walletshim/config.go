// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletshim is the wallet-side glue between a send request, the
// coin-denomination recipient planner, and CoinSpend signing: it decides how
// to break an outgoing amount into mint recipients plus change, and drives
// spend.Sign against the chain engine's current tip. Mirrors zerowallet.h.
package walletshim

// Config holds the wallet shim's tunables.
type Config struct {
	// ChallengeBits is the Fiat-Shamir challenge width passed through to
	// spend.Sign for every CoinSpend this package produces.
	ChallengeBits int `long:"challenge_bits" default:"256" description:"challenge width used when signing a coin spend"`

	// MintMaturity is how many confirmations a mint needs before the
	// wallet will offer it as spendable, mirroring zerowallet.h's
	// DEFAULT_MINT_MATURITY.
	MintMaturity uint32 `long:"mint_maturity" default:"10" description:"confirmations required before a mint is considered spendable"`
}

// DefaultConfig returns a Config with the same defaults as the struct tags
// above.
func DefaultConfig() *Config {
	return &Config{
		ChallengeBits: 256,
		MintMaturity:  10,
	}
}
