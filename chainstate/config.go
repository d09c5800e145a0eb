// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import (
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

// Config holds the chain engine's tunables, read from the same
// configuration file/flag surface as the rest of the wallet via
// go-flags struct tags.
type Config struct {
	// ZKPIterations is the number of Rabin-Miller iterations used when
	// this engine itself needs to test primality (coin.IsValid is called
	// with ap.ZKPIterations already; this configures re-checks the
	// engine does independently of the accumulator parameter set).
	ZKPIterations int `long:"zkp_iterations" default:"80" description:"Rabin-Miller iterations used to test primality of coin commitments"`

	// CoinSpendCacheSize bounds the verified/failed spend-proof cache.
	// Once the number of cached entries exceeds this, the cache is
	// cleared outright rather than evicted with an LRU policy.
	CoinSpendCacheSize int `long:"coinspend_cache_size" default:"1000" description:"maximum number of cached coin spend verification results"`

	// MinMintSecurity is the minimum number of coins that must have been
	// minted at heights above a coin's own mint height before that coin
	// may be spent.
	MinMintSecurity int `long:"min_mint_security" default:"100" description:"minimum number of later mints a minted coin's anonymity set must reach before it can be spent"`

	// MinAcceptedMintValue, if set, rejects incoming mints below this
	// commitment value even if the accumulator parameter set's own
	// MinCoinValue would allow them. Lets an operator run a stricter,
	// locally-configured anti-dust floor without a protocol change.
	MinAcceptedMintValue *bignum.BigFlag `long:"min_accepted_mint_value" description:"reject mints below this commitment value, on top of the accumulator parameters' own floor"`
}

// DefaultConfig returns a Config with the same defaults as the struct tags
// above, for callers constructing one without going through go-flags.
func DefaultConfig() *Config {
	return &Config{
		ZKPIterations:      params.DefaultZKPIterations,
		CoinSpendCacheSize: 1000,
		MinMintSecurity:    100,
	}
}
