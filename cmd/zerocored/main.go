// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// zerocored parses the chain engine's and witness updater's go-flags tagged
// Config structs from the command line and config file, following the
// root config.go pattern this module's daemon tunables are modeled on, and
// reports the resolved settings. It does not run a server: wiring a chain
// engine to a live block source is left to the importing application.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/shieldcoin/zerocore/chainstate"
	"github.com/shieldcoin/zerocore/walletshim"
	"github.com/shieldcoin/zerocore/witness"
)

type options struct {
	ConfigFile string `short:"C" long:"configfile" description:"path to a config file" default:"zerocored.conf"`

	Chain   chainstate.Config `group:"Chain State Options"`
	Witness witness.Config    `group:"Witness Updater Options"`
	Wallet  walletshim.Config `group:"Wallet Shim Options"`
}

func main() {
	opts := options{
		Chain:   *chainstate.DefaultConfig(),
		Witness: *witness.DefaultConfig(),
		Wallet:  *walletshim.DefaultConfig(),
	}

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("chain state: zkp_iterations=%d coinspend_cache_size=%d min_mint_security=%d\n",
		opts.Chain.ZKPIterations, opts.Chain.CoinSpendCacheSize, opts.Chain.MinMintSecurity)
	fmt.Printf("witness updater: blocks_per_round=%d block_snapshot=%d\n",
		opts.Witness.BlocksPerRound, opts.Witness.BlockSnapshot)
	fmt.Printf("wallet shim: challenge_bits=%d mint_maturity=%d\n",
		opts.Wallet.ChallengeBits, opts.Wallet.MintMaturity)
}
