// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package witness

// Config holds the witness updater's tunables.
type Config struct {
	// BlocksPerRound bounds how many blocks a single Advance call replays
	// before checking the witness against the chain's recorded
	// accumulator value, per spec.md §4.8's BLOCKS_PER_ROUND.
	BlocksPerRound uint32 `long:"witnesser_blocks_per_round" default:"500" description:"blocks replayed per witness update batch"`

	// BlockSnapshot is how many successfully-replayed blocks accumulate
	// before WitnessData.Snapshot is called to advance the recovery
	// point, bounding how far Recover can roll back, per spec.md §4.8's
	// BLOCK_SNAPSHOT.
	BlockSnapshot uint32 `long:"witnesser_block_snapshot" default:"10" description:"blocks between witness recovery-point snapshots"`
}

// DefaultConfig returns a Config with the same defaults as the struct tags
// above.
func DefaultConfig() *Config {
	return &Config{
		BlocksPerRound: 500,
		BlockSnapshot:  10,
	}
}
