// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package witness

import (
	"github.com/shieldcoin/zerocore/chainstate"
)

// Updater advances WitnessData entries toward the chain tip, in batches,
// with the snapshot/recover/reset bookkeeping spec.md §4.8 describes for
// the witness updater's cooperative per-round loop. It holds no per-wallet
// state itself; callers own their WitnessData entries and call Advance
// once per round, sleeping between calls the way spec.md §4.8's "~250ms
// between rounds" describes — that sleep is an operational detail of the
// long-running caller, not something this type needs to do itself.
type Updater struct {
	cfg *Config
}

// NewUpdater returns an Updater using cfg, or DefaultConfig if cfg is nil.
func NewUpdater(cfg *Config) *Updater {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Updater{cfg: cfg}
}

// Advance replays blocks from wd.Height+1 up to tipHeight, in batches of
// at most u.cfg.BlocksPerRound, folding every other mint found into
// wd.Current and checking the result against the chain's recorded
// accumulator value at the end of each batch. A batch that fails to
// verify is retried once after Recover; if that also fails, wd is Reset
// to its initial state and ErrRecoveryFailed is returned so the caller
// can decide whether to retry immediately or back off.
func (u *Updater) Advance(e *chainstate.Engine, wd *WitnessData, tipHeight uint32) error {
	var blocksSinceSnapshot uint32

	for wd.Height < tipHeight {
		batchEnd := wd.Height + u.cfg.BlocksPerRound
		if batchEnd > tipHeight {
			batchEnd = tipHeight
		}

		ok, err := u.tryBatch(e, wd, batchEnd)
		if err != nil {
			return err
		}
		if ok {
			blocksSinceSnapshot += batchEnd - wd.Height
			wd.Height = batchEnd
			if blocksSinceSnapshot >= u.cfg.BlockSnapshot {
				wd.Snapshot()
				blocksSinceSnapshot = 0
			}
			continue
		}

		log.Debugf("witness batch to height=%d failed to verify, recovering from height=%d",
			batchEnd, wd.PrevHeight)
		wd.Recover()
		recoveredBatchEnd := wd.Height + u.cfg.BlocksPerRound
		if recoveredBatchEnd > tipHeight {
			recoveredBatchEnd = tipHeight
		}
		ok, err = u.tryBatch(e, wd, recoveredBatchEnd)
		if err != nil {
			return err
		}
		if ok {
			wd.Height = recoveredBatchEnd
			blocksSinceSnapshot = 0
			continue
		}

		log.Warnf("witness recovery also failed, resetting to initial height=%d", wd.InitialHeight)
		wd.Reset()
		return newError(ErrRecoveryFailed, "witness batch failed to verify after recovery", nil)
	}

	return nil
}

// tryBatch replays (wd.Height, batchEnd] on a scratch copy of wd.Current
// and, if the result verifies against the chain's recorded accumulator at
// batchEnd, commits it into wd.Current.
func (u *Updater) tryBatch(e *chainstate.Engine, wd *WitnessData, batchEnd uint32) (bool, error) {
	mints, err := e.MintsInRange(wd.Height, batchEnd)
	if err != nil {
		return false, newError(ErrChainState, "replaying blocks for witness update", err)
	}

	trial := wd.Current.Clone()
	for _, v := range mints {
		// A witness accumulates every *other* coin of the same
		// generation; the coin's own mint never enters its own witness.
		if v.Cmp(wd.CoinValue) == 0 {
			continue
		}
		trial.AddElement(v)
	}

	tipAtBatchEnd, err := e.AccumulatorAt(batchEnd)
	if err != nil {
		return false, newError(ErrChainState, "reading accumulator snapshot", err)
	}

	if !trial.Verify(tipAtBatchEnd) {
		return false, nil
	}

	wd.Current = trial
	return true, nil
}
