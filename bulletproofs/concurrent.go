// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import "golang.org/x/sync/errgroup"

// VerifyConcurrent runs BatchVerify over each of proofSets in parallel,
// modeling spec.md §5's "any number of read-only verifiers batching
// Bulletproofs" concurrency actor: a caller checking many blocks' worth of
// range proofs (each block's own proofs already combined into one
// BatchVerify call) need not serialize across blocks. It reports whether
// every set verified; a single bad set makes the whole call return false,
// but the call still waits for every set's check to finish before
// returning.
func VerifyConcurrent(rp *RangeParams, proofSets [][]*Proof) bool {
	g := new(errgroup.Group)
	for _, proofs := range proofSets {
		proofs := proofs
		g.Go(func() error {
			if !BatchVerify(rp, proofs) {
				return errBatchFailed
			}
			return nil
		})
	}
	return g.Wait() == nil
}

var errBatchFailed = &batchFailedError{}

type batchFailedError struct{}

func (*batchFailedError) Error() string { return "bulletproofs: a batch failed to verify" }
