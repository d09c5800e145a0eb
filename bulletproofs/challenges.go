// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// deriveChallenges recomputes every Fiat-Shamir challenge a proof depends
// on, from its public transcript alone. Verify calls this directly; Prove
// derives the same sequence of challenges inline as it goes, since each one
// (y, z, then x, then xip, then each round's w) feeds the very vectors used
// to compute the next round's L/R pair and isn't available until that round
// completes. The two derivations are written out separately but compute the
// identical hash inputs in the identical order, so they can't diverge in
// practice; unlike Verify, Prove can't call this helper directly because it
// needs the inner-product round's intermediate w values before L/R for that
// round exist, not just after.
//
// The original bulletproof_rangeproof.cpp feeds every challenge from one
// running CHash256 object, so each challenge implicitly commits to the
// entire transcript seen so far. This chains explicitly instead: each
// challenge's input includes the previous challenge value, which is
// equivalent for soundness (unpredictability of each challenge given
// everything before it) but changes which literal bytes get hashed.
func deriveChallenges(q *bignum.BigNum, v []*bignum.BigNum, a, s, t1, t2, taux, mu, t *bignum.BigNum, l, r []*bignum.BigNum) (y, z, x, xip *bignum.BigNum, w []*bignum.BigNum) {
	parts := bnBytes(v)
	parts = append(parts, a.SerializeBytes(), s.SerializeBytes())
	y = bignum.HashChallenge(q, parts...)
	z = bignum.HashChallenge(q, y.SerializeBytes())
	x = bignum.HashChallenge(q, z.SerializeBytes(), t1.SerializeBytes(), t2.SerializeBytes())
	xip = bignum.HashChallenge(q, x.SerializeBytes(), taux.SerializeBytes(), mu.SerializeBytes(), t.SerializeBytes())

	w = make([]*bignum.BigNum, len(l))
	prev := xip
	for k := range l {
		w[k] = bignum.HashChallenge(q, prev.SerializeBytes(), l[k].SerializeBytes(), r[k].SerializeBytes())
		prev = w[k]
	}
	return y, z, x, xip, w
}
