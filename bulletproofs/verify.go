// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// Verify checks a single aggregated range proof.
func Verify(rp *RangeParams, proof *Proof) bool {
	return BatchVerify(rp, []*Proof{proof})
}

// BatchVerify checks a batch of range proofs in one combined
// multiexponentiation, each weighted by a pair of independent random
// scalars drawn per proof, per spec.md §4.7's batch-verification
// requirement. Every proof in the batch must aggregate the same number of
// values (the same M): combining proofs with different M into one shared
// per-index accumulator needs bookkeeping this package does not implement,
// and is documented as a deliberate simplification in DESIGN.md.
func BatchVerify(rp *RangeParams, proofs []*Proof) bool {
	if len(proofs) == 0 {
		return false
	}

	q := rp.Group.SubgroupOrder
	p := rp.Group.Modulus
	g, h := rp.Group.Generator, rp.Group.AltGenerator
	n := rp.BitWidth

	m := len(proofs[0].V)
	mn := m * n
	if mn == 0 || mn > len(rp.G) || mn > len(rp.H) {
		return false
	}
	logMN := log2(mn)

	gis := rp.G[:mn]
	his := rp.H[:mn]

	ip12 := SumPowers(bignum.FromInt64(2), n, q)

	zero := bignum.FromInt64(0)
	y0 := zero
	y1 := zero
	z1 := zero
	z3 := zero
	z4 := make([]*bignum.BigNum, mn)
	z5 := make([]*bignum.BigNum, mn)
	for i := range z4 {
		z4[i] = zero
		z5[i] = zero
	}

	y2 := bignum.FromInt64(1)
	y3 := bignum.FromInt64(1)
	y4 := bignum.FromInt64(1)
	z0 := bignum.FromInt64(1)
	z2 := bignum.FromInt64(1)

	for _, proof := range proofs {
		if len(proof.V) != m || len(proof.L) != logMN || len(proof.R) != logMN {
			return false
		}

		wy, err := randomNonzero(q)
		if err != nil {
			return false
		}
		wz, err := randomNonzero(q)
		if err != nil {
			return false
		}

		y, z, x, xip, w := deriveChallenges(q, proof.V, proof.A, proof.S, proof.T1, proof.T2,
			proof.Taux, proof.Mu, proof.T, proof.L, proof.R)

		zpow := VectorPowersMod(z, m+3, q)
		yMN := SumPowers(y, mn, q)

		k := zero.Sub(zpow[2].Mul(yMN)).Mod(q)
		for j := 1; j <= m; j++ {
			k = k.Sub(zpow[j+2].Mul(ip12)).Mod(q)
		}
		delta := k.Add(z.Mul(yMN)).Mod(q)

		y0 = y0.AddMod(proof.Taux.MulMod(wy, q), q)
		y1 = y1.AddMod(proof.T.Sub(delta).Mod(q).MulMod(wy, q), q)

		vFactor := bignum.FromInt64(1)
		for j := 0; j < m; j++ {
			vFactor = vFactor.MulMod(proof.V[j].PowMod(zpow[j+2], p), p)
		}
		y2 = y2.MulMod(vFactor.PowMod(wy, p), p)
		y3 = y3.MulMod(proof.T1.PowMod(x.MulMod(wy, q), p), p)
		y4 = y4.MulMod(proof.T2.PowMod(x.MulMod(x, q).MulMod(wy, q), p), p)

		aTerm := proof.A.MulMod(proof.S.PowMod(x, p), p)
		z0 = z0.MulMod(aTerm.PowMod(wz, p), p)
		z1 = z1.AddMod(proof.Mu.MulMod(wz, q), q)

		lrFactor := bignum.FromInt64(1)
		for i := 0; i < logMN; i++ {
			wi2 := w[i].MulMod(w[i], q)
			wiInv2 := wi2.Inverse(q)
			lrFactor = lrFactor.MulMod(proof.L[i].PowMod(wi2, p), p)
			lrFactor = lrFactor.MulMod(proof.R[i].PowMod(wiInv2, p), p)
		}
		z2 = z2.MulMod(lrFactor.PowMod(wz, p), p)

		ab := proof.FinalA.MulMod(proof.FinalB, q)
		z3 = z3.AddMod(proof.T.Sub(ab).Mod(q).MulMod(xip, q).MulMod(wz, q), q)

		yinv := y.Inverse(q)
		for j := 0; j < mn; j++ {
			gScalar := proof.FinalA
			hScalar := proof.FinalB.MulMod(yinv.PowMod(bignum.FromInt64(int64(j)), q), q)

			idx := j
			for round := logMN - 1; round >= 0; round-- {
				bit := (idx >> round) & 1
				wk := w[logMN-1-round]
				if bit == 0 {
					gScalar = gScalar.MulMod(wk.Inverse(q), q)
					hScalar = hScalar.MulMod(wk, q)
				} else {
					gScalar = gScalar.MulMod(wk, q)
					hScalar = hScalar.MulMod(wk.Inverse(q), q)
					idx -= 1 << round
				}
			}

			gScalar = gScalar.AddMod(z, q)

			jBig := bignum.FromInt64(int64(j))
			exp2 := bignum.FromInt64(int64(j % n))
			twoPow := bignum.FromInt64(2).PowMod(exp2, q)
			zExp := zpow[2+j/n]
			term2 := zExp.MulMod(twoPow, q).MulMod(yinv.PowMod(jBig, q), q)
			hScalar = hScalar.Sub(z).Sub(term2).Mod(q)

			z4[j] = z4[j].AddMod(gScalar.MulMod(wz, q), q)
			z5[j] = z5[j].AddMod(hScalar.MulMod(wz, q), q)
		}
	}

	check1 := g.PowMod(y1, p).MulMod(h.PowMod(y0, p), p)
	check1 = check1.MulMod(y2.Inverse(p), p)
	check1 = check1.MulMod(y3.Inverse(p), p)
	check1 = check1.MulMod(y4.Inverse(p), p)
	if !check1.Equal(bignum.FromInt64(1)) {
		return false
	}

	check2 := z0
	check2 = check2.MulMod(h.PowMod(z1, p).Inverse(p), p)
	check2 = check2.MulMod(z2, p)
	check2 = check2.MulMod(rp.U.PowMod(z3, p), p)
	gExp := bignum.FromInt64(1)
	hExp := bignum.FromInt64(1)
	for i := 0; i < mn; i++ {
		gExp = gExp.MulMod(gis[i].PowMod(z4[i], p), p)
		hExp = hExp.MulMod(his[i].PowMod(z5[i], p), p)
	}
	check2 = check2.MulMod(gExp.Inverse(p), p)
	check2 = check2.MulMod(hExp.Inverse(p), p)

	return check2.Equal(bignum.FromInt64(1))
}

func randomNonzero(q *bignum.BigNum) (*bignum.BigNum, error) {
	for {
		v, err := bignum.RandomInRange(q)
		if err != nil {
			return nil, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}
