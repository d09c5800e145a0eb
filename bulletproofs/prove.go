// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletproofs

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// Proof is an aggregated Bulletproofs range proof: one Pedersen commitment
// per aggregated value, the polynomial-commitment round (A, S, T1, T2), the
// opened evaluation (Taux, Mu, T), and the inner-product argument's
// per-round (L, R) pairs plus its two final folded scalars.
type Proof struct {
	V          []*bignum.BigNum
	A, S       *bignum.BigNum
	T1, T2     *bignum.BigNum
	Taux, Mu   *bignum.BigNum
	T          *bignum.BigNum
	L, R       []*bignum.BigNum
	FinalA     *bignum.BigNum
	FinalB     *bignum.BigNum
}

// Prove builds an aggregated range proof that every values[i] lies in
// [0, 2^rp.BitWidth), given the Pedersen blinding factors gammas[i]. The
// number of values is rounded up to the next power of two (padded with
// commitments to 0), capped at rp.MaxValues.
func Prove(rp *RangeParams, values, gammas []*bignum.BigNum) (*Proof, error) {
	if len(values) != len(gammas) {
		return nil, newError(ErrMismatchedLengths, "values and gammas must have equal length", nil)
	}
	if len(values) == 0 {
		return nil, newError(ErrValueOutOfRange, "at least one value is required", nil)
	}

	n := rp.BitWidth
	q := rp.Group.SubgroupOrder
	p := rp.Group.Modulus
	g, h := rp.Group.Generator, rp.Group.AltGenerator

	m := nextPow2(len(values))
	if m > rp.MaxValues {
		return nil, newError(ErrTooManyValues, "too many values for this RangeParams", nil)
	}

	paddedValues := make([]*bignum.BigNum, m)
	paddedGammas := make([]*bignum.BigNum, m)
	for i := 0; i < m; i++ {
		if i < len(values) {
			if values[i].Sign() < 0 || values[i].BitLen() > n {
				return nil, newError(ErrValueOutOfRange, "value does not fit in bit width", nil)
			}
			paddedValues[i] = values[i]
			paddedGammas[i] = gammas[i]
		} else {
			paddedValues[i] = bignum.FromInt64(0)
			r, err := bignum.RandomInRange(q)
			if err != nil {
				return nil, err
			}
			paddedGammas[i] = r
		}
	}

	mn := m * n
	gBase := rp.G[:mn]
	hBase := rp.H[:mn]
	u := rp.U

	v := make([]*bignum.BigNum, m)
	for j := 0; j < m; j++ {
		v[j] = g.PowMod(paddedValues[j], p).MulMod(h.PowMod(paddedGammas[j], p), p)
	}

	aL := make([]*bignum.BigNum, mn)
	aR := make([]*bignum.BigNum, mn)
	one := bignum.FromInt64(1)
	zero := bignum.FromInt64(0)
	for j := 0; j < m; j++ {
		bi := paddedValues[j].Int()
		for i := 0; i < n; i++ {
			if bi.Bit(i) == 1 {
				aL[j*n+i] = one
				aR[j*n+i] = zero
			} else {
				aL[j*n+i] = zero
				aR[j*n+i] = one.Neg().Mod(q)
			}
		}
	}

	alpha, err := bignum.RandomInRange(q)
	if err != nil {
		return nil, err
	}
	sL, err := randomVector(mn, q)
	if err != nil {
		return nil, err
	}
	sR, err := randomVector(mn, q)
	if err != nil {
		return nil, err
	}
	rho, err := bignum.RandomInRange(q)
	if err != nil {
		return nil, err
	}

	a := h.PowMod(alpha, p).MulMod(VectorExponent(concat(gBase, hBase), concat(aL, aR), p), p)
	s := h.PowMod(rho, p).MulMod(VectorExponent(concat(gBase, hBase), concat(sL, sR), p), p)

	y := bignum.HashChallenge(q, append(bnBytes(v), a.SerializeBytes(), s.SerializeBytes())...)
	z := bignum.HashChallenge(q, y.SerializeBytes())

	zpow := VectorPowersMod(z, m+2, q)
	twoN := VectorPowersMod(bignum.FromInt64(2), n, q)
	yMN := VectorPowersMod(y, mn, q)

	l0 := VectorSubScalarMod(aL, z, q)
	l1 := sL

	aRplusZ := VectorAddMod(aR, repeat(z, mn), q)
	r0 := Hadamard(aRplusZ, yMN, q)
	zerosTwos := make([]*bignum.BigNum, mn)
	for j := 0; j < m; j++ {
		zj2 := zpow[j+2]
		for i := 0; i < n; i++ {
			zerosTwos[j*n+i] = zj2.MulMod(twoN[i], q)
		}
	}
	r0 = VectorAddMod(r0, zerosTwos, q)
	r1 := Hadamard(yMN, sR, q)

	t1 := InnerProduct(l0, r1, q).AddMod(InnerProduct(l1, r0, q), q)
	t2 := InnerProduct(l1, r1, q)

	tau1, err := bignum.RandomInRange(q)
	if err != nil {
		return nil, err
	}
	tau2, err := bignum.RandomInRange(q)
	if err != nil {
		return nil, err
	}
	t1Comm := g.PowMod(t1, p).MulMod(h.PowMod(tau1, p), p)
	t2Comm := g.PowMod(t2, p).MulMod(h.PowMod(tau2, p), p)

	x := bignum.HashChallenge(q, z.SerializeBytes(), t1Comm.SerializeBytes(), t2Comm.SerializeBytes())

	l := VectorAddMod(l0, VectorScalarMod(l1, x, q), q)
	r := VectorAddMod(r0, VectorScalarMod(r1, x, q), q)
	t := InnerProduct(l, r, q)

	taux := tau2.MulMod(x.MulMod(x, q), q).AddMod(tau1.MulMod(x, q), q)
	for j := 1; j <= m; j++ {
		taux = taux.AddMod(zpow[j+1].MulMod(paddedGammas[j-1], q), q)
	}
	mu := x.MulMod(rho, q).AddMod(alpha, q)

	xip := bignum.HashChallenge(q, x.SerializeBytes(), taux.SerializeBytes(), mu.SerializeBytes(), t.SerializeBytes())

	yinv := y.Inverse(q)
	hprime := make([]*bignum.BigNum, mn)
	yinvpow := bignum.FromInt64(1)
	for i := 0; i < mn; i++ {
		hprime[i] = hBase[i].PowMod(yinvpow, p)
		yinvpow = yinvpow.MulMod(yinv, q)
	}
	gprime := append([]*bignum.BigNum{}, gBase...)
	aprime := append([]*bignum.BigNum{}, l...)
	bprime := append([]*bignum.BigNum{}, r...)

	logMN := log2(mn)
	ls := make([]*bignum.BigNum, logMN)
	rs := make([]*bignum.BigNum, logMN)

	nprime := mn
	prevChallenge := xip
	for round := 0; nprime > 1; round++ {
		nprime /= 2

		cL := InnerProduct(aprime[:nprime], bprime[nprime:], q)
		cR := InnerProduct(aprime[nprime:], bprime[:nprime], q)

		lk := VectorExponent(concat(gprime[nprime:], hprime[:nprime]), concat(aprime[:nprime], bprime[nprime:]), p)
		lk = lk.MulMod(u.PowMod(cL.MulMod(xip, q), p), p)

		rk := VectorExponent(concat(gprime[:nprime], hprime[nprime:]), concat(aprime[nprime:], bprime[:nprime]), p)
		rk = rk.MulMod(u.PowMod(cR.MulMod(xip, q), p), p)

		ls[round] = lk
		rs[round] = rk

		w := bignum.HashChallenge(q, prevChallenge.SerializeBytes(), lk.SerializeBytes(), rk.SerializeBytes())
		prevChallenge = w
		winv := w.Inverse(q)

		newG := make([]*bignum.BigNum, nprime)
		newH := make([]*bignum.BigNum, nprime)
		newA := make([]*bignum.BigNum, nprime)
		newB := make([]*bignum.BigNum, nprime)
		for i := 0; i < nprime; i++ {
			newG[i] = gprime[i].PowMod(winv, p).MulMod(gprime[nprime+i].PowMod(w, p), p)
			newH[i] = hprime[i].PowMod(w, p).MulMod(hprime[nprime+i].PowMod(winv, p), p)
			newA[i] = aprime[i].MulMod(w, q).AddMod(aprime[nprime+i].MulMod(winv, q), q)
			newB[i] = bprime[i].MulMod(winv, q).AddMod(bprime[nprime+i].MulMod(w, q), q)
		}
		gprime, hprime, aprime, bprime = newG, newH, newA, newB
	}

	return &Proof{
		V: v, A: a, S: s, T1: t1Comm, T2: t2Comm,
		Taux: taux, Mu: mu, T: t,
		L: ls, R: rs, FinalA: aprime[0], FinalB: bprime[0],
	}, nil
}

func randomVector(n int, q *bignum.BigNum) ([]*bignum.BigNum, error) {
	out := make([]*bignum.BigNum, n)
	for i := range out {
		v, err := bignum.RandomInRange(q)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func repeat(x *bignum.BigNum, n int) []*bignum.BigNum {
	out := make([]*bignum.BigNum, n)
	for i := range out {
		out[i] = x
	}
	return out
}

func concat(a, b []*bignum.BigNum) []*bignum.BigNum {
	out := make([]*bignum.BigNum, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func bnBytes(v []*bignum.BigNum) [][]byte {
	out := make([][]byte, len(v))
	for i, b := range v {
		out[i] = b.SerializeBytes()
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func log2(n int) int {
	k := 0
	for (1 << k) < n {
		k++
	}
	return k
}
