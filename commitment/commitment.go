// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commitment implements Pedersen commitments over a
// bignum.GroupParams subgroup and the Σ-protocol proving that two
// commitments in different groups open to the same integer value.
package commitment

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// Commitment is a Pedersen commitment C = g^x · h^r mod p together with the
// group it was built in. The opening (x, r) is not stored here; callers that
// need to open a commitment keep it alongside separately (see coin.PrivateCoin).
type Commitment struct {
	Group *bignum.GroupParams
	Value *bignum.BigNum
}

// Commit builds a fresh commitment to x under a freshly sampled blinding
// factor r, returning both the commitment and the randomness the caller
// must remember to open it later.
func Commit(gp *bignum.GroupParams, x *bignum.BigNum) (*Commitment, *bignum.BigNum, error) {
	r, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, nil, err
	}
	return CommitWithRandomness(gp, x, r), r, nil
}

// CommitWithRandomness builds C = g^x · h^r mod p for caller-supplied
// randomness, used when a specific r must be reproduced (mint derivation,
// test fixtures).
func CommitWithRandomness(gp *bignum.GroupParams, x, r *bignum.BigNum) *Commitment {
	gx := gp.Generator.PowMod(x, gp.Modulus)
	hr := gp.AltGenerator.PowMod(r, gp.Modulus)
	return &Commitment{Group: gp, Value: gx.MulMod(hr, gp.Modulus)}
}

// Open reports whether (x, r) is a valid opening of c.
func (c *Commitment) Open(x, r *bignum.BigNum) bool {
	return CommitWithRandomness(c.Group, x, r).Value.Equal(c.Value)
}
