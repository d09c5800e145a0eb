// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bulletproofs implements the aggregated Bulletproofs range proof
// spec.md §4.7 uses to show a Pedersen-committed value lies in [0, 2^n)
// without revealing it, plus batch verification across independent proofs.
package bulletproofs

import (
	"github.com/shieldcoin/zerocore/bignum"
)

// RangeParams slices a GroupParams' vector generators into the g_i/h_i
// bases and the single inner-product base u a Bulletproofs proof needs,
// following spec.md §3's "gis[] ... used by Bulletproofs and vector
// commitments" — the same group's Vector field the commitment package
// would draw additional generators from for a vector Pedersen commitment.
type RangeParams struct {
	Group     *bignum.GroupParams
	BitWidth  int
	MaxValues int
	G         []*bignum.BigNum
	H         []*bignum.BigNum
	U         *bignum.BigNum
}

// NewRangeParams builds a RangeParams supporting up to maxValues aggregated
// bitWidth-bit range proofs, drawn from gp.Vector. gp.Vector must hold at
// least 2*bitWidth*maxValues+1 generators.
func NewRangeParams(gp *bignum.GroupParams, bitWidth, maxValues int) (*RangeParams, error) {
	if bitWidth <= 0 || maxValues <= 0 {
		return nil, newError(ErrValueOutOfRange, "bitWidth and maxValues must be positive", nil)
	}
	need := 2*bitWidth*maxValues + 1
	if len(gp.Vector) < need {
		return nil, newError(ErrInsufficientGenerators,
			"group vector too short for requested bitWidth/maxValues", nil)
	}
	mn := bitWidth * maxValues
	return &RangeParams{
		Group:     gp,
		BitWidth:  bitWidth,
		MaxValues: maxValues,
		G:         gp.Vector[:mn],
		H:         gp.Vector[mn : 2*mn],
		U:         gp.Vector[2*mn],
	}, nil
}
