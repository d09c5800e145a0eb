// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin implements minting and recovering Zerocoin-style public/
// private coins: a Pedersen commitment to an ECDH-derived serial number,
// blinded for a specific recipient, accepted only if the resulting
// commitment value is prime and within the accumulator's admissible range.
package coin

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

// CurrentVersion is the version byte stamped on every newly minted coin.
const CurrentVersion uint8 = 1

// PublicCoin is the half of a Zerocoin-style coin published on chain: a
// commitment value, the denomination it was minted at, the ephemeral
// public key the recipient needs for ECDH recovery, and an obfuscated
// payment identifier carrying out-of-band metadata without revealing it to
// non-recipients.
type PublicCoin struct {
	Version        uint8
	Denomination   Denomination
	Value          *bignum.BigNum
	EphemeralPubKey *secp256k1.PublicKey
	ObfuscatedPaymentID *bignum.BigNum
}

// Mint draws a fresh ephemeral key pair and, via ECDH against destPubKey,
// derives a serial number and randomness blinded by blindingCommitment. It
// repeats until the resulting commitment is prime and within the
// accumulator's admissible coin-value range, up to MaxMintAttempts,
// following spec.md §4.3 steps 1-5. Denomination is carried on the
// resulting coin purely as metadata — spec.md §4.3 step 5's acceptance
// test is v ∈ (minCoin, maxCoin] for every denomination alike, matching
// Coin.cpp's commitmentValue check, which never varies the accepted range
// by denomination.
func Mint(gp *bignum.GroupParams, d Denomination, destPubKey *secp256k1.PublicKey,
	blindingCommitment *bignum.BigNum, paymentID *bignum.BigNum,
	ap *params.AccParams) (*PublicCoin, *secp256k1.PrivateKey, *bignum.BigNum, *bignum.BigNum, error) {

	halfQ := new(big.Int).Rsh(gp.SubgroupOrder.Int(), 1)
	half := bignum.New(halfQ)

	for attempt := 0; attempt < MaxMintAttempts; attempt++ {
		ephPriv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, nil, nil, nil, err
		}

		z := ecdhSecret(ephPriv, destPubKey)
		s := bignum.FromBytes(hashOnce(z)).Mod(half)
		r := bignum.FromBytes(hashTwice(z)).Mod(half)

		v := commitmentValue(gp, s, blindingCommitment, r)
		// Same open/closed convention as IsValid: (MinCoinValue, MaxCoinValue].
		if v.Cmp(ap.MinCoinValue) <= 0 || v.Cmp(ap.MaxCoinValue) > 0 {
			continue
		}
		if !v.IsPrime(ap.ZKPIterations) {
			continue
		}

		pc := &PublicCoin{
			Version:             CurrentVersion,
			Denomination:        d,
			Value:               v,
			EphemeralPubKey:     ephPriv.PubKey(),
			ObfuscatedPaymentID: paymentID,
		}
		log.Debugf("minted coin denom=%v value=%v after %d attempts", d, v, attempt+1)
		return pc, ephPriv, s, r, nil
	}

	return nil, nil, nil, nil, newError(ErrMintExhausted,
		"exceeded MaxMintAttempts searching for a prime commitment", nil)
}

// commitmentValue computes v = g^s · B · h^r mod p, the coin's published
// commitment value.
func commitmentValue(gp *bignum.GroupParams, s, blindingCommitment, r *bignum.BigNum) *bignum.BigNum {
	gs := gp.Generator.PowMod(s, gp.Modulus)
	hr := gp.AltGenerator.PowMod(r, gp.Modulus)
	return gs.MulMod(blindingCommitment, gp.Modulus).MulMod(hr, gp.Modulus)
}

// IsValid checks that the public coin's value lies in the accumulator's
// admissible range and is prime, per spec.md §4.3's isValid().
func (pc *PublicCoin) IsValid(ap *params.AccParams) error {
	if pc.Value.Cmp(ap.MinCoinValue) <= 0 {
		return newError(ErrInvalidCoin, "commitment value too small", nil)
	}
	if pc.Value.Cmp(ap.MaxCoinValue) > 0 {
		return newError(ErrInvalidCoin, "commitment value too large", nil)
	}
	if !pc.Value.IsPrime(ap.ZKPIterations) {
		return newError(ErrInvalidCoin, "commitment value is not prime", nil)
	}
	return nil
}

// Equal reports whether two public coins are identical.
func (pc *PublicCoin) Equal(o *PublicCoin) bool {
	if pc == nil || o == nil {
		return pc == o
	}
	return pc.Version == o.Version &&
		pc.Denomination == o.Denomination &&
		pc.Value.Equal(o.Value) &&
		pc.ObfuscatedPaymentID.Equal(o.ObfuscatedPaymentID) &&
		pc.EphemeralPubKey.IsEqual(o.EphemeralPubKey)
}
