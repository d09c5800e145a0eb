// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/params"
)

// PrivateCoin is the wallet-side half of a minted coin: the public coin it
// matches, the raw (serialNumber, randomness) opening its commitment, and
// the recipient's own copy of the obfuscated payment id. It must never
// leave the owning wallet.
type PrivateCoin struct {
	Public         *PublicCoin
	SerialNumber   *bignum.BigNum
	Randomness     *bignum.BigNum
	ObfuscationPid *bignum.BigNum
	Version        uint8
	Valid          bool
}

// Zero wipes the coin's secret opening (serial number, randomness, and
// obfuscated payment id) from memory, once a spend has been signed and the
// secret is no longer needed. Public is left intact since it's not secret.
func (c *PrivateCoin) Zero() {
	if c == nil {
		return
	}
	c.SerialNumber.Zero()
	c.Randomness.Zero()
	c.ObfuscationPid.Zero()
}

// QuickCheckIsMine is a cheap pre-check the wallet runs before the full
// Recover derivation: it only recomputes the ECDH secret and the hashed
// serial number, without any group exponentiation, and returns false only
// when that serial number reduces to zero mod q. It does not compare
// anything against pc's commitment value, so a true result does not show
// the coin is the wallet's own; Recover makes that check. Mirrors
// PrivateCoin::QuickCheckIsMine in the original Coin.h/Coin.cpp.
func QuickCheckIsMine(gp *bignum.GroupParams, viewKey *secp256k1.PrivateKey, pc *PublicCoin) bool {
	z := ecdhSecret(viewKey, pc.EphemeralPubKey)
	s := bignum.FromBytes(hashOnce(z))
	// A coin that is ours must have a serial number reducible into
	// (0, q); anything that hashes to exactly zero can be discarded
	// immediately without touching the group at all.
	return !s.Mod(gp.SubgroupOrder).IsZero()
}

// Recover derives a PrivateCoin from a candidate PublicCoin using the
// owner's zero private key and obfuscation pair, following spec.md §4.3's
// Recover procedure. It returns (nil, ErrNotOwner) if the recomputed
// commitment does not match pc's published value.
func Recover(gp *bignum.GroupParams, spendKey *PrivateSpendKey,
	blindingCommitment *bignum.BigNum, pc *PublicCoin) (*PrivateCoin, error) {

	halfQ := new(big.Int).Rsh(gp.SubgroupOrder.Int(), 1)
	half := bignum.New(halfQ)

	z := ecdhSecret(spendKey.ZeroPrivKey, pc.EphemeralPubKey)
	s := bignum.FromBytes(hashOnce(z)).Mod(half)
	r := bignum.FromBytes(hashTwice(z)).Mod(half)

	sObf := s.Add(spendKey.Obfuscation.J)
	rObf := r.Add(spendKey.Obfuscation.K)

	gotValue := commitmentValue(gp, sObf, blindingCommitment, rObf)
	if !gotValue.Equal(pc.Value) {
		return nil, newError(ErrNotOwner, "recomputed commitment does not match public coin", nil)
	}

	return &PrivateCoin{
		Public:         pc,
		SerialNumber:   sObf,
		Randomness:     rObf,
		ObfuscationPid: pc.ObfuscatedPaymentID,
		Version:        pc.Version,
		Valid:          true,
	}, nil
}

// PublicSerialNumber returns g^s mod p, the value revealed on-chain at
// spend time (coinSerialNumberPubKey in spec.md §4.6).
func (c *PrivateCoin) PublicSerialNumber(gp *bignum.GroupParams) *bignum.BigNum {
	return gp.Generator.PowMod(c.SerialNumber, gp.Modulus)
}

// IsValid re-checks the backing public coin's validity for this private
// coin, matching PrivateCoin::isValid.
func (c *PrivateCoin) IsValid(ap *params.AccParams) bool {
	if !c.Valid {
		return false
	}
	return c.Public.IsValid(ap) == nil
}

// PaymentID decodes the coin's obfuscated payment id back into its
// original byte string, the inverse of the bignum.FromBytes encoding a
// caller uses to turn a payment-id string into a CBigNum before minting.
func (c *PrivateCoin) PaymentID() string {
	if c == nil || c.ObfuscationPid == nil {
		return ""
	}
	return string(c.ObfuscationPid.Bytes())
}
