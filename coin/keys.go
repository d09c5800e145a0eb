// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shieldcoin/zerocore/bignum"
)

// ObfuscationValue is the (j, k)-style linear transform applied to a raw
// ECDH-derived serial number to turn it into the spend-time serial number,
// following libzerocoin's Keys.h ObfuscationValue pair.
type ObfuscationValue struct {
	J *bignum.BigNum
	K *bignum.BigNum
}

// PrivateAddress is a spend-key-less view address: a blinding commitment
// plus the zero public key mints are addressed to. Anyone holding only a
// PrivateAddress can receive coins but cannot recognize or spend them.
type PrivateAddress struct {
	BlindingCommitment *bignum.BigNum
	ZeroPubKey          *secp256k1.PublicKey
}

// PrivateViewKey adds the zero private key to a blinding commitment,
// enough to run QuickCheckIsMine, but not enough to run Recover or to
// spend (both also need the obfuscation pair held by PrivateSpendKey).
type PrivateViewKey struct {
	BlindingCommitment *bignum.BigNum
	ZeroPrivKey          *secp256k1.PrivateKey
}

// PrivateSpendKey is the full spend key: the obfuscation pair plus the zero
// private key. Whoever holds this can both recognize and spend a wallet's
// mints.
type PrivateSpendKey struct {
	Obfuscation ObfuscationValue
	ZeroPrivKey *secp256k1.PrivateKey
}

// Zero wipes the obfuscation pair's big-integer material and the zero
// private key's scalar, once a spend key is no longer needed in memory.
func (k *PrivateSpendKey) Zero() {
	if k == nil {
		return
	}
	k.Obfuscation.J.Zero()
	k.Obfuscation.K.Zero()
	if k.ZeroPrivKey != nil {
		k.ZeroPrivKey.Zero()
	}
}

// ViewKey derives the PrivateViewKey half of a PrivateSpendKey.
func (k *PrivateSpendKey) ViewKey(blindingCommitment *bignum.BigNum) *PrivateViewKey {
	return &PrivateViewKey{
		BlindingCommitment: blindingCommitment,
		ZeroPrivKey:        k.ZeroPrivKey,
	}
}

// Address derives the PrivateAddress (view-only, spend-less) form.
func (k *PrivateViewKey) Address() *PrivateAddress {
	return &PrivateAddress{
		BlindingCommitment: k.BlindingCommitment,
		ZeroPubKey:          k.ZeroPrivKey.PubKey(),
	}
}

// GenerateSpendKey draws a fresh zero keypair and obfuscation pair (j, k)
// uniform in Z_q, and derives the blinding commitment B = g^j · h^k mod p
// that addresses using this key will embed, following libzerocoin's
// Keys.cpp GenerateParameters.
func GenerateSpendKey(gp *bignum.GroupParams) (*PrivateSpendKey, *bignum.BigNum, error) {
	zeroPriv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	j, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, nil, err
	}
	k, err := bignum.RandomInRange(gp.SubgroupOrder)
	if err != nil {
		return nil, nil, err
	}
	blindingCommitment := blindingCommitmentFor(gp, j, k)

	return &PrivateSpendKey{
		Obfuscation: ObfuscationValue{J: j, K: k},
		ZeroPrivKey: zeroPriv,
	}, blindingCommitment, nil
}

func blindingCommitmentFor(gp *bignum.GroupParams, j, k *bignum.BigNum) *bignum.BigNum {
	gj := gp.Generator.PowMod(j, gp.Modulus)
	hk := gp.AltGenerator.PowMod(k, gp.Modulus)
	return gj.MulMod(hk, gp.Modulus)
}

// ecdhSecret computes the shared secret for the mint-side ephemeral key
// against a recipient public key, or the recover-side zero private key
// against a coin's ephemeral public key: both calls are the same operation,
// ECDH(ourPriv, theirPub). GenerateSharedSecret is the teacher's
// ECIES-style helper (mirrored by dcrwallet's snacl/armor usage of the same
// secp256k1/v4 function) rather than a hand-rolled scalar multiplication.
func ecdhSecret(priv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) []byte {
	return secp256k1.GenerateSharedSecret(priv, pub)
}

// hashOnce and hashTwice implement spec.md §4.3 step 3's "derive (s, r) by
// hashing Z twice": s = H(Z), r = H(H(Z)), each later reduced mod q/2.
func hashOnce(z []byte) []byte {
	sum := sha256.Sum256(z)
	return sum[:]
}

func hashTwice(z []byte) []byte {
	return hashOnce(hashOnce(z))
}
