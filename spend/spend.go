// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spend

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/shieldcoin/zerocore/accumulator"
	"github.com/shieldcoin/zerocore/accumulatorpok"
	"github.com/shieldcoin/zerocore/bignum"
	"github.com/shieldcoin/zerocore/coin"
	"github.com/shieldcoin/zerocore/commitment"
	"github.com/shieldcoin/zerocore/params"
	"github.com/shieldcoin/zerocore/serialsok"
)

// CoinSpend is the complete proof needed to spend a coin: that its value is
// accumulated on chain (AccumulatorPoK over AccCommitmentToCoin), that the
// same value underlies the serial-number statement (CommitmentPoK tying
// AccCommitmentToCoin to SerialCommitmentToCoin), that the revealed serial
// number is correct and bound to this specific transaction (SerialNumberSoK),
// and that the serial number's public key lies in the right subgroup
// (SerialNumberPoK). Mirrors libzerocoin's CoinSpend.
type CoinSpend struct {
	PTxHash                chainhash.Hash
	AccumulatorChecksum    chainhash.Hash
	AccCommitmentToCoin    *bignum.BigNum
	SerialCommitmentToCoin *bignum.BigNum
	CoinSerialNumber       *bignum.BigNum
	AccumulatorPoK         *accumulatorpok.Proof
	SerialNumberSoK        *serialsok.SignatureOfKnowledge
	CommitmentPoK          *commitment.EqualityProof
	SerialNumberPoK        *serialsok.ProofOfKnowledge
	Version                uint8
	SpendType              SpendType
}

// Sign builds a CoinSpend proving that pc is accumulated into tip (as shown
// by witness) and revealing its serial number, bound to ptxHash and
// accChecksum so the proof cannot be replayed against a different
// transaction or a different accumulator snapshot. Mirrors CoinSpend's
// proof-generating constructor in CoinSpend.cpp.
func Sign(zp *params.ZeroParams, pc *coin.PrivateCoin, tip *accumulator.Accumulator,
	accChecksum chainhash.Hash, witness *accumulator.Witness, ptxHash chainhash.Hash,
	spendType SpendType, challengeBits int) (*CoinSpend, error) {

	if !witness.Verify(tip) {
		return nil, newError(ErrWitnessInvalid, "accumulator witness does not verify against tip", nil)
	}

	coinValue := pc.Public.Value

	serialCommitment, serialR, err := commitment.Commit(zp.SerialGroup, coinValue)
	if err != nil {
		return nil, err
	}
	accCommitment, accR, err := commitment.Commit(zp.Acc.AccPoKGroup, coinValue)
	if err != nil {
		return nil, err
	}

	commitmentPoK, err := commitment.ProveEquality(serialCommitment, accCommitment, coinValue, serialR, accR, challengeBits)
	if err != nil {
		return nil, err
	}

	accumulatorPoK, err := accumulatorpok.Prove(zp.Acc, tip, accCommitment, coinValue, accR, witness.Value(), challengeBits)
	if err != nil {
		return nil, err
	}

	coinSerialNumber := pc.PublicSerialNumber(zp.SerialGroup)

	cs := &CoinSpend{
		PTxHash:                ptxHash,
		AccumulatorChecksum:    accChecksum,
		AccCommitmentToCoin:    accCommitment.Value,
		SerialCommitmentToCoin: serialCommitment.Value,
		CoinSerialNumber:       coinSerialNumber,
		AccumulatorPoK:         accumulatorPoK,
		CommitmentPoK:          commitmentPoK,
		Version:                pc.Version,
		SpendType:              spendType,
	}

	hashSig := cs.signatureHash()

	serialNumberSoK, err := serialsok.Sign(zp.SerialGroup, serialCommitment, pc.SerialNumber, serialR, hashSig, challengeBits)
	if err != nil {
		return nil, err
	}
	serialNumberPoK, err := serialsok.Prove(zp.SerialGroup, pc.SerialNumber)
	if err != nil {
		return nil, err
	}

	cs.SerialNumberSoK = serialNumberSoK
	cs.SerialNumberPoK = serialNumberPoK

	log.Debugf("signed coin spend serial=%v ptxhash=%v spendtype=%v", coinSerialNumber, ptxHash, spendType)
	return cs, nil
}

// Verify checks all four component proofs against the accumulator a,
// mirroring CoinSpend::Verify. It does not check for double-spends or
// uniqueness of the serial number: that is the chain engine's job.
func (cs *CoinSpend) Verify(zp *params.ZeroParams, a *accumulator.Accumulator) error {
	serialCommitment := &commitment.Commitment{Group: zp.SerialGroup, Value: cs.SerialCommitmentToCoin}
	accCommitment := &commitment.Commitment{Group: zp.Acc.AccPoKGroup, Value: cs.AccCommitmentToCoin}

	if !commitment.VerifyEquality(serialCommitment, accCommitment, cs.CommitmentPoK) {
		return newError(ErrBadCommitmentPoK, "commitment proof of knowledge failed", nil)
	}

	if !accumulatorpok.Verify(zp.Acc, a, accCommitment, cs.AccumulatorPoK) {
		return newError(ErrBadAccumulatorPoK, "accumulator proof of knowledge failed", nil)
	}

	hashSig := cs.signatureHash()
	if !cs.SerialNumberSoK.Verify(zp.SerialGroup, cs.CoinSerialNumber, serialCommitment, hashSig) {
		return newError(ErrBadSerialSoK, "serial number signature of knowledge failed", nil)
	}

	if !cs.SerialNumberPoK.Verify(zp.SerialGroup, cs.CoinSerialNumber) {
		return newError(ErrBadSerialPoK, "serial number proof of knowledge failed", nil)
	}

	return nil
}

// Hash returns a digest identifying this exact spend (every field,
// including the two serial-number proofs signatureHash itself omits), for
// use as a verification-cache key. Two spends of the same coin against the
// same transaction will generally still hash differently because the
// signature of knowledge's own challenge response is randomized.
func (cs *CoinSpend) Hash() chainhash.Hash {
	h := sha256.New()
	h.Write(cs.signatureHash())
	h.Write(cs.SerialNumberSoK.T1.SerializeBytes())
	h.Write(cs.SerialNumberSoK.T2.SerializeBytes())
	h.Write(cs.SerialNumberSoK.Ss.SerializeBytes())
	h.Write(cs.SerialNumberSoK.Sr.SerializeBytes())
	h.Write(cs.SerialNumberPoK.T.SerializeBytes())
	h.Write(cs.SerialNumberPoK.R.SerializeBytes())
	h.Write([]byte{cs.Version})
	return chainhash.Hash(sha256.Sum256(h.Sum(nil)))
}

// signatureHash binds every public statement this spend commits to except
// the serial-number proofs themselves, so SerialNumberSoK's message covers
// the accumulator PoK and commitment PoK it is generated alongside.
// Mirrors CoinSpend::signatureHash.
func (cs *CoinSpend) signatureHash() []byte {
	h := sha256.New()
	h.Write(cs.SerialCommitmentToCoin.SerializeBytes())
	h.Write(cs.AccCommitmentToCoin.SerializeBytes())

	h.Write(cs.CommitmentPoK.T1.SerializeBytes())
	h.Write(cs.CommitmentPoK.T2.SerializeBytes())
	h.Write(cs.CommitmentPoK.Sx.SerializeBytes())
	h.Write(cs.CommitmentPoK.Sr1.SerializeBytes())
	h.Write(cs.CommitmentPoK.Sr2.SerializeBytes())

	h.Write(cs.AccumulatorPoK.E.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Cu.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Cz.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Tv.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Tu.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Tz.SerializeBytes())
	h.Write(cs.AccumulatorPoK.Tacc.SerializeBytes())

	h.Write(cs.PTxHash[:])
	h.Write(cs.AccumulatorChecksum[:])
	h.Write(cs.CoinSerialNumber.SerializeBytes())
	h.Write([]byte{byte(cs.SpendType)})

	return h.Sum(nil)
}
