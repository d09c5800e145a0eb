// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bignum provides the arbitrary-precision modular arithmetic used
// throughout the coin protocol: a CBigNum wire type wrapping math/big, named
// group parameters, and the Miller-Rabin primality test the mint and spend
// paths rely on.
package bignum

import (
	"crypto/rand"
	"math/big"

	"github.com/shieldcoin/zerocore/internal/zero"
)

// BigNum wraps a math/big.Int with the modular-arithmetic helpers the
// protocol's Σ-protocols are built from. The zero value is not usable;
// construct with New or one of the parsing functions.
type BigNum struct {
	n *big.Int
}

// New wraps an existing *big.Int. The BigNum takes ownership; callers must
// not mutate n afterwards.
func New(n *big.Int) *BigNum {
	if n == nil {
		n = new(big.Int)
	}
	return &BigNum{n: n}
}

// FromInt64 constructs a BigNum from a native integer.
func FromInt64(v int64) *BigNum {
	return &BigNum{n: big.NewInt(v)}
}

// FromBytes interprets buf as an unsigned big-endian magnitude.
func FromBytes(buf []byte) *BigNum {
	return &BigNum{n: new(big.Int).SetBytes(buf)}
}

// Int returns the underlying *big.Int. The caller must not mutate it.
func (b *BigNum) Int() *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b.n
}

// Bytes returns the unsigned big-endian magnitude, with no sign or length
// framing. Use Serialize for the wire format.
func (b *BigNum) Bytes() []byte {
	return b.Int().Bytes()
}

// Zero overwrites b's underlying magnitude and resets it to 0, for
// explicitly clearing sensitive values such as a coin's serial number or
// spend-key randomness from memory once they are no longer needed.
func (b *BigNum) Zero() {
	if b == nil {
		return
	}
	zero.BigInt(b.n)
}

// BitLen returns the number of bits required to represent the magnitude.
func (b *BigNum) BitLen() int {
	return b.Int().BitLen()
}

// Sign returns -1, 0 or 1.
func (b *BigNum) Sign() int {
	return b.Int().Sign()
}

// Cmp compares b and o the way big.Int.Cmp does.
func (b *BigNum) Cmp(o *BigNum) int {
	return b.Int().Cmp(o.Int())
}

// Equal reports whether b and o hold the same value.
func (b *BigNum) Equal(o *BigNum) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Cmp(o) == 0
}

// IsZero reports whether the value is exactly zero.
func (b *BigNum) IsZero() bool {
	return b.Sign() == 0
}

// Add returns b+o.
func (b *BigNum) Add(o *BigNum) *BigNum {
	return New(new(big.Int).Add(b.Int(), o.Int()))
}

// Sub returns b-o.
func (b *BigNum) Sub(o *BigNum) *BigNum {
	return New(new(big.Int).Sub(b.Int(), o.Int()))
}

// Mul returns b*o.
func (b *BigNum) Mul(o *BigNum) *BigNum {
	return New(new(big.Int).Mul(b.Int(), o.Int()))
}

// Mod returns b mod m, always non-negative for positive m.
func (b *BigNum) Mod(m *BigNum) *BigNum {
	return New(new(big.Int).Mod(b.Int(), m.Int()))
}

// MulMod returns (b*o) mod m.
func (b *BigNum) MulMod(o, m *BigNum) *BigNum {
	r := new(big.Int).Mul(b.Int(), o.Int())
	r.Mod(r, m.Int())
	return New(r)
}

// AddMod returns (b+o) mod m.
func (b *BigNum) AddMod(o, m *BigNum) *BigNum {
	r := new(big.Int).Add(b.Int(), o.Int())
	r.Mod(r, m.Int())
	return New(r)
}

// PowMod returns b^e mod m.
func (b *BigNum) PowMod(e, m *BigNum) *BigNum {
	return New(new(big.Int).Exp(b.Int(), e.Int(), m.Int()))
}

// Inverse returns the multiplicative inverse of b modulo m, or nil if b has
// no inverse (i.e. gcd(b, m) != 1).
func (b *BigNum) Inverse(m *BigNum) *BigNum {
	r := new(big.Int).ModInverse(b.Int(), m.Int())
	if r == nil {
		return nil
	}
	return New(r)
}

// Neg returns -b.
func (b *BigNum) Neg() *BigNum {
	return New(new(big.Int).Neg(b.Int()))
}

// String renders the value in base 10, for logging and test failure output.
func (b *BigNum) String() string {
	return b.Int().String()
}

// RandomInRange returns a uniformly random BigNum in [0, max).
func RandomInRange(max *BigNum) (*BigNum, error) {
	v, err := rand.Int(rand.Reader, max.Int())
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// RandomOddBits returns a uniformly random value with exactly the given bit
// length, with the top and bottom bits forced to 1. Used to draw the
// blinding exponents of the commitment-equality and accumulator proofs.
func RandomOddBits(bits int) (*BigNum, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(buf)
	v.Rsh(v, uint(len(buf)*8-bits))
	v.SetBit(v, bits-1, 1)
	v.SetBit(v, 0, 1)
	return New(v), nil
}

// IsPrime runs the Miller-Rabin primality test with k rounds. This mirrors
// libzerocoin's CBigNum::isPrime(k), which also runs k iterations, but
// delegates to math/big's ProbablyPrime rather than a
// hand-rolled Fermat/Miller-Rabin loop.
func (b *BigNum) IsPrime(k int) bool {
	if k <= 0 {
		k = 1
	}
	return b.Int().ProbablyPrime(k)
}
