// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// signPositive and signNegative are the sign bytes appended after the
// magnitude, matching CBigNum's on-wire layout in spec.md §6:
// varInt length ‖ big-endian magnitude ‖ sign byte.
const (
	signPositive = 0x00
	signNegative = 0x01
)

// Serialize writes the wire-format CBigNum: a compact-size length prefix,
// the unsigned big-endian magnitude, and a trailing sign byte.
func (b *BigNum) Serialize(w io.Writer) error {
	mag := b.Bytes()
	if err := wire.WriteVarInt(w, 0, uint64(len(mag))+1); err != nil {
		return err
	}
	if _, err := w.Write(mag); err != nil {
		return err
	}
	sign := byte(signPositive)
	if b.Sign() < 0 {
		sign = signNegative
	}
	_, err := w.Write([]byte{sign})
	return err
}

// SerializeBytes is a convenience wrapper around Serialize for callers that
// want a standalone byte slice (script construction, hashing transcripts).
func (b *BigNum) SerializeBytes() []byte {
	var buf bytes.Buffer
	// Serialize never fails against a bytes.Buffer.
	_ = b.Serialize(&buf)
	return buf.Bytes()
}

// Deserialize reads a wire-format CBigNum written by Serialize.
func Deserialize(r io.Reader) (*BigNum, error) {
	length, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("bignum: reading length prefix: %w", err)
	}
	if length == 0 {
		return nil, fmt.Errorf("bignum: zero-length encoding missing sign byte")
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("bignum: reading %d bytes: %w", length, err)
	}
	mag, sign := buf[:len(buf)-1], buf[len(buf)-1]
	v := FromBytes(mag)
	if sign == signNegative {
		v = v.Neg()
	}
	return v, nil
}

// DeserializeBytes is a convenience wrapper around Deserialize for a
// standalone byte slice, returning the number of bytes consumed.
func DeserializeBytes(buf []byte) (*BigNum, int, error) {
	r := bytes.NewReader(buf)
	v, err := Deserialize(r)
	if err != nil {
		return nil, 0, err
	}
	return v, len(buf) - r.Len(), nil
}
