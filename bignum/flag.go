// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "math/big"

// BigFlag embeds a BigNum and implements the go-flags Marshaler/Unmarshaler
// interfaces so a CBigNum-typed value can be read from a flags string, the
// way cfgutil.AmountFlag reads BTC amounts.
type BigFlag struct {
	*BigNum
}

// NewBigFlag creates a BigFlag with a default value.
func NewBigFlag(defaultValue *BigNum) *BigFlag {
	return &BigFlag{defaultValue}
}

// MarshalFlag satisfies the flags.Marshaler interface.
func (f *BigFlag) MarshalFlag() (string, error) {
	return f.BigNum.String(), nil
}

// UnmarshalFlag satisfies the flags.Unmarshaler interface.
func (f *BigFlag) UnmarshalFlag(value string) error {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return newError(ErrBadFlagValue, "invalid decimal value for big number flag", nil)
	}
	f.BigNum = New(n)
	return nil
}
