// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigFlagRoundTrip(t *testing.T) {
	f := NewBigFlag(FromInt64(0))

	require.NoError(t, f.UnmarshalFlag("123456789012345678901234567890"))
	require.Equal(t, "123456789012345678901234567890", f.BigNum.String())

	s, err := f.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", s)
}

func TestBigFlagRejectsGarbage(t *testing.T) {
	f := NewBigFlag(FromInt64(0))
	err := f.UnmarshalFlag("not-a-number")
	require.Error(t, err)

	var bnErr Error
	require.ErrorAs(t, err, &bnErr)
	require.Equal(t, ErrBadFlagValue, bnErr.ErrorCode)
}
