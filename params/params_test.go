// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestZeroParamsValid(t *testing.T) {
	zp, err := TestZeroParams()
	require.NoError(t, err)
	require.NoError(t, zp.Validate())
	require.True(t, zp.Acc.MinCoinValue.Cmp(zp.Acc.MaxCoinValue) < 0)
}

func TestTestZeroParamsDeterministic(t *testing.T) {
	zp1, err := TestZeroParams()
	require.NoError(t, err)
	zp2, err := TestZeroParams()
	require.NoError(t, err)

	require.True(t, zp1.Acc.N.Equal(zp2.Acc.N))
	require.True(t, zp1.SerialGroup.Modulus.Equal(zp2.SerialGroup.Modulus))
	require.True(t, zp1.BlindingCommitment.Equal(zp2.BlindingCommitment))
}

func TestValidateRejectsIncomplete(t *testing.T) {
	var zp ZeroParams
	require.Error(t, zp.Validate())
}
