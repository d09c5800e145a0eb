// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

// MaxMintAttempts bounds the rejection-sampling loop Mint runs when drawing
// ephemeral keys in search of a prime, in-range commitment value. spec.md §6
// lists the default as 2^20; exposed as a package var (rather than buried
// as a constant) so tests can shrink it and an embedding application can
// override it at startup.
var MaxMintAttempts = 1 << 20
