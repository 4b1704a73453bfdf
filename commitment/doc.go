// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commitment - Pedersen commitments and range proofs
//
// A commitment to value v with blinding factor r is the point
// v·G + r·H on the BN254 G1 curve, where G is the standard generator
// and H is a nothing-up-my-sleeve point derived by hashing to the
// curve.  Commitments add homomorphically, so a set of inputs and
// outputs can be checked to balance against a public amount without
// revealing any individual value.
//
// Range proofs are Borromean ring signatures over the binary digits
// of (v - min) and disclose only min and the number of digits.
package commitment
