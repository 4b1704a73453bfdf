// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package confidential - operations that move value into, out of and
// between blinded outputs
//
// The three operations are:
//
//   TransferToBlind    public balance → blinded outputs
//   TransferFromBlind  blinded inputs → public balance
//   BlindTransfer      blinded inputs → blinded outputs
//
// Validate is a pure function of the payload.  Commitment lists must be
// strictly ascending and the commitments must balance against the
// public amount:
//
//   Σ inputs − Σ outputs + net_public·G + excess_blind·H = 0
//
// where net_public is positive when value enters the hidden pool and
// negative when it leaves it (the fee always leaves).
package confidential
