// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential_test

import (
	"testing"

	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/wallet"
)

var (
	alice = authority.ForAccount(16)
	bob   = authority.ForAccount(17)
)

func toBlind(t *testing.T, fee int64, values ...uint64) (*confidential.TransferToBlind, []wallet.Secret) {
	payments := make([]wallet.Payment, len(values))
	for i, v := range values {
		payments[i] = wallet.Payment{Owner: bob, Value: v}
	}
	op, secrets, err := wallet.Builder{Fee: fee}.ToBlind(16, payments)
	if nil != err {
		t.Fatalf("build to blind error: %s", err)
	}
	return op, secrets
}

func spends(t *testing.T, owner authority.Authority, values ...uint64) []wallet.Spend {
	s := make([]wallet.Spend, len(values))
	for i, v := range values {
		secret, err := wallet.NewSecret(v)
		if nil != err {
			t.Fatalf("new secret error: %s", err)
		}
		s[i] = wallet.Spend{Owner: owner, Secret: secret}
	}
	return s
}

func fromBlind(t *testing.T, fee int64, amount int64, values ...uint64) *confidential.TransferFromBlind {
	op, err := wallet.Builder{Fee: fee}.FromBlind(17, amount, spends(t, bob, values...))
	if nil != err {
		t.Fatalf("build from blind error: %s", err)
	}
	return op
}

func blindTransfer(t *testing.T, fee int64, in []uint64, out ...uint64) (*confidential.BlindTransfer, []wallet.Secret) {
	payments := make([]wallet.Payment, len(out))
	for i, v := range out {
		payments[i] = wallet.Payment{Owner: alice, Value: v}
	}
	op, secrets, err := wallet.Builder{Fee: fee}.BlindTransfer(spends(t, bob, in...), payments)
	if nil != err {
		t.Fatalf("build blind transfer error: %s", err)
	}
	return op, secrets
}

func sign(t *testing.T, minValue int64, s wallet.Secret, minBits uint8) commitment.RangeProof {
	proof, err := commitment.RangeProofSign(minValue, s.Commitment, s.Blind, s.Value, minBits)
	if nil != err {
		t.Fatalf("range proof sign error: %s", err)
	}
	return proof
}
