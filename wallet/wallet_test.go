// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/wallet"
)

var (
	alice = authority.ForAccount(16)
	bob   = authority.ForAccount(17)
)

func spend(t *testing.T, owner authority.Authority, value uint64) wallet.Spend {
	s, err := wallet.NewSecret(value)
	if nil != err {
		t.Fatalf("new secret error: %s", err)
	}
	return wallet.Spend{Owner: owner, Secret: s}
}

func TestNewSecret(t *testing.T) {
	s, err := wallet.NewSecret(42)
	assert.Nil(t, err)
	assert.True(t, commitment.Open(s.Commitment, s.Blind, 42))

	other, err := wallet.NewSecret(42)
	assert.Nil(t, err)
	assert.NotEqual(t, s.Commitment, other.Commitment, "blinds must differ")
}

func TestToBlind(t *testing.T) {
	b := wallet.Builder{Fee: 10}

	op, secrets, err := b.ToBlind(16, []wallet.Payment{{Owner: bob, Value: 30}, {Owner: alice, Value: 70}})
	assert.Nil(t, err)
	assert.Equal(t, int64(100), op.Amount.Value)
	assert.Equal(t, 2, len(op.Outputs))
	assert.Equal(t, 2, len(secrets))
	for i, s := range secrets {
		assert.Equal(t, s.Commitment, op.Outputs[i].Commitment, "%d: order", i)
		assert.NotEmpty(t, op.Outputs[i].RangeProof, "%d: proof", i)
	}
	assert.Nil(t, op.Validate())

	single, _, err := b.ToBlind(16, []wallet.Payment{{Owner: bob, Value: 5}})
	assert.Nil(t, err)
	assert.Empty(t, single.Outputs[0].RangeProof)
	assert.Nil(t, single.Validate())

	_, _, err = b.ToBlind(16, nil)
	assert.Equal(t, fault.ErrNoOutputs, err)
}

func TestFromBlind(t *testing.T) {
	b := wallet.Builder{Fee: 1}
	spends := []wallet.Spend{spend(t, alice, 60), spend(t, alice, 41)}

	op, err := b.FromBlind(16, 100, spends)
	assert.Nil(t, err)
	assert.Nil(t, op.Validate())
	assert.True(t, op.Inputs[0].Commitment.Compare(op.Inputs[1].Commitment) < 0)

	_, err = b.FromBlind(16, 99, spends)
	assert.Equal(t, fault.ErrSumMismatch, errors.Cause(err))

	_, err = b.FromBlind(16, 99, nil)
	assert.Equal(t, fault.ErrNoInputs, err)
}

func TestBlindTransfer(t *testing.T) {
	b := wallet.Builder{Fee: 1, MinBits: 10}
	spends := []wallet.Spend{spend(t, alice, 50), spend(t, alice, 50)}

	op, secrets, err := b.BlindTransfer(spends, []wallet.Payment{{Owner: bob, Value: 90}, {Owner: alice, Value: 9}})
	assert.Nil(t, err)
	assert.Nil(t, op.Validate())
	assert.Equal(t, 2, len(secrets))
	for i, s := range secrets {
		assert.True(t, commitment.Open(op.Outputs[i].Commitment, s.Blind, s.Value), "%d", i)
		info, err := commitment.RangeInfo(op.Outputs[i].RangeProof)
		assert.Nil(t, err)
		assert.Equal(t, uint8(10), info.Bits)
	}

	single, _, err := b.BlindTransfer(spends, []wallet.Payment{{Owner: bob, Value: 99}})
	assert.Nil(t, err)
	assert.Nil(t, single.Validate())

	_, _, err = b.BlindTransfer(spends, []wallet.Payment{{Owner: bob, Value: 100}})
	assert.Equal(t, fault.ErrSumMismatch, errors.Cause(err))

	_, _, err = b.BlindTransfer(spends, nil)
	assert.Equal(t, fault.ErrNoOutputs, err)
}
