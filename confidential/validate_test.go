// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

func TestTransferToBlindScenario(t *testing.T) {
	op, secrets := toBlind(t, 5, 100)

	// a lone output may still carry a proof
	op.Outputs[0].RangeProof = sign(t, 0, secrets[0], 0)
	info, err := commitment.RangeInfo(op.Outputs[0].RangeProof)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), info.MinValue)
	assert.True(t, info.MaxValue >= 100)

	assert.Nil(t, op.Validate())
	assert.True(t, commitment.Open(op.Outputs[0].Commitment, secrets[0].Blind, 100))
}

func TestTransferToBlindInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(op *confidential.TransferToBlind)
		err    error
	}{
		{"zero fee", func(op *confidential.TransferToBlind) { op.Fee.Value = 0 }, fault.ErrFeeNotPositive},
		{"negative fee", func(op *confidential.TransferToBlind) { op.Fee.Value = -1 }, fault.ErrFeeNotPositive},
		{"zero amount", func(op *confidential.TransferToBlind) { op.Amount.Value = 0 }, fault.ErrAmountNotPositive},
		{"huge amount", func(op *confidential.TransferToBlind) { op.Amount.Value = constants.MaxShareSupply + 1 }, fault.ErrAmountTooLarge},
		{"wrong amount", func(op *confidential.TransferToBlind) { op.Amount.Value += 1 }, fault.ErrSumMismatch},
		{"no outputs", func(op *confidential.TransferToBlind) { op.Outputs = nil }, fault.ErrNoOutputs},
		{"reversed", func(op *confidential.TransferToBlind) {
			op.Outputs[0], op.Outputs[1] = op.Outputs[1], op.Outputs[0]
		}, fault.ErrOutputsNotSorted},
		{"duplicate", func(op *confidential.TransferToBlind) { op.Outputs[1] = op.Outputs[0] }, fault.ErrOutputsNotSorted},
		{"blind", func(op *confidential.TransferToBlind) {
			copy(op.BlindingFactor[:], bytes.Repeat([]byte{0xff}, commitment.BlindSize))
		}, fault.ErrInvalidBlindingFactor},
		{"wrong blind", func(op *confidential.TransferToBlind) { op.BlindingFactor = commitment.BlindFactor{} }, fault.ErrSumMismatch},
		{"commitment", func(op *confidential.TransferToBlind) { op.Outputs[0].Commitment = commitment.Commitment{} }, fault.ErrInvalidCommitment},
		{"owner", func(op *confidential.TransferToBlind) { op.Outputs[0].Owner = authority.Authority{} }, fault.ErrZeroWeightThreshold},
		{"no proof", func(op *confidential.TransferToBlind) { op.Outputs[1].RangeProof = nil }, fault.ErrRangeProofMalformed},
		{"swapped proofs", func(op *confidential.TransferToBlind) {
			op.Outputs[0].RangeProof, op.Outputs[1].RangeProof = op.Outputs[1].RangeProof, op.Outputs[0].RangeProof
		}, nil},
	}

	for _, item := range tests {
		op, _ := toBlind(t, 5, 60, 60)
		assert.Nil(t, op.Validate(), "%s: before", item.name)

		item.modify(op)
		err := op.Validate()
		if nil == item.err {
			assert.True(t, fault.IsErrRange(err), "%s: %v", item.name, err)
			continue
		}
		assert.Equal(t, item.err, errors.Cause(err), "%s: %v", item.name, err)
	}
}

func TestTransferFromBlind(t *testing.T) {
	op := fromBlind(t, 1, 100, 60, 41)
	assert.Nil(t, op.Validate())

	tests := []struct {
		name   string
		modify func(op *confidential.TransferFromBlind)
		err    error
	}{
		{"zero amount", func(op *confidential.TransferFromBlind) { op.Amount.Value = 0 }, fault.ErrAmountNotPositive},
		{"zero fee", func(op *confidential.TransferFromBlind) { op.Fee.Value = 0 }, fault.ErrFeeNotPositive},
		{"no inputs", func(op *confidential.TransferFromBlind) { op.Inputs = nil }, fault.ErrNoInputs},
		{"fee asset", func(op *confidential.TransferFromBlind) { op.Fee.AssetID = 1 }, fault.ErrFeeAssetMismatch},
		{"reversed", func(op *confidential.TransferFromBlind) {
			op.Inputs[0], op.Inputs[1] = op.Inputs[1], op.Inputs[0]
		}, fault.ErrInputsNotSorted},
		{"more fee", func(op *confidential.TransferFromBlind) { op.Fee.Value += 1 }, fault.ErrSumMismatch},
		{"less amount", func(op *confidential.TransferFromBlind) { op.Amount.Value -= 1 }, fault.ErrSumMismatch},
		{"dropped input", func(op *confidential.TransferFromBlind) { op.Inputs = op.Inputs[:1] }, fault.ErrSumMismatch},
		{"blind", func(op *confidential.TransferFromBlind) { op.BlindingFactor = op.BlindingFactor.Negate() }, fault.ErrSumMismatch},
	}

	for _, item := range tests {
		op := fromBlind(t, 1, 100, 60, 41)
		item.modify(op)
		err := op.Validate()
		assert.Equal(t, item.err, errors.Cause(err), "%s: %v", item.name, err)
		assert.True(t, fault.IsErrInvalid(err), "%s: class", item.name)
	}
}

func TestFromBlindFeeAssetScenario(t *testing.T) {
	op := fromBlind(t, 1, 100, 101)
	assert.Nil(t, op.Validate())

	op.Fee.AssetID = 3
	assert.Equal(t, fault.ErrFeeAssetMismatch, errors.Cause(op.Validate()))
}

func TestBlindTransferScenario(t *testing.T) {
	op, secrets := blindTransfer(t, 1, []uint64{60, 40}, 99)
	assert.Nil(t, op.Validate())
	assert.Equal(t, 2, len(op.Inputs))
	assert.Equal(t, 1, len(op.Outputs))
	assert.Empty(t, op.Outputs[0].RangeProof)
	assert.Equal(t, uint64(99), secrets[0].Value)
}

func TestBlindTransfer(t *testing.T) {
	tests := []struct {
		name   string
		modify func(op *confidential.BlindTransfer)
		err    error
	}{
		{"no inputs", func(op *confidential.BlindTransfer) { op.Inputs = nil }, fault.ErrNoInputs},
		{"negative fee", func(op *confidential.BlindTransfer) { op.Fee.Value = -1 }, fault.ErrFeeNegative},
		{"more fee", func(op *confidential.BlindTransfer) { op.Fee.Value += 1 }, fault.ErrSumMismatch},
		{"reversed inputs", func(op *confidential.BlindTransfer) {
			op.Inputs[0], op.Inputs[1] = op.Inputs[1], op.Inputs[0]
		}, fault.ErrInputsNotSorted},
		{"reversed outputs", func(op *confidential.BlindTransfer) {
			op.Outputs[0], op.Outputs[1] = op.Outputs[1], op.Outputs[0]
		}, fault.ErrOutputsNotSorted},
		{"duplicate input", func(op *confidential.BlindTransfer) { op.Inputs[1] = op.Inputs[0] }, fault.ErrInputsNotSorted},
		{"input owner", func(op *confidential.BlindTransfer) {
			op.Inputs[0].Owner = authority.Authority{WeightThreshold: 2, AccountAuths: map[account.ID]uint16{16: 1}}
		}, fault.ErrUnreachableWeightThreshold},
	}

	for _, item := range tests {
		op, _ := blindTransfer(t, 2, []uint64{50, 50}, 90, 8)
		assert.Nil(t, op.Validate(), "%s: before", item.name)

		item.modify(op)
		err := op.Validate()
		assert.Equal(t, item.err, errors.Cause(err), "%s: %v", item.name, err)
	}
}

// a two output transfer must bound every output by the share supply
// even though the commitments balance
func TestBlindTransferRangeBound(t *testing.T) {
	op, secrets := blindTransfer(t, 1, []uint64{60, 40}, 90, 9)
	assert.Nil(t, op.Validate())

	op.Outputs[1].RangeProof = sign(t, 0, secrets[1], commitment.MaxBits)
	info, err := commitment.RangeInfo(op.Outputs[1].RangeProof)
	assert.Nil(t, err)
	assert.True(t, info.MaxValue > constants.MaxShareSupply)
	assert.Nil(t, commitment.RangeProofVerify(op.Outputs[1].Commitment, op.Outputs[1].RangeProof))

	err = op.Validate()
	assert.Equal(t, fault.ErrRangeProofAboveMaximum, errors.Cause(err))
	assert.True(t, fault.IsErrRange(err))

	op.Outputs[1].RangeProof = sign(t, -5, secrets[1], 0)
	assert.Equal(t, fault.ErrRangeProofBelowMinimum, errors.Cause(op.Validate()))

	// a lone output skips the range check entirely
	single, _ := blindTransfer(t, 1, []uint64{60, 40}, 99)
	single.Outputs[0].RangeProof = commitment.RangeProof{1, 2, 3}
	assert.Nil(t, single.Validate())
}

// every spent value reappears as outputs plus the fee
func TestSumConservation(t *testing.T) {
	_, out := toBlind(t, 5, 25, 75)
	total := uint64(0)
	for _, s := range out {
		total += s.Value
	}
	assert.Equal(t, uint64(100), total)

	op, out := blindTransfer(t, 3, []uint64{10, 20, 30}, 40, 17)
	assert.Nil(t, op.Validate())
	total = 0
	for _, s := range out {
		total += s.Value
	}
	assert.Equal(t, uint64(60), total+uint64(op.Fee.Value))

	// all value absorbed by the fee with no outputs cannot balance
	// unless the input blinds cancel
	empty := &confidential.BlindTransfer{
		Fee:    confidential.Amount{Value: 60},
		Inputs: op.Inputs,
	}
	assert.Equal(t, fault.ErrSumMismatch, errors.Cause(empty.Validate()))
}

func TestErrorContext(t *testing.T) {
	op, _ := toBlind(t, 5, 60, 60)
	op.Outputs[0], op.Outputs[1] = op.Outputs[1], op.Outputs[0]
	err := op.Validate()
	assert.Contains(t, err.Error(), "transfer_to_blind")
	assert.Contains(t, err.Error(), "at index 1")
}
