// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

// TransferToBlind - move a public amount into new blinded outputs
//
// BlindingFactor is the sum of the output blinds
type TransferToBlind struct {
	Fee            Amount                 `json:"fee"`
	Amount         Amount                 `json:"amount"`
	From           account.ID             `json:"from"`
	BlindingFactor commitment.BlindFactor `json:"blinding_factor"`
	Outputs        []BlindOutput          `json:"outputs"`
}

// TransferFromBlind - reveal blinded inputs into a public balance
//
// BlindingFactor is the sum of the input blinds
type TransferFromBlind struct {
	Fee            Amount                 `json:"fee"`
	Amount         Amount                 `json:"amount"`
	To             account.ID             `json:"to"`
	BlindingFactor commitment.BlindFactor `json:"blinding_factor"`
	Inputs         []BlindInput           `json:"inputs"`
}

// BlindTransfer - spend blinded inputs into blinded outputs
//
// the fee is paid from the hidden surplus, inputs − outputs
type BlindTransfer struct {
	Fee     Amount        `json:"fee"`
	Inputs  []BlindInput  `json:"inputs"`
	Outputs []BlindOutput `json:"outputs"`
}

func (*TransferToBlind) sealed()   {}
func (*TransferFromBlind) sealed() {}
func (*BlindTransfer) sealed()     {}

// Tag - operation type
func (*TransferToBlind) Tag() TagType { return TransferToBlindTag }

// Tag - operation type
func (*TransferFromBlind) Tag() TagType { return TransferFromBlindTag }

// Tag - operation type
func (*BlindTransfer) Tag() TagType { return BlindTransferTag }

// FeePayer - the sender
func (op *TransferToBlind) FeePayer() account.ID { return op.From }

// FeePayer - the receiver
func (op *TransferFromBlind) FeePayer() account.ID { return op.To }

// FeePayer - the temporary account, funded from the hidden surplus
func (op *BlindTransfer) FeePayer() account.ID { return account.ID(constants.TempAccount) }

// FeeAmount - stated fee
func (op *TransferToBlind) FeeAmount() Amount { return op.Fee }

// FeeAmount - stated fee
func (op *TransferFromBlind) FeeAmount() Amount { return op.Fee }

// FeeAmount - stated fee
func (op *BlindTransfer) FeeAmount() Amount { return op.Fee }

// RequiredAuthorities - the sender and every account owning an output
func (op *TransferToBlind) RequiredAuthorities() []account.ID {
	return requiredAccounts(op.From, op.Outputs)
}

// RequiredAuthorities - the receiver
func (op *TransferFromBlind) RequiredAuthorities() []account.ID {
	return []account.ID{op.To}
}

// RequiredAuthorities - the fee payer and every account owning an output
func (op *BlindTransfer) RequiredAuthorities() []account.ID {
	return requiredAccounts(op.FeePayer(), op.Outputs)
}

// CalculateFee - proportional to the packed size
func (op *TransferToBlind) CalculateFee(schedule FeeSchedule) int64 {
	return schedule.DataFee(len(op.Pack()))
}

// CalculateFee - proportional to the packed size
func (op *TransferFromBlind) CalculateFee(schedule FeeSchedule) int64 {
	return schedule.DataFee(len(op.Pack()))
}

// CalculateFee - proportional to the packed size
func (op *BlindTransfer) CalculateFee(schedule FeeSchedule) int64 {
	return schedule.DataFee(len(op.Pack()))
}

// Validate - stateless checks
func (op *TransferToBlind) Validate() error {
	if err := op.validate(); nil != err {
		return errors.Wrap(err, TransferToBlindTag.String())
	}
	return nil
}

func (op *TransferToBlind) validate() error {
	if err := op.Fee.validatePositive(fault.ErrFeeNotPositive); nil != err {
		return err
	}
	if err := op.Amount.validatePositive(fault.ErrAmountNotPositive); nil != err {
		return err
	}
	if !op.BlindingFactor.IsValid() {
		return fault.ErrInvalidBlindingFactor
	}

	out, err := outputCommitments(op.Outputs)
	if nil != err {
		return err
	}
	if 0 == len(out) {
		return fault.ErrNoOutputs
	}
	if !commitment.VerifySum(nil, out, op.Amount.Value, op.BlindingFactor) {
		return fault.ErrSumMismatch
	}
	return checkRanges(op.Outputs)
}

// Validate - stateless checks
func (op *TransferFromBlind) Validate() error {
	if err := op.validate(); nil != err {
		return errors.Wrap(err, TransferFromBlindTag.String())
	}
	return nil
}

func (op *TransferFromBlind) validate() error {
	if err := op.Amount.validatePositive(fault.ErrAmountNotPositive); nil != err {
		return err
	}
	if err := op.Fee.validatePositive(fault.ErrFeeNotPositive); nil != err {
		return err
	}
	if 0 == len(op.Inputs) {
		return fault.ErrNoInputs
	}
	if op.Fee.AssetID != op.Amount.AssetID {
		return errors.Wrapf(fault.ErrFeeAssetMismatch, "fee: %s  amount: %s", op.Fee.AssetID, op.Amount.AssetID)
	}
	if !op.BlindingFactor.IsValid() {
		return fault.ErrInvalidBlindingFactor
	}

	in, err := inputCommitments(op.Inputs)
	if nil != err {
		return err
	}

	// both bounded by the share supply so this cannot overflow
	netPublic := -(op.Fee.Value + op.Amount.Value)
	if !commitment.VerifySum(in, nil, netPublic, op.BlindingFactor.Negate()) {
		return fault.ErrSumMismatch
	}
	return nil
}

// Validate - stateless checks
//
// zero outputs passes structurally, the sum then requires the fee to
// absorb every input
func (op *BlindTransfer) Validate() error {
	if err := op.validate(); nil != err {
		return errors.Wrap(err, BlindTransferTag.String())
	}
	return nil
}

func (op *BlindTransfer) validate() error {
	if op.Fee.Value < 0 {
		return fault.ErrFeeNegative
	}
	if op.Fee.Value > constants.MaxShareSupply {
		return fault.ErrAmountTooLarge
	}

	in, err := inputCommitments(op.Inputs)
	if nil != err {
		return err
	}
	out, err := outputCommitments(op.Outputs)
	if nil != err {
		return err
	}
	if 0 == len(in) {
		return fault.ErrNoInputs
	}
	if !commitment.VerifySum(in, out, -op.Fee.Value, commitment.BlindFactor{}) {
		return fault.ErrSumMismatch
	}
	return checkRanges(op.Outputs)
}
