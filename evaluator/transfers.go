// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

type transferToBlind struct {
	base
	op *confidential.TransferToBlind
}

type transferFromBlind struct {
	base
	op *confidential.TransferFromBlind
}

type blindTransfer struct {
	base
	op *confidential.BlindTransfer
}

// Evaluate - assets usable, owners exist, sender can pay
func (e *transferToBlind) Evaluate() error {
	if err := e.beginEvaluate(); nil != err {
		return err
	}
	op := e.op

	if err := e.confidentialAsset(op.Fee.AssetID); nil != err {
		return err
	}
	if op.Amount.AssetID != op.Fee.AssetID {
		if err := e.confidentialAsset(op.Amount.AssetID); nil != err {
			return err
		}
	}
	if err := e.ownersExist(op.Outputs); nil != err {
		return err
	}
	if err := e.outputsAbsent(op.Outputs, nil); nil != err {
		return err
	}

	// the fee is taken from the same balance after apply
	required := op.Amount.Value
	if op.Fee.AssetID == op.Amount.AssetID {
		required += op.Fee.Value
	}
	if available := e.ports.Balances.Balance(op.From, op.Amount.AssetID); available < required {
		return errors.Wrapf(fault.ErrPublicBalanceInsufficient, "account: %s  available: %d  required: %d", op.From, available, required)
	}

	e.state = stateEvaluated
	return nil
}

// Apply - debit the sender, create the outputs
func (e *transferToBlind) Apply() error {
	if err := e.beginApply(); nil != err {
		return err
	}
	op := e.op

	debit := confidential.Amount{Value: -op.Amount.Value, AssetID: op.Amount.AssetID}
	if err := e.ports.Balances.AdjustBalance(op.From, debit); nil != err {
		return fatal(err, "debit: %s", op.From)
	}
	if err := e.ports.Balances.AdjustConfidentialSupply(op.Amount); nil != err {
		return fatal(err, "confidential supply")
	}
	return e.createOutputs(op.Amount.AssetID, op.Outputs)
}

// Evaluate - inputs live, of the fee asset, owned as claimed and the
// receiver can hold the amount
func (e *transferFromBlind) Evaluate() error {
	if err := e.beginEvaluate(); nil != err {
		return err
	}
	op := e.op

	if err := e.assetExists(op.Fee.AssetID); nil != err {
		return err
	}
	if _, err := e.inputsOwned(op.Inputs, op.Fee.AssetID); nil != err {
		return err
	}

	to := op.FeePayer()
	if held := e.ports.Balances.Balance(to, op.Amount.AssetID); op.Amount.Value > constants.MaxShareSupply-held {
		return errors.Wrapf(fault.ErrBalanceLimitExceeded, "account: %s  balance: %d  amount: %d", to, held, op.Amount.Value)
	}

	e.state = stateEvaluated
	return nil
}

// Apply - credit the receiver, spend the inputs
func (e *transferFromBlind) Apply() error {
	if err := e.beginApply(); nil != err {
		return err
	}
	op := e.op

	if err := e.ports.Balances.AdjustBalance(op.FeePayer(), op.Amount); nil != err {
		return fatal(err, "credit: %s", op.FeePayer())
	}

	// the inputs held the amount and the fee
	revealed := confidential.Amount{Value: -(op.Amount.Value + op.Fee.Value), AssetID: op.Fee.AssetID}
	if err := e.ports.Balances.AdjustConfidentialSupply(revealed); nil != err {
		return fatal(err, "confidential supply")
	}
	return e.removeInputs(op.Inputs)
}

// Evaluate - output owners exist, inputs as for transfer from blind
func (e *blindTransfer) Evaluate() error {
	if err := e.beginEvaluate(); nil != err {
		return err
	}
	op := e.op

	if err := e.assetExists(op.Fee.AssetID); nil != err {
		return err
	}
	if err := e.ownersExist(op.Outputs); nil != err {
		return err
	}
	spent, err := e.inputsOwned(op.Inputs, op.Fee.AssetID)
	if nil != err {
		return err
	}
	if err := e.outputsAbsent(op.Outputs, spent); nil != err {
		return err
	}

	e.state = stateEvaluated
	return nil
}

// Apply - fee to the temporary account, spend inputs, create outputs
//
// outputs take the fee's asset: one blind transfer moves one asset
func (e *blindTransfer) Apply() error {
	if err := e.beginApply(); nil != err {
		return err
	}
	op := e.op

	temp := account.ID(constants.TempAccount)
	if err := e.ports.Balances.AdjustBalance(temp, op.Fee); nil != err {
		return fatal(err, "fee deposit: %s", temp)
	}
	revealed := confidential.Amount{Value: -op.Fee.Value, AssetID: op.Fee.AssetID}
	if err := e.ports.Balances.AdjustConfidentialSupply(revealed); nil != err {
		return fatal(err, "confidential supply")
	}
	if err := e.removeInputs(op.Inputs); nil != err {
		return err
	}
	return e.createOutputs(op.Fee.AssetID, op.Outputs)
}
