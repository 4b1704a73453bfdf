// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/evaluator"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
)

// Receipt - result of an applied transaction
type Receipt struct {
	TransactionID confidential.ID       `json:"id"`
	Fees          []confidential.Amount `json:"fees"`
	Created       []blinded.ID          `json:"created"`
	Spent         int                   `json:"spent"`
}

// ApplyTransaction - validate, evaluate and apply all operations
//
// either every operation is applied or none is
func (l *Ledger) ApplyTransaction(t *confidential.Transaction) (*Receipt, error) {
	start := time.Now()
	receipt, err := l.applyTransaction(t)
	applyDuration.Observe(time.Since(start).Seconds())

	if nil != err {
		rejectedTransactions.WithLabelValues(errorClass(err)).Inc()
		if fault.IsErrFatal(err) {
			l.log.Criticalf("apply failed: %s", err)
		} else {
			l.log.Debugf("rejected: %s", err)
		}
		return nil, err
	}

	for _, op := range t.Operations {
		appliedOperations.WithLabelValues(op.Tag().String()).Inc()
	}
	for _, fee := range receipt.Fees {
		feesCollected.WithLabelValues(fee.AssetID.String()).Add(float64(fee.Value))
	}
	blindedOutputs.Add(float64(len(receipt.Created) - receipt.Spent))

	l.log.Infof("applied: %s  operations: %d  created: %d  spent: %d", receipt.TransactionID, len(t.Operations), len(receipt.Created), receipt.Spent)
	return receipt, nil
}

func (l *Ledger) applyTransaction(t *confidential.Transaction) (*Receipt, error) {
	if nil == t || 0 == len(t.Operations) {
		return nil, fault.ErrNoOperations
	}
	for i, op := range t.Operations {
		if err := op.Validate(); nil != err {
			return nil, errors.Wrapf(err, "operation: %d", i)
		}
	}

	packed := t.Pack()
	id := packed.ID()

	l.Lock()
	defer l.Unlock()

	trx, err := l.storage.Begin()
	if nil != err {
		return nil, err
	}

	if trx.Has(l.storage.Pool.Operations, id[:]) {
		l.abort(trx)
		return nil, errors.Wrapf(fault.ErrTransactionExists, "id: %s", id)
	}

	v := l.newView(trx)
	receipt := &Receipt{
		TransactionID: id,
	}
	for i, op := range t.Operations {
		if err := l.applyOperation(v, op); nil != err {
			l.abort(trx)
			return nil, errors.Wrapf(err, "operation: %d %s", i, op.Tag())
		}
		receipt.Fees = append(receipt.Fees, op.FeeAmount())
	}

	trx.Put(l.storage.Pool.Operations, id[:], packed)

	if err := trx.Commit(); nil != err {
		l.purge()
		return nil, fault.Fatal(err)
	}

	receipt.Created = v.created
	receipt.Spent = v.removed
	return receipt, nil
}

// checks that need state but not the evaluator, then evaluate, apply
// and pay the fee
func (l *Ledger) applyOperation(v *view, op confidential.Operation) error {
	fee := op.FeeAmount()
	required := op.CalculateFee(l.schedule)
	if fee.Value < required {
		return errors.Wrapf(fault.ErrInsufficientFee, "fee: %d  required: %d", fee.Value, required)
	}

	for _, id := range op.RequiredAuthorities() {
		if !v.Exists(id) {
			return errors.Wrapf(fault.ErrRequiredAuthorityAccountAbsent, "account: %s", id)
		}
	}

	if confidential.TransferToBlindTag == op.Tag() {
		payer := op.FeePayer()
		if available := v.Balance(payer, fee.AssetID); available < fee.Value {
			return errors.Wrapf(fault.ErrFeePayerBalanceInsufficient, "account: %s  available: %d  fee: %d", payer, available, fee.Value)
		}
	}

	e, err := evaluator.New(op, v.ports())
	if nil != err {
		return err
	}
	if err := e.Evaluate(); nil != err {
		return err
	}
	if err := e.Apply(); nil != err {
		return fault.Fatal(err)
	}
	return l.payFee(v, op)
}

// move the fee to the committee account
//
// a transfer from blind fee comes out of the spent inputs so there is
// no public balance to debit
func (l *Ledger) payFee(v *view, op confidential.Operation) error {
	fee := op.FeeAmount()
	if 0 == fee.Value {
		return nil
	}

	if confidential.TransferFromBlindTag != op.Tag() {
		payer := op.FeePayer()
		debit := confidential.Amount{Value: -fee.Value, AssetID: fee.AssetID}
		if err := v.AdjustBalance(payer, debit); nil != err {
			return fault.Fatal(errors.Wrapf(err, "fee debit: %s", payer))
		}
	}

	committee := account.ID(constants.CommitteeAccount)
	if err := v.AdjustBalance(committee, fee); nil != err {
		return fault.Fatal(errors.Wrapf(err, "fee credit: %s", committee))
	}
	return nil
}

// Transaction - an applied transaction by ID
func (l *Ledger) Transaction(id confidential.ID) (*confidential.Transaction, error) {
	var t *confidential.Transaction
	err := l.read(func(trx storage.Transaction) error {
		packed := trx.Get(l.storage.Pool.Operations, id[:])
		if nil == packed {
			return errors.Wrapf(fault.ErrTransactionNotFound, "id: %s", id)
		}
		var err error
		t, err = confidential.UnpackTransaction(packed)
		return err
	})
	return t, err
}
