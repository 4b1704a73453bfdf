// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/evaluator"
	"github.com/bitmark-inc/blindd/storage"
)

// view - the ledger state as seen through one storage transaction
//
// satisfies all of the evaluator ports
type view struct {
	l       *Ledger
	trx     storage.Transaction
	created []blinded.ID
	removed int
}

func (l *Ledger) newView(trx storage.Transaction) *view {
	return &view{
		l:   l,
		trx: trx,
	}
}

func (v *view) ports() evaluator.Ports {
	return evaluator.Ports{
		Assets:   v,
		Accounts: v,
		Balances: v,
		Outputs:  v,
	}
}

func (v *view) Resolve(id asset.ID) (*asset.Record, error) {
	return v.l.assets.Resolve(v.trx, id)
}

func (v *view) Exists(id account.ID) bool {
	return v.l.accounts.Exists(v.trx, id)
}

func (v *view) Balance(owner account.ID, id asset.ID) int64 {
	return v.l.balances.Get(v.trx, owner, id)
}

func (v *view) AdjustBalance(owner account.ID, delta confidential.Amount) error {
	return v.l.balances.AdjustBalance(v.trx, owner, delta)
}

func (v *view) AdjustConfidentialSupply(delta confidential.Amount) error {
	return v.l.balances.AdjustConfidentialSupply(v.trx, delta)
}

func (v *view) Create(assetID asset.ID, owner authority.Authority, c commitment.Commitment) (*blinded.Record, error) {
	record, err := v.l.outputs.Create(v.trx, assetID, owner, c)
	if nil != err {
		return nil, err
	}
	v.created = append(v.created, record.ID)
	return record, nil
}

func (v *view) FindByCommitment(c commitment.Commitment) (*blinded.Record, error) {
	return v.l.outputs.FindByCommitment(v.trx, c)
}

func (v *view) Remove(c commitment.Commitment) error {
	if err := v.l.outputs.Remove(v.trx, c); nil != err {
		return err
	}
	v.removed += 1
	return nil
}
