// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/balance"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/storage"
)

// Balance - public balance of one asset
func (l *Ledger) Balance(owner account.ID, assetID asset.ID) (int64, error) {
	value := int64(0)
	err := l.read(func(trx storage.Transaction) error {
		value = l.balances.Get(trx, owner, assetID)
		return nil
	})
	return value, err
}

// Balances - all non-zero public balances of an account
func (l *Ledger) Balances(owner account.ID) ([]balance.Info, error) {
	var info []balance.Info
	err := l.read(func(trx storage.Transaction) error {
		var err error
		info, err = l.balances.List(trx, owner)
		return err
	})
	return info, err
}

// SupplyInfo - totals of one asset
type SupplyInfo struct {
	Public       int64 `json:"public"`
	Confidential int64 `json:"confidential"`
}

// Supply - public and hidden totals of an asset
//
// only the hidden total is known, not how it is split between outputs
func (l *Ledger) Supply(assetID asset.ID) (SupplyInfo, error) {
	info := SupplyInfo{}
	err := l.read(func(trx storage.Transaction) error {
		info.Public = l.balances.Supply(trx, assetID)
		info.Confidential = l.balances.ConfidentialSupply(trx, assetID)
		return nil
	})
	return info, err
}

// OutputsByOwner - live blinded outputs whose authority names the account
func (l *Ledger) OutputsByOwner(owner account.ID) ([]*blinded.Record, error) {
	var records []*blinded.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		records, err = l.outputs.ListByOwner(trx, owner)
		return err
	})
	return records, err
}

// OutputByCommitment - the live blinded output holding a commitment
func (l *Ledger) OutputByCommitment(c commitment.Commitment) (*blinded.Record, error) {
	var record *blinded.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		record, err = l.outputs.FindByCommitment(trx, c)
		return err
	})
	return record, err
}

// Outputs - page of live blinded outputs in ID order
func (l *Ledger) Outputs(start blinded.ID, count int) ([]*blinded.Record, error) {
	var records []*blinded.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		records, err = l.outputs.List(trx, start, count)
		return err
	})
	return records, err
}

// Account - a registered account
func (l *Ledger) Account(id account.ID) (*account.Record, error) {
	var record *account.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		record, err = l.accounts.Get(trx, id)
		return err
	})
	return record, err
}

// Accounts - all registered accounts
func (l *Ledger) Accounts() ([]*account.Record, error) {
	var records []*account.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		records, err = l.accounts.List(trx)
		return err
	})
	return records, err
}

// Asset - a registered asset
func (l *Ledger) Asset(id asset.ID) (*asset.Record, error) {
	var record *asset.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		record, err = l.assets.Resolve(trx, id)
		return err
	})
	return record, err
}

// Assets - all registered assets
func (l *Ledger) Assets() ([]*asset.Record, error) {
	var records []*asset.Record
	err := l.read(func(trx storage.Transaction) error {
		var err error
		records, err = l.assets.List(trx)
		return err
	})
	return records, err
}
