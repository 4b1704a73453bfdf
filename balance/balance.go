// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - public balances per account and asset
//
// key: account ++ asset (both 8 byte big endian)  value: uint64
//
// zero balances are deleted so enumeration shows only held assets
//
// per asset totals are kept alongside so that supply checks do not
// walk every balance: the public total follows AdjustBalance and the
// confidential total is moved explicitly as value enters or leaves
// blinded outputs
package balance

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/logger"
)

// Handles - storage pools used by the ledger
type Handles struct {
	Balances *storage.PoolHandle
	Supply   *storage.PoolHandle
}

// supply kinds
const (
	publicSupply       = 'P'
	confidentialSupply = 'H'
)

// Ledger - public balances
type Ledger struct {
	log     *logger.L
	handles Handles
}

// Info - one held asset
type Info struct {
	AssetID asset.ID `json:"asset_id"`
	Amount  int64    `json:"amount"`
}

// NewLedger - create a balance ledger over the given pool
func NewLedger(handles Handles) (*Ledger, error) {
	if nil == handles.Balances || nil == handles.Supply {
		return nil, fault.ErrNotInitialised
	}
	return &Ledger{
		log:     logger.New("balance"),
		handles: handles,
	}, nil
}

func balanceKey(owner account.ID, assetID asset.ID) []byte {
	return append(owner.Bytes(), assetID.Bytes()...)
}

func supplyKey(kind byte, assetID asset.ID) []byte {
	return append([]byte{kind}, assetID.Bytes()...)
}

// Get - current balance, zero if none
func (l *Ledger) Get(trx storage.Transaction, owner account.ID, assetID asset.ID) int64 {
	n, found := trx.GetN(l.handles.Balances, balanceKey(owner, assetID))
	if !found {
		return 0
	}
	return int64(n)
}

// AdjustBalance - add a signed amount
//
// evaluation must already have ensured the result is in range so
// both underflow and overflow are fatal
func (l *Ledger) AdjustBalance(trx storage.Transaction, owner account.ID, delta confidential.Amount) error {
	key := balanceKey(owner, delta.AssetID)
	current := l.Get(trx, owner, delta.AssetID)
	balance := current + delta.Value

	switch {
	case balance < 0:
		l.log.Criticalf("underflow: account: %s  balance: %d  delta: %d", owner, current, delta.Value)
		return errors.Wrapf(fault.ErrBalanceUnderflow, "account: %s  asset: %s", owner, delta.AssetID)
	case outOfRange(current, delta.Value, balance):
		l.log.Criticalf("overflow: account: %s  balance: %d  delta: %d", owner, current, delta.Value)
		return errors.Wrapf(fault.ErrBalanceOverflow, "account: %s  asset: %s", owner, delta.AssetID)
	}

	supply, err := l.nextSupply(trx, publicSupply, delta)
	if nil != err {
		return err
	}

	if 0 == balance {
		trx.Delete(l.handles.Balances, key)
	} else {
		trx.PutN(l.handles.Balances, key, uint64(balance))
	}
	l.putSupply(trx, publicSupply, delta.AssetID, supply)

	l.log.Debugf("account: %s  asset: %s  %d → %d", owner, delta.AssetID, current, balance)
	return nil
}

// AdjustConfidentialSupply - move the total held in blinded outputs
//
// positive when value is hidden, negative when it is revealed or paid
// out as a fee
func (l *Ledger) AdjustConfidentialSupply(trx storage.Transaction, delta confidential.Amount) error {
	supply, err := l.nextSupply(trx, confidentialSupply, delta)
	if nil != err {
		return err
	}
	l.putSupply(trx, confidentialSupply, delta.AssetID, supply)
	return nil
}

// a positive delta must not wrap or pass the share limit
func outOfRange(current int64, delta int64, result int64) bool {
	return result > constants.MaxShareSupply || (delta > 0 && result < current)
}

func (l *Ledger) getSupply(trx storage.Transaction, kind byte, assetID asset.ID) int64 {
	n, found := trx.GetN(l.handles.Supply, supplyKey(kind, assetID))
	if !found {
		return 0
	}
	return int64(n)
}

func (l *Ledger) nextSupply(trx storage.Transaction, kind byte, delta confidential.Amount) (int64, error) {
	current := l.getSupply(trx, kind, delta.AssetID)
	supply := current + delta.Value

	switch {
	case supply < 0:
		l.log.Criticalf("supply underflow: kind: %c  asset: %s  supply: %d  delta: %d", kind, delta.AssetID, current, delta.Value)
		return 0, errors.Wrapf(fault.ErrSupplyUnderflow, "kind: %c  asset: %s", kind, delta.AssetID)
	case outOfRange(current, delta.Value, supply):
		l.log.Criticalf("supply overflow: kind: %c  asset: %s  supply: %d  delta: %d", kind, delta.AssetID, current, delta.Value)
		return 0, errors.Wrapf(fault.ErrSupplyOverflow, "kind: %c  asset: %s", kind, delta.AssetID)
	}
	return supply, nil
}

func (l *Ledger) putSupply(trx storage.Transaction, kind byte, assetID asset.ID, supply int64) {
	key := supplyKey(kind, assetID)
	if 0 == supply {
		trx.Delete(l.handles.Supply, key)
	} else {
		trx.PutN(l.handles.Supply, key, uint64(supply))
	}
}

// List - every held asset of an account
func (l *Ledger) List(trx storage.Transaction, owner account.ID) ([]Info, error) {
	balances := []Info{}
	cursor := trx.NewFetchCursor(l.handles.Balances).Prefix(owner.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		if 16 != len(key) || len(value) < 8 {
			return fault.ErrRecordCorrupt
		}
		balances = append(balances, Info{
			AssetID: asset.ID(binary.BigEndian.Uint64(key[8:])),
			Amount:  int64(binary.BigEndian.Uint64(value[:8])),
		})
		return nil
	})
	return balances, err
}

// Supply - public total of an asset over all accounts
func (l *Ledger) Supply(trx storage.Transaction, assetID asset.ID) int64 {
	return l.getSupply(trx, publicSupply, assetID)
}

// ConfidentialSupply - total of an asset held in blinded outputs
func (l *Ledger) ConfidentialSupply(trx storage.Transaction, assetID asset.ID) int64 {
	return l.getSupply(trx, confidentialSupply, assetID)
}
