// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - apply confidential transactions to the database
//
// A transaction is applied under the ledger lock inside one storage
// transaction.  For each operation, in order:
//
//   validate  (all operations, before touching storage)
//   stated fee ≥ calculated fee
//   required authority accounts exist
//   evaluate  (read only)
//   apply
//   pay the fee to the committee account
//
// Any error aborts the storage transaction so nothing of the
// transaction is visible; errors from apply and fee payment are fatal.
package ledger

import (
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/balance"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/logger"
)

// Configuration - ledger settings from the configuration file
type Configuration struct {
	FeeSchedule      confidential.FeeSchedule `gluamapper:"fee_schedule" json:"fee_schedule"`
	AccountCacheSize int                      `gluamapper:"account_cache_size" json:"account_cache_size"`
	AssetCacheSize   int                      `gluamapper:"asset_cache_size" json:"asset_cache_size"`
}

// DefaultConfiguration - settings when none are configured
func DefaultConfiguration() Configuration {
	return Configuration{
		FeeSchedule:      confidential.DefaultFeeSchedule(),
		AccountCacheSize: 1024,
		AssetCacheSize:   256,
	}
}

// Ledger - the confidential transfer state machine
type Ledger struct {
	sync.Mutex

	log      *logger.L
	storage  *storage.Storage
	schedule confidential.FeeSchedule

	accounts *account.Registry
	assets   *asset.Registry
	balances *balance.Ledger
	outputs  *blinded.Store
}

// reserved accounts and their names
var reserved = []struct {
	id   uint64
	name string
}{
	{constants.CommitteeAccount, "committee-account"},
	{constants.NullAccount, "null-account"},
	{constants.TempAccount, "temp-account"},
}

// New - ledger over an open database
func New(s *storage.Storage, configuration Configuration) (*Ledger, error) {
	log := logger.New("ledger")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := configuration.FeeSchedule.Validate(); nil != err {
		return nil, err
	}

	accounts, err := account.NewRegistry(account.Handles{
		Accounts: s.Pool.Accounts,
		Counters: s.Pool.Counters,
	}, configuration.AccountCacheSize)
	if nil != err {
		return nil, err
	}
	assets, err := asset.NewRegistry(asset.Handles{
		Assets:   s.Pool.Assets,
		Counters: s.Pool.Counters,
	}, configuration.AssetCacheSize)
	if nil != err {
		return nil, err
	}
	balances, err := balance.NewLedger(balance.Handles{
		Balances: s.Pool.Balances,
		Supply:   s.Pool.Supply,
	})
	if nil != err {
		return nil, err
	}
	outputs, err := blinded.NewStore(blinded.Handles{
		BlindedOutputs: s.Pool.BlindedOutputs,
		Commitments:    s.Pool.Commitments,
		OwnerIndex:     s.Pool.OwnerIndex,
		Counters:       s.Pool.Counters,
	})
	if nil != err {
		return nil, err
	}

	l := &Ledger{
		log:      log,
		storage:  s,
		schedule: configuration.FeeSchedule,
		accounts: accounts,
		assets:   assets,
		balances: balances,
		outputs:  outputs,
	}

	err = l.read(func(trx storage.Transaction) error {
		n, err := outputs.Count(trx)
		blindedOutputs.Set(float64(n))
		return err
	})
	if nil != err {
		return nil, err
	}

	log.Infof("fee schedule: blind data fee: %d", configuration.FeeSchedule.BlindDataFee)
	return l, nil
}

// FeeSchedule - the schedule fees are checked against
func (l *Ledger) FeeSchedule() confidential.FeeSchedule {
	return l.schedule
}

// Genesis - reserved accounts and the core asset
func (l *Ledger) Genesis() error {
	return l.write(func(trx storage.Transaction) error {
		if l.accounts.Exists(trx, account.ID(constants.CommitteeAccount)) {
			return fault.ErrAlreadyInitialised
		}
		for _, r := range reserved {
			if _, err := l.accounts.CreateReserved(trx, account.ID(r.id), r.name); nil != err {
				return err
			}
		}
		_, err := l.assets.CreateCore(trx)
		return err
	})
}

// CreateAccount - register a user account
func (l *Ledger) CreateAccount(name string, publicKey ed25519.PublicKey) (*account.Record, error) {
	var record *account.Record
	err := l.write(func(trx storage.Transaction) error {
		var err error
		record, err = l.accounts.Create(trx, name, publicKey)
		return err
	})
	return record, err
}

// CreateAsset - register an asset type
func (l *Ledger) CreateAsset(symbol string, precision uint8, flags asset.Flags) (*asset.Record, error) {
	var record *asset.Record
	err := l.write(func(trx storage.Transaction) error {
		var err error
		record, err = l.assets.Create(trx, symbol, precision, flags)
		return err
	})
	return record, err
}

// Issue - create public supply in an account
//
// the limit covers value already hidden in blinded outputs as well as
// public balances
func (l *Ledger) Issue(to account.ID, amount confidential.Amount) error {
	if amount.Value <= 0 {
		return fault.ErrAmountNotPositive
	}
	return l.write(func(trx storage.Transaction) error {
		if !l.accounts.Exists(trx, to) {
			return fault.ErrAccountNotFound
		}
		if _, err := l.assets.Resolve(trx, amount.AssetID); nil != err {
			return err
		}
		supply := l.balances.Supply(trx, amount.AssetID) + l.balances.ConfidentialSupply(trx, amount.AssetID)
		if amount.Value > constants.MaxShareSupply-supply {
			return fault.ErrAmountTooLarge
		}
		l.log.Infof("issue: %d of %s to %s", amount.Value, amount.AssetID, to)
		return l.balances.AdjustBalance(trx, to, amount)
	})
}

// run f in a storage transaction, commit on success
func (l *Ledger) write(f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.storage.Begin()
	if nil != err {
		return err
	}
	if err := f(trx); nil != err {
		l.abort(trx)
		return err
	}
	if err := trx.Commit(); nil != err {
		l.purge()
		l.log.Criticalf("commit error: %s", err)
		return fault.Fatal(err)
	}
	return nil
}

// run f in a storage transaction that is always discarded
func (l *Ledger) read(f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.storage.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()
	return f(trx)
}

func (l *Ledger) abort(trx storage.Transaction) {
	trx.Abort()
	l.purge()
}

// caches may hold records read from the aborted transaction
func (l *Ledger) purge() {
	l.accounts.Purge()
	l.assets.Purge()
}
