// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/logger"
)

const sequenceName = "account"

// Handles - storage pools used by the registry
type Handles struct {
	Accounts *storage.PoolHandle
	Counters *storage.PoolHandle
}

// Registry - persistent set of accounts with a read cache
type Registry struct {
	log     *logger.L
	handles Handles
	cache   *lru.Cache[ID, *Record]
}

// NewRegistry - create a registry over the given pools
func NewRegistry(handles Handles, cacheSize int) (*Registry, error) {
	if nil == handles.Accounts || nil == handles.Counters {
		return nil, fault.ErrNotInitialised
	}
	cache, err := lru.New[ID, *Record](cacheSize)
	if nil != err {
		return nil, err
	}
	return &Registry{
		log:     logger.New("account"),
		handles: handles,
		cache:   cache,
	}, nil
}

// CreateReserved - store a keyless system account with a fixed id
func (r *Registry) CreateReserved(trx storage.Transaction, id ID, name string) (*Record, error) {
	if err := validName(name); nil != err {
		return nil, err
	}
	if trx.Has(r.handles.Accounts, id.Bytes()) {
		return nil, fault.ErrAccountExists
	}
	record := &Record{
		ID:   id,
		Name: name,
	}
	trx.Put(r.handles.Accounts, id.Bytes(), record.Pack())
	r.log.Infof("reserved account: %s  name: %q", id, name)
	return record, nil
}

// Create - store a new user account and assign its id
func (r *Registry) Create(trx storage.Transaction, name string, publicKey ed25519.PublicKey) (*Record, error) {
	if err := validName(name); nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidPublicKey
	}

	id := ID(storage.NextSequence(trx, r.handles.Counters, sequenceName, constants.FirstUserAccount))
	record := &Record{
		ID:        id,
		Name:      name,
		PublicKey: publicKey,
	}
	trx.Put(r.handles.Accounts, id.Bytes(), record.Pack())
	r.log.Infof("created account: %s  name: %q", id, name)
	return record, nil
}

// Get - fetch an account record
func (r *Registry) Get(trx storage.Transaction, id ID) (*Record, error) {
	if record, ok := r.cache.Get(id); ok {
		return record, nil
	}

	packed := trx.Get(r.handles.Accounts, id.Bytes())
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	record, err := Unpack(packed)
	if nil != err {
		r.log.Errorf("account: %s  unpack error: %s", id, err)
		return nil, err
	}
	r.cache.Add(id, record)
	return record, nil
}

// Exists - true if the account is registered
func (r *Registry) Exists(trx storage.Transaction, id ID) bool {
	if r.cache.Contains(id) {
		return true
	}
	return trx.Has(r.handles.Accounts, id.Bytes())
}

// List - all accounts in id order
func (r *Registry) List(trx storage.Transaction) ([]*Record, error) {
	records := []*Record{}
	err := trx.NewFetchCursor(r.handles.Accounts).Map(func(key []byte, value []byte) error {
		record, err := Unpack(value)
		if nil != err {
			return err
		}
		records = append(records, record)
		return nil
	})
	return records, err
}

// Purge - drop cached records, called when a transaction is aborted
func (r *Registry) Purge() {
	r.cache.Purge()
}
