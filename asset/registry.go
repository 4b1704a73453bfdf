// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/logger"
)

const sequenceName = "asset"

// Handles - storage pools used by the registry
type Handles struct {
	Assets   *storage.PoolHandle
	Counters *storage.PoolHandle
}

// Registry - persistent set of assets with a read cache
type Registry struct {
	log     *logger.L
	handles Handles
	cache   *lru.Cache[ID, *Record]
}

// NewRegistry - create a registry over the given pools
func NewRegistry(handles Handles, cacheSize int) (*Registry, error) {
	if nil == handles.Assets || nil == handles.Counters {
		return nil, fault.ErrNotInitialised
	}
	cache, err := lru.New[ID, *Record](cacheSize)
	if nil != err {
		return nil, err
	}
	return &Registry{
		log:     logger.New("asset"),
		handles: handles,
		cache:   cache,
	}, nil
}

// CreateCore - store the core asset, the first asset of every ledger
func (r *Registry) CreateCore(trx storage.Transaction) (*Record, error) {
	id := ID(constants.CoreAsset)
	if trx.Has(r.handles.Assets, id.Bytes()) {
		return nil, fault.ErrAssetExists
	}

	// user assets are numbered after the core asset
	storage.NextSequence(trx, r.handles.Counters, sequenceName, constants.CoreAsset)

	record := &Record{
		ID:        id,
		Symbol:    constants.CoreAssetSymbol,
		Precision: constants.CoreAssetPrecision,
	}
	trx.Put(r.handles.Assets, id.Bytes(), record.Pack())
	r.log.Infof("created core asset: %s  symbol: %s", id, record.Symbol)
	return record, nil
}

// Create - store a new asset and assign its id
func (r *Registry) Create(trx storage.Transaction, symbol string, precision uint8, flags Flags) (*Record, error) {
	record := &Record{
		Symbol:    symbol,
		Precision: precision,
		Flags:     flags,
	}
	if err := record.Validate(); nil != err {
		return nil, err
	}

	existing, err := r.List(trx)
	if nil != err {
		return nil, err
	}
	for _, e := range existing {
		if e.Symbol == symbol {
			return nil, fault.ErrAssetExists
		}
	}

	record.ID = ID(storage.NextSequence(trx, r.handles.Counters, sequenceName, constants.CoreAsset+1))
	trx.Put(r.handles.Assets, record.ID.Bytes(), record.Pack())
	r.log.Infof("created asset: %s  symbol: %s  flags: 0x%02x", record.ID, symbol, flags)
	return record, nil
}

// Resolve - fetch an asset record
func (r *Registry) Resolve(trx storage.Transaction, id ID) (*Record, error) {
	if record, ok := r.cache.Get(id); ok {
		return record, nil
	}

	packed := trx.Get(r.handles.Assets, id.Bytes())
	if nil == packed {
		return nil, fault.ErrAssetNotFound
	}
	record, err := Unpack(packed)
	if nil != err {
		r.log.Errorf("asset: %s  unpack error: %s", id, err)
		return nil, err
	}
	r.cache.Add(id, record)
	return record, nil
}

// List - all assets in id order
func (r *Registry) List(trx storage.Transaction) ([]*Record, error) {
	records := []*Record{}
	err := trx.NewFetchCursor(r.handles.Assets).Map(func(key []byte, value []byte) error {
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
