// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blinded

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/logger"
)

const sequenceName = "blinded"

// Handles - storage pools used by the store
type Handles struct {
	BlindedOutputs *storage.PoolHandle
	Commitments    *storage.PoolHandle
	OwnerIndex     *storage.PoolHandle
	Counters       *storage.PoolHandle
}

// Store - blinded outputs, unique by commitment
type Store struct {
	log     *logger.L
	handles Handles
}

// NewStore - create a store over the given pools
func NewStore(handles Handles) (*Store, error) {
	if nil == handles.BlindedOutputs || nil == handles.Commitments || nil == handles.OwnerIndex || nil == handles.Counters {
		return nil, fault.ErrNotInitialised
	}
	return &Store{
		log:     logger.New("blinded"),
		handles: handles,
	}, nil
}

func ownerKey(owner account.ID, id ID) []byte {
	return append(owner.Bytes(), id.Bytes()...)
}

// Create - add an output
//
// a duplicate commitment must have been rejected earlier, finding one
// here is fatal
func (s *Store) Create(trx storage.Transaction, assetID asset.ID, owner authority.Authority, c commitment.Commitment) (*Record, error) {
	if trx.Has(s.handles.Commitments, c[:]) {
		s.log.Criticalf("duplicate commitment: %s", c)
		return nil, errors.Wrapf(fault.ErrDuplicateCommitment, "commitment: %s", c)
	}

	id := ID(storage.NextSequence(trx, s.handles.Counters, sequenceName, 0))
	record := &Record{
		ID:         id,
		AssetID:    assetID,
		Owner:      owner,
		Commitment: c,
	}

	trx.Put(s.handles.BlindedOutputs, id.Bytes(), record.Pack())
	trx.PutN(s.handles.Commitments, c[:], uint64(id))
	for _, a := range owner.Accounts() {
		trx.Put(s.handles.OwnerIndex, ownerKey(a, id), []byte{})
	}

	s.log.Debugf("create: %s  asset: %s  commitment: %s", id, assetID, c)
	return record, nil
}

// FindByCommitment - the live output with this commitment
func (s *Store) FindByCommitment(trx storage.Transaction, c commitment.Commitment) (*Record, error) {
	n, found := trx.GetN(s.handles.Commitments, c[:])
	if !found {
		return nil, errors.Wrapf(fault.ErrCommitmentNotFound, "commitment: %s", c)
	}
	return s.Get(trx, ID(n))
}

// Get - output by id
func (s *Store) Get(trx storage.Transaction, id ID) (*Record, error) {
	packed := trx.Get(s.handles.BlindedOutputs, id.Bytes())
	if nil == packed {
		return nil, errors.Wrapf(fault.ErrBlindedOutputMissing, "id: %s", id)
	}
	record, err := unpack(id, packed)
	if nil != err {
		s.log.Errorf("output: %s  unpack error: %s", id, err)
		return nil, fault.ErrRecordCorrupt
	}
	return record, nil
}

// Remove - spend the output with this commitment
//
// evaluation must have found it, a missing output here is fatal
func (s *Store) Remove(trx storage.Transaction, c commitment.Commitment) error {
	n, found := trx.GetN(s.handles.Commitments, c[:])
	if !found {
		s.log.Criticalf("remove missing commitment: %s", c)
		return errors.Wrapf(fault.ErrBlindedOutputMissing, "commitment: %s", c)
	}
	record, err := s.Get(trx, ID(n))
	if nil != err {
		return fault.Fatal(err)
	}

	trx.Delete(s.handles.BlindedOutputs, record.ID.Bytes())
	trx.Delete(s.handles.Commitments, c[:])
	for _, a := range record.Owner.Accounts() {
		trx.Delete(s.handles.OwnerIndex, ownerKey(a, record.ID))
	}

	s.log.Debugf("remove: %s  commitment: %s", record.ID, c)
	return nil
}

// ListByOwner - outputs whose owner names the account, in id order
func (s *Store) ListByOwner(trx storage.Transaction, owner account.ID) ([]*Record, error) {
	ids := []ID{}
	cursor := trx.NewFetchCursor(s.handles.OwnerIndex).Prefix(owner.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		id, err := idFromBytes(key[8:])
		if nil != err {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if nil != err {
		return nil, err
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(trx, id)
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// List - up to count outputs with id ≥ start
func (s *Store) List(trx storage.Transaction, start ID, count int) ([]*Record, error) {
	cursor := trx.NewFetchCursor(s.handles.BlindedOutputs).Seek(start.Bytes())
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	records := make([]*Record, 0, len(elements))
	for _, e := range elements {
		id, err := idFromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		record, err := unpack(id, e.Value)
		if nil != err {
			return nil, fault.ErrRecordCorrupt
		}
		records = append(records, record)
	}
	return records, nil
}

// Count - number of live outputs
func (s *Store) Count(trx storage.Transaction) (int, error) {
	n := 0
	err := trx.NewFetchCursor(s.handles.Commitments).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}
