// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blinded_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/fault"
)

func TestNewStore(t *testing.T) {
	_, err := blinded.NewStore(blinded.Handles{})
	assert.Equal(t, fault.ErrNotInitialised, err)
}

func TestCreateFindRemove(t *testing.T) {
	s, store := setupStore(t)
	defer s.Close()

	c1 := newCommitment(t, 10)
	c2 := newCommitment(t, 20)
	owner := authority.ForAccount(16)

	trx := begin(t, s)
	r1, err := store.Create(trx, 0, owner, c1)
	assert.Nil(t, err)
	assert.Equal(t, blinded.ID(0), r1.ID)
	r2, err := store.Create(trx, 1, owner, c2)
	assert.Nil(t, err)
	assert.Equal(t, blinded.ID(1), r2.ID)
	assert.Equal(t, "1.11.1", r2.ID.String())

	// visible inside the transaction before commit
	found, err := store.FindByCommitment(trx, c2)
	assert.Nil(t, err)
	assert.Equal(t, r2, found)
	assert.Nil(t, trx.Commit())

	trx = begin(t, s)
	found, err = store.FindByCommitment(trx, c1)
	assert.Nil(t, err)
	assert.Equal(t, r1.ID, found.ID)
	assert.True(t, owner.Equal(found.Owner))

	assert.Nil(t, store.Remove(trx, c1))
	_, err = store.FindByCommitment(trx, c1)
	assert.Equal(t, fault.ErrCommitmentNotFound, errors.Cause(err))
	assert.Nil(t, trx.Commit())

	trx = begin(t, s)
	defer trx.Abort()
	_, err = store.FindByCommitment(trx, c1)
	assert.True(t, fault.IsErrNotFound(err))
	_, err = store.FindByCommitment(trx, c2)
	assert.Nil(t, err)

	// ids are not reused
	r3, err := store.Create(trx, 0, owner, c1)
	assert.Nil(t, err)
	assert.Equal(t, blinded.ID(2), r3.ID)
}

func TestDuplicateIsFatal(t *testing.T) {
	s, store := setupStore(t)
	defer s.Close()

	c := newCommitment(t, 10)
	trx := begin(t, s)
	defer trx.Abort()

	_, err := store.Create(trx, 0, authority.ForAccount(16), c)
	assert.Nil(t, err)

	_, err = store.Create(trx, 0, authority.ForAccount(17), c)
	assert.Equal(t, fault.ErrDuplicateCommitment, errors.Cause(err))
	assert.True(t, fault.IsErrFatal(err))
}

func TestRemoveMissingIsFatal(t *testing.T) {
	s, store := setupStore(t)
	defer s.Close()

	trx := begin(t, s)
	defer trx.Abort()

	err := store.Remove(trx, newCommitment(t, 5))
	assert.Equal(t, fault.ErrBlindedOutputMissing, errors.Cause(err))
	assert.True(t, fault.IsErrFatal(err))
}

func TestAbortLeavesNoTrace(t *testing.T) {
	s, store := setupStore(t)
	defer s.Close()

	c := newCommitment(t, 10)
	trx := begin(t, s)
	_, err := store.Create(trx, 0, authority.ForAccount(16), c)
	assert.Nil(t, err)
	trx.Abort()

	trx = begin(t, s)
	defer trx.Abort()
	_, err = store.FindByCommitment(trx, c)
	assert.True(t, fault.IsErrNotFound(err))

	records, err := store.ListByOwner(trx, 16)
	assert.Nil(t, err)
	assert.Empty(t, records)
}

func TestListByOwner(t *testing.T) {
	s, store := setupStore(t)
	defer s.Close()

	shared := authority.Authority{
		WeightThreshold: 2,
		AccountAuths:    map[account.ID]uint16{16: 1, 17: 1},
	}

	trx := begin(t, s)
	_, err := store.Create(trx, 0, authority.ForAccount(16), newCommitment(t, 1))
	assert.Nil(t, err)
	_, err = store.Create(trx, 0, shared, newCommitment(t, 2))
	assert.Nil(t, err)
	_, err = store.Create(trx, 0, authority.ForAccount(17), newCommitment(t, 3))
	assert.Nil(t, err)
	keyOnly, err := store.Create(trx, 0, authority.ForKey(authority.PublicKey{1}), newCommitment(t, 4))
	assert.Nil(t, err)
	assert.Nil(t, trx.Commit())

	trx = begin(t, s)
	defer trx.Abort()

	ids := func(owner account.ID) []blinded.ID {
		records, err := store.ListByOwner(trx, owner)
		assert.Nil(t, err)
		result := []blinded.ID{}
		for _, r := range records {
			result = append(result, r.ID)
		}
		return result
	}
	assert.Equal(t, []blinded.ID{0, 1}, ids(16))
	assert.Equal(t, []blinded.ID{1, 2}, ids(17))
	assert.Equal(t, []blinded.ID{}, ids(18))

	// removing a shared output clears every owner entry
	shared1, err := store.Get(trx, 1)
	assert.Nil(t, err)
	assert.Nil(t, store.Remove(trx, shared1.Commitment))
	assert.Equal(t, []blinded.ID{0}, ids(16))
	assert.Equal(t, []blinded.ID{2}, ids(17))

	all, err := store.List(trx, 0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(all))
	assert.Equal(t, keyOnly.ID, all[2].ID)

	page, err := store.List(trx, 2, 1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(page))
	assert.Equal(t, blinded.ID(2), page[0].ID)
}
