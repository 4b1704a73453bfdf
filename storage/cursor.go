// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/blindd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	trx      *transactionData
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a pool
func (t *transactionData) NewFetchCursor(pool *PoolHandle) *FetchCursor {
	t.check(pool)
	return &FetchCursor{
		trx:  t,
		pool: pool,
		maxRange: util.Range{
			Start: []byte{pool.prefix}, // Start of key range, included in the range
			Limit: pool.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Prefix - restrict the cursor to keys that start with prefix
func (cursor *FetchCursor) Prefix(prefix []byte) *FetchCursor {
	r := util.BytesPrefix(cursor.pool.prefixKey(prefix))
	cursor.maxRange = *r
	return cursor
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from the cursor position
//
// the cursor advances past the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.trx.access.iterate(&cursor.maxRange, func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key[1:], // strip the prefix
			Value: value,
		})
		if len(results) >= count {
			return errStopIteration
		}
		return nil
	})

	if n := len(results); n > 0 {
		// smallest key after the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	return cursor.trx.access.iterate(&cursor.maxRange, func(key []byte, value []byte) error {
		return f(key[1:], value)
	})
}
