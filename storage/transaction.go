// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/blindd/fault"
)

// Transaction - batch of writes applied atomically by Commit
//
// reads see the transaction's own uncommitted writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	NewFetchCursor(*PoolHandle) *FetchCursor
	Commit() error
	Abort()
}

type transactionData struct {
	access *access
	done   bool
}

func (t *transactionData) check(pool *PoolHandle) {
	if t.done || !t.access.isInUse() {
		fault.Panic("storage: transaction used after commit or abort")
	}
	if pool.access != t.access {
		fault.Panic("storage: pool belongs to another database")
	}
}

// Put - store a key/value bytes pair
func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	t.check(pool)
	t.access.put(pool.prefixKey(key), value)
}

// PutN - store a big endian uint64
func (t *transactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(pool, key, buffer)
}

// Delete - remove a key
func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	t.check(pool)
	t.access.delete(pool.prefixKey(key))
}

// Get - read a value for a given key, nil if not found
func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	t.check(pool)
	value, err := t.access.get(pool.prefixKey(key))
	fault.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (t *transactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(pool, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	t.check(pool)
	found, err := t.access.has(pool.prefixKey(key))
	fault.PanicIfError("pool.Has", err)
	return found
}

// Commit - write the batch to the database
func (t *transactionData) Commit() error {
	if t.done || !t.access.isInUse() {
		return fault.ErrTransactionNotInUse
	}
	t.done = true
	return t.access.commit()
}

// Abort - discard all writes, does nothing after Commit
func (t *transactionData) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.access.abort()
}
