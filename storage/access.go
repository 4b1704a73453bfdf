// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"errors"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/blindd/fault"
)

// database access shared by all pools: one batch, one overlay
type access struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	overlay overlay
}

// returned by an iteration callback to stop early
var errStopIteration = errors.New("stop iteration")

func newAccess(db *leveldb.DB) *access {
	return &access{
		inUse:   false,
		db:      db,
		batch:   new(leveldb.Batch),
		overlay: newCache(),
	}
}

func (d *access) begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionAlreadyInUse
	}

	d.inUse = true
	return nil
}

func (d *access) put(key []byte, value []byte) {
	d.overlay.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *access) delete(key []byte) {
	d.overlay.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// nil result means not found
func (d *access) get(key []byte) ([]byte, error) {
	if data, found := d.overlay.Get(string(key)); found {
		if dbDelete == data.op {
			return nil, nil
		}
		return data.value, nil
	}
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *access) has(key []byte) (bool, error) {
	if data, found := d.overlay.Get(string(key)); found {
		return dbPut == data.op, nil
	}
	return d.db.Has(key, nil)
}

// uncommitted write of one key
type pendingWrite struct {
	key  string
	data cacheData
}

// iterate - visit the keys of a range in order, uncommitted writes included
//
// the database iterator is merged with the overlay keys of the range
// as it is read so stopping early does not touch the rest of the pool
func (d *access) iterate(searchRange *ldb_util.Range, f func(key []byte, value []byte) error) error {

	pending := d.pendingInRange(searchRange)

	iter := d.db.NewIterator(searchRange, nil)
	defer iter.Release()

	valid := iter.Next()
	for valid || len(pending) > 0 {

		var key []byte
		var value []byte

		if len(pending) > 0 && (!valid || pending[0].key <= string(iter.Key())) {
			p := pending[0]
			pending = pending[1:]

			// the overlay shadows a stored value of the same key
			if valid && p.key == string(iter.Key()) {
				valid = iter.Next()
			}
			if dbDelete == p.data.op {
				continue
			}
			key = []byte(p.key)
			value = p.data.value

		} else {

			// contents of the returned slices must not be modified, and
			// are only valid until the next call to Next
			key = append([]byte{}, iter.Key()...)
			value = append([]byte{}, iter.Value()...)
			valid = iter.Next()
		}

		err := f(key, value)
		if errStopIteration == err {
			return nil
		}
		if nil != err {
			return err
		}
	}
	return iter.Error()
}

// overlay entries of a range in key order
func (d *access) pendingInRange(searchRange *ldb_util.Range) []pendingWrite {
	pending := []pendingWrite{}
	for key, data := range d.overlay.Items() {
		if inRange(searchRange, []byte(key)) {
			pending = append(pending, pendingWrite{key: key, data: data})
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].key < pending[j].key })
	return pending
}

func inRange(searchRange *ldb_util.Range, key []byte) bool {
	if nil == searchRange {
		return true
	}
	if bytes.Compare(key, searchRange.Start) < 0 {
		return false
	}
	return nil == searchRange.Limit || bytes.Compare(key, searchRange.Limit) < 0
}

func (d *access) commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.overlay.Clear()
	d.inUse = false
	return err
}

func (d *access) abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.overlay.Clear()
	d.inUse = false
}

func (d *access) isInUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
