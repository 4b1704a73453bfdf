// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	BlindedOutputs *PoolHandle `prefix:"B"`
	Commitments    *PoolHandle `prefix:"C"`
	OwnerIndex     *PoolHandle `prefix:"O"`
	Accounts       *PoolHandle `prefix:"A"`
	Assets         *PoolHandle `prefix:"S"`
	Balances       *PoolHandle `prefix:"L"`
	Supply         *PoolHandle `prefix:"U"`
	Counters       *PoolHandle `prefix:"N"`
	Operations     *PoolHandle `prefix:"T"`
	TestData       *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Storage - an open ledger database
type Storage struct {
	sync.Mutex
	db     *leveldb.DB
	access *access
	Pool   Pools
}

// Open - open up the database connection
func Open(database string, readOnly bool) (*Storage, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - an empty database held in memory
func OpenMemory() (*Storage, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Storage, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("ledger database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("ledger database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	} else if version != currentDBVersion {
		logger.Criticalf("ledger database version: %d  current: %d", version, currentDBVersion)
		return nil, fmt.Errorf("ledger database version: %d  current: %d", version, currentDBVersion)
	}

	s := &Storage{
		db:     db,
		access: newAccess(db),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := newPoolHandle(prefixTag[0], s.access)
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return s, nil
}

// Close - close the database connection
func (s *Storage) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Begin - start the single write transaction
func (s *Storage) Begin() (Transaction, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	err := s.access.begin()
	if nil != err {
		return nil, err
	}
	return &transactionData{
		access: s.access,
	}, nil
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
