// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func openMemory(t *testing.T) *storage.Storage {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory storage error: %s", err)
	}
	return s
}

func TestOpenFile(t *testing.T) {
	name := filepath.Join(testingDirName, "open")

	s, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "open read/write")

	trx, err := s.Begin()
	assert.Nil(t, err)
	trx.Put(s.Pool.TestData, []byte("key"), []byte("persisted"))
	assert.Nil(t, trx.Commit())
	s.Close()

	s, err = storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	defer s.Close()

	trx, err = s.Begin()
	assert.Nil(t, err)
	defer trx.Abort()
	assert.Equal(t, []byte("persisted"), trx.Get(s.Pool.TestData, []byte("key")))
}

func TestOpenMissingReadOnly(t *testing.T) {
	_, err := storage.Open(filepath.Join(testingDirName, "missing"), storage.ReadOnly)
	assert.NotNil(t, err)
}

func TestPoolPrefixes(t *testing.T) {
	s := openMemory(t)
	defer s.Close()

	seen := make(map[byte]bool)
	for _, p := range []*storage.PoolHandle{
		s.Pool.BlindedOutputs,
		s.Pool.Commitments,
		s.Pool.OwnerIndex,
		s.Pool.Accounts,
		s.Pool.Assets,
		s.Pool.Balances,
		s.Pool.Supply,
		s.Pool.Counters,
		s.Pool.Operations,
		s.Pool.TestData,
	} {
		assert.NotNil(t, p)
		assert.False(t, seen[p.Prefix()], "duplicate prefix: %c", p.Prefix())
		seen[p.Prefix()] = true
	}
}

func TestBeginAfterClose(t *testing.T) {
	s := openMemory(t)
	s.Close()

	_, err := s.Begin()
	assert.Equal(t, fault.ErrNotInitialised, err)
}
