// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blindd/balance"
	"github.com/bitmark-inc/blindd/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
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
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func setupLedger(t *testing.T) (*storage.Storage, storage.Transaction, *balance.Ledger) {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory storage error: %s", err)
	}
	l, err := balance.NewLedger(balance.Handles{
		Balances: s.Pool.Balances,
		Supply:   s.Pool.Supply,
	})
	if nil != err {
		t.Fatalf("new ledger error: %s", err)
	}
	trx, err := s.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return s, trx, l
}
