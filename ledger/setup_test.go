// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/storage"
	"github.com/bitmark-inc/blindd/wallet"
)

const (
	testingDirName = "testing"

	// small enough that a fee of testFee covers any test operation
	testRate = 100
	testFee  = 1000

	issued = 100000
)

var (
	alice = authority.ForAccount(16)
	bob   = authority.ForAccount(17)

	committee = account.ID(constants.CommitteeAccount)
	temp      = account.ID(constants.TempAccount)
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

// ledger with reserved accounts, alice (16) holding issued core
// units and bob (17) holding nothing
func setupLedger(t *testing.T) (*storage.Storage, *Ledger) {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory storage error: %s", err)
	}

	configuration := DefaultConfiguration()
	configuration.FeeSchedule.BlindDataFee = testRate
	l, err := New(s, configuration)
	if nil != err {
		t.Fatalf("new ledger error: %s", err)
	}
	if err := l.Genesis(); nil != err {
		t.Fatalf("genesis error: %s", err)
	}

	for _, name := range []string{"alice", "bob"} {
		publicKey, _, err := ed25519.GenerateKey(nil)
		if nil != err {
			t.Fatalf("generate key error: %s", err)
		}
		if _, err := l.CreateAccount(name, publicKey); nil != err {
			t.Fatalf("create account: %s  error: %s", name, err)
		}
	}

	if err := l.Issue(16, confidential.Amount{Value: issued, AssetID: 0}); nil != err {
		t.Fatalf("issue error: %s", err)
	}
	return s, l
}

func transaction(ops ...confidential.Operation) *confidential.Transaction {
	return &confidential.Transaction{
		Operations: ops,
	}
}

// alice moves the payments into bob's blinded outputs
func aliceToBob(t *testing.T, values ...uint64) (*confidential.TransferToBlind, []wallet.Secret) {
	payments := make([]wallet.Payment, len(values))
	for i, v := range values {
		payments[i] = wallet.Payment{Owner: bob, Value: v}
	}
	op, secrets, err := wallet.Builder{Fee: testFee}.ToBlind(16, payments)
	if nil != err {
		t.Fatalf("build to blind error: %s", err)
	}
	return op, secrets
}

func balanceOf(t *testing.T, l *Ledger, owner account.ID) int64 {
	value, err := l.Balance(owner, 0)
	if nil != err {
		t.Fatalf("balance: %s  error: %s", owner, err)
	}
	return value
}

func spendsOf(owner authority.Authority, secrets ...wallet.Secret) []wallet.Spend {
	s := make([]wallet.Spend, len(secrets))
	for i, secret := range secrets {
		s[i] = wallet.Spend{Owner: owner, Secret: secret}
	}
	return s
}

func secretOf(t *testing.T, secrets []wallet.Secret, value uint64) wallet.Secret {
	for _, s := range secrets {
		if s.Value == value {
			return s
		}
	}
	t.Fatalf("no secret with value: %d", value)
	return wallet.Secret{}
}
