// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/balance"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

func TestNewLedger(t *testing.T) {
	_, err := balance.NewLedger(balance.Handles{})
	assert.Equal(t, fault.ErrNotInitialised, err)
}

func TestAdjust(t *testing.T) {
	s, trx, l := setupLedger(t)
	defer s.Close()
	defer trx.Abort()

	assert.Equal(t, int64(0), l.Get(trx, 16, 0))

	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: 500, AssetID: 0}))
	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: -200, AssetID: 0}))
	assert.Equal(t, int64(300), l.Get(trx, 16, 0))

	err := l.AdjustBalance(trx, 16, confidential.Amount{Value: -301, AssetID: 0})
	assert.Equal(t, fault.ErrBalanceUnderflow, errors.Cause(err))
	assert.True(t, fault.IsErrFatal(err))
	assert.Equal(t, int64(300), l.Get(trx, 16, 0), "unchanged after underflow")

	err = l.AdjustBalance(trx, 16, confidential.Amount{Value: constants.MaxShareSupply, AssetID: 0})
	assert.Equal(t, fault.ErrBalanceOverflow, errors.Cause(err))
	assert.True(t, fault.IsErrFatal(err))

	// spending to zero removes the entry
	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: -300, AssetID: 0}))
	balances, err := l.List(trx, 16)
	assert.Nil(t, err)
	assert.Empty(t, balances)
}

func TestListAndSupply(t *testing.T) {
	s, trx, l := setupLedger(t)
	defer s.Close()
	defer trx.Abort()

	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: 10, AssetID: 0}))
	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: 20, AssetID: 2}))
	assert.Nil(t, l.AdjustBalance(trx, 17, confidential.Amount{Value: 30, AssetID: 0}))
	assert.Nil(t, l.AdjustBalance(trx, 256, confidential.Amount{Value: 40, AssetID: 0}))

	balances, err := l.List(trx, 16)
	assert.Nil(t, err)
	assert.Equal(t, []balance.Info{{AssetID: 0, Amount: 10}, {AssetID: 2, Amount: 20}}, balances)

	balances, err = l.List(trx, 17)
	assert.Nil(t, err)
	assert.Equal(t, []balance.Info{{AssetID: 0, Amount: 30}}, balances)

	assert.Equal(t, int64(80), l.Supply(trx, 0))
	assert.Equal(t, int64(20), l.Supply(trx, 2))

	// moving between accounts leaves the total alone
	assert.Nil(t, l.AdjustBalance(trx, 17, confidential.Amount{Value: -30, AssetID: 0}))
	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: 30, AssetID: 0}))
	assert.Equal(t, int64(80), l.Supply(trx, 0))
}

func TestConfidentialSupply(t *testing.T) {
	s, trx, l := setupLedger(t)
	defer s.Close()
	defer trx.Abort()

	assert.Equal(t, int64(0), l.ConfidentialSupply(trx, 0))

	assert.Nil(t, l.AdjustConfidentialSupply(trx, confidential.Amount{Value: 500, AssetID: 0}))
	assert.Nil(t, l.AdjustConfidentialSupply(trx, confidential.Amount{Value: -120, AssetID: 0}))
	assert.Equal(t, int64(380), l.ConfidentialSupply(trx, 0))
	assert.Equal(t, int64(0), l.ConfidentialSupply(trx, 2))
	assert.Equal(t, int64(0), l.Supply(trx, 0), "public total is separate")

	err := l.AdjustConfidentialSupply(trx, confidential.Amount{Value: -381, AssetID: 0})
	assert.Equal(t, fault.ErrSupplyUnderflow, errors.Cause(err))
	assert.True(t, fault.IsErrFatal(err))

	err = l.AdjustConfidentialSupply(trx, confidential.Amount{Value: constants.MaxShareSupply, AssetID: 0})
	assert.Equal(t, fault.ErrSupplyOverflow, errors.Cause(err))
	assert.Equal(t, int64(380), l.ConfidentialSupply(trx, 0), "unchanged after overflow")
}

// a balance that fits can still push the asset total past the limit
func TestAdjustBalanceSupplyLimit(t *testing.T) {
	s, trx, l := setupLedger(t)
	defer s.Close()
	defer trx.Abort()

	assert.Nil(t, l.AdjustBalance(trx, 16, confidential.Amount{Value: constants.MaxShareSupply, AssetID: 0}))
	err := l.AdjustBalance(trx, 17, confidential.Amount{Value: 1, AssetID: 0})
	assert.Equal(t, fault.ErrSupplyOverflow, errors.Cause(err))
	assert.Equal(t, int64(0), l.Get(trx, 17, 0), "unchanged after overflow")
}
