// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
)

//go:generate mockgen -destination=mocks/ports.go -package=mocks github.com/bitmark-inc/blindd/evaluator AssetRegistry,AccountRegistry,BalanceLedger,OutputStore

// AssetRegistry - asset metadata lookup
type AssetRegistry interface {
	Resolve(id asset.ID) (*asset.Record, error)
}

// AccountRegistry - account existence
type AccountRegistry interface {
	Exists(id account.ID) bool
}

// BalanceLedger - public balances and the per asset total held in
// blinded outputs
type BalanceLedger interface {
	Balance(owner account.ID, id asset.ID) int64
	AdjustBalance(owner account.ID, delta confidential.Amount) error
	AdjustConfidentialSupply(delta confidential.Amount) error
}

// OutputStore - the blinded outputs
type OutputStore interface {
	Create(assetID asset.ID, owner authority.Authority, c commitment.Commitment) (*blinded.Record, error)
	FindByCommitment(c commitment.Commitment) (*blinded.Record, error)
	Remove(c commitment.Commitment) error
}

// Ports - everything an evaluator may read or change
//
// all four are bound to the storage transaction of the operation
type Ports struct {
	Assets   AssetRegistry
	Accounts AccountRegistry
	Balances BalanceLedger
	Outputs  OutputStore
}
