// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// MaxShareSupply - the largest quantity of any single asset
const (
	MaxShareSupply = int64(1000000000000000)
)

// reserved accounts created with every ledger
const (
	CommitteeAccount = uint64(0) // receives all operation fees
	NullAccount      = uint64(3)
	TempAccount      = uint64(4) // pays blind transfer fees from the hidden surplus
	FirstUserAccount = uint64(16)
)

// CoreAsset - the asset created with every ledger
const (
	CoreAsset          = uint64(0)
	CoreAssetSymbol    = "BLD"
	CoreAssetPrecision = 5
)

// fees are charged per kilobyte of packed operation
const (
	FeeDataUnit         = 1024
	DefaultBlindDataFee = int64(100000)
)

// MaxPrecision - most decimal places an asset can show
const (
	MaxPrecision = 12
)
