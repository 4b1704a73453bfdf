// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

// TagType - type code for operations
// this is encoded as a varint at the start of "Packed"
type TagType uint64

// enumerate the possible operation types
const (
	// null marks beginning of list - not used as an operation type
	NullTag = TagType(iota)

	TransferToBlindTag   = TagType(iota) // public → blind
	TransferFromBlindTag = TagType(iota) // blind → public
	BlindTransferTag     = TagType(iota) // blind → blind

	// this item must be last
	InvalidTag = TagType(iota)
)

var tagNames = map[TagType]string{
	TransferToBlindTag:   "transfer_to_blind",
	TransferFromBlindTag: "transfer_from_blind",
	BlindTransferTag:     "blind_transfer",
}

// String - operation name
func (tag TagType) String() string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return "unknown"
}

// TagFromName - reverse of String
func TagFromName(name string) (TagType, error) {
	for tag, n := range tagNames {
		if n == name {
			return tag, nil
		}
	}
	return InvalidTag, fault.ErrUnknownOperation
}

// Operation - one of TransferToBlind, TransferFromBlind or BlindTransfer
type Operation interface {
	Tag() TagType
	FeePayer() account.ID
	FeeAmount() Amount
	Validate() error
	RequiredAuthorities() []account.ID
	CalculateFee(schedule FeeSchedule) int64
	Pack() Packed

	// only the three operations in this package
	sealed()
}

// Amount - quantity of an asset in its smallest unit
type Amount struct {
	Value   int64    `json:"amount"`
	AssetID asset.ID `json:"asset_id"`
}

// must be positive and within the share supply
func (a Amount) validatePositive(notPositive error) error {
	if a.Value <= 0 {
		return notPositive
	}
	if a.Value > constants.MaxShareSupply {
		return fault.ErrAmountTooLarge
	}
	return nil
}

// BlindInput - an existing blinded output being spent
type BlindInput struct {
	Commitment commitment.Commitment `json:"commitment"`
	Owner      authority.Authority   `json:"owner"`
}

// BlindOutput - a new blinded output
//
// the range proof may be empty when it is the only output
type BlindOutput struct {
	Commitment commitment.Commitment `json:"commitment"`
	Owner      authority.Authority   `json:"owner"`
	RangeProof commitment.RangeProof `json:"range_proof,omitempty"`
}

// FeeSchedule - per kilobyte charge for blinded data
type FeeSchedule struct {
	BlindDataFee int64 `gluamapper:"blind_data_fee" json:"blind_data_fee"`
}

// DefaultFeeSchedule - schedule used when none is configured
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		BlindDataFee: constants.DefaultBlindDataFee,
	}
}

// Validate - the rate must not be negative or absurd
func (schedule FeeSchedule) Validate() error {
	if schedule.BlindDataFee < 0 || schedule.BlindDataFee > constants.MaxShareSupply {
		return fault.ErrInvalidFeeSchedule
	}
	return nil
}

// DataFee - size × rate / 1024, rounded down
func (schedule FeeSchedule) DataFee(size int) int64 {
	fee := decimal.NewFromInt(int64(size)).
		Mul(decimal.NewFromInt(schedule.BlindDataFee)).
		Div(decimal.NewFromInt(constants.FeeDataUnit))
	return fee.Floor().IntPart()
}
