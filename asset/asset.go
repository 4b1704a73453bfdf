// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - asset types, their permission flags and the asset registry
package asset

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// ID - sequential asset number
type ID uint64

const idPrefix = "1.3."

// String - text form of an asset id
func (id ID) String() string {
	return idPrefix + strconv.FormatUint(uint64(id), 10)
}

// Bytes - big endian key form
func (id ID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// ParseID - accept "1.3.N" or a plain number
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, idPrefix), 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid asset id: %q", s)
	}
	return ID(n), nil
}

// Flags - asset permission bits
type Flags uint16

// flag values
const (
	WhiteList           Flags = 0x02
	TransferRestricted  Flags = 0x08
	DisableConfidential Flags = 0x40
	allFlags                  = WhiteList | TransferRestricted | DisableConfidential
)

// Record - a registered asset
type Record struct {
	ID        ID     `json:"id"`
	Symbol    string `json:"symbol"`
	Precision uint8  `json:"precision"`
	Flags     Flags  `json:"flags"`
}

// AllowConfidential - blinded outputs may carry this asset
func (r *Record) AllowConfidential() bool {
	return 0 == r.Flags&DisableConfidential
}

// IsTransferRestricted - transfers need the issuer's approval
func (r *Record) IsTransferRestricted() bool {
	return 0 != r.Flags&TransferRestricted
}

// EnforceWhiteList - holders must be on a white list
func (r *Record) EnforceWhiteList() bool {
	return 0 != r.Flags&WhiteList
}

// Format - show an amount with the asset's precision and symbol
func (r *Record) Format(value int64) string {
	d := decimal.New(value, -int32(r.Precision))
	return d.StringFixed(int32(r.Precision)) + " " + r.Symbol
}

// ParseAmount - convert "12.345" into base units of the asset
func (r *Record) ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, err
	}
	scaled := d.Shift(int32(r.Precision))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fault.ErrInvalidPrecision
	}
	if scaled.GreaterThan(decimal.NewFromInt(constants.MaxShareSupply)) || scaled.LessThan(decimal.NewFromInt(-constants.MaxShareSupply)) {
		return 0, fault.ErrAmountTooLarge
	}
	return scaled.IntPart(), nil
}

// Validate - check symbol, precision and flags
func (r *Record) Validate() error {
	if len(r.Symbol) < 3 || len(r.Symbol) > 16 {
		return fault.ErrInvalidSymbol
	}
	for _, c := range r.Symbol {
		if !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			return fault.ErrInvalidSymbol
		}
	}
	if r.Precision > constants.MaxPrecision {
		return fault.ErrInvalidPrecision
	}
	if 0 != r.Flags&^allFlags {
		return fault.ErrInvalidFlags
	}
	return nil
}

// Pack - binary form for storage
func (r *Record) Pack() []byte {
	buffer := util.AppendUvarint(nil, uint64(r.ID))
	buffer = util.AppendString(buffer, r.Symbol)
	buffer = util.AppendUvarint(buffer, uint64(r.Precision))
	return util.AppendUvarint(buffer, uint64(r.Flags))
}

// Unpack - restore a record written by Pack
func Unpack(buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)

	id, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	symbol, err := u.String()
	if nil != err {
		return nil, err
	}
	precision, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	flags, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	if precision > constants.MaxPrecision || flags > uint64(allFlags) {
		return nil, fault.ErrRecordCorrupt
	}
	return &Record{
		ID:        ID(id),
		Symbol:    symbol,
		Precision: uint8(precision),
		Flags:     Flags(flags),
	}, nil
}
