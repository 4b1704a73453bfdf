// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blinded - the store of spendable blinded outputs
//
// Records live under their id; two indexes refer back to the id:
//
//   C: commitment            → id   (unique)
//   O: owner account ++ id   → nil  (one entry per account in the owner)
//
// An output is atomic: spending removes the record and every index
// entry in the same storage transaction.
package blinded

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// ID - stable number assigned on creation, never reused
type ID uint64

// String - text form of an output id
func (id ID) String() string {
	return "1.11." + strconv.FormatUint(uint64(id), 10)
}

// Bytes - big endian key form
func (id ID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

func idFromBytes(buffer []byte) (ID, error) {
	if 8 != len(buffer) {
		return 0, fault.ErrRecordCorrupt
	}
	return ID(binary.BigEndian.Uint64(buffer)), nil
}

// Record - a blinded output
type Record struct {
	ID         ID                    `json:"id"`
	AssetID    asset.ID              `json:"asset_id"`
	Owner      authority.Authority   `json:"owner"`
	Commitment commitment.Commitment `json:"commitment"`
}

// Pack - stored form, the id is the key
func (r *Record) Pack() []byte {
	buffer := util.AppendUvarint(nil, uint64(r.AssetID))
	buffer = util.AppendBytes(buffer, r.Commitment[:])
	return append(buffer, r.Owner.Pack()...)
}

func unpack(id ID, buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)
	assetID, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	c, err := u.Fixed(commitment.Size)
	if nil != err {
		return nil, err
	}
	owner, err := authority.Unpack(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done(); nil != err {
		return nil, err
	}

	record := &Record{
		ID:      id,
		AssetID: asset.ID(assetID),
		Owner:   owner,
	}
	copy(record.Commitment[:], c)
	return record, nil
}
