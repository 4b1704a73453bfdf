// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/address"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// Record - a registered account
//
// reserved accounts have no key
type Record struct {
	ID        ID                `json:"id"`
	Name      string            `json:"name"`
	PublicKey ed25519.PublicKey `json:"public_key"`
}

// Address - the address derived from the account key
func (r *Record) Address() address.Address {
	return address.FromPublicKey(r.PublicKey)
}

// Pack - binary form for storage
func (r *Record) Pack() []byte {
	buffer := util.AppendUvarint(nil, uint64(r.ID))
	buffer = util.AppendString(buffer, r.Name)
	return util.AppendBytes(buffer, r.PublicKey)
}

// Unpack - restore a record written by Pack
func Unpack(buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)

	n, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	name, err := u.String()
	if nil != err {
		return nil, err
	}
	key, err := u.Bytes()
	if nil != err {
		return nil, err
	}
	if 0 != len(key) && ed25519.PublicKeySize != len(key) {
		return nil, fault.ErrInvalidPublicKey
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	return &Record{
		ID:        ID(n),
		Name:      name,
		PublicKey: key,
	}, nil
}

func validName(name string) error {
	if 0 == len(name) || len(name) > 63 {
		return fault.ErrInvalidAccountName
	}
	for _, c := range name {
		switch {
		case 'a' <= c && c <= 'z':
		case '0' <= c && c <= '9':
		case '-' == c || '.' == c:
		default:
			return fault.ErrInvalidAccountName
		}
	}
	return nil
}
