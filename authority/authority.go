// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - weighted sets of accounts, keys and addresses
//
// An authority is satisfied when the weights of the parties that
// approve reach the threshold.  Blinded outputs are owned by an
// authority rather than by a single account.
package authority

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/address"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// PublicKey - an ed25519 public key
type PublicKey [ed25519.PublicKeySize]byte

// MarshalText - convert to hex text
func (k PublicKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(k))
	buffer := make([]byte, size)
	hex.Encode(buffer, k[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a public key
func (k *PublicKey) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(k) {
		return fault.ErrInvalidPublicKey
	}
	var buffer PublicKey
	if _, err := hex.Decode(buffer[:], s); nil != err {
		return fault.ErrInvalidPublicKey
	}
	*k = buffer
	return nil
}

// Authority - weighted owner
type Authority struct {
	WeightThreshold uint32                     `json:"weight_threshold"`
	AccountAuths    map[account.ID]uint16      `json:"account_auths,omitempty"`
	KeyAuths        map[PublicKey]uint16       `json:"key_auths,omitempty"`
	AddressAuths    map[address.Address]uint16 `json:"address_auths,omitempty"`
}

// ForAccount - single account owner
func ForAccount(id account.ID) Authority {
	return Authority{
		WeightThreshold: 1,
		AccountAuths:    map[account.ID]uint16{id: 1},
	}
}

// ForKey - single key owner
func ForKey(key PublicKey) Authority {
	return Authority{
		WeightThreshold: 1,
		KeyAuths:        map[PublicKey]uint16{key: 1},
	}
}

// Validate - the threshold must be positive and reachable
func (a Authority) Validate() error {
	if 0 == a.WeightThreshold {
		return fault.ErrZeroWeightThreshold
	}
	total := uint64(0)
	for _, w := range a.AccountAuths {
		total += uint64(w)
	}
	for _, w := range a.KeyAuths {
		total += uint64(w)
	}
	for _, w := range a.AddressAuths {
		total += uint64(w)
	}
	if total < uint64(a.WeightThreshold) {
		return fault.ErrUnreachableWeightThreshold
	}
	return nil
}

// Accounts - referenced accounts in ascending order
func (a Authority) Accounts() []account.ID {
	ids := make([]account.ID, 0, len(a.AccountAuths))
	for id := range a.AccountAuths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Equal - same threshold and same weighted parties
func (a Authority) Equal(other Authority) bool {
	return bytes.Equal(a.Pack(), other.Pack())
}

// Pack - canonical binary form, entries in ascending key order
func (a Authority) Pack() []byte {
	buffer := util.AppendUvarint(nil, uint64(a.WeightThreshold))

	buffer = util.AppendUvarint(buffer, uint64(len(a.AccountAuths)))
	for _, id := range a.Accounts() {
		buffer = util.AppendUvarint(buffer, uint64(id))
		buffer = util.AppendUvarint(buffer, uint64(a.AccountAuths[id]))
	}

	keys := make([]PublicKey, 0, len(a.KeyAuths))
	for k := range a.KeyAuths {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i][:], keys[j][:]) < 0 })
	buffer = util.AppendUvarint(buffer, uint64(len(keys)))
	for _, k := range keys {
		buffer = util.AppendBytes(buffer, k[:])
		buffer = util.AppendUvarint(buffer, uint64(a.KeyAuths[k]))
	}

	addresses := make([]address.Address, 0, len(a.AddressAuths))
	for k := range a.AddressAuths {
		addresses = append(addresses, k)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].Compare(addresses[j]) < 0 })
	buffer = util.AppendUvarint(buffer, uint64(len(addresses)))
	for _, k := range addresses {
		buffer = util.AppendBytes(buffer, k[:])
		buffer = util.AppendUvarint(buffer, uint64(a.AddressAuths[k]))
	}

	return buffer
}

// Unpack - read an authority written by Pack
//
// entries must be in the strictly ascending order Pack writes so that
// unpacking then packing gives back the same bytes
func Unpack(u *util.Unpacker) (Authority, error) {
	a := Authority{}

	threshold, err := u.Uvarint()
	if nil != err {
		return a, err
	}
	if threshold > 0xffffffff {
		return a, fault.ErrInvalidAuthority
	}
	a.WeightThreshold = uint32(threshold)

	n, err := u.Count()
	if nil != err {
		return a, err
	}
	if n > 0 {
		a.AccountAuths = make(map[account.ID]uint16, n)
	}
	previousID := uint64(0)
	for i := 0; i < n; i += 1 {
		id, err := u.Uvarint()
		if nil != err {
			return a, err
		}
		if i > 0 && id <= previousID {
			return a, errors.Wrapf(fault.ErrInvalidAuthority, "account: %d not ascending", id)
		}
		previousID = id
		w, err := weight(u)
		if nil != err {
			return a, err
		}
		a.AccountAuths[account.ID(id)] = w
	}

	n, err = u.Count()
	if nil != err {
		return a, err
	}
	if n > 0 {
		a.KeyAuths = make(map[PublicKey]uint16, n)
	}
	previousKey := []byte(nil)
	for i := 0; i < n; i += 1 {
		b, err := u.Fixed(ed25519.PublicKeySize)
		if nil != err {
			return a, err
		}
		if i > 0 && bytes.Compare(b, previousKey) <= 0 {
			return a, errors.Wrap(fault.ErrInvalidAuthority, "keys not ascending")
		}
		previousKey = b
		w, err := weight(u)
		if nil != err {
			return a, err
		}
		var k PublicKey
		copy(k[:], b)
		a.KeyAuths[k] = w
	}

	n, err = u.Count()
	if nil != err {
		return a, err
	}
	if n > 0 {
		a.AddressAuths = make(map[address.Address]uint16, n)
	}
	previousAddress := []byte(nil)
	for i := 0; i < n; i += 1 {
		b, err := u.Fixed(address.Size)
		if nil != err {
			return a, err
		}
		if i > 0 && bytes.Compare(b, previousAddress) <= 0 {
			return a, errors.Wrap(fault.ErrInvalidAuthority, "addresses not ascending")
		}
		previousAddress = b
		w, err := weight(u)
		if nil != err {
			return a, err
		}
		var k address.Address
		copy(k[:], b)
		a.AddressAuths[k] = w
	}

	return a, nil
}

func weight(u *util.Unpacker) (uint16, error) {
	w, err := u.Uvarint()
	if nil != err {
		return 0, err
	}
	if w > 0xffff {
		return 0, fault.ErrInvalidAuthority
	}
	return uint16(w), nil
}
