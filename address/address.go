// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - short hashes of public keys
//
// An address is ripemd160(sha512(public key)).  Its text form is the
// chain prefix followed by base58 of the hash and a four byte
// ripemd160 checksum.
package address

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/blindd/chain"
	"github.com/bitmark-inc/blindd/fault"
)

// Size - bytes in an address
const Size = ripemd160.Size

const checksumSize = 4

// Address - hash of a public key
type Address [Size]byte

// FromPublicKey - derive the address of a public key
func FromPublicKey(publicKey []byte) Address {
	digest := sha512.Sum512(publicKey)
	hasher := ripemd160.New()
	hasher.Write(digest[:])

	var a Address
	copy(a[:], hasher.Sum(nil))
	return a
}

func checksum(data []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(data)
	return hasher.Sum(nil)[:checksumSize]
}

// Encode - text form for a chain
func (a Address) Encode(chainName string) (string, error) {
	prefix, err := chain.AddressPrefix(chainName)
	if nil != err {
		return "", err
	}
	buffer := append(append([]byte{}, a[:]...), checksum(a[:])...)
	return prefix + base58.Encode(buffer), nil
}

// Decode - parse the text form of an address for a chain
func Decode(chainName string, s string) (Address, error) {
	prefix, err := chain.AddressPrefix(chainName)
	if nil != err {
		return Address{}, err
	}
	if !strings.HasPrefix(s, prefix) {
		return Address{}, fault.ErrWrongNetworkForPublicKey
	}

	buffer, err := base58.Decode(s[len(prefix):])
	if nil != err || Size+checksumSize != len(buffer) {
		return Address{}, fault.ErrInvalidAddress
	}
	if !bytes.Equal(checksum(buffer[:Size]), buffer[Size:]) {
		return Address{}, fault.ErrWrongChecksum
	}

	var a Address
	copy(a[:], buffer[:Size])
	return a, nil
}

// Compare - byte order
func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// String - hex form
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText - convert to hex text
func (a Address) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(a))
	buffer := make([]byte, size)
	hex.Encode(buffer, a[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an address
func (a *Address) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != Size {
		return fault.ErrInvalidAddress
	}
	var buffer Address
	if _, err := hex.Decode(buffer[:], s); nil != err {
		return fault.ErrInvalidAddress
	}
	*a = buffer
	return nil
}
