// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"crypto/sha512"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/blindd/address"
	"github.com/bitmark-inc/blindd/chain"
	"github.com/bitmark-inc/blindd/fault"
)

var publicKey = ed25519.PublicKey{
	0x7a, 0x81, 0x92, 0x56, 0x5e, 0x6c, 0xa2, 0x35,
	0x80, 0xe1, 0x81, 0x59, 0xef, 0x30, 0x73, 0xf6,
	0xe2, 0xfb, 0x8e, 0x7e, 0x9d, 0x31, 0x49, 0x7e,
	0x79, 0xd7, 0x73, 0x1b, 0xa3, 0x74, 0x11, 0x01,
}

func TestFromPublicKey(t *testing.T) {
	digest := sha512.Sum512(publicKey)
	hasher := ripemd160.New()
	hasher.Write(digest[:])
	expected := hasher.Sum(nil)

	a := address.FromPublicKey(publicKey)
	assert.Equal(t, expected, a[:])
}

func TestEncodeDecode(t *testing.T) {
	a := address.FromPublicKey(publicKey)

	for _, name := range []string{chain.Blindd, chain.Testing, chain.Local} {
		s, err := a.Encode(name)
		assert.Nil(t, err, name)

		prefix, _ := chain.AddressPrefix(name)
		assert.True(t, strings.HasPrefix(s, prefix), "%s: missing prefix: %s", name, s)

		back, err := address.Decode(name, s)
		assert.Nil(t, err, name)
		assert.Equal(t, a, back, name)
	}
}

func TestDecodeErrors(t *testing.T) {
	a := address.FromPublicKey(publicKey)
	s, err := a.Encode(chain.Testing)
	assert.Nil(t, err)

	_, err = address.Decode(chain.Blindd, s)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err)

	_, err = address.Decode(chain.Testing, s[:len(s)-2])
	assert.True(t, fault.IsErrInvalid(err), "truncated: %v", err)

	// alter one character of the hash part
	b := []byte(s)
	if '2' == b[5] {
		b[5] = '3'
	} else {
		b[5] = '2'
	}
	_, err = address.Decode(chain.Testing, string(b))
	assert.True(t, fault.IsErrInvalid(err), "altered: %v", err)

	_, err = address.Decode("unknown", s)
	assert.Equal(t, fault.ErrInvalidChain, err)
}
