// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/chain"
	"github.com/bitmark-inc/blindd/fault"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Blindd, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), name)

		prefix, err := chain.AddressPrefix(name)
		assert.Nil(t, err, name)
		assert.Equal(t, 3, len(prefix), name)
	}

	assert.False(t, chain.Valid("bitcoin"))
	_, err := chain.AddressPrefix("bitcoin")
	assert.Equal(t, fault.ErrInvalidChain, err)
}
