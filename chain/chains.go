// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/blindd/fault"
)

// names of all chains
const (
	Blindd  = "blindd"
	Testing = "testing"
	Local   = "local"
)

// address prefix for each chain
var prefixes = map[string]string{
	Blindd:  "BLD",
	Testing: "TST",
	Local:   "LOC",
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Blindd, Testing, Local:
		return true
	default:
		return false
	}
}

// AddressPrefix - the text prefix of addresses on a chain
func AddressPrefix(name string) (string, error) {
	prefix, ok := prefixes[name]
	if !ok {
		return "", fault.ErrInvalidChain
	}
	return prefix, nil
}
