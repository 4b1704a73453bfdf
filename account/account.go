// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers and the account registry
package account

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/blindd/fault"
)

// ID - sequential account number
type ID uint64

// text form is space.type.instance
const idPrefix = "1.2."

// String - text form of an account id
func (id ID) String() string {
	return idPrefix + strconv.FormatUint(uint64(id), 10)
}

// Bytes - big endian key form
func (id ID) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// IDFromBytes - decode the key form
func IDFromBytes(buffer []byte) (ID, error) {
	if 8 != len(buffer) {
		return 0, fault.ErrTruncatedRecord
	}
	return ID(binary.BigEndian.Uint64(buffer)), nil
}

// ParseID - accept "1.2.N" or a plain number
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, idPrefix), 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid account id: %q", s)
	}
	return ID(n), nil
}
