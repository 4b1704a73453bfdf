// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/multiformats/go-varint"

	"github.com/bitmark-inc/blindd/fault"
)

// MaxPackedItems - limit on any packed count, prevents huge allocations
// from a corrupt length
const MaxPackedItems = 1 << 16

// AppendUvarint - append an unsigned varint, value must be below 2^63
func AppendUvarint(buffer []byte, value uint64) []byte {
	return append(buffer, varint.ToUvarint(value)...)
}

// AppendInt64 - append a signed value as a zigzag varint
//
// varints carry at most 63 bits so the value must be in [-2^62, 2^62)
func AppendInt64(buffer []byte, value int64) []byte {
	return AppendUvarint(buffer, uint64(value<<1)^uint64(value>>63))
}

// AppendBytes - append a length prefixed byte string
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendUvarint(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// Unpacker - read back values written by the Append functions
type Unpacker struct {
	buffer []byte
	n      int
}

// NewUnpacker - start reading a packed record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
		n:      0,
	}
}

// Uvarint - read an unsigned varint
func (u *Unpacker) Uvarint() (uint64, error) {
	if u.n >= len(u.buffer) {
		return 0, fault.ErrTruncatedRecord
	}
	value, count, err := varint.FromUvarint(u.buffer[u.n:])
	if nil != err {
		return 0, fault.ErrTruncatedRecord
	}
	u.n += count
	return value, nil
}

// Int64 - read a zigzag varint
func (u *Unpacker) Int64() (int64, error) {
	z, err := u.Uvarint()
	if nil != err {
		return 0, err
	}
	return int64(z>>1) ^ -int64(z&1), nil
}

// Count - read a count bounded by MaxPackedItems
func (u *Unpacker) Count() (int, error) {
	n, err := u.Uvarint()
	if nil != err {
		return 0, err
	}
	if n > MaxPackedItems {
		return 0, fault.ErrCountTooLarge
	}
	return int(n), nil
}

// Bytes - read a length prefixed byte string (copied)
func (u *Unpacker) Bytes() ([]byte, error) {
	length, err := u.Uvarint()
	if nil != err {
		return nil, err
	}
	if length > uint64(len(u.buffer)-u.n) {
		return nil, fault.ErrTruncatedRecord
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+int(length)])
	u.n += int(length)
	return data, nil
}

// Fixed - read a byte string that must have exactly size bytes
func (u *Unpacker) Fixed(size int) ([]byte, error) {
	data, err := u.Bytes()
	if nil != err {
		return nil, err
	}
	if size != len(data) {
		return nil, fault.ErrTruncatedRecord
	}
	return data, nil
}

// String - read a length prefixed string
func (u *Unpacker) String() (string, error) {
	data, err := u.Bytes()
	return string(data), err
}

// Remaining - count of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Done - error unless the whole record was read
func (u *Unpacker) Done() error {
	if u.n != len(u.buffer) {
		return fault.ErrTrailingData
	}
	return nil
}
