// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// PoolHandle - one key space of the database, selected by a single
// prefix byte that is hidden from callers
type PoolHandle struct {
	prefix byte
	limit  []byte // first key after the pool, nil for the last pool
	access *access
}

// Element - a key with the pool prefix removed, and its value
type Element struct {
	Key   []byte
	Value []byte
}

func newPoolHandle(prefix byte, a *access) *PoolHandle {
	var limit []byte
	if prefix < 0xff {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
		access: a,
	}
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	return append([]byte{p.prefix}, key...)
}

// Prefix - the pool's prefix byte
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}
