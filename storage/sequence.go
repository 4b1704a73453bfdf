// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// NextSequence - allocate the next value of a named counter
//
// the first value returned is start; the update is part of trx so an
// aborted transaction does not consume numbers
func NextSequence(trx Transaction, counters *PoolHandle, name string, start uint64) uint64 {
	key := []byte(name)
	n, found := trx.GetN(counters, key)
	if !found {
		n = start
	}
	trx.PutN(counters, key, n+1)
	return n
}

// PeekSequence - the value NextSequence would return
func PeekSequence(trx Transaction, counters *PoolHandle, name string, start uint64) uint64 {
	n, found := trx.GetN(counters, []byte(name))
	if !found {
		return start
	}
	return n
}
