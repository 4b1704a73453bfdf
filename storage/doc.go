// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: they are collected in a
// leveldb batch and mirrored in an overlay cache so that reads made
// before Commit see them.  Abort discards both.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = big endian uint64 (8 bytes)
// 4. account      = big endian uint64 account id (8 bytes)
// 5. asset        = big endian uint64 asset id (8 bytes)
// 6. commitment   = 32 byte compressed commitment
// 7. opId         = operation digest as 32 byte SHA3-256(packed operation)
//
// Blinded outputs:
//
//   B ++ id                    - blinded output record
//                                data: asset ++ commitment ++ packed owner authority
//   C ++ commitment            - unique index by commitment
//                                data: id
//   O ++ account ++ id         - index by owner account (one entry per account in the owner authority)
//                                data: commitment
//
// Registries:
//
//   A ++ account               - account record
//                                data: packed account
//   S ++ asset                 - asset record
//                                data: packed asset
//   L ++ account ++ asset      - public balance
//                                data: big endian uint64 amount
//   U ++ kind ++ asset         - total supply, kind: 'P' public  'H' held in blinded outputs
//                                data: big endian uint64 amount
//
// Counters:
//
//   N ++ name                  - next value of a named sequence
//                                data: count
//
// Operations:
//
//   T ++ opId                  - applied operations
//                                data: packed operation
package storage
