// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// overlay - uncommitted writes of the current transaction
type overlay interface {
	Get(string) (cacheData, bool)
	Set(dbOperation, string, []byte)
	Items() map[string]cacheData
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// entries live until commit or abort clears them
func newCache() overlay {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// a deleted key is found, with op == dbDelete, so that the caller
// does not fall through to the database
func (c *dbCache) Get(key string) (cacheData, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Items() map[string]cacheData {
	items := c.cache.Items()
	result := make(map[string]cacheData, len(items))
	for key, item := range items {
		result[key] = item.Object.(cacheData)
	}
	return result
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
