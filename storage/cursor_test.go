// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/storage"
)

func keysOf(elements []storage.Element) []string {
	keys := make([]string, len(elements))
	for i, e := range elements {
		keys[i] = string(e.Key)
	}
	return keys
}

func TestCursorMergesUncommitted(t *testing.T) {
	s := openMemory(t)
	defer s.Close()
	pool := s.Pool.TestData

	trx, _ := s.Begin()
	for _, k := range []string{"a1", "a3", "b1"} {
		trx.Put(pool, []byte(k), []byte("v-"+k))
	}
	assert.Nil(t, trx.Commit())

	// other pools must not show up
	trx, _ = s.Begin()
	defer trx.Abort()
	trx.Put(s.Pool.Counters, []byte("a0"), []byte("other pool"))

	trx.Put(pool, []byte("a2"), []byte("v-a2"))
	trx.Delete(pool, []byte("a3"))

	elements, err := trx.NewFetchCursor(pool).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1"}, keysOf(elements))
	assert.Equal(t, []byte("v-a2"), elements[1].Value)

	elements, err = trx.NewFetchCursor(pool).Prefix([]byte("a")).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a1", "a2"}, keysOf(elements))
}

func TestCursorPaging(t *testing.T) {
	s := openMemory(t)
	defer s.Close()
	pool := s.Pool.TestData

	trx, _ := s.Begin()
	defer trx.Abort()
	for _, k := range []string{"k1", "k2", "k3", "k4", "k5"} {
		trx.Put(pool, []byte(k), []byte(k))
	}

	cursor := trx.NewFetchCursor(pool)

	first, err := cursor.Fetch(2)
	assert.Nil(t, err)
	assert.Equal(t, []string{"k1", "k2"}, keysOf(first))

	second, err := cursor.Fetch(2)
	assert.Nil(t, err)
	assert.Equal(t, []string{"k3", "k4"}, keysOf(second))

	third, err := cursor.Fetch(2)
	assert.Nil(t, err)
	assert.Equal(t, []string{"k5"}, keysOf(third))

	_, err = cursor.Fetch(0)
	assert.NotNil(t, err)

	seen := []string{}
	err = trx.NewFetchCursor(pool).Seek([]byte("k4")).Map(func(key []byte, value []byte) error {
		seen = append(seen, string(key))
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, []string{"k4", "k5"}, seen)
}

// a stored pool larger than the page with overlay deletes, replacements
// and inserts spread through it
func TestCursorPagingMixedOverlay(t *testing.T) {
	s := openMemory(t)
	defer s.Close()
	pool := s.Pool.TestData

	trx, _ := s.Begin()
	for i := 0; i < 20; i += 1 {
		k := fmt.Sprintf("k%02d", i)
		trx.Put(pool, []byte(k), []byte("stored"))
	}
	assert.Nil(t, trx.Commit())

	trx, _ = s.Begin()
	defer trx.Abort()
	for _, k := range []string{"k03", "k04", "k10", "k19"} {
		trx.Delete(pool, []byte(k))
	}
	trx.Put(pool, []byte("k05"), []byte("replaced"))
	trx.Put(pool, []byte("k105"), []byte("inserted"))
	trx.Put(pool, []byte("k00a"), []byte("inserted"))

	expected := []string{"k00", "k00a", "k01", "k02", "k05", "k06", "k07", "k08", "k09", "k105"}
	for i := 11; i < 19; i += 1 {
		expected = append(expected, fmt.Sprintf("k%02d", i))
	}

	cursor := trx.NewFetchCursor(pool)
	seen := []string{}
	values := map[string]string{}
	for {
		page, err := cursor.Fetch(4)
		assert.Nil(t, err)
		if 0 == len(page) {
			break
		}
		assert.True(t, len(page) <= 4)
		for _, e := range page {
			seen = append(seen, string(e.Key))
			values[string(e.Key)] = string(e.Value)
		}
	}
	assert.Equal(t, expected, seen)
	assert.Equal(t, "replaced", values["k05"])
	assert.Equal(t, "inserted", values["k105"])
	assert.Equal(t, "stored", values["k06"])
}

func TestCursorMapStopsOnError(t *testing.T) {
	s := openMemory(t)
	defer s.Close()
	pool := s.Pool.TestData

	trx, _ := s.Begin()
	for i := 0; i < 10; i += 1 {
		trx.Put(pool, []byte(fmt.Sprintf("m%d", i)), []byte{})
	}
	assert.Nil(t, trx.Commit())

	trx, _ = s.Begin()
	defer trx.Abort()

	stop := errors.New("enough")
	visited := 0
	err := trx.NewFetchCursor(pool).Map(func(key []byte, value []byte) error {
		visited += 1
		if 3 == visited {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 3, visited)
}
