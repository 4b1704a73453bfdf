// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

func TestPackUnpack(t *testing.T) {
	buffer := util.AppendUvarint(nil, 300)
	buffer = util.AppendInt64(buffer, -1)
	buffer = util.AppendInt64(buffer, math.MaxInt64>>1)
	buffer = util.AppendInt64(buffer, math.MinInt64>>1)
	buffer = util.AppendBytes(buffer, []byte{1, 2, 3})
	buffer = util.AppendString(buffer, "BLD")

	u := util.NewUnpacker(buffer)

	n, err := u.Uvarint()
	assert.Nil(t, err)
	assert.Equal(t, uint64(300), n)

	for _, expected := range []int64{-1, math.MaxInt64 >> 1, math.MinInt64 >> 1} {
		i, err := u.Int64()
		assert.Nil(t, err)
		assert.Equal(t, expected, i)
	}

	b, err := u.Fixed(3)
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	s, err := u.String()
	assert.Nil(t, err)
	assert.Equal(t, "BLD", s)

	assert.Nil(t, u.Done())
	assert.Equal(t, 0, u.Remaining())
}

func TestUnpackTruncated(t *testing.T) {
	buffer := util.AppendBytes(nil, []byte{1, 2, 3, 4})

	u := util.NewUnpacker(buffer[:len(buffer)-1])
	_, err := u.Bytes()
	assert.Equal(t, fault.ErrTruncatedRecord, err)

	u = util.NewUnpacker(nil)
	_, err = u.Uvarint()
	assert.Equal(t, fault.ErrTruncatedRecord, err)

	u = util.NewUnpacker(buffer)
	_, err = u.Fixed(3)
	assert.Equal(t, fault.ErrTruncatedRecord, err, "wrong fixed size")
}

func TestUnpackLimits(t *testing.T) {
	u := util.NewUnpacker(util.AppendUvarint(nil, util.MaxPackedItems+1))
	_, err := u.Count()
	assert.Equal(t, fault.ErrCountTooLarge, err)

	u = util.NewUnpacker([]byte{0x01, 0x02})
	_, err = u.Uvarint()
	assert.Nil(t, err)
	assert.Equal(t, fault.ErrTrailingData, u.Done())
}
