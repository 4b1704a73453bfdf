// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/fault"
)

func TestRangeProof(t *testing.T) {
	tests := []struct {
		value    uint64
		minValue int64
		minBits  uint8
		bits     uint8
		max      int64
	}{
		{0, 0, 0, 1, 1},
		{1, 0, 0, 1, 1},
		{100, 0, 0, 7, 127},
		{100, 0, 10, 10, 1023},
		{100, 90, 0, 4, 105},
		{100, -5, 0, 7, 122},
		{1 << 40, 0, 0, 41, 1<<41 - 1},
	}

	for i, item := range tests {
		blind := newBlind(t)
		c := commit(t, blind, item.value)

		proof, err := commitment.RangeProofSign(item.minValue, c, blind, item.value, item.minBits)
		if !assert.Nil(t, err, "%d: sign", i) {
			continue
		}

		info, err := commitment.RangeInfo(proof)
		assert.Nil(t, err, "%d: info", i)
		assert.Equal(t, item.minValue, info.MinValue, "%d: min", i)
		assert.Equal(t, item.max, info.MaxValue, "%d: max", i)
		assert.Equal(t, item.bits, info.Bits, "%d: bits", i)

		assert.Nil(t, commitment.RangeProofVerify(c, proof), "%d: verify", i)
	}
}

func TestRangeProofWrongCommitment(t *testing.T) {
	blind := newBlind(t)
	c := commit(t, blind, 100)
	other := commit(t, blind, 101)

	proof, err := commitment.RangeProofSign(0, c, blind, 100, 0)
	assert.Nil(t, err)

	err = commitment.RangeProofVerify(other, proof)
	assert.True(t, fault.IsErrRange(err), "wrong commitment verified: %v", err)
}

func TestRangeProofTampered(t *testing.T) {
	blind := newBlind(t)
	c := commit(t, blind, 100)

	proof, err := commitment.RangeProofSign(0, c, blind, 100, 0)
	assert.Nil(t, err)

	// raise the disclosed minimum above the value
	tampered := append(commitment.RangeProof{}, proof...)
	tampered[7] = 50
	assert.True(t, fault.IsErrRange(commitment.RangeProofVerify(c, tampered)))

	// flip a bit in the last response scalar
	tampered = append(commitment.RangeProof{}, proof...)
	tampered[len(tampered)-1] ^= 1
	assert.True(t, fault.IsErrRange(commitment.RangeProofVerify(c, tampered)))

	// truncated
	_, err = commitment.RangeInfo(proof[:len(proof)-1])
	assert.Equal(t, fault.ErrRangeProofMalformed, err)
}

func TestRangeProofSignErrors(t *testing.T) {
	blind := newBlind(t)
	c := commit(t, blind, 100)

	_, err := commitment.RangeProofSign(0, c, blind, 99, 0)
	assert.Equal(t, fault.ErrInvalidCommitment, err, "value does not open commitment")

	_, err = commitment.RangeProofSign(101, c, blind, 100, 0)
	assert.Equal(t, fault.ErrValueOutOfRange, err, "value below minimum")

	_, err = commitment.RangeProofSign(0, c, blind, 100, commitment.MaxBits+1)
	assert.Equal(t, fault.ErrValueOutOfRange, err, "too many bits")
}

func TestRangeInfoMalformed(t *testing.T) {
	_, err := commitment.RangeInfo(nil)
	assert.Equal(t, fault.ErrRangeProofMalformed, err)

	_, err = commitment.RangeInfo(commitment.RangeProof{0, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrRangeProofMalformed, err, "zero bits")
}
