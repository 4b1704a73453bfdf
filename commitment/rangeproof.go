// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	mathbits "math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/bitmark-inc/blindd/fault"
)

// MaxBits - most binary digits a range proof may cover
const MaxBits = 63

// proof layout:
//
//   min value     int64 big endian
//   bits          uint8
//   digits        (bits-1) compressed points, the last digit is implied
//   e0            scalar
//   s             bits × 2 scalars
const (
	headerSize = 9
	ringSize   = 2
)

// RangeProof - proof that a commitment hides a value in [min, min+2^bits-1]
type RangeProof []byte

// Info - the interval disclosed by a range proof
type Info struct {
	MinValue int64 `json:"min_value"`
	MaxValue int64 `json:"max_value"`
	Bits     uint8 `json:"bits"`
}

// MarshalText - convert to hex text
func (proof RangeProof) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(proof))
	buffer := make([]byte, size)
	hex.Encode(buffer, proof)
	return buffer, nil
}

// UnmarshalText - convert hex text into a range proof
func (proof *RangeProof) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrRangeProofMalformed
	}
	*proof = buffer
	return nil
}

func proofSize(bits int) int {
	return headerSize + (bits-1)*Size + fr.Bytes + bits*ringSize*fr.Bytes
}

// RangeInfo - read the disclosed interval without verifying the proof
func RangeInfo(proof RangeProof) (Info, error) {
	if len(proof) < headerSize {
		return Info{}, fault.ErrRangeProofMalformed
	}
	minValue := int64(binary.BigEndian.Uint64(proof[0:8]))
	bits := int(proof[8])
	if bits < 1 || bits > MaxBits || len(proof) != proofSize(bits) {
		return Info{}, fault.ErrRangeProofMalformed
	}

	span := int64(uint64(1)<<uint(bits) - 1)
	if minValue > math.MaxInt64-span {
		return Info{}, fault.ErrRangeProofMalformed
	}

	return Info{
		MinValue: minValue,
		MaxValue: minValue + span,
		Bits:     uint8(bits),
	}, nil
}

// RangeProofSign - prove that c = value·G + blind·H with value >= minValue
//
// the proof covers at least minBits digits, more if the value needs them
func RangeProofSign(minValue int64, c Commitment, blind BlindFactor, value uint64, minBits uint8) (RangeProof, error) {

	if !Open(c, blind, value) {
		return nil, fault.ErrInvalidCommitment
	}
	r, err := blind.scalar()
	if nil != err {
		return nil, err
	}

	// offset = value - minValue must fit in 63 bits
	var offset uint64
	if minValue >= 0 {
		if value < uint64(minValue) {
			return nil, fault.ErrValueOutOfRange
		}
		offset = value - uint64(minValue)
	} else {
		var carry uint64
		offset, carry = mathbits.Add64(value, uint64(-minValue), 0)
		if 0 != carry {
			return nil, fault.ErrValueOutOfRange
		}
	}

	bits := mathbits.Len64(offset)
	if bits < int(minBits) {
		bits = int(minBits)
	}
	if bits < 1 {
		bits = 1
	}
	if bits > MaxBits {
		return nil, fault.ErrValueOutOfRange
	}

	span := int64(uint64(1)<<uint(bits) - 1)
	if minValue > math.MaxInt64-span {
		return nil, fault.ErrValueOutOfRange
	}

	proof := make(RangeProof, headerSize, proofSize(bits))
	binary.BigEndian.PutUint64(proof[0:8], uint64(minValue))
	proof[8] = byte(bits)

	// split the blind over the digits, last digit takes the remainder
	digitBlinds := make([]fr.Element, bits)
	remainder := r
	for i := 0; i < bits-1; i += 1 {
		digitBlinds[i], err = randomScalar()
		if nil != err {
			return nil, err
		}
		remainder.Sub(&remainder, &digitBlinds[i])
	}
	digitBlinds[bits-1] = remainder

	digits := make([]bn254.G1Affine, bits)
	for i := 0; i < bits; i += 1 {
		var v fr.Element
		if 0 != (offset>>uint(i))&1 {
			v.SetUint64(uint64(1) << uint(i))
		}
		digits[i] = pedersen(&v, &digitBlinds[i])
	}
	for i := 0; i < bits-1; i += 1 {
		proof = append(proof, pointBytes(&digits[i])...)
	}

	msg := proofMessage(c, proof)
	rings := ringKeys(digits)

	// first pass: from each secret index forward to the end of its ring
	nonces := make([]fr.Element, bits)
	s := make([][ringSize]fr.Element, bits)
	ends := make([][]byte, bits)
	for i := 0; i < bits; i += 1 {
		secret := int((offset >> uint(i)) & 1)

		nonces[i], err = randomScalar()
		if nil != err {
			return nil, err
		}
		R := mul(&h, &nonces[i])

		for j := secret + 1; j < ringSize; j += 1 {
			e := ringChallenge(msg, &R, i, j)
			s[i][j], err = randomScalar()
			if nil != err {
				return nil, err
			}
			R = ringStep(&s[i][j], &e, &rings[i][j])
		}
		ends[i] = pointBytes(&R)
	}

	e0 := hashToScalar(append([][]byte{msg}, ends...)...)

	// second pass: from e0 up to the secret index, then close the ring
	for i := 0; i < bits; i += 1 {
		secret := int((offset >> uint(i)) & 1)

		e := e0
		for j := 0; j < secret; j += 1 {
			s[i][j], err = randomScalar()
			if nil != err {
				return nil, err
			}
			R := ringStep(&s[i][j], &e, &rings[i][j])
			e = ringChallenge(msg, &R, i, j+1)
		}

		// s = k + e·x
		var ex fr.Element
		ex.Mul(&e, &digitBlinds[i])
		s[i][secret].Add(&nonces[i], &ex)
	}

	e0Bytes := e0.Bytes()
	proof = append(proof, e0Bytes[:]...)
	for i := 0; i < bits; i += 1 {
		for j := 0; j < ringSize; j += 1 {
			b := s[i][j].Bytes()
			proof = append(proof, b[:]...)
		}
	}
	return proof, nil
}

// RangeProofVerify - check a proof against its commitment
func RangeProofVerify(c Commitment, proof RangeProof) error {
	info, err := RangeInfo(proof)
	if nil != err {
		return err
	}
	bits := int(info.Bits)

	point, err := c.point()
	if nil != err {
		return err
	}

	// the digits sum to c - min·G
	var m fr.Element
	m.SetInt64(info.MinValue)
	mg := mul(&g, &m)
	last := sub(&point, &mg)

	digits := make([]bn254.G1Affine, bits)
	n := headerSize
	for i := 0; i < bits-1; i += 1 {
		d, err := Commitment(proof[n : n+Size]).point()
		if nil != err {
			return fault.ErrRangeProofMalformed
		}
		digits[i] = d
		last = sub(&last, &d)
		n += Size
	}
	digits[bits-1] = last

	msg := proofMessage(c, proof[:n])
	rings := ringKeys(digits)

	e0, err := readScalar(proof[n : n+fr.Bytes])
	if nil != err {
		return err
	}
	n += fr.Bytes

	ends := make([][]byte, bits)
	for i := 0; i < bits; i += 1 {
		e := e0
		var R bn254.G1Affine
		for j := 0; j < ringSize; j += 1 {
			s, err := readScalar(proof[n : n+fr.Bytes])
			if nil != err {
				return err
			}
			n += fr.Bytes

			R = ringStep(&s, &e, &rings[i][j])
			if j+1 < ringSize {
				e = ringChallenge(msg, &R, i, j+1)
			}
		}
		ends[i] = pointBytes(&R)
	}

	expected := hashToScalar(append([][]byte{msg}, ends...)...)
	if !expected.Equal(&e0) {
		return fault.ErrRangeProofInvalid
	}
	return nil
}

// ring i has keys C_i and C_i - 2^i·G; the signer knows the
// discrete log to base H of exactly one of them
func ringKeys(digits []bn254.G1Affine) [][ringSize]bn254.G1Affine {
	rings := make([][ringSize]bn254.G1Affine, len(digits))
	for i := range digits {
		var weight fr.Element
		weight.SetUint64(uint64(1) << uint(i))
		wg := mul(&g, &weight)

		rings[i][0] = digits[i]
		rings[i][1] = sub(&digits[i], &wg)
	}
	return rings
}

// s·H - e·P
func ringStep(s *fr.Element, e *fr.Element, P *bn254.G1Affine) bn254.G1Affine {
	sh := mul(&h, s)
	eP := mul(P, e)
	return sub(&sh, &eP)
}

func ringChallenge(msg []byte, R *bn254.G1Affine, i int, j int) fr.Element {
	return hashToScalar(msg, pointBytes(R), []byte{byte(i), byte(j)})
}

// binds the signature to the commitment, header and digits
func proofMessage(c Commitment, prefix []byte) []byte {
	return append(append([]byte{}, c[:]...), prefix...)
}

func readScalar(buffer []byte) (fr.Element, error) {
	var b BlindFactor
	copy(b[:], buffer)
	s, err := b.scalar()
	if nil != err {
		return s, fault.ErrRangeProofMalformed
	}
	return s, nil
}
