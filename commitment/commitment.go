// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment

import (
	"bytes"
	"encoding/hex"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/bitmark-inc/blindd/fault"
)

// Size - bytes in a compressed commitment
const Size = bn254.SizeOfG1AffineCompressed

// BlindSize - bytes in a blinding factor
const BlindSize = fr.Bytes

// Commitment - compressed curve point hiding an amount
type Commitment [Size]byte

// BlindFactor - big endian scalar below the group order
type BlindFactor [BlindSize]byte

// NewBlindFactor - a uniformly random blinding factor
func NewBlindFactor() (BlindFactor, error) {
	s, err := randomScalar()
	if nil != err {
		return BlindFactor{}, err
	}
	return BlindFactor(s.Bytes()), nil
}

// only canonical encodings are accepted, so that each scalar has
// exactly one byte form
func (b BlindFactor) scalar() (fr.Element, error) {
	var s fr.Element
	s.SetBytes(b[:])
	if s.Bytes() != b {
		return s, fault.ErrInvalidBlindingFactor
	}
	return s, nil
}

// IsValid - true if the bytes are a canonical scalar
func (b BlindFactor) IsValid() bool {
	_, err := b.scalar()
	return nil == err
}

// IsZero - true for the all zero factor
func (b BlindFactor) IsZero() bool {
	return b == BlindFactor{}
}

// Negate - the additive inverse modulo the group order
func (b BlindFactor) Negate() BlindFactor {
	var s fr.Element
	s.SetBytes(b[:])
	s.Neg(&s)
	return BlindFactor(s.Bytes())
}

// String - hex form
func (b BlindFactor) String() string {
	return hex.EncodeToString(b[:])
}

// MarshalText - convert to hex text
func (b BlindFactor) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(b))
	buffer := make([]byte, size)
	hex.Encode(buffer, b[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a blinding factor
func (b *BlindFactor) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != BlindSize {
		return fault.ErrInvalidBlindingFactor
	}
	var buffer BlindFactor
	if _, err := hex.Decode(buffer[:], s); nil != err {
		return fault.ErrInvalidBlindingFactor
	}
	if !buffer.IsValid() {
		return fault.ErrInvalidBlindingFactor
	}
	*b = buffer
	return nil
}

// decompress, rejecting the identity and anything off the curve
func (c Commitment) point() (bn254.G1Affine, error) {
	var p bn254.G1Affine
	n, err := p.SetBytes(c[:])
	if nil != err || Size != n || p.IsInfinity() {
		return p, fault.ErrInvalidCommitment
	}
	return p, nil
}

// IsValid - true if the bytes decode to a usable point
func (c Commitment) IsValid() bool {
	_, err := c.point()
	return nil == err
}

// Compare - canonical total order on commitments
func (c Commitment) Compare(other Commitment) int {
	return bytes.Compare(c[:], other[:])
}

// Bytes - the compressed encoding
func (c Commitment) Bytes() []byte {
	return c[:]
}

// String - hex form
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

// MarshalText - convert to hex text
func (c Commitment) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(c))
	buffer := make([]byte, size)
	hex.Encode(buffer, c[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a commitment
func (c *Commitment) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != Size {
		return fault.ErrInvalidCommitment
	}
	var buffer Commitment
	if _, err := hex.Decode(buffer[:], s); nil != err {
		return fault.ErrInvalidCommitment
	}
	*c = buffer
	return nil
}

// FromBytes - copy a byte slice into a commitment
func FromBytes(buffer []byte) (Commitment, error) {
	var c Commitment
	if Size != len(buffer) {
		return c, fault.ErrInvalidCommitment
	}
	copy(c[:], buffer)
	return c, nil
}

// Commit - value·G + blind·H
//
// the identity point has no encoding so committing zero with a zero
// blind is an error
func Commit(blind BlindFactor, value uint64) (Commitment, error) {
	r, err := blind.scalar()
	if nil != err {
		return Commitment{}, err
	}
	var v fr.Element
	v.SetUint64(value)

	p := pedersen(&v, &r)
	if p.IsInfinity() {
		return Commitment{}, fault.ErrInvalidCommitment
	}
	return Commitment(p.Bytes()), nil
}

// Open - true if the commitment hides value under blind
func Open(c Commitment, blind BlindFactor, value uint64) bool {
	expected, err := Commit(blind, value)
	if nil != err {
		return false
	}
	return expected == c
}

// BlindSum - Σ positive - Σ negative
//
// wallets use this to pick the last output blind so that the
// blinding factors of a transfer cancel
func BlindSum(positive []BlindFactor, negative []BlindFactor) (BlindFactor, error) {
	var total fr.Element
	for _, b := range positive {
		s, err := b.scalar()
		if nil != err {
			return BlindFactor{}, err
		}
		total.Add(&total, &s)
	}
	for _, b := range negative {
		s, err := b.scalar()
		if nil != err {
			return BlindFactor{}, err
		}
		total.Sub(&total, &s)
	}
	return BlindFactor(total.Bytes()), nil
}

// VerifySum - check Σ in - Σ out + excess·G + excessBlind·H == 0
//
// excess is the signed public amount entering (+) or leaving (-)
// the hidden pool and excessBlind is the disclosed blinding factor
// of that public amount (zero when the blinds already cancel)
func VerifySum(in []Commitment, out []Commitment, excess int64, excessBlind BlindFactor) bool {
	b, err := excessBlind.scalar()
	if nil != err {
		return false
	}
	var v fr.Element
	v.SetInt64(excess)
	total := pedersen(&v, &b)

	for _, c := range in {
		p, err := c.point()
		if nil != err {
			return false
		}
		total = add(&total, &p)
	}
	for _, c := range out {
		p, err := c.point()
		if nil != err {
			return false
		}
		total = sub(&total, &p)
	}
	return total.IsInfinity()
}
