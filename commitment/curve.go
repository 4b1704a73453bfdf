// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

const (
	valueGeneratorTag = "blindd-pedersen-G"
	blindGeneratorTag = "blindd-pedersen-H"
)

// generators: g carries the value, h carries the blinding factor
var (
	g bn254.G1Affine
	h bn254.G1Affine
)

func init() {
	_, _, g, _ = bn254.Generators()

	var err error
	h, err = bn254.HashToG1([]byte(blindGeneratorTag), []byte(valueGeneratorTag))
	if nil != err {
		panic("commitment: cannot derive blinding generator: " + err.Error())
	}
}

// s·p
func mul(p *bn254.G1Affine, s *fr.Element) bn254.G1Affine {
	var b big.Int
	s.BigInt(&b)
	var r bn254.G1Affine
	r.ScalarMultiplication(p, &b)
	return r
}

// a + b
func add(a *bn254.G1Affine, b *bn254.G1Affine) bn254.G1Affine {
	var r bn254.G1Affine
	r.Add(a, b)
	return r
}

// a - b
func sub(a *bn254.G1Affine, b *bn254.G1Affine) bn254.G1Affine {
	var n bn254.G1Affine
	n.Neg(b)
	return add(a, &n)
}

// value·G + blind·H
func pedersen(value *fr.Element, blind *fr.Element) bn254.G1Affine {
	vg := mul(&g, value)
	bh := mul(&h, blind)
	return add(&vg, &bh)
}

// hash a sequence of byte strings to a scalar
func hashToScalar(items ...[]byte) fr.Element {
	hasher := sha3.New256()
	for _, item := range items {
		hasher.Write(item)
	}
	var e fr.Element
	e.SetBytes(hasher.Sum(nil))
	return e
}

func pointBytes(p *bn254.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func randomScalar() (fr.Element, error) {
	var e fr.Element
	_, err := e.SetRandom()
	return e, err
}
