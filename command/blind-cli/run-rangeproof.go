// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blindd/commitment"
)

type rangeProofReply struct {
	Commitment commitment.Commitment `json:"commitment"`
	Proof      commitment.RangeProof `json:"range_proof"`
	Info       commitment.Info       `json:"info"`
}

func runRangeProof(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("blind")
	if "" == s {
		return fmt.Errorf("blinding factor is required")
	}
	var blind commitment.BlindFactor
	if err := blind.UnmarshalText([]byte(s)); nil != err {
		return err
	}
	value := c.Uint64("value")
	minBits := c.Uint("min-bits")
	if minBits > commitment.MaxBits {
		return fmt.Errorf("min-bits: %d exceeds: %d", minBits, commitment.MaxBits)
	}

	committed, err := commitment.Commit(blind, value)
	if nil != err {
		return err
	}
	proof, err := commitment.RangeProofSign(c.Int64("min-value"), committed, blind, value, uint8(minBits))
	if nil != err {
		return err
	}
	info, err := commitment.RangeInfo(proof)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "proof size: %d bytes\n", len(proof))
	}

	return printJson(m.w, rangeProofReply{
		Commitment: committed,
		Proof:      proof,
		Info:       info,
	})
}

func runRangeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var committed commitment.Commitment
	if err := committed.UnmarshalText([]byte(c.String("commitment"))); nil != err {
		return err
	}
	var proof commitment.RangeProof
	if err := proof.UnmarshalText([]byte(c.String("proof"))); nil != err {
		return err
	}

	info, err := commitment.RangeInfo(proof)
	if nil != err {
		return err
	}
	if err := commitment.RangeProofVerify(committed, proof); nil != err {
		return err
	}
	return printJson(m.w, info)
}
