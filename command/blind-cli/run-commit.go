// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/wallet"
)

func runCommit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value := c.Uint64("value")

	var secret wallet.Secret
	var err error
	if s := c.String("blind"); "" != s {
		var blind commitment.BlindFactor
		if err := blind.UnmarshalText([]byte(s)); nil != err {
			return err
		}
		committed, err := commitment.Commit(blind, value)
		if nil != err {
			return err
		}
		secret = wallet.Secret{
			Value:      value,
			Blind:      blind,
			Commitment: committed,
		}
	} else {
		secret, err = wallet.NewSecret(value)
		if nil != err {
			return err
		}
	}

	return printJson(m.w, secret)
}

func runBlindSum(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	positive, err := parseBlinds(c.StringSlice("positive"))
	if nil != err {
		return err
	}
	negative, err := parseBlinds(c.StringSlice("negative"))
	if nil != err {
		return err
	}

	sum, err := commitment.BlindSum(positive, negative)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]commitment.BlindFactor{"blind": sum})
}
