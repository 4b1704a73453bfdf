// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/wallet"
)

// secrets of the new outputs, in the form accepted by --spends
type transferReply struct {
	ID      confidential.ID `json:"id"`
	Outputs []wallet.Spend  `json:"outputs,omitempty"`
}

func builder(c *cli.Context) wallet.Builder {
	return wallet.Builder{
		AssetID: asset.ID(c.Uint64("asset")),
		Fee:     c.Int64("fee"),
		MinBits: uint8(c.Uint("min-bits")),
	}
}

func runToBlind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payments, err := parsePayments(c.StringSlice("pay"))
	if nil != err {
		return err
	}

	op, secrets, err := builder(c).ToBlind(account.ID(c.Uint64("from")), payments)
	if nil != err {
		return err
	}
	return finish(c, m, op, spendable(op.Outputs, secrets))
}

func runFromBlind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	spends, err := readSpends(c.String("spends"))
	if nil != err {
		return err
	}

	op, err := builder(c).FromBlind(account.ID(c.Uint64("to")), c.Int64("amount"), spends)
	if nil != err {
		return err
	}
	return finish(c, m, op, nil)
}

func runBlindTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	spends, err := readSpends(c.String("spends"))
	if nil != err {
		return err
	}
	payments, err := parsePayments(c.StringSlice("pay"))
	if nil != err {
		return err
	}

	op, secrets, err := builder(c).BlindTransfer(spends, payments)
	if nil != err {
		return err
	}
	return finish(c, m, op, spendable(op.Outputs, secrets))
}

// validate, then write the single operation transaction
func finish(c *cli.Context, m *metadata, op confidential.Operation, outputs []wallet.Spend) error {
	if err := op.Validate(); nil != err {
		return err
	}

	t := &confidential.Transaction{
		Operations: []confidential.Operation{op},
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operation: %s  packed size: %d bytes\n", op.Tag(), len(op.Pack()))
	}

	if fileName := c.String("output"); "" != fileName {
		if err := writeJson(fileName, t); nil != err {
			return err
		}
		return printJson(m.w, transferReply{
			ID:      t.ID(),
			Outputs: outputs,
		})
	}
	return printJson(m.w, struct {
		Transaction *confidential.Transaction `json:"transaction"`
		transferReply
	}{
		Transaction: t,
		transferReply: transferReply{
			ID:      t.ID(),
			Outputs: outputs,
		},
	})
}

func spendable(outputs []confidential.BlindOutput, secrets []wallet.Secret) []wallet.Spend {
	spends := make([]wallet.Spend, len(outputs))
	for i, output := range outputs {
		spends[i] = wallet.Spend{
			Owner:  output.Owner,
			Secret: secrets[i],
		}
	}
	return spends
}
