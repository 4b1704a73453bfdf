// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/address"
)

type keyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		return err
	}

	a, err := address.FromPublicKey(publicKey).Encode(m.chain)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "network: %s\n", m.chain)
	}

	return printJson(m.w, keyPair{
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey),
		Address:    a,
	})
}
