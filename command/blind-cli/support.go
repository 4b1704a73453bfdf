// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/wallet"
)

// ACCOUNT:VALUE items
func parsePayments(items []string) ([]wallet.Payment, error) {
	if 0 == len(items) {
		return nil, fmt.Errorf("at least one payment is required")
	}
	payments := make([]wallet.Payment, len(items))
	for i, item := range items {
		s := strings.SplitN(item, ":", 2)
		if 2 != len(s) {
			return nil, fmt.Errorf("payment: %q is not ACCOUNT:VALUE", item)
		}
		owner, err := account.ParseID(s[0])
		if nil != err {
			return nil, err
		}
		value, err := strconv.ParseUint(s[1], 10, 64)
		if nil != err {
			return nil, fmt.Errorf("payment: %q invalid value", item)
		}
		payments[i] = wallet.Payment{
			Owner: authority.ForAccount(owner),
			Value: value,
		}
	}
	return payments, nil
}

func parseBlinds(items []string) ([]commitment.BlindFactor, error) {
	blinds := make([]commitment.BlindFactor, len(items))
	for i, item := range items {
		if err := blinds[i].UnmarshalText([]byte(item)); nil != err {
			return nil, fmt.Errorf("blind: %q  error: %s", item, err)
		}
	}
	return blinds, nil
}

// JSON array of spends, "-" for stdin
//
// the outputs list printed by to-blind and blind-transfer is accepted
func readSpends(fileName string) ([]wallet.Spend, error) {
	if "" == fileName {
		return nil, fmt.Errorf("spends file is required")
	}
	var (
		data []byte
		err  error
	)
	if "-" == fileName {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(fileName)
	}
	if nil != err {
		return nil, err
	}
	return decodeSpends(data)
}

func decodeSpends(data []byte) ([]wallet.Spend, error) {
	var spends []wallet.Spend
	if err := json.Unmarshal(data, &spends); nil == err {
		return spends, nil
	}
	reply := struct {
		Outputs []wallet.Spend `json:"outputs"`
	}{}
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, err
	}
	return reply.Outputs, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func writeJson(fileName string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	return os.WriteFile(fileName, append(b, '\n'), 0600)
}
