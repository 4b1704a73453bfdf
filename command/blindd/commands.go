// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/blinded"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/configuration"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/ledger"
)

const (
	defaultOutputCount = 100
)

var assetFlags = map[string]asset.Flags{
	"white_list":           asset.WhiteList,
	"transfer_restricted":  asset.TransferRestricted,
	"disable_confidential": asset.DisableConfidential,
}

// setup command handler
//
// commands that need neither the configuration nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "help", "h", "?", "", " ":
		if "" == command || " " == command {
			fmt.Printf("error: missing command\n")
		}
		usage(program)
		return true

	default:
		return false
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE [--define=KEY=VALUE...] [command arguments...]\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                              (h)     - display this message\n")
	fmt.Printf("  version                           (v)     - display version string\n")
	fmt.Printf("  config-test                       (cfg)   - just check the configuration file\n")
	fmt.Printf("\n")
	fmt.Printf("  genesis                           (init)  - create reserved accounts and the core asset\n")
	fmt.Printf("  create-account NAME PUBLIC-KEY    (ca)    - register an account, key is hex ed25519\n")
	fmt.Printf("  create-asset SYMBOL PRECISION [FLAG...]   - register an asset, flags: white_list\n")
	fmt.Printf("                                              transfer_restricted disable_confidential\n")
	fmt.Printf("  issue ACCOUNT ASSET AMOUNT                - add public supply to an account\n")
	fmt.Printf("\n")
	fmt.Printf("  apply FILE                        (a)     - apply a JSON transaction, \"-\" for stdin\n")
	fmt.Printf("  transaction ID                    (tx)    - show an applied transaction\n")
	fmt.Printf("\n")
	fmt.Printf("  balances ACCOUNT                  (b)     - public balances of an account\n")
	fmt.Printf("  supply ASSET                              - public supply of an asset\n")
	fmt.Printf("  outputs ACCOUNT                   (o)     - blinded outputs owned by an account\n")
	fmt.Printf("  output COMMITMENT                         - the blinded output holding a commitment\n")
	fmt.Printf("  list-outputs [START [COUNT]]      (lo)    - all blinded outputs in id order\n")
	fmt.Printf("  accounts                                  - list accounts\n")
	fmt.Printf("  assets                                    - list assets\n")
	fmt.Printf("\n")
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {
	if 0 == len(arguments) {
		return false
	}
	switch arguments[0] {
	case "config-test", "cfg":
		printJSON("configuration", options)
		return true
	default:
		return false
	}
}

// data command handler
//
// commands that read or change the ledger
func processDataCommand(log *logger.L, l *ledger.Ledger, arguments []string) error {
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "genesis", "init":
		if err := l.Genesis(); nil != err {
			return err
		}
		fmt.Printf("initialised ledger\n")

	case "create-account", "ca":
		if 2 != len(arguments) {
			return fault.ErrInvalidCount
		}
		publicKey, err := hex.DecodeString(arguments[1])
		if nil != err || ed25519.PublicKeySize != len(publicKey) {
			return fault.ErrInvalidPublicKey
		}
		record, err := l.CreateAccount(arguments[0], ed25519.PublicKey(publicKey))
		if nil != err {
			return err
		}
		printJSON("account", record)

	case "create-asset":
		if len(arguments) < 2 {
			return fault.ErrInvalidCount
		}
		precision, err := strconv.ParseUint(arguments[1], 10, 8)
		if nil != err {
			return fault.ErrInvalidPrecision
		}
		flags := asset.Flags(0)
		for _, name := range arguments[2:] {
			f, ok := assetFlags[strings.ToLower(name)]
			if !ok {
				return errors.Wrapf(fault.ErrInvalidFlags, "flag: %q", name)
			}
			flags |= f
		}
		record, err := l.CreateAsset(strings.ToUpper(arguments[0]), uint8(precision), flags)
		if nil != err {
			return err
		}
		printJSON("asset", record)

	case "issue":
		if 3 != len(arguments) {
			return fault.ErrInvalidCount
		}
		to, err := account.ParseID(arguments[0])
		if nil != err {
			return err
		}
		record, err := resolveAsset(l, arguments[1])
		if nil != err {
			return err
		}
		value, err := record.ParseAmount(arguments[2])
		if nil != err {
			return err
		}
		if err := l.Issue(to, confidential.Amount{Value: value, AssetID: record.ID}); nil != err {
			return err
		}
		fmt.Printf("issued: %s to: %s\n", record.Format(value), to)

	case "apply", "a":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		t, err := readTransaction(arguments[0])
		if nil != err {
			return err
		}
		log.Infof("apply: %s  operations: %d", t.ID(), len(t.Operations))
		receipt, err := l.ApplyTransaction(t)
		if nil != err {
			return err
		}
		printJSON("receipt", receipt)

	case "transaction", "tx":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		var id confidential.ID
		if err := id.UnmarshalText([]byte(arguments[0])); nil != err {
			return err
		}
		t, err := l.Transaction(id)
		if nil != err {
			return err
		}
		printJSON("transaction", t)

	case "balances", "b":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		owner, err := account.ParseID(arguments[0])
		if nil != err {
			return err
		}
		balances, err := l.Balances(owner)
		if nil != err {
			return err
		}
		type displayBalance struct {
			AssetID asset.ID `json:"asset_id"`
			Amount  int64    `json:"amount"`
			Display string   `json:"display"`
		}
		display := make([]displayBalance, 0, len(balances))
		for _, b := range balances {
			record, err := l.Asset(b.AssetID)
			if nil != err {
				return err
			}
			display = append(display, displayBalance{
				AssetID: b.AssetID,
				Amount:  b.Amount,
				Display: record.Format(b.Amount),
			})
		}
		printJSON("balances", display)

	case "supply":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		record, err := resolveAsset(l, arguments[0])
		if nil != err {
			return err
		}
		supply, err := l.Supply(record.ID)
		if nil != err {
			return err
		}
		fmt.Printf("public supply:       %s\n", record.Format(supply.Public))
		fmt.Printf("confidential supply: %s\n", record.Format(supply.Confidential))

	case "outputs", "o":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		owner, err := account.ParseID(arguments[0])
		if nil != err {
			return err
		}
		records, err := l.OutputsByOwner(owner)
		if nil != err {
			return err
		}
		printJSON("outputs", records)

	case "output":
		if 1 != len(arguments) {
			return fault.ErrInvalidCount
		}
		var c commitment.Commitment
		if err := c.UnmarshalText([]byte(arguments[0])); nil != err {
			return err
		}
		record, err := l.OutputByCommitment(c)
		if nil != err {
			return err
		}
		printJSON("output", record)

	case "list-outputs", "lo":
		start := uint64(0)
		count := defaultOutputCount
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				return fault.ErrInvalidCursor
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err {
				return fault.ErrInvalidCount
			}
		}
		records, err := l.Outputs(blinded.ID(start), count)
		if nil != err {
			return err
		}
		printJSON("outputs", records)

	case "accounts":
		records, err := l.Accounts()
		if nil != err {
			return err
		}
		printJSON("accounts", records)

	case "assets":
		records, err := l.Assets()
		if nil != err {
			return err
		}
		printJSON("assets", records)

	default:
		return errors.Errorf("no such command: %q", command)
	}
	return nil
}

// asset by id or by symbol
func resolveAsset(l *ledger.Ledger, s string) (*asset.Record, error) {
	if id, err := asset.ParseID(s); nil == err {
		return l.Asset(id)
	}
	records, err := l.Assets()
	if nil != err {
		return nil, err
	}
	for _, r := range records {
		if strings.EqualFold(r.Symbol, s) {
			return r, nil
		}
	}
	return nil, errors.Wrapf(fault.ErrAssetNotFound, "symbol: %q", s)
}

func readTransaction(fileName string) (*confidential.Transaction, error) {
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
	t := &confidential.Transaction{}
	if err := json.Unmarshal(data, t); nil != err {
		return nil, errors.Wrapf(err, "transaction file: %q", fileName)
	}
	return t, nil
}

// -D KEY=VALUE items passed to the configuration script
func parseDefines(defines []string) (map[string]string, error) {
	variables := make(map[string]string, len(defines))
	for _, d := range defines {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == strings.TrimSpace(s[0]) {
			return nil, errors.Errorf("define: %q is not KEY=VALUE", d)
		}
		variables[strings.TrimSpace(s[0])] = strings.TrimSpace(s[1])
	}
	return variables, nil
}

func printJSON(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}
