// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/blindd/chain"
)

type metadata struct {
	chain   string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "blind-cli"
	app.Usage = "build confidential transfers"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	transferFlags := []cli.Flag{
		cli.Int64Flag{
			Name:  "fee, f",
			Usage: "*fee in base units `VALUE`",
		},
		cli.Uint64Flag{
			Name:  "asset, a",
			Usage: " asset id `ID` [default core asset]",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: " write the transaction JSON to `FILE` instead of stdout",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Blindd,
			Usage: " address format for `NETWORK` [blindd|testing|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account key pair",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "commit",
			Usage:     "commit to a value with a random or given blind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "value, V",
					Usage: "*value to hide `VALUE`",
				},
				cli.StringFlag{
					Name:  "blind, b",
					Value: "",
					Usage: " blinding factor `HEX` [default random]",
				},
			},
			Action: runCommit,
		},
		{
			Name:      "blind-sum",
			Usage:     "sum of positive blinds minus negative blinds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "positive, p",
					Usage: " blinding factor to add `HEX`",
				},
				cli.StringSliceFlag{
					Name:  "negative, n",
					Usage: " blinding factor to subtract `HEX`",
				},
			},
			Action: runBlindSum,
		},
		{
			Name:      "range-proof",
			Usage:     "prove a committed value lies in a range",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "value, V",
					Usage: "*committed value `VALUE`",
				},
				cli.StringFlag{
					Name:  "blind, b",
					Value: "",
					Usage: "*blinding factor `HEX`",
				},
				cli.Int64Flag{
					Name:  "min-value, m",
					Usage: " lower bound of the range `VALUE`",
				},
				cli.UintFlag{
					Name:  "min-bits, B",
					Usage: " least number of digits `BITS`",
				},
			},
			Action: runRangeProof,
		},
		{
			Name:      "range-info",
			Usage:     "show and verify the range disclosed by a proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "commitment, c",
					Value: "",
					Usage: "*commitment `HEX`",
				},
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*range proof `HEX`",
				},
			},
			Action: runRangeInfo,
		},
		{
			Name:      "to-blind",
			Usage:     "move public balance into blinded outputs",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "from, F",
					Usage: "*paying account `ID`",
				},
				cli.StringSliceFlag{
					Name:  "pay, P",
					Usage: "*output owner and value `ACCOUNT:VALUE`",
				},
				cli.UintFlag{
					Name:  "min-bits, B",
					Usage: " least number of range proof digits `BITS`",
				},
			}, transferFlags...),
			Action: runToBlind,
		},
		{
			Name:      "from-blind",
			Usage:     "reveal blinded outputs into a public balance",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "to, T",
					Usage: "*receiving account `ID`",
				},
				cli.Int64Flag{
					Name:  "amount, A",
					Usage: "*amount to reveal `VALUE`",
				},
				cli.StringFlag{
					Name:  "spends, s",
					Value: "",
					Usage: "*JSON file of outputs to spend `FILE`",
				},
			}, transferFlags...),
			Action: runFromBlind,
		},
		{
			Name:      "blind-transfer",
			Usage:     "spend blinded outputs into new blinded outputs",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "spends, s",
					Value: "",
					Usage: "*JSON file of outputs to spend `FILE`",
				},
				cli.StringSliceFlag{
					Name:  "pay, P",
					Usage: "*output owner and value `ACCOUNT:VALUE`",
				},
				cli.UintFlag{
					Name:  "min-bits, B",
					Usage: " least number of range proof digits `BITS`",
				},
			}, transferFlags...),
			Action: runBlindTransfer,
		},
		{
			Name:  "version",
			Usage: "display blind-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be %s/%s/%s", network, chain.Blindd, chain.Testing, chain.Local)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				chain:   network,
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
