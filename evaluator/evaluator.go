// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package evaluator - check an operation against the ledger, then apply it
//
// Each evaluator moves Created → Evaluated → Applied.  Evaluate only
// reads, so an operation rejected there leaves no trace.  Apply runs
// once, after a successful Evaluate, and any error it returns is fatal:
// evaluation should have ruled it out.
package evaluator

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/fault"
)

// Evaluator - two phase processing of one operation
type Evaluator interface {
	Evaluate() error
	Apply() error
}

type state int

const (
	stateCreated state = iota
	stateEvaluated
	stateApplied
)

type base struct {
	ports Ports
	state state
}

// New - evaluator for one operation
func New(op confidential.Operation, ports Ports) (Evaluator, error) {
	if nil == ports.Assets || nil == ports.Accounts || nil == ports.Balances || nil == ports.Outputs {
		return nil, fault.ErrNotInitialised
	}
	b := base{
		ports: ports,
		state: stateCreated,
	}
	switch op := op.(type) {
	case *confidential.TransferToBlind:
		return &transferToBlind{base: b, op: op}, nil
	case *confidential.TransferFromBlind:
		return &transferFromBlind{base: b, op: op}, nil
	case *confidential.BlindTransfer:
		return &blindTransfer{base: b, op: op}, nil
	default:
		return nil, fault.ErrInvalidOperationForEvaluator
	}
}

func (b *base) beginEvaluate() error {
	if stateApplied == b.state {
		return fault.ErrAlreadyApplied
	}
	return nil
}

func (b *base) beginApply() error {
	switch b.state {
	case stateCreated:
		return fault.ErrNotEvaluated
	case stateApplied:
		return fault.ErrAlreadyApplied
	}
	b.state = stateApplied
	return nil
}

// errors during apply are always fatal
func fatal(err error, format string, arguments ...interface{}) error {
	if !fault.IsErrFatal(err) {
		err = fault.Fatal(err)
	}
	return errors.Wrapf(err, format, arguments...)
}

// asset usable for confidential outputs
func (b *base) confidentialAsset(id asset.ID) error {
	record, err := b.ports.Assets.Resolve(id)
	if nil != err {
		return errors.Wrapf(err, "asset: %s", id)
	}
	if !record.AllowConfidential() {
		return errors.Wrapf(fault.ErrAssetDisallowsConfidential, "asset: %s", record.Symbol)
	}
	if record.IsTransferRestricted() {
		return errors.Wrapf(fault.ErrAssetIsTransferRestricted, "asset: %s", record.Symbol)
	}
	if record.EnforceWhiteList() {
		return errors.Wrapf(fault.ErrAssetEnforcesWhiteList, "asset: %s", record.Symbol)
	}
	return nil
}

func (b *base) assetExists(id asset.ID) error {
	if _, err := b.ports.Assets.Resolve(id); nil != err {
		return errors.Wrapf(err, "asset: %s", id)
	}
	return nil
}

func (b *base) ownersExist(outputs []confidential.BlindOutput) error {
	for i, output := range outputs {
		for _, id := range output.Owner.Accounts() {
			if !b.ports.Accounts.Exists(id) {
				return errors.Wrapf(fault.ErrAccountNotFound, "output %d owner: %s", i, id)
			}
		}
	}
	return nil
}

// a new commitment must not collide with a live output, unless that
// output is spent by the same operation
func (b *base) outputsAbsent(outputs []confidential.BlindOutput, spent map[commitment.Commitment]struct{}) error {
	for i, output := range outputs {
		if _, ok := spent[output.Commitment]; ok {
			continue
		}
		_, err := b.ports.Outputs.FindByCommitment(output.Commitment)
		if nil == err {
			return errors.Wrapf(fault.ErrCommitmentExists, "output %d: %s", i, output.Commitment)
		}
		if !fault.IsErrNotFound(err) {
			return err
		}
	}
	return nil
}

// every input must be live, of the fee asset and owned as claimed
func (b *base) inputsOwned(inputs []confidential.BlindInput, assetID asset.ID) (map[commitment.Commitment]struct{}, error) {
	spent := make(map[commitment.Commitment]struct{}, len(inputs))
	for i, input := range inputs {
		record, err := b.ports.Outputs.FindByCommitment(input.Commitment)
		if nil != err {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		if record.AssetID != assetID {
			return nil, errors.Wrapf(fault.ErrInputAssetMismatch, "input %d asset: %s  fee asset: %s", i, record.AssetID, assetID)
		}
		if !record.Owner.Equal(input.Owner) {
			return nil, errors.Wrapf(fault.ErrInputOwnerMismatch, "input %d: %s", i, input.Commitment)
		}
		spent[input.Commitment] = struct{}{}
	}
	return spent, nil
}

func (b *base) removeInputs(inputs []confidential.BlindInput) error {
	for i, input := range inputs {
		if err := b.ports.Outputs.Remove(input.Commitment); nil != err {
			return fatal(err, "remove input %d", i)
		}
	}
	return nil
}

func (b *base) createOutputs(assetID asset.ID, outputs []confidential.BlindOutput) error {
	for i, output := range outputs {
		if _, err := b.ports.Outputs.Create(assetID, output.Owner, output.Commitment); nil != err {
			return fatal(err, "create output %d", i)
		}
	}
	return nil
}
