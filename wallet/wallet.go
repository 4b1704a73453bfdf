// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - build balanced confidential operations
//
// The wallet knows the value and blind behind each commitment it
// creates; these secrets never go on the ledger and must be kept to
// spend the outputs later.
package wallet

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/confidential"
	"github.com/bitmark-inc/blindd/fault"
)

// Secret - opening of a commitment
type Secret struct {
	Value      uint64                 `json:"value"`
	Blind      commitment.BlindFactor `json:"blind"`
	Commitment commitment.Commitment  `json:"commitment"`
}

// Payment - value for a new output
type Payment struct {
	Owner authority.Authority `json:"owner"`
	Value uint64              `json:"value"`
}

// Spend - an owned output to use as an input
type Spend struct {
	Owner  authority.Authority `json:"owner"`
	Secret Secret              `json:"secret"`
}

// Builder - common parameters of the operations it builds
type Builder struct {
	AssetID asset.ID
	Fee     int64
	MinBits uint8 // lower bound on range proof digits, hides small values
}

// NewSecret - commit to value under a fresh random blind
func NewSecret(value uint64) (Secret, error) {
	blind, err := commitment.NewBlindFactor()
	if nil != err {
		return Secret{}, err
	}
	return newSecret(value, blind)
}

func newSecret(value uint64, blind commitment.BlindFactor) (Secret, error) {
	c, err := commitment.Commit(blind, value)
	if nil != err {
		return Secret{}, err
	}
	return Secret{
		Value:      value,
		Blind:      blind,
		Commitment: c,
	}, nil
}

// ToBlind - move the sum of the payments from a public balance
func (b Builder) ToBlind(from account.ID, payments []Payment) (*confidential.TransferToBlind, []Secret, error) {
	if 0 == len(payments) {
		return nil, nil, fault.ErrNoOutputs
	}

	total := uint64(0)
	secrets := make([]Secret, len(payments))
	blinds := make([]commitment.BlindFactor, len(payments))
	for i, p := range payments {
		s, err := NewSecret(p.Value)
		if nil != err {
			return nil, nil, err
		}
		secrets[i] = s
		blinds[i] = s.Blind
		total += p.Value
	}

	blindingFactor, err := commitment.BlindSum(blinds, nil)
	if nil != err {
		return nil, nil, err
	}

	outputs, secrets, err := b.outputs(payments, secrets)
	if nil != err {
		return nil, nil, err
	}

	op := &confidential.TransferToBlind{
		Fee:            confidential.Amount{Value: b.Fee, AssetID: b.AssetID},
		Amount:         confidential.Amount{Value: int64(total), AssetID: b.AssetID},
		From:           from,
		BlindingFactor: blindingFactor,
		Outputs:        outputs,
	}
	return op, secrets, nil
}

// FromBlind - reveal spends into a public balance
//
// the spends must hold exactly amount + fee
func (b Builder) FromBlind(to account.ID, amount int64, spends []Spend) (*confidential.TransferFromBlind, error) {
	if 0 == len(spends) {
		return nil, fault.ErrNoInputs
	}

	total := uint64(0)
	blinds := make([]commitment.BlindFactor, len(spends))
	for i, s := range spends {
		blinds[i] = s.Secret.Blind
		total += s.Secret.Value
	}
	if amount < 0 || b.Fee < 0 || total != uint64(amount)+uint64(b.Fee) {
		return nil, errors.Wrapf(fault.ErrSumMismatch, "inputs: %d  amount: %d  fee: %d", total, amount, b.Fee)
	}

	blindingFactor, err := commitment.BlindSum(blinds, nil)
	if nil != err {
		return nil, err
	}

	op := &confidential.TransferFromBlind{
		Fee:            confidential.Amount{Value: b.Fee, AssetID: b.AssetID},
		Amount:         confidential.Amount{Value: amount, AssetID: b.AssetID},
		To:             to,
		BlindingFactor: blindingFactor,
		Inputs:         inputs(spends),
	}
	return op, nil
}

// BlindTransfer - spend into new outputs
//
// the spends must hold exactly the payments + fee, add a change
// payment to the wallet's own authority for any surplus
func (b Builder) BlindTransfer(spends []Spend, payments []Payment) (*confidential.BlindTransfer, []Secret, error) {
	if 0 == len(spends) {
		return nil, nil, fault.ErrNoInputs
	}
	if 0 == len(payments) {
		return nil, nil, fault.ErrNoOutputs
	}

	in := uint64(0)
	positive := make([]commitment.BlindFactor, len(spends))
	for i, s := range spends {
		positive[i] = s.Secret.Blind
		in += s.Secret.Value
	}
	out := uint64(0)
	for _, p := range payments {
		out += p.Value
	}
	if b.Fee < 0 || in != out+uint64(b.Fee) {
		return nil, nil, errors.Wrapf(fault.ErrSumMismatch, "inputs: %d  outputs: %d  fee: %d", in, out, b.Fee)
	}

	// random blinds except the last, which cancels the rest
	last := len(payments) - 1
	secrets := make([]Secret, len(payments))
	negative := make([]commitment.BlindFactor, 0, last)
	for i, p := range payments[:last] {
		s, err := NewSecret(p.Value)
		if nil != err {
			return nil, nil, err
		}
		secrets[i] = s
		negative = append(negative, s.Blind)
	}
	lastBlind, err := commitment.BlindSum(positive, negative)
	if nil != err {
		return nil, nil, err
	}
	secrets[last], err = newSecret(payments[last].Value, lastBlind)
	if nil != err {
		return nil, nil, err
	}

	outputs, secrets, err := b.outputs(payments, secrets)
	if nil != err {
		return nil, nil, err
	}

	op := &confidential.BlindTransfer{
		Fee:     confidential.Amount{Value: b.Fee, AssetID: b.AssetID},
		Inputs:  inputs(spends),
		Outputs: outputs,
	}
	return op, secrets, nil
}

// sorted outputs with range proofs when there is more than one,
// secrets are returned in the same order
func (b Builder) outputs(payments []Payment, secrets []Secret) ([]confidential.BlindOutput, []Secret, error) {
	order := make([]int, len(payments))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return secrets[order[i]].Commitment.Compare(secrets[order[j]].Commitment) < 0
	})

	outputs := make([]confidential.BlindOutput, len(payments))
	sorted := make([]Secret, len(payments))
	for i, k := range order {
		s := secrets[k]
		outputs[i] = confidential.BlindOutput{
			Commitment: s.Commitment,
			Owner:      payments[k].Owner,
		}
		if len(payments) > 1 {
			proof, err := commitment.RangeProofSign(0, s.Commitment, s.Blind, s.Value, b.MinBits)
			if nil != err {
				return nil, nil, errors.Wrapf(err, "payment %d", k)
			}
			outputs[i].RangeProof = proof
		}
		sorted[i] = s
	}
	return outputs, sorted, nil
}

func inputs(spends []Spend) []confidential.BlindInput {
	in := make([]confidential.BlindInput, len(spends))
	for i, s := range spends {
		in[i] = confidential.BlindInput{
			Commitment: s.Secret.Commitment,
			Owner:      s.Owner,
		}
	}
	sort.Slice(in, func(i, j int) bool {
		return in[i].Commitment.Compare(in[j].Commitment) < 0
	})
	return in
}
