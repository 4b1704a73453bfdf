// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/constants"
	"github.com/bitmark-inc/blindd/fault"
)

// strictly ascending also rules out duplicates
func checkSorted(commitments []commitment.Commitment, notSorted error) error {
	for i := 1; i < len(commitments); i += 1 {
		if commitments[i-1].Compare(commitments[i]) >= 0 {
			return errors.Wrapf(notSorted, "at index %d", i)
		}
	}
	return nil
}

func checkParty(kind string, i int, c commitment.Commitment, owner authority.Authority) error {
	if !c.IsValid() {
		return errors.Wrapf(fault.ErrInvalidCommitment, "%s %d", kind, i)
	}
	if err := owner.Validate(); nil != err {
		return errors.Wrapf(err, "%s %d owner", kind, i)
	}
	return nil
}

func inputCommitments(inputs []BlindInput) ([]commitment.Commitment, error) {
	in := make([]commitment.Commitment, len(inputs))
	for i, input := range inputs {
		if err := checkParty("input", i, input.Commitment, input.Owner); nil != err {
			return nil, err
		}
		in[i] = input.Commitment
	}
	return in, checkSorted(in, fault.ErrInputsNotSorted)
}

func outputCommitments(outputs []BlindOutput) ([]commitment.Commitment, error) {
	out := make([]commitment.Commitment, len(outputs))
	for i, output := range outputs {
		if err := checkParty("output", i, output.Commitment, output.Owner); nil != err {
			return nil, err
		}
		out[i] = output.Commitment
	}
	return out, checkSorted(out, fault.ErrOutputsNotSorted)
}

// a lone output is pinned by the sum so only several outputs need
// proofs: each must verify and lie within [0, MaxShareSupply]
func checkRanges(outputs []BlindOutput) error {
	if len(outputs) <= 1 {
		return nil
	}
	for i, output := range outputs {
		info, err := commitment.RangeInfo(output.RangeProof)
		if nil != err {
			return errors.Wrapf(err, "output %d", i)
		}
		if info.MinValue < 0 {
			return errors.Wrapf(fault.ErrRangeProofBelowMinimum, "output %d min: %d", i, info.MinValue)
		}
		if info.MaxValue > constants.MaxShareSupply {
			return errors.Wrapf(fault.ErrRangeProofAboveMaximum, "output %d max: %d", i, info.MaxValue)
		}
		if err := commitment.RangeProofVerify(output.Commitment, output.RangeProof); nil != err {
			return errors.Wrapf(err, "output %d", i)
		}
	}
	return nil
}

// sorted set of accounts: the payer plus every account named by an
// output owner
func requiredAccounts(payer account.ID, outputs []BlindOutput) []account.ID {
	seen := map[account.ID]struct{}{payer: {}}
	for _, output := range outputs {
		for id := range output.Owner.AccountAuths {
			seen[id] = struct{}{}
		}
	}
	ids := make([]account.ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
