// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/account"
	"github.com/bitmark-inc/blindd/asset"
	"github.com/bitmark-inc/blindd/authority"
	"github.com/bitmark-inc/blindd/commitment"
	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// Unpack - turn a byte slice into an operation
//
// must cast result to correct type
//
// e.g.
//   switch op := result.(type) {
//   case *confidential.TransferToBlind:
func (record Packed) Unpack() (Operation, error) {
	u := util.NewUnpacker(record)
	op, err := UnpackFrom(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	return op, nil
}

// UnpackFrom - read one operation and leave the unpacker after it
func UnpackFrom(u *util.Unpacker) (Operation, error) {
	tag, err := u.Uvarint()
	if nil != err {
		return nil, err
	}

	switch TagType(tag) {

	case TransferToBlindTag:
		op := &TransferToBlind{}
		if op.Fee, err = unpackAmount(u); nil != err {
			return nil, err
		}
		if op.Amount, err = unpackAmount(u); nil != err {
			return nil, err
		}
		from, err := u.Uvarint()
		if nil != err {
			return nil, err
		}
		op.From = account.ID(from)
		if op.BlindingFactor, err = unpackBlindFactor(u); nil != err {
			return nil, err
		}
		if op.Outputs, err = unpackOutputs(u); nil != err {
			return nil, err
		}
		return op, nil

	case TransferFromBlindTag:
		op := &TransferFromBlind{}
		if op.Fee, err = unpackAmount(u); nil != err {
			return nil, err
		}
		if op.Amount, err = unpackAmount(u); nil != err {
			return nil, err
		}
		to, err := u.Uvarint()
		if nil != err {
			return nil, err
		}
		op.To = account.ID(to)
		if op.BlindingFactor, err = unpackBlindFactor(u); nil != err {
			return nil, err
		}
		if op.Inputs, err = unpackInputs(u); nil != err {
			return nil, err
		}
		return op, nil

	case BlindTransferTag:
		op := &BlindTransfer{}
		if op.Fee, err = unpackAmount(u); nil != err {
			return nil, err
		}
		if op.Inputs, err = unpackInputs(u); nil != err {
			return nil, err
		}
		if op.Outputs, err = unpackOutputs(u); nil != err {
			return nil, err
		}
		return op, nil

	default:
		return nil, errors.Wrapf(fault.ErrUnknownOperation, "tag: %d", tag)
	}
}

func unpackAmount(u *util.Unpacker) (Amount, error) {
	value, err := u.Int64()
	if nil != err {
		return Amount{}, err
	}
	id, err := u.Uvarint()
	if nil != err {
		return Amount{}, err
	}
	return Amount{Value: value, AssetID: asset.ID(id)}, nil
}

func unpackBlindFactor(u *util.Unpacker) (commitment.BlindFactor, error) {
	var blind commitment.BlindFactor
	b, err := u.Fixed(commitment.BlindSize)
	if nil != err {
		return blind, err
	}
	copy(blind[:], b)
	return blind, nil
}

func unpackCommitment(u *util.Unpacker) (commitment.Commitment, error) {
	var c commitment.Commitment
	b, err := u.Fixed(commitment.Size)
	if nil != err {
		return c, err
	}
	copy(c[:], b)
	return c, nil
}

func unpackInputs(u *util.Unpacker) ([]BlindInput, error) {
	n, err := u.Count()
	if nil != err {
		return nil, err
	}
	inputs := make([]BlindInput, n)
	for i := range inputs {
		if inputs[i].Commitment, err = unpackCommitment(u); nil != err {
			return nil, err
		}
		if inputs[i].Owner, err = authority.Unpack(u); nil != err {
			return nil, err
		}
	}
	return inputs, nil
}

func unpackOutputs(u *util.Unpacker) ([]BlindOutput, error) {
	n, err := u.Count()
	if nil != err {
		return nil, err
	}
	outputs := make([]BlindOutput, n)
	for i := range outputs {
		if outputs[i].Commitment, err = unpackCommitment(u); nil != err {
			return nil, err
		}
		if outputs[i].Owner, err = authority.Unpack(u); nil != err {
			return nil, err
		}
		proof, err := u.Bytes()
		if nil != err {
			return nil, err
		}
		if 0 != len(proof) {
			outputs[i].RangeProof = proof
		}
	}
	return outputs, nil
}
