// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// Packed - packed operations are just a byte slice
type Packed []byte

// ID - SHA3-256 of a packed operation or transaction
type ID [32]byte

// ID - digest of the packed bytes
func (record Packed) ID() ID {
	return ID(sha3.Sum256(record))
}

// String - hex form
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - convert to hex text
func (id ID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an id
func (id *ID) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.ErrInvalidCount
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// Pack - canonical binary form
//
// amounts must already be validated: values outside ±2^62 do not
// survive the round trip
func (op *TransferToBlind) Pack() Packed {
	buffer := util.AppendUvarint(nil, uint64(TransferToBlindTag))
	buffer = appendAmount(buffer, op.Fee)
	buffer = appendAmount(buffer, op.Amount)
	buffer = util.AppendUvarint(buffer, uint64(op.From))
	buffer = util.AppendBytes(buffer, op.BlindingFactor[:])
	buffer = appendOutputs(buffer, op.Outputs)
	return buffer
}

// Pack - canonical binary form
func (op *TransferFromBlind) Pack() Packed {
	buffer := util.AppendUvarint(nil, uint64(TransferFromBlindTag))
	buffer = appendAmount(buffer, op.Fee)
	buffer = appendAmount(buffer, op.Amount)
	buffer = util.AppendUvarint(buffer, uint64(op.To))
	buffer = util.AppendBytes(buffer, op.BlindingFactor[:])
	buffer = appendInputs(buffer, op.Inputs)
	return buffer
}

// Pack - canonical binary form
func (op *BlindTransfer) Pack() Packed {
	buffer := util.AppendUvarint(nil, uint64(BlindTransferTag))
	buffer = appendAmount(buffer, op.Fee)
	buffer = appendInputs(buffer, op.Inputs)
	buffer = appendOutputs(buffer, op.Outputs)
	return buffer
}

func appendAmount(buffer []byte, amount Amount) []byte {
	buffer = util.AppendInt64(buffer, amount.Value)
	return util.AppendUvarint(buffer, uint64(amount.AssetID))
}

func appendInputs(buffer []byte, inputs []BlindInput) []byte {
	buffer = util.AppendUvarint(buffer, uint64(len(inputs)))
	for _, input := range inputs {
		buffer = util.AppendBytes(buffer, input.Commitment[:])
		buffer = append(buffer, input.Owner.Pack()...)
	}
	return buffer
}

func appendOutputs(buffer []byte, outputs []BlindOutput) []byte {
	buffer = util.AppendUvarint(buffer, uint64(len(outputs)))
	for _, output := range outputs {
		buffer = util.AppendBytes(buffer, output.Commitment[:])
		buffer = append(buffer, output.Owner.Pack()...)
		buffer = util.AppendBytes(buffer, output.RangeProof)
	}
	return buffer
}
