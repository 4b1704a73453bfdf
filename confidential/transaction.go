// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/blindd/fault"
	"github.com/bitmark-inc/blindd/util"
)

// Transaction - operations applied atomically and in order
type Transaction struct {
	Operations []Operation
}

// JSON form of one operation
//
//   {"type": "blind_transfer", "operation": {...}}
type envelope struct {
	Type      string          `json:"type"`
	Operation json.RawMessage `json:"operation"`
}

type transactionJSON struct {
	Operations []envelope `json:"operations"`
}

// Pack - operation count followed by each packed operation
func (t *Transaction) Pack() Packed {
	buffer := util.AppendUvarint(nil, uint64(len(t.Operations)))
	for _, op := range t.Operations {
		buffer = append(buffer, op.Pack()...)
	}
	return buffer
}

// ID - digest of the packed transaction
func (t *Transaction) ID() ID {
	return t.Pack().ID()
}

// UnpackTransaction - reverse of Transaction.Pack
func UnpackTransaction(record Packed) (*Transaction, error) {
	u := util.NewUnpacker(record)
	n, err := u.Count()
	if nil != err {
		return nil, err
	}
	t := &Transaction{
		Operations: make([]Operation, 0, n),
	}
	for i := 0; i < n; i += 1 {
		op, err := UnpackFrom(u)
		if nil != err {
			return nil, errors.Wrapf(err, "operation %d", i)
		}
		t.Operations = append(t.Operations, op)
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	return t, nil
}

// MarshalJSON - tag each operation with its type name
func (t Transaction) MarshalJSON() ([]byte, error) {
	j := transactionJSON{
		Operations: make([]envelope, len(t.Operations)),
	}
	for i, op := range t.Operations {
		buffer, err := json.Marshal(op)
		if nil != err {
			return nil, err
		}
		j.Operations[i] = envelope{
			Type:      op.Tag().String(),
			Operation: buffer,
		}
	}
	return json.Marshal(j)
}

// UnmarshalJSON - use the type name to pick the operation
func (t *Transaction) UnmarshalJSON(s []byte) error {
	var j transactionJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	operations := make([]Operation, len(j.Operations))
	for i, e := range j.Operations {
		tag, err := TagFromName(e.Type)
		if nil != err {
			return errors.Wrapf(err, "operation %d type: %q", i, e.Type)
		}
		op := newOperation(tag)
		if err := json.Unmarshal(e.Operation, op); nil != err {
			return errors.Wrapf(err, "operation %d", i)
		}
		operations[i] = op
	}
	t.Operations = operations
	return nil
}

func newOperation(tag TagType) Operation {
	switch tag {
	case TransferToBlindTag:
		return &TransferToBlind{}
	case TransferFromBlindTag:
		return &TransferFromBlind{}
	case BlindTransferTag:
		return &BlindTransfer{}
	default:
		// TagFromName only returns known tags
		panic(fault.ErrUnknownOperation)
	}
}
