// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FatalError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountExists                  = ExistsError("account already exists")
	ErrAccountNotFound                = NotFoundError("account not found")
	ErrAlreadyApplied                 = ProcessError("operation has already been applied")
	ErrAlreadyInitialised             = ExistsError("already initialised")
	ErrAmountNotPositive              = InvalidError("amount must be positive")
	ErrAmountTooLarge                 = InvalidError("amount exceeds maximum share supply")
	ErrAssetDisallowsConfidential     = InvalidError("asset does not allow confidential transfers")
	ErrAssetEnforcesWhiteList         = InvalidError("asset enforces a white list")
	ErrAssetExists                    = ExistsError("asset already exists")
	ErrAssetIsTransferRestricted      = InvalidError("asset is transfer restricted")
	ErrAssetNotFound                  = NotFoundError("asset not found")
	ErrBalanceLimitExceeded           = RangeError("balance would exceed maximum share supply")
	ErrBalanceOverflow                = FatalError("balance overflow")
	ErrBalanceUnderflow               = FatalError("balance would become negative")
	ErrBlindedOutputMissing           = FatalError("blinded output missing from store")
	ErrCommitmentExists               = ExistsError("commitment already exists")
	ErrCommitmentNotFound             = NotFoundError("commitment not found")
	ErrConfigurationNotTable          = InvalidError("configuration file must return a table")
	ErrCountTooLarge                  = LengthError("count is too large")
	ErrDuplicateCommitment            = FatalError("duplicate commitment in blinded output store")
	ErrFeeAssetMismatch               = InvalidError("fee asset does not match amount asset")
	ErrFeeNegative                    = InvalidError("fee must not be negative")
	ErrFeeNotPositive                 = InvalidError("fee must be positive")
	ErrFeePayerBalanceInsufficient    = InvalidError("fee payer balance is insufficient")
	ErrInputAssetMismatch             = InvalidError("input asset does not match fee asset")
	ErrInputOwnerMismatch             = InvalidError("input owner does not match blinded output owner")
	ErrInputsNotSorted                = InvalidError("inputs are not in strictly ascending order")
	ErrInsufficientFee                = InvalidError("fee is below the required amount")
	ErrInvalidAccountName             = InvalidError("invalid account name")
	ErrInvalidAddress                 = InvalidError("invalid address")
	ErrInvalidAuthority               = InvalidError("invalid authority")
	ErrInvalidBlindingFactor          = InvalidError("invalid blinding factor")
	ErrInvalidChain                   = InvalidError("invalid chain")
	ErrInvalidCommitment              = InvalidError("invalid commitment")
	ErrInvalidCount                   = InvalidError("invalid count")
	ErrInvalidCursor                  = InvalidError("invalid cursor")
	ErrInvalidDataDirectory           = InvalidError("invalid data directory")
	ErrInvalidFeeSchedule             = InvalidError("invalid fee schedule")
	ErrInvalidFileName                = InvalidError("file name must not contain a path")
	ErrInvalidFlags                   = InvalidError("invalid asset flags")
	ErrInvalidLoggerChannel           = InvalidError("invalid logger channel")
	ErrInvalidOperationForEvaluator   = ProcessError("operation type does not match evaluator")
	ErrInvalidPrecision               = InvalidError("invalid precision")
	ErrInvalidPublicKey               = InvalidError("invalid public key")
	ErrInvalidStructPointer           = InvalidError("invalid struct pointer")
	ErrInvalidSymbol                  = InvalidError("invalid symbol")
	ErrNoInputs                       = InvalidError("there must be at least one input")
	ErrNoOperations                   = InvalidError("transaction has no operations")
	ErrNoOutputs                      = InvalidError("there must be at least one output")
	ErrNotEvaluated                   = ProcessError("operation has not been evaluated")
	ErrNotInitialised                 = NotFoundError("not initialised")
	ErrOutputsNotSorted               = InvalidError("outputs are not in strictly ascending order")
	ErrPublicBalanceInsufficient      = InvalidError("public balance is insufficient")
	ErrRangeProofAboveMaximum         = RangeError("range proof maximum exceeds share supply")
	ErrRangeProofBelowMinimum         = RangeError("range proof minimum is negative")
	ErrRangeProofInvalid              = RangeError("range proof does not verify")
	ErrRangeProofMalformed            = RangeError("range proof is malformed")
	ErrRecordCorrupt                  = RecordError("stored record is corrupt")
	ErrRequiredAuthorityAccountAbsent = NotFoundError("required authority account not found")
	ErrStorageFailure                 = FatalError("storage failure")
	ErrSumMismatch                    = InvalidError("commitment sum does not balance")
	ErrSupplyOverflow                 = FatalError("supply overflow")
	ErrSupplyUnderflow                = FatalError("supply would become negative")
	ErrTrailingData                   = RecordError("trailing data after record")
	ErrTransactionAlreadyInUse        = ProcessError("storage transaction already in use")
	ErrTransactionExists              = ExistsError("transaction already applied")
	ErrTransactionNotFound            = NotFoundError("transaction not found")
	ErrTransactionNotInUse            = ProcessError("storage transaction not in use")
	ErrTruncatedRecord                = RecordError("record is truncated")
	ErrUnknownOperation               = RecordError("unknown operation")
	ErrUnreachableWeightThreshold     = InvalidError("weight threshold cannot be reached")
	ErrValueOutOfRange                = RangeError("value is outside the provable range")
	ErrWrongChecksum                  = InvalidError("wrong checksum")
	ErrWrongNetworkForPublicKey       = InvalidError("wrong network for public key")
	ErrZeroWeightThreshold            = InvalidError("weight threshold must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e FatalError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
//
// context added with errors.Wrap is ignored
func IsErrExists(e error) bool   { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrFatal(e error) bool    { _, ok := errors.Cause(e).(FatalError); return ok }
func IsErrInvalid(e error) bool  { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := errors.Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := errors.Cause(e).(RangeError); return ok }
func IsErrRecord(e error) bool   { _, ok := errors.Cause(e).(RecordError); return ok }

// IsErrRejected - true for errors that reject an operation without
// any state change (validation and evaluation failures)
func IsErrRejected(e error) bool {
	return IsErrInvalid(e) || IsErrNotFound(e) || IsErrRange(e) || IsErrLength(e) || IsErrRecord(e)
}

// Fatal - reclassify an error as fatal keeping its message
//
// used on the apply path where any failure is an invariant violation
func Fatal(e error) error {
	if nil == e || IsErrFatal(e) {
		return e
	}
	return FatalError(e.Error())
}
