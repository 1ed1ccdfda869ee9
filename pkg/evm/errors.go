// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"errors"
	"fmt"

	"github.com/luxfi/geth/core/types"
)

var (
	ErrUnknownNetwork  = errors.New("unknown network")
	ErrChainIDMismatch = errors.New("chain ID mismatch")
	ErrUnknownContract = errors.New("unknown contract kind")
	ErrUnknownMethod   = errors.New("unknown contract method")
	ErrNotPayable      = errors.New("method is not payable")
	ErrNoSigner        = errors.New("no signing account")
	ErrTxReverted      = errors.New("transaction reverted")
	ErrEmptyResult     = errors.New("contract call returned no values")
)

// TransactionError transforms a tx operation error into an error that contains
// the err itself, the tx hash (or a note that it was never submitted) and a
// descriptive msg formatted with args.
func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}

// CallResult extracts the first return value of a contract call as T.
func CallResult[T any](method string, out []interface{}) (T, error) {
	var zero T
	if len(out) == 0 {
		return zero, fmt.Errorf("%s: %w", method, ErrEmptyResult)
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T, expected %T", method, out[0], zero)
	}
	return v, nil
}
