// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
)

// Account is a signing identity bound to one chain.
type Account struct {
	Address common.Address
	ChainID int64
	opts    *bind.TransactOpts
}

// NewAccount creates a transactor for key on chainID.
func NewAccount(key *ecdsa.PrivateKey, chainID int64) (*Account, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return &Account{
		Address: auth.From,
		ChainID: chainID,
		opts:    auth,
	}, nil
}

func (a *Account) transactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	if a == nil || a.opts == nil {
		return nil, ErrNoSigner
	}
	opts := *a.opts
	opts.Context = ctx
	opts.Value = value
	return &opts, nil
}
