// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"
	"math/big"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/mock"
)

// ChainClient is a mock implementation of launchpad.ChainClient
type ChainClient struct {
	mock.Mock
}

func (m *ChainClient) ResolveContract(kind evm.ContractKind, address common.Address) (*evm.Contract, error) {
	args := m.Called(kind, address)
	if fn, ok := args.Get(0).(func(evm.ContractKind, common.Address) *evm.Contract); ok {
		return fn(kind, address), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evm.Contract), args.Error(1)
}

func (m *ChainClient) ReadContract(ctx context.Context, contract *evm.Contract, method string, params ...interface{}) ([]interface{}, error) {
	args := m.Called(ctx, contract, method, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interface{}), args.Error(1)
}

func (m *ChainClient) PrepareTransaction(contract *evm.Contract, method string, value *big.Int, params ...interface{}) (*evm.UnsignedTx, error) {
	args := m.Called(contract, method, value, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evm.UnsignedTx), args.Error(1)
}

func (m *ChainClient) SubmitTransaction(ctx context.Context, tx *evm.UnsignedTx, account *evm.Account) (*evm.Receipt, error) {
	args := m.Called(ctx, tx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evm.Receipt), args.Error(1)
}

// ResolveAny makes ResolveContract hand back a plain handle for any address.
func (m *ChainClient) ResolveAny() {
	m.On("ResolveContract", mock.Anything, mock.Anything).Return(
		func(kind evm.ContractKind, address common.Address) *evm.Contract {
			return &evm.Contract{Kind: kind, Address: address}
		},
		nil,
	)
}
