// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/wallet"
	"github.com/stretchr/testify/mock"
)

// WalletSession is a mock implementation of launchpad.WalletSession
type WalletSession struct {
	mock.Mock
}

func (m *WalletSession) Status() wallet.Status {
	args := m.Called()
	return args.Get(0).(wallet.Status)
}

func (m *WalletSession) ActiveChainID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *WalletSession) Account() *evm.Account {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*evm.Account)
}

func (m *WalletSession) SwitchNetwork(ctx context.Context, network evm.Network) error {
	args := m.Called(ctx, network)
	return args.Error(0)
}
