// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/wallet"
	"github.com/luxfi/geth/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func evmAmount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dox() launchpad.TokenRef {
	return launchpad.TokenRef{
		Address:      common.HexToAddress(tokenAddress),
		Symbol:       "DOX",
		ExchangeRate: decimal.NewFromInt(1000),
	}
}

func (f *fixture) expectBuy(value *big.Int, err error) {
	tx := &evm.UnsignedTx{To: common.HexToAddress(tokenAddress), Method: evm.MethodBuy, Value: value}
	f.client.On("PrepareTransaction", mock.Anything, evm.MethodBuy, value, mock.Anything).Return(tx, nil)
	if err != nil {
		f.client.On("SubmitTransaction", mock.Anything, tx, f.account).Return(nil, err)
		return
	}
	f.client.On("SubmitTransaction", mock.Anything, tx, f.account).
		Return(&evm.Receipt{TxHash: common.HexToHash("0xbeef")}, nil)
}

func TestSwapZeroAmount(t *testing.T) {
	for _, connected := range []bool{true, false} {
		f := newFixture(t)
		if connected {
			f.connect(evm.BaseMainnet.ChainID)
		} else {
			f.disconnect()
		}

		for _, amount := range []string{"0", "-1", "0.0000000000000000001"} {
			_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
				Token:        dox(),
				NativeAmount: evmAmount(amount),
			})
			require.ErrorIs(t, err, launchpad.ErrInvalidAmount, "amount %s connected %v", amount, connected)
		}
		f.client.AssertNotCalled(t, "SubmitTransaction", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestSwapNotConnected(t *testing.T) {
	f := newFixture(t)
	f.disconnect()

	_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("0.1"),
	})
	require.ErrorIs(t, err, launchpad.ErrNotConnected)

	_, err = f.lp.ExecuteSwap(context.Background(), nil, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("0.1"),
	})
	require.ErrorIs(t, err, launchpad.ErrNotConnected)
	f.client.AssertNotCalled(t, "PrepareTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSwapNoTokenSelected(t *testing.T) {
	f := newFixture(t)
	f.connect(evm.BaseMainnet.ChainID)

	_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        launchpad.NoToken,
		NativeAmount: evmAmount("0.1"),
	})
	require.ErrorIs(t, err, launchpad.ErrNoTokenSelected)
}

func TestSwap(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.connect(evm.BaseMainnet.ChainID)
	f.expectBuy(big.NewInt(10_000_000_000_000_000), nil)

	receipt, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("0.01"),
	})
	require.NoError(err)
	require.Equal(common.HexToHash("0xbeef"), receipt.TxHash)
	require.Equal("DOX", receipt.Token.Symbol)

	f.client.AssertCalled(t, "ResolveContract", evm.TokenContract, common.HexToAddress(tokenAddress))
	f.session.AssertNotCalled(t, "SwitchNetwork", mock.Anything, mock.Anything)
	require.Equal([]string{"swap:ok"}, f.observer.runs)
}

func TestSwapSwitchesNetwork(t *testing.T) {
	f := newFixture(t)
	f.session.On("Status").Return(wallet.Connected)
	f.session.On("Account").Return(f.account)
	f.session.On("ActiveChainID").Return(evm.BaseSepolia.ChainID).Once()
	f.session.On("ActiveChainID").Return(evm.BaseMainnet.ChainID)
	f.session.On("SwitchNetwork", mock.Anything, evm.BaseMainnet).Return(nil)
	f.expectBuy(evm.OneUnit(), nil)

	_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("1"),
	})
	require.NoError(t, err)
	f.session.AssertCalled(t, "SwitchNetwork", mock.Anything, evm.BaseMainnet)
}

func TestSwapNetworkSwitchFailed(t *testing.T) {
	f := newFixture(t)
	f.connect(evm.BaseSepolia.ChainID)
	f.session.On("SwitchNetwork", mock.Anything, evm.BaseMainnet).Return(errRPC)

	_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("1"),
	})
	require.ErrorIs(t, err, launchpad.ErrNetworkSwitchFailed)
	require.ErrorIs(t, err, errRPC)
	f.client.AssertNotCalled(t, "PrepareTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSwapSubmissionFailed(t *testing.T) {
	f := newFixture(t)
	f.connect(evm.BaseMainnet.ChainID)
	f.expectBuy(evm.OneUnit(), evm.ErrTxReverted)

	_, err := f.lp.ExecuteSwap(context.Background(), f.session, launchpad.SwapIntent{
		Token:        dox(),
		NativeAmount: evmAmount("1"),
	})
	require.ErrorIs(t, err, launchpad.ErrSubmissionFailed)
	require.ErrorIs(t, err, evm.ErrTxReverted)
	require.Equal(t, []string{"swap:error"}, f.observer.runs)
}

func TestSwapRejectsOverlappingCalls(t *testing.T) {
	f := newFixture(t)
	f.connect(evm.BaseMainnet.ChainID)

	started := make(chan struct{})
	unblock := make(chan struct{})
	tx := &evm.UnsignedTx{Method: evm.MethodBuy}
	f.client.On("PrepareTransaction", mock.Anything, evm.MethodBuy, mock.Anything, mock.Anything).Return(tx, nil)
	f.client.On("SubmitTransaction", mock.Anything, tx, f.account).
		Run(func(mock.Arguments) {
			close(started)
			<-unblock
		}).
		Return(&evm.Receipt{}, nil)

	intent := launchpad.SwapIntent{Token: dox(), NativeAmount: evmAmount("1")}
	done := make(chan error, 1)
	go func() {
		_, err := f.lp.ExecuteSwap(context.Background(), f.session, intent)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first swap never reached submission")
	}
	_, err := f.lp.ExecuteSwap(context.Background(), f.session, intent)
	require.ErrorIs(t, err, launchpad.ErrBusy)

	close(unblock)
	require.NoError(t, <-done)
	f.client.AssertNumberOfCalls(t, "SubmitTransaction", 1)
}
