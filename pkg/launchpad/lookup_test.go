// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad_test

import (
	"context"
	"testing"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupToken(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	f.registered(true)
	f.metadata("DOX", "1234567890000000000000")

	ref, err := f.lp.LookupToken(context.Background(), tokenAddress)
	require.NoError(err)
	require.Equal(common.HexToAddress(tokenAddress), ref.Address)
	require.Equal("DOX", ref.Symbol)
	require.Equal("1234", ref.ExchangeRate.String())

	f.client.AssertCalled(t, "ResolveContract", evm.FactoryContract, evm.BaseMainnet.Factory)
	f.client.AssertCalled(t, "ReadContract", mock.Anything, mock.Anything, evm.MethodGetAmountOut,
		[]interface{}{evm.OneUnit()})
	require.Equal([]string{"lookup:ok"}, f.observer.runs)
}

func TestLookupInvalidAddress(t *testing.T) {
	f := newFixture(t)

	ref, err := f.lp.LookupToken(context.Background(), "not-an-address")
	require.ErrorIs(t, err, launchpad.ErrInvalidAddress)
	require.Equal(t, launchpad.NoToken, ref)
	f.client.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLookupNotRegistered(t *testing.T) {
	f := newFixture(t)
	f.registered(false)

	ref, err := f.lp.LookupToken(context.Background(), tokenAddress)
	require.ErrorIs(t, err, launchpad.ErrNotRegistered)
	require.Equal(t, launchpad.NoToken, ref)
	f.client.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything, evm.MethodSymbol, mock.Anything)
}

func TestLookupQueryFailed(t *testing.T) {
	f := newFixture(t)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodRegistered, mock.Anything).
		Return(nil, errRPC)

	_, err := f.lp.LookupToken(context.Background(), tokenAddress)
	require.ErrorIs(t, err, launchpad.ErrQueryFailed)
	require.ErrorIs(t, err, errRPC)
}

func TestLookupMetadataFailed(t *testing.T) {
	f := newFixture(t)
	f.registered(true)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodSymbol, mock.Anything).
		Return([]interface{}{"DOX"}, nil)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodGetAmountOut, mock.Anything).
		Return(nil, errRPC)

	ref, err := f.lp.LookupToken(context.Background(), tokenAddress)
	require.ErrorIs(t, err, launchpad.ErrMetadataFailed)
	require.Equal(t, launchpad.NoToken, ref)
	require.Equal(t, []string{"lookup:error"}, f.observer.runs)
}

func TestTokenViewResetsOnFailure(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	other := "0x00000000000000000000000000000000000000aa"

	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodRegistered,
		[]interface{}{common.HexToAddress(tokenAddress)}).Return([]interface{}{true}, nil)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodRegistered,
		[]interface{}{common.HexToAddress(other)}).Return([]interface{}{false}, nil)
	f.metadata("DOX", "1000000000000000000000")

	view := launchpad.NewTokenView(f.lp)
	require.Equal(launchpad.NoToken, view.Current())

	_, err := view.Search(context.Background(), tokenAddress)
	require.NoError(err)
	require.Equal("DOX", view.Current().Symbol)

	_, err = view.Search(context.Background(), other)
	require.ErrorIs(err, launchpad.ErrNotRegistered)
	require.Equal(launchpad.NoToken, view.Current())

	intent := view.Intent(evmAmount("0.5"))
	require.True(intent.Token.IsNone())
}

func TestExchangeRate(t *testing.T) {
	f := newFixture(t)
	f.metadata("DOX", "999999999999999999")

	rate, err := f.lp.ExchangeRate(context.Background(), evm.BaseMainnet.FlagshipToken)
	require.NoError(t, err)
	require.True(t, rate.IsZero())
	f.client.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything, evm.MethodRegistered, mock.Anything)
}
