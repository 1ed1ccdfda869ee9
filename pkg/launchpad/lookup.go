// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/luxfi/geth/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LookupToken resolves a candidate address to a registered token with its
// symbol and current exchange rate. Any failure returns NoToken.
func (l *Launchpad) LookupToken(ctx context.Context, candidate string) (TokenRef, error) {
	start := time.Now()
	ref, err := l.lookupToken(ctx, candidate)
	l.observe(WorkflowLookup, err, start)
	if err != nil {
		l.log.Debug("token lookup failed", zap.String("candidate", candidate), zap.Error(err))
		return NoToken, err
	}
	return ref, nil
}

func (l *Launchpad) lookupToken(ctx context.Context, candidate string) (TokenRef, error) {
	addr, err := ParseAddress(candidate)
	if err != nil {
		return NoToken, err
	}

	factory, err := l.client.ResolveContract(evm.FactoryContract, l.network.Factory)
	if err != nil {
		return NoToken, wrap(ErrQueryFailed, err)
	}
	out, err := l.client.ReadContract(ctx, factory, evm.MethodRegistered, addr)
	if err != nil {
		return NoToken, wrap(ErrQueryFailed, err)
	}
	registered, err := evm.CallResult[bool](evm.MethodRegistered, out)
	if err != nil {
		return NoToken, wrap(ErrQueryFailed, err)
	}
	if !registered {
		return NoToken, ErrNotRegistered
	}

	token, err := l.client.ResolveContract(evm.TokenContract, addr)
	if err != nil {
		return NoToken, wrap(ErrMetadataFailed, err)
	}
	out, err = l.client.ReadContract(ctx, token, evm.MethodSymbol)
	if err != nil {
		return NoToken, wrap(ErrMetadataFailed, err)
	}
	symbol, err := evm.CallResult[string](evm.MethodSymbol, out)
	if err != nil {
		return NoToken, wrap(ErrMetadataFailed, err)
	}
	rate, err := l.readRate(ctx, token)
	if err != nil {
		return NoToken, wrap(ErrMetadataFailed, err)
	}

	return TokenRef{
		Address:      addr,
		Symbol:       symbol,
		ExchangeRate: rate,
	}, nil
}

// ExchangeRate reads the floored number of tokens one whole native unit buys,
// without consulting the registry.
func (l *Launchpad) ExchangeRate(ctx context.Context, token common.Address) (decimal.Decimal, error) {
	start := time.Now()
	rate, err := l.exchangeRate(ctx, token)
	l.observe(WorkflowRate, err, start)
	return rate, err
}

func (l *Launchpad) exchangeRate(ctx context.Context, token common.Address) (decimal.Decimal, error) {
	contract, err := l.client.ResolveContract(evm.TokenContract, token)
	if err != nil {
		return decimal.Zero, wrap(ErrMetadataFailed, err)
	}
	rate, err := l.readRate(ctx, contract)
	if err != nil {
		return decimal.Zero, wrap(ErrMetadataFailed, err)
	}
	return rate, nil
}

func (l *Launchpad) readRate(ctx context.Context, token *evm.Contract) (decimal.Decimal, error) {
	out, err := l.client.ReadContract(ctx, token, evm.MethodGetAmountOut, evm.OneUnit())
	if err != nil {
		return decimal.Zero, err
	}
	amountOut, err := evm.CallResult[*big.Int](evm.MethodGetAmountOut, out)
	if err != nil {
		return decimal.Zero, err
	}
	return evm.FromWei(amountOut).Floor(), nil
}

// TokenView holds the currently selected token of an interactive session.
// Searches are single-flight: a search started while another is running
// fails with ErrBusy and leaves the selection alone.
type TokenView struct {
	lp    *Launchpad
	guard busyGuard

	mu      sync.RWMutex
	current TokenRef
}

func NewTokenView(lp *Launchpad) *TokenView {
	return &TokenView{
		lp:      lp,
		guard:   newBusyGuard(),
		current: NoToken,
	}
}

// Search looks up candidate and selects the result. A failed lookup
// selects NoToken so a stale token is never left on display.
func (v *TokenView) Search(ctx context.Context, candidate string) (TokenRef, error) {
	release, err := v.guard.enter()
	if err != nil {
		return v.Current(), err
	}
	defer release()

	ref, err := v.lp.LookupToken(ctx, candidate)

	v.mu.Lock()
	v.current = ref
	v.mu.Unlock()
	return ref, err
}

func (v *TokenView) Current() TokenRef {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Intent pairs the selected token with amount.
func (v *TokenView) Intent(amount decimal.Decimal) SwapIntent {
	return SwapIntent{
		Token:        v.Current(),
		NativeAmount: amount,
	}
}
