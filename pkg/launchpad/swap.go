// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"context"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"go.uber.org/zap"
)

// ExecuteSwap buys intent.Token with intent.NativeAmount of native currency.
// Preconditions are checked in order: amount, connection, token. A zero
// amount is rejected whatever the state of the wallet. Nothing is sent to the
// chain unless all of them hold.
func (l *Launchpad) ExecuteSwap(ctx context.Context, session WalletSession, intent SwapIntent) (SwapReceipt, error) {
	release, err := l.swapGuard.enter()
	if err != nil {
		return SwapReceipt{}, err
	}
	defer release()

	start := time.Now()
	receipt, err := l.executeSwap(ctx, session, intent)
	l.observe(WorkflowSwap, err, start)
	return receipt, err
}

func (l *Launchpad) executeSwap(ctx context.Context, session WalletSession, intent SwapIntent) (SwapReceipt, error) {
	value := evm.ToWei(intent.NativeAmount)
	if !intent.NativeAmount.IsPositive() || value.Sign() <= 0 {
		return SwapReceipt{}, ErrInvalidAmount
	}
	if !connected(session) {
		return SwapReceipt{}, ErrNotConnected
	}
	if intent.Token.IsNone() {
		return SwapReceipt{}, ErrNoTokenSelected
	}

	if err := l.ensureNetwork(ctx, session); err != nil {
		return SwapReceipt{}, err
	}

	token, err := l.client.ResolveContract(evm.TokenContract, intent.Token.Address)
	if err != nil {
		return SwapReceipt{}, wrap(ErrSubmissionFailed, err)
	}
	tx, err := l.client.PrepareTransaction(token, evm.MethodBuy, value)
	if err != nil {
		return SwapReceipt{}, wrap(ErrSubmissionFailed, err)
	}
	receipt, err := l.client.SubmitTransaction(ctx, tx, session.Account())
	if err != nil {
		return SwapReceipt{}, wrap(ErrSubmissionFailed, err)
	}

	l.log.Info("buy confirmed",
		zap.String("token", intent.Token.Address.Hex()),
		zap.String("symbol", intent.Token.Symbol),
		zap.String("amount", intent.NativeAmount.String()),
		zap.String("tx", receipt.TxHash.Hex()),
	)
	return SwapReceipt{
		TxHash:       receipt.TxHash,
		Token:        intent.Token,
		NativeAmount: intent.NativeAmount,
	}, nil
}
