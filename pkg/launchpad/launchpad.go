// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package launchpad implements the token lookup, buy and launch workflows
// against a launchpad factory and its bonding-curve tokens.
package launchpad

import (
	"context"
	"math/big"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/wallet"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
)

// Workflow names reported to an Observer
const (
	WorkflowLookup = "lookup"
	WorkflowRate   = "rate"
	WorkflowSwap   = "swap"
	WorkflowLaunch = "launch"
)

// ChainClient is the contract access the workflows need.
type ChainClient interface {
	ResolveContract(kind evm.ContractKind, address common.Address) (*evm.Contract, error)
	ReadContract(ctx context.Context, contract *evm.Contract, method string, params ...interface{}) ([]interface{}, error)
	PrepareTransaction(contract *evm.Contract, method string, value *big.Int, params ...interface{}) (*evm.UnsignedTx, error)
	SubmitTransaction(ctx context.Context, tx *evm.UnsignedTx, account *evm.Account) (*evm.Receipt, error)
}

// WalletSession is the user's signing session.
type WalletSession interface {
	Status() wallet.Status
	ActiveChainID() int64
	Account() *evm.Account
	SwitchNetwork(ctx context.Context, network evm.Network) error
}

// ContentUploader stores immutable off-chain content and returns one URI
// per file, in order.
type ContentUploader interface {
	UploadContent(ctx context.Context, files []storage.File) ([]string, error)
}

// Observer is told the outcome of every workflow run.
type Observer interface {
	ObserveWorkflow(workflow string, err error, elapsed time.Duration)
}

// Launchpad runs the workflows for one network. Buy and launch each admit a
// single run at a time and reject overlapping calls with ErrBusy.
type Launchpad struct {
	network  evm.Network
	client   ChainClient
	uploader ContentUploader
	log      luxlog.Logger
	observer Observer
	newSalt  SaltSource

	swapGuard   busyGuard
	launchGuard busyGuard
}

type Option func(*Launchpad)

// WithUploader sets the content store used by launches.
func WithUploader(u ContentUploader) Option {
	return func(l *Launchpad) {
		l.uploader = u
	}
}

func WithObserver(o Observer) Option {
	return func(l *Launchpad) {
		l.observer = o
	}
}

// WithSaltSource replaces the random salt generator.
func WithSaltSource(s SaltSource) Option {
	return func(l *Launchpad) {
		l.newSalt = s
	}
}

func New(network evm.Network, client ChainClient, log luxlog.Logger, opts ...Option) *Launchpad {
	l := &Launchpad{
		network:     network,
		client:      client,
		log:         log,
		newSalt:     NewDeploymentSalt,
		swapGuard:   newBusyGuard(),
		launchGuard: newBusyGuard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Launchpad) Network() evm.Network {
	return l.network
}

func (l *Launchpad) observe(workflow string, err error, start time.Time) {
	if l.observer != nil {
		l.observer.ObserveWorkflow(workflow, err, time.Since(start))
	}
}

// ensureNetwork moves the session to the launchpad network if it is
// elsewhere.
func (l *Launchpad) ensureNetwork(ctx context.Context, session WalletSession) error {
	if session.ActiveChainID() == l.network.ChainID {
		return nil
	}
	if err := session.SwitchNetwork(ctx, l.network); err != nil {
		return wrap(ErrNetworkSwitchFailed, err)
	}
	if got := session.ActiveChainID(); got != l.network.ChainID {
		return wrap(ErrNetworkSwitchFailed, evm.ErrChainIDMismatch)
	}
	return nil
}

func connected(session WalletSession) bool {
	return session != nil && session.Status() == wallet.Connected && session.Account() != nil
}
