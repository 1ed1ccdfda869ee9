// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wallet holds the user's signing key and the network it is
// currently connected to.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"sync"

	"github.com/doxa-fi/doxa-cli/pkg/evm"
)

// Status of a session's connection.
type Status int

const (
	Disconnected Status = iota
	Connecting
	Connected
)

func (s Status) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

var ErrNoKey = errors.New("no wallet key loaded")

// ChainIDProbe reports the chain an RPC endpoint serves.
type ChainIDProbe func(ctx context.Context, rpcURL string) (int64, error)

// KeySession is a session backed by a local private key.
type KeySession struct {
	key   *ecdsa.PrivateKey
	probe ChainIDProbe

	mu      sync.RWMutex
	status  Status
	network evm.Network
	chainID int64
	account *evm.Account
}

// NewKeySession creates a disconnected session for key. A nil key yields a
// session that can never connect.
func NewKeySession(key *ecdsa.PrivateKey) *KeySession {
	return NewKeySessionWithProbe(key, evm.ChainID)
}

func NewKeySessionWithProbe(key *ecdsa.PrivateKey, probe ChainIDProbe) *KeySession {
	return &KeySession{
		key:    key,
		probe:  probe,
		status: Disconnected,
	}
}

// Connect attaches the session to network. The account is bound to the
// chain ID the RPC actually reports, which may differ from network.ChainID.
func (s *KeySession) Connect(ctx context.Context, network evm.Network) error {
	return s.connect(ctx, network, false)
}

// SwitchNetwork moves the session to target. On failure the session stays
// where it was.
func (s *KeySession) SwitchNetwork(ctx context.Context, target evm.Network) error {
	if err := s.connect(ctx, target, true); err != nil {
		return fmt.Errorf("switch to %s: %w", target, err)
	}
	return nil
}

func (s *KeySession) connect(ctx context.Context, network evm.Network, strict bool) error {
	if s.key == nil {
		return ErrNoKey
	}

	s.mu.Lock()
	previous := s.status
	s.status = Connecting
	s.mu.Unlock()

	account, err := s.dial(ctx, network, strict)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = previous
		return err
	}
	s.status = Connected
	s.network = network
	s.chainID = account.ChainID
	s.account = account
	return nil
}

func (s *KeySession) dial(ctx context.Context, network evm.Network, strict bool) (*evm.Account, error) {
	chainID, err := s.probe(ctx, network.RPC)
	if err != nil {
		return nil, err
	}
	if strict && chainID != network.ChainID {
		return nil, fmt.Errorf("%w: RPC %s serves chain %d", evm.ErrChainIDMismatch, network.RPC, chainID)
	}
	return evm.NewAccount(s.key, chainID)
}

func (s *KeySession) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Disconnected
	s.account = nil
	s.chainID = 0
}

func (s *KeySession) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// ActiveChainID is the chain the session signs for, 0 when disconnected.
func (s *KeySession) ActiveChainID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chainID
}

func (s *KeySession) Network() evm.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

func (s *KeySession) Account() *evm.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}
