// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/luxfi/crypto"
	"github.com/luxfi/go-bip39"
)

const (
	EnvPrivateKey = "DOXA_PRIVATE_KEY"
	EnvMnemonic   = "DOXA_MNEMONIC"
)

var ErrNoCredentials = errors.New("no wallet credentials provided: use --private-key, " + EnvPrivateKey + ", or " + EnvMnemonic)

// LoadKey resolves the signing key.
// Priority: privateKey param > DOXA_PRIVATE_KEY env > DOXA_MNEMONIC env
func LoadKey(privateKey string) (*ecdsa.PrivateKey, error) {
	// Priority 1: passed private key
	if privateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return key, nil
	}

	// Priority 2: environment private key
	if envKey := os.Getenv(EnvPrivateKey); envKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(envKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPrivateKey, err)
		}
		return key, nil
	}

	// Priority 3: environment mnemonic
	mnemonic := strings.TrimSpace(os.Getenv(EnvMnemonic))
	if mnemonic == "" {
		return nil, ErrNoCredentials
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid %s", EnvMnemonic)
	}
	key, err := DeriveKey(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// DeriveKey derives the first Ethereum account, m/44'/60'/0'/0/0, from seed.
func DeriveKey(seed []byte) (*ecdsa.PrivateKey, error) {
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	path := []struct {
		name  string
		index uint32
	}{
		{"purpose", hdkeychain.HardenedKeyStart + 44},
		{"coin type", hdkeychain.HardenedKeyStart + 60},
		{"account", hdkeychain.HardenedKeyStart + 0},
		{"change", 0},
		{"address index", 0},
	}
	for _, step := range path {
		key, err = key.Derive(step.index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", step.name, err)
		}
	}

	ecPrivKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	return ecPrivKey.ToECDSA(), nil
}
