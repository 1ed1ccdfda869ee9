// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"fmt"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
)

// ContractKind selects the interface a contract is bound with.
type ContractKind int

const (
	FactoryContract ContractKind = iota
	TokenContract
)

func (k ContractKind) String() string {
	switch k {
	case FactoryContract:
		return "factory"
	case TokenContract:
		return "token"
	default:
		return fmt.Sprintf("contract(%d)", int(k))
	}
}

// Method names
const (
	MethodRegistered          = "registered"
	MethodPredictTokenAddress = "predictTokenAddress"
	MethodCreateToken         = "createToken"
	MethodSymbol              = "symbol"
	MethodGetAmountOut        = "getAmountOut"
	MethodBuy                 = "buy"
)

// ABI strings for contract interactions
const (
	// Launchpad factory ABI (minimal)
	FactoryABI = `[
		{"inputs":[{"internalType":"address","name":"token","type":"address"}],"name":"registered","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"bytes32","name":"salt","type":"bytes32"}],"name":"predictTokenAddress","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"ticker","type":"string"},{"internalType":"string","name":"uri","type":"string"},{"internalType":"bytes32","name":"salt","type":"bytes32"}],"name":"createToken","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"nonpayable","type":"function"}
	]`

	// Bonding-curve token ABI (minimal)
	TokenABI = `[
		{"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"}],"name":"getAmountOut","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"},{"internalType":"uint256","name":"fee","type":"uint256"},{"internalType":"uint256","name":"price","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"inputs":[],"name":"buy","outputs":[],"stateMutability":"payable","type":"function"}
	]`
)

// ParseABIs parses every known contract interface.
func ParseABIs() (map[ContractKind]abi.ABI, error) {
	sources := map[ContractKind]string{
		FactoryContract: FactoryABI,
		TokenContract:   TokenABI,
	}
	parsed := make(map[ContractKind]abi.ABI, len(sources))
	for kind, src := range sources {
		a, err := abi.JSON(strings.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s ABI: %w", kind, err)
		}
		parsed[kind] = a
	}
	return parsed, nil
}
