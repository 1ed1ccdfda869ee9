// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/luxfi/geth/common"
)

// Network holds the chain parameters the launchpad talks to.
type Network struct {
	Name          string
	ChainID       int64
	RPC           string
	Explorer      string
	Factory       common.Address
	FlagshipToken common.Address
}

// Known networks
var (
	BaseMainnet = Network{
		Name:          "base",
		ChainID:       8453,
		RPC:           "https://mainnet.base.org",
		Explorer:      "https://basescan.org",
		Factory:       common.HexToAddress("0x1d5756eF591743E02c2FdDa287e34B9846017CFc"),
		FlagshipToken: common.HexToAddress("0xAb23b2B48BB6588dC30a5d3185CC747406e55288"),
	}

	// BaseSepolia has no factory deployment of its own; set one with
	// `doxa config set factory <address>` before using it.
	BaseSepolia = Network{
		Name:     "base-sepolia",
		ChainID:  84532,
		RPC:      "https://sepolia.base.org",
		Explorer: "https://sepolia.basescan.org",
	}

	networks = map[string]Network{
		BaseMainnet.Name: BaseMainnet,
		BaseSepolia.Name: BaseSepolia,
	}
)

// GetNetwork returns a copy of the named network so callers may override
// fields without touching the defaults.
func GetNetwork(name string) (Network, error) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownNetwork, name, strings.Join(NetworkNames(), ", "))
	}
	return n, nil
}

// NetworkNames lists the known network names in stable order.
func NetworkNames() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TxURL is the explorer page of a transaction.
func (n Network) TxURL(hash common.Hash) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(n.Explorer, "/"), hash.Hex())
}

// AddressURL is the explorer page of an account or contract.
func (n Network) AddressURL(addr common.Address) string {
	return fmt.Sprintf("%s/address/%s", strings.TrimSuffix(n.Explorer, "/"), addr.Hex())
}

func (n Network) String() string {
	return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
}
