// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"context"

	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <address>",
		Short: "Show a registered token with its symbol and exchange rate",
		Example: `  doxa token search 0xAb23b2B48BB6588dC30a5d3185CC747406e55288
  doxa token search 0xAb23b2B48BB6588dC30a5d3185CC747406e55288 --network base-sepolia`,
		Args: cobra.ExactArgs(1),
		RunE: search,
	}
}

func search(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
	defer cancel()

	services, err := app.NewServices(ctx, false)
	if err != nil {
		return err
	}
	defer services.Close()

	view := launchpad.NewTokenView(services.Launchpad)
	ref, err := view.Search(ctx, args[0])
	if err != nil {
		return err
	}
	return printToken(services.Launchpad, ref)
}

func printToken(lp *launchpad.Launchpad, ref launchpad.TokenRef) error {
	network := lp.Network()
	return ux.Logger.PrintKeyValueTable([2]string{"Token", ref.Symbol}, [][2]string{
		{"Address", ref.Address.Hex()},
		{"Symbol", ref.Symbol},
		{"Rate", ref.ExchangeRate.String() + " " + ref.Symbol + " per ETH"},
		{"Network", network.String()},
		{"Explorer", network.AddressURL(ref.Address)},
	})
}
