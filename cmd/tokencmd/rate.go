// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"context"
	"errors"

	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

func newRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate [address]",
		Short: "Show how many tokens one ETH buys",
		Long: `Show how many whole tokens one whole unit of native currency buys.

Without an address the network's flagship token is used. The address is not
checked against the factory registry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rate,
	}
}

func rate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
	defer cancel()

	services, err := app.NewServices(ctx, false)
	if err != nil {
		return err
	}
	defer services.Close()

	token := services.Network.FlagshipToken
	if len(args) == 1 {
		if token, err = launchpad.ParseAddress(args[0]); err != nil {
			return err
		}
	}
	if token == (common.Address{}) {
		return errors.New("network " + services.Network.Name + " has no flagship token, pass an address")
	}

	value, err := services.Launchpad.ExchangeRate(ctx, token)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("1 ETH = %s tokens (%s)", value.String(), token.Hex())
	return nil
}
