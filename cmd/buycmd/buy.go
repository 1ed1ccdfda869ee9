// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package buycmd

import (
	"context"
	"fmt"

	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/prompts"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	app *application.Doxa

	tokenAddr   string
	amountInput string
	skipConfirm bool
)

// doxa buy
func NewCmd(injectedApp *application.Doxa) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a launchpad token with native currency",
		Long: `Buy a registered launchpad token from its bonding curve.

The token is looked up first and a quote at the current rate is shown
before anything is signed. The quote is an estimate; the curve decides the
amount received.`,
		Example: `  doxa buy --token 0xAb23b2B48BB6588dC30a5d3185CC747406e55288 --amount 0.01
  DOXA_PRIVATE_KEY=... doxa buy --token 0xAb23... --amount 0.5 --yes --non-interactive`,
		Args: cobra.NoArgs,
		RunE: buy,
	}
	cmd.Flags().StringVar(&tokenAddr, "token", "", "address of the token to buy")
	cmd.Flags().StringVar(&amountInput, "amount", "", "amount of native currency to spend, in whole units")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func buy(cmd *cobra.Command, _ []string) error {
	err := prompts.NewValidator("doxa buy").
		Require(&tokenAddr, prompts.MissingOpt{Flag: "--token", Prompt: "Token address"}).
		Require(&amountInput, prompts.MissingOpt{Flag: "--amount", Prompt: "Amount of ETH to spend"}).
		Resolve(func(m prompts.MissingOpt) (string, error) {
			if m.Flag == "--token" {
				addr, err := app.Prompt.CaptureAddress(m.Prompt)
				return addr.Hex(), err
			}
			amount, err := app.Prompt.CapturePositiveDecimal(m.Prompt)
			return amount.String(), err
		})
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountInput)
	if err != nil {
		return fmt.Errorf("%w: %q", launchpad.ErrInvalidAmount, amountInput)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
	defer cancel()

	services, err := app.NewServices(ctx, false)
	if err != nil {
		return err
	}
	defer services.Close()

	view := launchpad.NewTokenView(services.Launchpad)
	ref, err := view.Search(ctx, tokenAddr)
	if err != nil {
		return err
	}
	intent := view.Intent(amount)

	if err := ux.Logger.PrintKeyValueTable([2]string{"Buy", ref.Symbol}, [][2]string{
		{"You send", amount.String() + " ETH"},
		{"You receive", "~" + ref.Quote(amount).StringFixed(2) + " " + ref.Symbol},
		{"Token", ref.Address.Hex()},
		{"Network", services.Network.String()},
	}); err != nil {
		return err
	}
	if !skipConfirm {
		ok, err := app.Prompt.CaptureYesNo("Send this transaction?")
		if err != nil {
			return err
		}
		if !ok {
			ux.Logger.PrintToUser("Aborted")
			return nil
		}
	}

	privateKey, _ := cmd.Flags().GetString("private-key")
	session, err := app.NewWalletSession(ctx, privateKey, services.Network)
	if err != nil {
		return err
	}

	var receipt launchpad.SwapReceipt
	err = ux.Logger.WaitFor("Buying "+ref.Symbol, func() error {
		var err error
		receipt, err = services.Launchpad.ExecuteSwap(ctx, session, intent)
		return err
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Bought %s with %s ETH", receipt.Token.Symbol, receipt.NativeAmount)
	ux.Logger.PrintToUser("Transaction: %s", services.Network.TxURL(receipt.TxHash))
	return nil
}
