// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"fmt"

	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Doxa

// doxa token
func NewCmd(injectedApp *application.Doxa) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Look up launchpad tokens",
		Long: `The token command suite reads launchpad tokens from the chain.

A token is only shown when the launchpad factory reports it as registered.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				fmt.Println(err)
			}
		},
	}
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newRateCmd())
	return cmd
}
