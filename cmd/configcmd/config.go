// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Doxa

func NewCmd(injectedApp *application.Doxa) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Doxa CLI",
		Long: `Customize configuration for Doxa CLI.

Values are stored in ~/.doxa/config.json. Environment variables with the
DOXA_ prefix override the file, flags override both.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
