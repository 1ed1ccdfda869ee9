// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  `List every configuration key with its effective value.`,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	if path := app.Conf.GetConfigPath(); path != "" {
		ux.Logger.PrintToUser("Config file: %s", path)
	}
	return ux.Logger.PrintKeyValueTable([2]string{"Key", "Value"}, app.Conf.All())
}
