// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strings"

	"github.com/doxa-fi/doxa-cli/pkg/config"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of a configuration key after merging flags,
environment, config file and defaults.

Keys:
  ` + strings.Join(config.Keys, "\n  ") + `

Examples:
  doxa config get network
  doxa config get storage.uri`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q, expected one of: %s", key, strings.Join(config.Keys, ", "))
	}
	if !app.Conf.IsSet(key) {
		ux.Logger.PrintToUser("%s is not set", key)
		return nil
	}
	ux.Logger.PrintToUser("%s = %v", key, app.Conf.Get(key))
	return nil
}
