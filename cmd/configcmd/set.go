// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.doxa/config.json.

Examples:
  doxa config set network base-sepolia
  doxa config set storage.uri s3://my-bucket/tokens
  doxa config set storage.gateway https://cdn.example.com/tokens
  doxa config set api.allowed-origins https://app.example.com,https://example.com`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value, err := parseValue(key, args[1])
	if err != nil {
		return err
	}
	if err := app.Conf.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ux.Logger.PrintToUser("Set %s = %v", key, value)
	return nil
}

// parseValue converts raw into the type stored under key.
func parseValue(key, raw string) (interface{}, error) {
	switch key {
	case constants.ConfigNetworkKey:
		if _, err := evm.GetNetwork(raw); err != nil {
			return nil, err
		}
		return raw, nil
	case constants.ConfigFactoryKey, constants.ConfigFlagshipTokenKey:
		if _, err := launchpad.ParseAddress(raw); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		return raw, nil
	case constants.ConfigAPIRateLimitKey:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s value %q: expected a non-negative integer", key, raw)
		}
		return n, nil
	case constants.ConfigStoragePathStyleKey:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", key, err)
		}
		return b, nil
	case constants.ConfigAPIOriginsKey:
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return origins, nil
	default:
		return raw, nil
	}
}
