// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
)

// Keys lists every setting `doxa config` knows about.
var Keys = []string{
	constants.ConfigNetworkKey,
	constants.ConfigRPCKey,
	constants.ConfigFactoryKey,
	constants.ConfigFlagshipTokenKey,
	constants.ConfigStorageURIKey,
	constants.ConfigStorageGatewayKey,
	constants.ConfigStorageRegionKey,
	constants.ConfigStorageEndpointKey,
	constants.ConfigStoragePathStyleKey,
	constants.ConfigStorageAccessKeyKey,
	constants.ConfigStorageSecretKeyKey,
	constants.ConfigStorageCredsKey,
	constants.ConfigAPIAddressKey,
	constants.ConfigAPIRateLimitKey,
	constants.ConfigAPIOriginsKey,
}

// Settings is the typed view of the configuration.
type Settings struct {
	Network          string
	RPC              string
	Factory          string
	FlagshipToken    string
	StorageURI       string
	StorageGateway   string
	StorageRegion    string
	StorageEndpoint  string
	StoragePathStyle bool
	StorageAccessKey string
	StorageSecretKey string
	StorageCredsFile string
	APIAddress       string
	APIRateLimit     int
	APIOrigins       []string
}

// Config reads and writes settings through a viper instance.
type Config struct {
	v *viper.Viper
}

// New wraps v, the global viper instance when v is nil.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)
	return &Config{v: v}
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ConfigNetworkKey, constants.DefaultNetwork)
	v.SetDefault(constants.ConfigAPIAddressKey, constants.DefaultAPIAddress)
	v.SetDefault(constants.ConfigAPIRateLimitKey, constants.DefaultRateLimit)
	v.SetDefault(constants.ConfigAPIOriginsKey, []string{"*"})
}

// Settings snapshots the current configuration.
func (c *Config) Settings() Settings {
	return Settings{
		Network:          c.v.GetString(constants.ConfigNetworkKey),
		RPC:              c.v.GetString(constants.ConfigRPCKey),
		Factory:          c.v.GetString(constants.ConfigFactoryKey),
		FlagshipToken:    c.v.GetString(constants.ConfigFlagshipTokenKey),
		StorageURI:       c.v.GetString(constants.ConfigStorageURIKey),
		StorageGateway:   c.v.GetString(constants.ConfigStorageGatewayKey),
		StorageRegion:    c.v.GetString(constants.ConfigStorageRegionKey),
		StorageEndpoint:  c.v.GetString(constants.ConfigStorageEndpointKey),
		StoragePathStyle: c.v.GetBool(constants.ConfigStoragePathStyleKey),
		StorageAccessKey: c.v.GetString(constants.ConfigStorageAccessKeyKey),
		StorageSecretKey: c.v.GetString(constants.ConfigStorageSecretKeyKey),
		StorageCredsFile: c.v.GetString(constants.ConfigStorageCredsKey),
		APIAddress:       c.v.GetString(constants.ConfigAPIAddressKey),
		APIRateLimit:     c.v.GetInt(constants.ConfigAPIRateLimitKey),
		APIOrigins:       c.v.GetStringSlice(constants.ConfigAPIOriginsKey),
	}
}

// ResolveNetwork resolves the configured network preset and applies the RPC,
// factory and flagship token overrides.
func (s Settings) ResolveNetwork() (evm.Network, error) {
	network, err := evm.GetNetwork(s.Network)
	if err != nil {
		return evm.Network{}, err
	}
	if s.RPC != "" {
		network.RPC = s.RPC
	}
	if s.Factory != "" {
		if !common.IsHexAddress(s.Factory) {
			return evm.Network{}, fmt.Errorf("invalid factory address %q", s.Factory)
		}
		network.Factory = common.HexToAddress(s.Factory)
	}
	if s.FlagshipToken != "" {
		if !common.IsHexAddress(s.FlagshipToken) {
			return evm.Network{}, fmt.Errorf("invalid flagship token address %q", s.FlagshipToken)
		}
		network.FlagshipToken = common.HexToAddress(s.FlagshipToken)
	}
	return network, nil
}

func (c *Config) Get(key string) interface{} {
	return c.v.Get(key)
}

// IsSet reports whether key has a value from any source, defaults included.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// Set stores value under key and writes the config file. Unknown keys are
// rejected so typos do not silently persist.
func (c *Config) Set(key string, value interface{}) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q, expected one of: %s", key, strings.Join(Keys, ", "))
	}
	c.v.Set(key, value)
	err := c.v.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return c.v.SafeWriteConfig()
	}
	return err
}

// All returns every known key with its current value, sorted by key.
// Secrets are masked.
func (c *Config) All() [][2]string {
	keys := append([]string(nil), Keys...)
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, key := range keys {
		value := c.v.Get(key)
		if value == nil {
			value = ""
		}
		if key == constants.ConfigStorageSecretKeyKey && c.v.GetString(key) != "" {
			value = "********"
		}
		out = append(out, [2]string{key, fmt.Sprint(value)})
	}
	return out
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
