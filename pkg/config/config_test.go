// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) (*Config, string) {
	dir := t.TempDir()
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)
	return New(v), dir
}

func TestDefaults(t *testing.T) {
	c, _ := newTestConfig(t)
	s := c.Settings()

	require.Equal(t, "base", s.Network)
	require.Equal(t, constants.DefaultAPIAddress, s.APIAddress)
	require.Equal(t, 120, s.APIRateLimit)
	require.Equal(t, []string{"*"}, s.APIOrigins)
	require.False(t, c.ConfigFileExists())
}

func TestIsSet(t *testing.T) {
	c, _ := newTestConfig(t)

	require.True(t, c.IsSet(constants.ConfigNetworkKey))
	require.False(t, c.IsSet(constants.ConfigStorageURIKey))

	require.NoError(t, c.Set(constants.ConfigStorageURIKey, "s3://doxa-content"))
	require.True(t, c.IsSet(constants.ConfigStorageURIKey))
}

func TestSetWritesConfigFile(t *testing.T) {
	c, dir := newTestConfig(t)

	require.NoError(t, c.Set(constants.ConfigNetworkKey, "base-sepolia"))
	_, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.json"))
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, "base-sepolia", v.GetString(constants.ConfigNetworkKey))

	require.Error(t, c.Set("netwrok", "base"))
}

func TestResolveNetwork(t *testing.T) {
	factory := "0x00000000000000000000000000000000000000f1"
	s := Settings{Network: "base-sepolia", RPC: "http://localhost:8545", Factory: factory}

	network, err := s.ResolveNetwork()
	require.NoError(t, err)
	require.Equal(t, evm.BaseSepolia.ChainID, network.ChainID)
	require.Equal(t, "http://localhost:8545", network.RPC)
	require.Equal(t, common.HexToAddress(factory), network.Factory)
	// presets are not modified
	require.NotEqual(t, "http://localhost:8545", evm.BaseSepolia.RPC)

	_, err = Settings{Network: "mainnet"}.ResolveNetwork()
	require.ErrorIs(t, err, evm.ErrUnknownNetwork)

	_, err = Settings{Network: "base", Factory: "0x12"}.ResolveNetwork()
	require.Error(t, err)
}

func TestAll(t *testing.T) {
	c, _ := newTestConfig(t)
	all := c.All()
	require.Len(t, all, len(Keys))
	require.Equal(t, constants.ConfigAPIAddressKey, all[0][0])
	require.True(t, IsKnownKey(constants.ConfigStorageURIKey))
}

func TestSetTwice(t *testing.T) {
	c, _ := newTestConfig(t)
	require.NoError(t, c.Set(constants.ConfigRPCKey, "http://localhost:8545"))
	require.NoError(t, c.Set(constants.ConfigNetworkKey, "base-sepolia"))
	require.Equal(t, "base-sepolia", c.Settings().Network)
}

func TestAllMasksSecret(t *testing.T) {
	c, _ := newTestConfig(t)
	c.v.Set(constants.ConfigStorageSecretKeyKey, "hunter2")

	for _, kv := range c.All() {
		require.NotContains(t, kv[1], "hunter2", kv[0])
	}
	require.Equal(t, "hunter2", c.Settings().StorageSecretKey)
}
