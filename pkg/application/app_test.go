// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/config"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/prompts"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*Doxa, *viper.Viper) {
	t.Helper()
	baseDir := t.TempDir()
	v := viper.New()
	v.AddConfigPath(baseDir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)

	app := New()
	app.Setup(baseDir, luxlog.NewNoOpLogger(), config.New(v), prompts.NewNonInteractivePrompter())
	return app, v
}

func TestSetup(t *testing.T) {
	app, _ := newTestApp(t)
	require.NotNil(t, app.Metrics)
	require.Equal(t, filepath.Join(app.GetBaseDir(), "logs"), app.GetLogDir())
	require.Equal(t, filepath.Join(app.GetBaseDir(), "config.json"), app.GetConfigPath())
	require.False(t, app.ConfigFileExists())
}

func TestNetwork(t *testing.T) {
	app, v := newTestApp(t)

	network, err := app.Network()
	require.NoError(t, err)
	require.Equal(t, evm.BaseMainnet, network)

	v.Set(constants.ConfigNetworkKey, "base-sepolia")
	v.Set(constants.ConfigRPCKey, "http://127.0.0.1:8545")
	network, err = app.Network()
	require.NoError(t, err)
	require.Equal(t, evm.BaseSepolia.ChainID, network.ChainID)
	require.Equal(t, "http://127.0.0.1:8545", network.RPC)

	v.Set(constants.ConfigNetworkKey, "optimism")
	_, err = app.Network()
	require.ErrorIs(t, err, evm.ErrUnknownNetwork)
}

func TestOpenContentStore(t *testing.T) {
	app, v := newTestApp(t)
	ctx := context.Background()

	store, err := app.OpenContentStore(ctx)
	require.NoError(t, err)
	require.Nil(t, store)

	dir := t.TempDir()
	v.Set(constants.ConfigStorageURIKey, "file://"+dir)
	v.Set(constants.ConfigStorageGatewayKey, "https://cdn.example.com/content")
	store, err = app.OpenContentStore(ctx)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	uris, err := store.UploadContent(ctx, []storage.File{{Name: "metadata.json", Bytes: []byte("{}"), ContentType: "application/json"}})
	require.NoError(t, err)
	id, err := storage.ContentID([]byte("{}"))
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.example.com/content/" + id}, uris)
	require.FileExists(t, filepath.Join(dir, id))

	v.Set(constants.ConfigStorageURIKey, "ftp://bucket")
	_, err = app.OpenContentStore(ctx)
	require.Error(t, err)
}
