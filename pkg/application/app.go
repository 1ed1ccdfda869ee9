// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/config"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/monitoring"
	"github.com/doxa-fi/doxa-cli/pkg/prompts"
	"github.com/doxa-fi/doxa-cli/pkg/wallet"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

type Doxa struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Metrics *monitoring.Metrics
}

func New() *Doxa {
	return &Doxa{}
}

func (app *Doxa) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Metrics = monitoring.New(constants.MetricsNamespace)
}

func (app *Doxa) GetBaseDir() string {
	return app.baseDir
}

func (app *Doxa) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Doxa) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

func (app *Doxa) ConfigFileExists() bool {
	return app.Conf.ConfigFileExists()
}

// Network is the configured network with overrides applied.
func (app *Doxa) Network() (evm.Network, error) {
	return app.Conf.Settings().ResolveNetwork()
}

// OpenContentStore opens the configured content store. It returns nil and
// no error when no storage URI is configured.
func (app *Doxa) OpenContentStore(ctx context.Context) (*storage.ContentStore, error) {
	settings := app.Conf.Settings()
	if settings.StorageURI == "" {
		return nil, nil
	}
	cfg, err := storage.ParseURI(settings.StorageURI)
	if err != nil {
		return nil, err
	}
	cfg.Region = settings.StorageRegion
	cfg.Endpoint = settings.StorageEndpoint
	cfg.PathStyle = settings.StoragePathStyle
	cfg.AccessKey = settings.StorageAccessKey
	cfg.SecretKey = settings.StorageSecretKey
	cfg.CredentialsFile = settings.StorageCredsFile

	backend, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open content store %s: %w", settings.StorageURI, err)
	}
	app.Log.Debug("content store opened",
		zap.String("provider", string(backend.Provider())),
		zap.String("bucket", cfg.Bucket),
		zap.String("prefix", cfg.Prefix),
	)
	return storage.NewContentStore(backend,
		storage.WithPrefix(cfg.Prefix),
		storage.WithGateway(settings.StorageGateway),
	), nil
}

// Services bundles what a command needs to run workflows. Close releases
// the RPC connection and the content store.
type Services struct {
	Network   evm.Network
	Client    *evm.Client
	Content   *storage.ContentStore
	Launchpad *launchpad.Launchpad
}

func (s *Services) Close() {
	if s.Content != nil {
		_ = s.Content.Close()
	}
	if s.Client != nil {
		s.Client.Close()
	}
}

// NewServices dials the configured network and, when withContent is set,
// opens the content store for launches.
func (app *Doxa) NewServices(ctx context.Context, withContent bool) (*Services, error) {
	network, err := app.Network()
	if err != nil {
		return nil, err
	}
	client, err := evm.Dial(ctx, network)
	if err != nil {
		return nil, err
	}
	services := &Services{Network: network, Client: client}

	opts := []launchpad.Option{launchpad.WithObserver(app.Metrics)}
	if withContent {
		content, err := app.OpenContentStore(ctx)
		if err != nil {
			services.Close()
			return nil, err
		}
		if content != nil {
			services.Content = content
			opts = append(opts, launchpad.WithUploader(content))
		}
	}
	services.Launchpad = launchpad.New(network, client, app.Log, opts...)
	return services, nil
}

// NewWalletSession loads the signing key and connects it to network.
func (app *Doxa) NewWalletSession(ctx context.Context, privateKey string, network evm.Network) (*wallet.KeySession, error) {
	key, err := wallet.LoadKey(privateKey)
	if err != nil {
		return nil, err
	}
	session := wallet.NewKeySession(key)
	if err := session.Connect(ctx, network); err != nil {
		return nil, err
	}
	app.Log.Debug("wallet connected",
		zap.String("address", session.Account().Address.Hex()),
		zap.Stringer("network", network),
	)
	return session, nil
}
