// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package servecmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/doxa-fi/doxa-cli/pkg/api"
	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.Doxa

	listenAddr string
)

// doxa serve
func NewCmd(injectedApp *application.Doxa) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the read-only HTTP API",
		Long: `Serve token lookups, quotes and stored content over HTTP.

Routes:
  GET /v1/rate                        flagship token exchange rate
  GET /v1/tokens/{address}            registered token with symbol and rate
  GET /v1/tokens/{address}/quote      ?amount= estimate for a purchase
  GET /v1/content/{cid}               content written by launches
  GET /server/health
  GET /server/metrics                 prometheus metrics

The API never signs transactions.`,
		Args: cobra.NoArgs,
		RunE: serve,
	}
	cmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (default from api.address)")
	return cmd
}

func serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(ctx, true)
	if err != nil {
		return err
	}
	defer services.Close()

	settings := app.Conf.Settings()
	config := api.DefaultServerConfig()
	config.Address = settings.APIAddress
	if listenAddr != "" {
		config.Address = listenAddr
	}
	config.RatePerMinute = settings.APIRateLimit
	config.AllowedOrigins = settings.APIOrigins
	config.RequestTimeout = constants.APIRequestTimeout

	// a nil store must stay a nil interface so the content route reports 503
	var content api.ContentReader
	if services.Content != nil {
		content = services.Content
	}
	server := api.NewServer(config, services.Launchpad, content, app.Metrics, app.Log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	ux.Logger.PrintToUser("Serving %s on http://%s", services.Network, config.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Log.Debug("signal received", zap.String("address", config.Address))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
