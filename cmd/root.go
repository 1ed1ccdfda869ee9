// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/doxa-fi/doxa-cli/cmd/buycmd"
	"github.com/doxa-fi/doxa-cli/cmd/configcmd"
	"github.com/doxa-fi/doxa-cli/cmd/launchcmd"
	"github.com/doxa-fi/doxa-cli/cmd/servecmd"
	"github.com/doxa-fi/doxa-cli/cmd/tokencmd"
	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/doxa-fi/doxa-cli/pkg/config"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/prompts"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	app        *application.Doxa
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "doxa",
		Long: `Doxa CLI - launch and buy bonding-curve tokens on Base.

COMMAND OVERVIEW:

  token     Look up launchpad tokens and their exchange rate
  buy       Buy a launchpad token with native currency
  launch    Create a new token through the launchpad factory
  serve     Run the read-only HTTP API
  config    CLI configuration

QUICK START:

  # Exchange rate of the flagship token
  doxa token rate

  # Inspect a token
  doxa token search 0xAb23b2B48BB6588dC30a5d3185CC747406e55288

  # Buy 0.01 ETH worth of a token
  DOXA_PRIVATE_KEY=... doxa buy --token 0xAb23... --amount 0.01

  # Launch a token (requires storage.uri in the config)
  doxa launch --ticker DOX --name Doxa --image logo.png

For detailed command help, use: doxa <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.doxa/config.json)")
	flags.StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	flags.BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	flags.Bool("verbose", false, "Show verbose output (info level logs)")
	flags.Bool("debug", false, "Show debug output (debug level logs)")
	flags.Bool("quiet", false, "Show only errors (quiet mode)")
	flags.String(constants.ConfigNetworkKey, constants.DefaultNetwork, "network to use (base, base-sepolia)")
	flags.String(constants.ConfigRPCKey, "", "RPC endpoint overriding the network default")
	flags.String("private-key", "", "hex private key used to sign transactions (or DOXA_PRIVATE_KEY / DOXA_MNEMONIC)")

	rootCmd.AddCommand(tokencmd.NewCmd(app))
	rootCmd.AddCommand(buycmd.NewCmd(app))
	rootCmd.AddCommand(launchcmd.NewCmd(app))
	rootCmd.AddCommand(servecmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	displayLevel := logLevel
	switch {
	case cmd.Flags().Changed("debug"):
		displayLevel = "DEBUG"
	case cmd.Flags().Changed("verbose"):
		displayLevel = "INFO"
	case cmd.Flags().Changed("quiet"):
		displayLevel = "ERROR"
	}
	if lvl, err := luxlog.ToLevel(displayLevel); err == nil {
		logFactory.SetLogLevel(constants.LoggerName, lvl)
		logFactory.SetDisplayLevel(constants.LoggerName, lvl)
	}

	// propagate the flag so IsInteractive sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	initConfig(cmd, log)
	app.Setup(baseDir, log, config.New(viper.GetViper()), prompts.NewPrompterForMode(nonInteractive))
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, constants.UserOnlyPerms); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel, _ = luxlog.ToLevel("INFO")
	// quiet on the terminal unless flags say otherwise
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// caller tracking should show the real source, not the ux wrapper
	luxlog.RegisterInternalPackages("github.com/doxa-fi/doxa-cli/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.LoggerName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// user output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(cmd *cobra.Command, log luxlog.Logger) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// DOXA_STORAGE_URI -> storage.uri, DOXA_API_RATE_LIMIT -> api.rate-limit
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for _, key := range []string{constants.ConfigNetworkKey, constants.ConfigRPCKey} {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			_ = viper.BindPFlag(key, f)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", zap.String("config-file", viper.ConfigFileUsed()))
	}
	// no config file is normal, most users run on defaults
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
