// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package launchcmd

import (
	"context"
	"errors"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/application"
	"github.com/doxa-fi/doxa-cli/pkg/constants"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/prompts"
	"github.com/doxa-fi/doxa-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app *application.Doxa

	ticker      string
	name        string
	description string
	imagePath   string
	skipConfirm bool
)

// doxa launch
func NewCmd(injectedApp *application.Doxa) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Create a new token through the launchpad factory",
		Long: `Create a new launchpad token.

The ticker is upper-cased and reduced to at most 5 letters, the description
is cut at 280 characters. The image (jpeg, png or gif, at most 2 MiB) and the
metadata document are written to the content store configured under
storage.uri before the factory is called.`,
		Example: `  doxa launch --ticker DOX --name Doxa --description "the flagship" --image logo.png
  doxa launch --ticker TEST --name Test --network base-sepolia --yes`,
		Args: cobra.NoArgs,
		RunE: launch,
	}
	cmd.Flags().StringVar(&ticker, "ticker", "", "token ticker, up to 5 letters")
	cmd.Flags().StringVar(&name, "name", "", "token name")
	cmd.Flags().StringVar(&description, "description", "", "token description, up to 280 characters")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to the token image")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func launch(cmd *cobra.Command, _ []string) error {
	err := prompts.NewValidator("doxa launch").
		Require(&ticker, prompts.MissingOpt{Flag: "--ticker", Prompt: "Token ticker", Note: "up to 5 letters"}).
		Require(&name, prompts.MissingOpt{Flag: "--name", Prompt: "Token name"}).
		Resolve(func(m prompts.MissingOpt) (string, error) {
			if m.Flag == "--ticker" {
				return app.Prompt.CaptureValidatedString(m.Prompt, validateTicker)
			}
			return app.Prompt.CaptureString(m.Prompt)
		})
	if err != nil {
		return err
	}
	// optional fields are only asked for when the user will confirm anyway
	if !skipConfirm && prompts.IsInteractive() {
		if err := promptOptional(); err != nil {
			return err
		}
	}

	var image *launchpad.Image
	if imagePath != "" {
		if image, err = launchpad.LoadImage(imagePath); err != nil {
			return err
		}
	}
	spec := launchpad.NewLaunchSpec(ticker, name, description, image)

	rows := [][2]string{
		{"Ticker", spec.Ticker},
		{"Name", spec.Name},
		{"Description", spec.Description},
	}
	if image != nil {
		rows = append(rows, [2]string{"Image", image.Name + " (" + image.MimeType + ")"})
	}
	if err := ux.Logger.PrintKeyValueTable([2]string{"Launch", spec.Ticker}, rows); err != nil {
		return err
	}
	if !skipConfirm {
		ok, err := app.Prompt.CaptureYesNo("Create this token?")
		if err != nil {
			return err
		}
		if !ok {
			ux.Logger.PrintToUser("Aborted")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
	defer cancel()

	services, err := app.NewServices(ctx, true)
	if err != nil {
		return err
	}
	defer services.Close()

	privateKey, _ := cmd.Flags().GetString("private-key")
	session, err := app.NewWalletSession(ctx, privateKey, services.Network)
	if err != nil {
		return err
	}

	tracker := ux.NewStepTracker(ux.Logger, 30*time.Second)
	tracker.Start("Launching " + spec.Ticker)
	stopWatch := tracker.Watch(time.Second)
	receipt, err := services.Launchpad.LaunchToken(ctx, session, spec)
	stopWatch()
	if err != nil {
		tracker.Failed(launchpad.KindLabel(err))
		return err
	}
	tracker.CompleteSuccess()

	return ux.Logger.PrintKeyValueTable([2]string{"Token", spec.Ticker}, [][2]string{
		{"Address", receipt.TokenAddress.Hex()},
		{"Explorer", services.Network.AddressURL(receipt.TokenAddress)},
		{"Transaction", services.Network.TxURL(receipt.TxHash)},
		{"Metadata", receipt.MetadataURI},
		{"Salt", receipt.Salt.Hex()},
	})
}

func validateTicker(s string) error {
	if launchpad.NormalizeTicker(s) == "" {
		return errors.New("ticker needs at least one letter A-Z")
	}
	return nil
}

func promptOptional() error {
	var err error
	if description == "" {
		if description, err = app.Prompt.CaptureStringAllowEmpty("Description (optional)"); err != nil {
			return err
		}
	}
	if imagePath == "" {
		add, err := app.Prompt.CaptureNoYes("Add an image?")
		if err != nil || !add {
			return err
		}
		if imagePath, err = app.Prompt.CaptureExistingFilepath("Image path (jpeg, png or gif)"); err != nil {
			return err
		}
	}
	return nil
}
