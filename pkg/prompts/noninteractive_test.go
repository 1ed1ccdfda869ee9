// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func TestNonInteractivePrompter_FailsWithError(t *testing.T) {
	p := NewNonInteractivePrompter()

	_, err := p.CaptureYesNo("Confirm purchase?")
	require.ErrorIs(t, err, ErrNonInteractive)
	require.Contains(t, err.Error(), "Confirm purchase?")
	require.Contains(t, err.Error(), EnvNonInteractive)

	_, err = p.CaptureString("Token name")
	require.ErrorIs(t, err, ErrNonInteractive)

	_, err = p.CaptureAddress("Token address")
	require.ErrorIs(t, err, ErrNonInteractive)

	_, err = p.CapturePositiveDecimal("Amount")
	require.ErrorIs(t, err, ErrNonInteractive)

	p.FailMessage = "pass --yes"
	_, err = p.CaptureYesNo("Confirm launch?")
	require.Contains(t, err.Error(), "pass --yes")
}

func withPromptInput(t *testing.T, input string) *promptui.Prompt {
	t.Helper()
	seen := &promptui.Prompt{}
	orig := promptUIRunner
	promptUIRunner = func(p promptui.Prompt) (string, error) {
		*seen = p
		if p.Validate != nil {
			if err := p.Validate(input); err != nil {
				return "", err
			}
		}
		return input, nil
	}
	t.Cleanup(func() { promptUIRunner = orig })
	return seen
}

func TestCaptureAddress(t *testing.T) {
	p := NewPrompter()

	withPromptInput(t, "0xAb23b2B48BB6588dC30a5d3185CC747406e55288")
	addr, err := p.CaptureAddress("Token address")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xAb23b2B48BB6588dC30a5d3185CC747406e55288"), addr)

	withPromptInput(t, "Ab23b2B48BB6588dC30a5d3185CC747406e55288")
	_, err = p.CaptureAddress("Token address")
	require.Error(t, err)
}

func TestCapturePositiveDecimal(t *testing.T) {
	p := NewPrompter()

	withPromptInput(t, " 0.01 ")
	amount, err := p.CapturePositiveDecimal("Amount")
	require.NoError(t, err)
	require.Equal(t, "0.01", amount.String())

	for _, bad := range []string{"0", "-1", "abc"} {
		withPromptInput(t, bad)
		_, err := p.CapturePositiveDecimal("Amount")
		require.Error(t, err, bad)
	}
}

func TestCaptureExistingFilepath(t *testing.T) {
	p := NewPrompter()
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	withPromptInput(t, path)
	got, err := p.CaptureExistingFilepath("Image")
	require.NoError(t, err)
	require.Equal(t, path, got)

	withPromptInput(t, filepath.Dir(path))
	_, err = p.CaptureExistingFilepath("Image")
	require.Error(t, err)
}

func TestCaptureYesNo(t *testing.T) {
	orig := promptUISelectRunner
	t.Cleanup(func() { promptUISelectRunner = orig })

	var items interface{}
	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		items = sel.Items
		return 0, Yes, nil
	}
	ok, err := NewPrompter().CaptureYesNo("Confirm?")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{Yes, No}, items)

	promptUISelectRunner = func(promptui.Select) (int, string, error) {
		return 0, "", promptui.ErrInterrupt
	}
	_, err = NewPrompter().CaptureNoYes("Confirm?")
	require.True(t, errors.Is(err, promptui.ErrInterrupt))
}

func TestValidator(t *testing.T) {
	t.Setenv(EnvNonInteractive, "1")

	ticker, name := "", "Doxa"
	v := NewValidator("doxa launch")
	v.Require(&ticker, MissingOpt{Flag: "--ticker", Prompt: "Token ticker"})
	v.Require(&name, MissingOpt{Flag: "--name", Prompt: "Token name"})

	require.True(t, v.HasMissing())
	require.Len(t, v.Missing(), 1)

	err := v.Resolve(func(MissingOpt) (string, error) { return "DOX", nil })
	require.Error(t, err)
	require.Contains(t, err.Error(), "--ticker")
	require.Contains(t, err.Error(), "doxa launch --help")
	require.Empty(t, ticker)
}
