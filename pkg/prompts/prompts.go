// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"strings"

	"github.com/luxfi/geth/common"
	"github.com/manifoldco/promptui"
	"github.com/shopspring/decimal"
)

const (
	Yes = "Yes"
	No  = "No"
)

// swapped out by tests
var (
	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		return prompt.Run()
	}
	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		return sel.Run()
	}
)

// Prompter asks the user for the values a command could not get from flags,
// environment or config.
type Prompter interface {
	CaptureString(promptStr string) (string, error)
	CaptureStringAllowEmpty(promptStr string) (string, error)
	CaptureValidatedString(promptStr string, validator func(string) error) (string, error)
	CaptureAddress(promptStr string) (common.Address, error)
	CaptureExistingFilepath(promptStr string) (string, error)
	CapturePositiveDecimal(promptStr string) (decimal.Decimal, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureNoYes(promptStr string) (bool, error)
}

type realPrompter struct{}

// NewPrompter returns a Prompter that asks on the terminal.
func NewPrompter() Prompter {
	return &realPrompter{}
}

// ask runs a text prompt and trims the answer. validate may be nil.
func ask(label string, validate promptui.ValidateFunc) (string, error) {
	answer, err := promptUIRunner(promptui.Prompt{Label: label, Validate: validate})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// choose offers Yes and No in the given order.
func choose(label string, first, second string) (bool, error) {
	_, decision, err := promptUISelectRunner(promptui.Select{
		Label: label,
		Items: []string{first, second},
	})
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	return ask(promptStr, validateNonEmpty)
}

func (*realPrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return ask(promptStr, nil)
}

func (*realPrompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	return ask(promptStr, validator)
}

func (*realPrompter) CaptureAddress(promptStr string) (common.Address, error) {
	answer, err := ask(promptStr, validateAddress)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(answer), nil
}

func (*realPrompter) CaptureExistingFilepath(promptStr string) (string, error) {
	return ask(promptStr, validateExistingFilepath)
}

// CapturePositiveDecimal asks for an amount greater than zero.
func (*realPrompter) CapturePositiveDecimal(promptStr string) (decimal.Decimal, error) {
	answer, err := ask(promptStr, validatePositiveDecimal)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(answer)
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return choose(promptStr, Yes, No)
}

func (*realPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return choose(promptStr, No, Yes)
}
