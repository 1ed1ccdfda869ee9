// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/shopspring/decimal"
)

var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter refuses every prompt with ErrNonInteractive. It is
// used in scripts and CI, where a missing flag must fail the command.
type NonInteractivePrompter struct {
	// FailMessage replaces the default hint appended to the error.
	FailMessage string
}

var _ Prompter = (*NonInteractivePrompter)(nil)

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (p *NonInteractivePrompter) refuse(question string) error {
	hint := p.FailMessage
	if hint == "" {
		hint = "pass the value as a flag, or unset " + EnvNonInteractive
	}
	return fmt.Errorf("%w: %q (%s)", ErrNonInteractive, question, hint)
}

func (p *NonInteractivePrompter) CaptureString(q string) (string, error) {
	return "", p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureStringAllowEmpty(q string) (string, error) {
	return "", p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureValidatedString(q string, _ func(string) error) (string, error) {
	return "", p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureAddress(q string) (common.Address, error) {
	return common.Address{}, p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureExistingFilepath(q string) (string, error) {
	return "", p.refuse(q)
}

func (p *NonInteractivePrompter) CapturePositiveDecimal(q string) (decimal.Decimal, error) {
	return decimal.Zero, p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureYesNo(q string) (bool, error) {
	return false, p.refuse(q)
}

func (p *NonInteractivePrompter) CaptureNoYes(q string) (bool, error) {
	return false, p.refuse(q)
}
