// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// MissingOpt is a required option that has no value yet.
type MissingOpt struct {
	Flag   string // "--ticker"
	Env    string // environment alternative, if any
	Prompt string // question asked on a terminal
	Note   string
}

func (m MissingOpt) String() string {
	s := m.Flag
	if m.Env != "" {
		s += " (or " + m.Env + ")"
	}
	if m.Note != "" {
		s += " - " + m.Note
	}
	return s
}

// MissingError lists every missing option of cmd in one error.
func MissingError(cmd string, missing []MissingOpt) error {
	if len(missing) == 0 {
		return nil
	}
	lines := make([]string, 0, len(missing))
	for _, m := range missing {
		lines = append(lines, "  "+m.String())
	}
	return fmt.Errorf("missing required options:\n%s\n\nrun '%s --help' to see all options",
		strings.Join(lines, "\n"), cmd)
}

// Validator collects required options of a command and either prompts for
// the missing ones or reports them all at once.
type Validator struct {
	cmd     string
	missing []MissingOpt
	targets []*string
}

func NewValidator(cmd string) *Validator {
	return &Validator{cmd: cmd}
}

// Require records opt as missing when *target is empty.
func (v *Validator) Require(target *string, opt MissingOpt) *Validator {
	if strings.TrimSpace(*target) == "" {
		v.missing = append(v.missing, opt)
		v.targets = append(v.targets, target)
	}
	return v
}

func (v *Validator) Missing() []MissingOpt {
	return v.missing
}

func (v *Validator) HasMissing() bool {
	return len(v.missing) > 0
}

// Resolve fills the missing options through ask on a terminal. Otherwise it
// returns MissingError without calling ask.
func (v *Validator) Resolve(ask func(MissingOpt) (string, error)) error {
	if !v.HasMissing() {
		return nil
	}
	if !IsInteractive() {
		return MissingError(v.cmd, v.missing)
	}
	for i, m := range v.missing {
		val, err := ask(m)
		if err != nil {
			return errors.Join(fmt.Errorf("failed to get %s", m.Flag), err)
		}
		*v.targets[i] = val
	}
	return nil
}
