// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

const (
	// EnvNonInteractive disables prompts when truthy.
	EnvNonInteractive = "DOXA_NON_INTERACTIVE"
	// EnvCI is set by most CI systems.
	EnvCI = "CI"
)

var truthy = []string{"1", "true", "t", "yes", "y", "on"}

func isTruthyEnv(key string) bool {
	return slices.Contains(truthy, strings.ToLower(strings.TrimSpace(os.Getenv(key))))
}

// IsInteractive reports whether prompting is allowed: stdin is a terminal
// and neither DOXA_NON_INTERACTIVE nor CI is truthy.
func IsInteractive() bool {
	if isTruthyEnv(EnvNonInteractive) || isTruthyEnv(EnvCI) {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsNonInteractive is true when flag is set or IsInteractive is false.
func IsNonInteractive(flag bool) bool {
	return flag || !IsInteractive()
}

// NewPrompterForMode returns a NonInteractivePrompter when prompting is not
// allowed and a terminal prompter otherwise.
func NewPrompterForMode(nonInteractiveFlag bool) Prompter {
	if IsNonInteractive(nonInteractiveFlag) {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}
