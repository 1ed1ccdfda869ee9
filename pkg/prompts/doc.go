// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prompts asks the user for values that were not given as flags.
//
// Prompts are disabled with --non-interactive, DOXA_NON_INTERACTIVE, CI, or
// when stdin is not a terminal. Commands then fail with a list of the
// missing flags instead of blocking:
//
//	err := prompts.NewValidator("doxa launch").
//		Require(&ticker, prompts.MissingOpt{Flag: "--ticker", Prompt: "Token ticker"}).
//		Require(&name, prompts.MissingOpt{Flag: "--name", Prompt: "Token name"}).
//		Resolve(func(m prompts.MissingOpt) (string, error) {
//			return app.Prompt.CaptureString(m.Prompt)
//		})
//
// Confirmations for value-bearing transactions go through CaptureYesNo and
// are skipped with --yes.
package prompts
