// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"os"
	"strings"

	"github.com/luxfi/geth/common"
	"github.com/shopspring/decimal"
)

func validateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("string cannot be empty")
	}
	return nil
}

// validateAddress requires the 0x prefix, unlike common.IsHexAddress.
func validateAddress(input string) error {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "0x") || !common.IsHexAddress(input) {
		return errors.New("invalid address")
	}
	return nil
}

func validateExistingFilepath(input string) error {
	if fileInfo, err := os.Stat(input); err == nil && !fileInfo.IsDir() {
		return nil
	}
	return errors.New("file doesn't exist")
}

func validatePositiveDecimal(input string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return errors.New("not a number")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}
