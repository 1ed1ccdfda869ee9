// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"
	"strings"

	"github.com/luxfi/geth/common"
)

// IsValidAddress reports whether s is "0x" followed by exactly 40 hex
// digits. Mixed-case checksums are not verified.
func IsValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// ParseAddress converts a candidate string into an address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !IsValidAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}
