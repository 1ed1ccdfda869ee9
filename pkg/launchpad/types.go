// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"strings"
	"unicode/utf8"

	"github.com/luxfi/geth/common"
	"github.com/shopspring/decimal"
)

const (
	// MaxTickerLength is the longest ticker the factory accepts.
	MaxTickerLength = 5
	// MaxDescriptionLength is counted in characters, not bytes.
	MaxDescriptionLength = 280
	// NoTokenSymbol is the placeholder symbol shown when nothing is selected.
	NoTokenSymbol = "TOKEN"
)

// TokenRef identifies a launchpad token. ExchangeRate is how many whole
// tokens one whole unit of native currency buys, floored to an integer.
type TokenRef struct {
	Address      common.Address
	Symbol       string
	ExchangeRate decimal.Decimal
}

// NoToken is the "nothing selected" value.
var NoToken = TokenRef{
	Symbol:       NoTokenSymbol,
	ExchangeRate: decimal.Zero,
}

// IsNone reports whether t is the "nothing selected" value.
func (t TokenRef) IsNone() bool {
	return t.Address == (common.Address{})
}

// Quote estimates how many tokens amount of native currency buys at the
// token's last known rate. It is display-only.
func (t TokenRef) Quote(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.ExchangeRate)
}

// SwapIntent is a request to buy Token with NativeAmount whole units.
type SwapIntent struct {
	Token        TokenRef
	NativeAmount decimal.Decimal
}

// Image is token artwork supplied by the creator.
type Image struct {
	Name     string
	Bytes    []byte
	MimeType string
}

// LaunchSpec is everything needed to create a token.
type LaunchSpec struct {
	Ticker      string
	Name        string
	Description string
	Image       *Image
}

// NewLaunchSpec builds a LaunchSpec with the ticker normalized and the
// description truncated.
func NewLaunchSpec(ticker, name, description string, image *Image) LaunchSpec {
	return LaunchSpec{
		Ticker:      NormalizeTicker(ticker),
		Name:        name,
		Description: TruncateDescription(description),
		Image:       image,
	}
}

// NormalizeTicker upper-cases s, drops everything outside A-Z and keeps the
// first five letters. "d0x!!" becomes "DX".
func NormalizeTicker(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == MaxTickerLength {
			break
		}
	}
	return b.String()
}

func validTicker(s string) bool {
	return s != "" && NormalizeTicker(s) == s
}

// TruncateDescription keeps the first 280 characters of s.
func TruncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= MaxDescriptionLength {
		return s
	}
	return string([]rune(s)[:MaxDescriptionLength])
}

// Metadata is the JSON document the token's URI points at.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SwapReceipt is the outcome of a confirmed buy.
type SwapReceipt struct {
	TxHash       common.Hash
	Token        TokenRef
	NativeAmount decimal.Decimal
}

// LaunchReceipt is the outcome of a confirmed token creation.
type LaunchReceipt struct {
	TokenAddress common.Address
	TxHash       common.Hash
	Salt         DeploymentSalt
	MetadataURI  string
	ImageURI     string
}
