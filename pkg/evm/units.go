// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals of the native currency and of every launchpad token.
const Decimals = 18

// ToWei converts a whole-unit amount to its smallest unit, truncating
// anything finer than 18 decimals.
func ToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(Decimals).Truncate(0).BigInt()
}

// FromWei converts a smallest-unit amount to whole units.
func FromWei(amount *big.Int) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -Decimals)
}

// OneUnit is 1e18, one whole unit expressed in wei.
func OneUnit() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
}
