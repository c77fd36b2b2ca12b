// Package math converts between human denominated coin amounts and the
// uint64 base units the ledger accounts in.
package math

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places of the coin; one whole coin is
// 10^8 base units.
const Decimals = 8

var baseUnitsPerCoin = decimal.New(1, Decimals)

// ToBaseUnits converts a whole-coin amount to base units. Amounts with more
// than Decimals fractional digits, negative amounts and amounts that do not
// fit in uint64 are rejected.
func ToBaseUnits(amount decimal.Decimal) (uint64, error) {
	if amount.IsNegative() {
		return 0, errors.Errorf("negative amount: %s", amount.String())
	}
	units := amount.Mul(baseUnitsPerCoin)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Errorf("amount %s has more than %d decimal places", amount.String(), Decimals)
	}
	if units.Cmp(decimal.NewFromUint64(math.MaxUint64)) > 0 {
		return 0, errors.Errorf("amount %s does not fit in base units", amount.String())
	}
	return units.BigInt().Uint64(), nil
}

// FromBaseUnits converts base units to the whole-coin representation.
func FromBaseUnits(units uint64) decimal.Decimal {
	return decimal.NewFromUint64(units).Div(baseUnitsPerCoin)
}
