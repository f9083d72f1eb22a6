package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeUnitPrice = errors.New("unit price must not be negative")
)

// CostPerUnit derives the canonical per-atomic-unit cost of a line item.
//
// UnitPrice is the price of the priced unit (e.g. a case); units is the pack
// size. The division is done in decimal space and rounded half-up to two
// fractional digits so repeated reconciliations never drift. A non-positive or
// unspecified pack size is treated as 1, in which case the result is just the
// unit price rounded to cents.
func CostPerUnit(unitPrice float64, units int) (float64, error) {
	if unitPrice < 0 {
		return 0, ErrNegativeUnitPrice
	}
	if units <= 0 {
		units = 1
	}
	cost := decimal.NewFromFloat(unitPrice).
		Div(decimal.NewFromInt(int64(units))).
		Round(2)
	return cost.InexactFloat64(), nil
}

// RoundMoney rounds a monetary amount half-up to two fractional digits.
// Every monetary comparison in the engine rounds through here first.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CentsDiffer reports whether two amounts round to different cents.
func CentsDiffer(a, b float64) bool {
	return !decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}

// WithinEpsilon reports whether a and b agree within eps, after rounding both
// to cents. Used for the invoice totals invariant (total ~= subtotal + tax).
func WithinEpsilon(a, b, eps float64) bool {
	diff := decimal.NewFromFloat(a).Round(2).Sub(decimal.NewFromFloat(b).Round(2)).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(eps))
}
