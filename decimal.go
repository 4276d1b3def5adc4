package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// ErrDecimalOverflow is returned when base units cannot be represented
// by [decimal.Decimal] without rounding.
var ErrDecimalOverflow = errors.New("decimal overflow")

// fromDecimal converts a decimal to its exact arbitrary-precision equivalent.
func fromDecimal(d decimal.Decimal) shopspring.Decimal {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return shopspring.NewFromBigInt(coef, -int32(d.Scale())) //nolint:gosec
}

// ScaleUpDecimal is like [ScaleUp] but accepts the human-readable amount
// as a [decimal.Decimal], which is converted without any loss of precision.
// Fractional digits beyond the number of decimals are truncated.
//
// ScaleUpDecimal returns an error if decimals is negative or greater
// than [MaxDecimals].
func ScaleUpDecimal(amount decimal.Decimal, decimals int) (*big.Int, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, fmt.Errorf("scaling up %v: %w", amount, err)
	}
	return scaleUp(fromDecimal(amount), decimals), nil
}

// ScaleDownDecimal is like [ScaleDown] but returns the human-readable amount
// as a [decimal.Decimal].
// The scale of the result is the minimal scale that represents the amount exactly.
//
// ScaleDownDecimal returns an error if:
//   - units is nil;
//   - decimals is negative or greater than [MaxDecimals];
//   - the result has more than [decimal.MaxPrec] significant digits or more
//     than [decimal.MaxScale] digits after the decimal point.
//     For example, 1 wei with 18 decimals is 0.000000000000000001 and fits,
//     but 123456789012345678901 wei is 123.456789012345678901 and has
//     21 significant digits.
func ScaleDownDecimal(units *big.Int, decimals int) (decimal.Decimal, error) {
	s, err := ScaleDown(units, decimals)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("scaling down %v: %w: %v", units, ErrDecimalOverflow, err)
	}
	// Parse rounds silently when the number has too many digits.
	if d.String() != s {
		return decimal.Decimal{}, fmt.Errorf("scaling down %v: %w: %v would be rounded to %v", units, ErrDecimalOverflow, s, d)
	}
	return d, nil
}
