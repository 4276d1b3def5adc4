package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	shopspring "github.com/shopspring/decimal"
)

// MaxDecimals is the largest number of decimal places supported by the
// conversions. It is equal to the range of the uint8 decimals field used
// by ERC-20 tokens.
const MaxDecimals = 255

// maxExp is the maximum magnitude of the exponent of a parsed string.
const maxExp = 330

var (
	// ErrInvalidAmount is returned when an amount does not represent
	// a finite decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDecimals is returned when the number of decimal places is
	// negative or greater than [MaxDecimals].
	ErrInvalidDecimals = errors.New("invalid decimals")
)

func checkDecimals(decimals int) error {
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("%w: %v is out of range [0, %v]", ErrInvalidDecimals, decimals, MaxDecimals)
	}
	return nil
}

// pow10 returns an exact decimal equal to 10^exp.
func pow10(exp int) shopspring.Decimal {
	return shopspring.New(1, int32(exp)) //nolint:gosec
}

// newFromFloat64 converts a float to the shortest decimal that rounds back
// to the same float.
func newFromFloat64(f float64) (shopspring.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return shopspring.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidAmount, f)
	}
	return shopspring.NewFromFloat(f), nil
}

// parse converts a string to an exact decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
func parse(s string) (shopspring.Decimal, error) {
	d, err := shopspring.NewFromString(s)
	if err != nil {
		return shopspring.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	if e := d.Exponent(); e < -maxExp || e > maxExp {
		return shopspring.Decimal{}, fmt.Errorf("%w: exponent of %q is out of range [-%v, %v]", ErrInvalidAmount, s, maxExp, maxExp)
	}
	return d, nil
}

// scaleUp computes d * 10^decimals and truncates the product towards zero.
func scaleUp(d shopspring.Decimal, decimals int) *big.Int {
	return d.Mul(pow10(decimals)).Truncate(0).BigInt()
}

// scaleDown computes d / 10^decimals and formats the quotient without
// exponent and trailing zeros.
// Multiplying by 10^-decimals only moves the decimal point, so the result
// is exact regardless of the division precision of the decimal package.
func scaleDown(d shopspring.Decimal, decimals int) string {
	return d.Mul(pow10(-decimals)).String()
}

// ScaleUp converts a human-readable amount to base units, that is,
// it returns amount * 10^decimals truncated towards zero.
// For example, 1.5 with 8 decimals is 150000000 base units, and -1.59 with
// 0 decimals is -1.
//
// The float is first converted to the shortest decimal that rounds back to it,
// so 0.1 is treated as exactly 0.1 and not as its binary approximation.
// Amounts with more than 15-17 significant digits cannot be represented by
// float64 at all; use [ParseScaleUp] for exact decimal input.
// See also function [ScaleDown].
//
// ScaleUp returns an error if:
//   - the float is a special value (NaN or Inf);
//   - decimals is negative or greater than [MaxDecimals].
func ScaleUp(amount float64, decimals int) (*big.Int, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, fmt.Errorf("scaling up %v: %w", amount, err)
	}
	d, err := newFromFloat64(amount)
	if err != nil {
		return nil, fmt.Errorf("scaling up %v: %w", amount, err)
	}
	return scaleUp(d, decimals), nil
}

// MustScaleUp is like [ScaleUp] but panics if the amount cannot be converted.
// It simplifies safe initialization of global variables holding base units.
func MustScaleUp(amount float64, decimals int) *big.Int {
	u, err := ScaleUp(amount, decimals)
	if err != nil {
		panic(fmt.Sprintf("ScaleUp(%v, %v) failed: %v", amount, decimals, err))
	}
	return u
}

// ParseScaleUp is like [ScaleUp] but accepts the human-readable amount
// as a decimal string, which is converted without any loss of precision.
// Fractional digits beyond the number of decimals are truncated.
//
// ParseScaleUp returns an error if:
//   - the string does not represent a valid decimal number;
//   - the exponent of the number is less than -330 or greater than 330;
//   - decimals is negative or greater than [MaxDecimals].
func ParseScaleUp(amount string, decimals int) (*big.Int, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, fmt.Errorf("scaling up %q: %w", amount, err)
	}
	d, err := parse(amount)
	if err != nil {
		return nil, fmt.Errorf("scaling up %q: %w", amount, err)
	}
	return scaleUp(d, decimals), nil
}

// MustParseScaleUp is like [ParseScaleUp] but panics if the string cannot be parsed.
func MustParseScaleUp(amount string, decimals int) *big.Int {
	u, err := ParseScaleUp(amount, decimals)
	if err != nil {
		panic(fmt.Sprintf("ParseScaleUp(%q, %v) failed: %v", amount, decimals, err))
	}
	return u
}

// ScaleDown converts base units to a human-readable amount, that is,
// it returns the exact decimal representation of units / 10^decimals.
// The result never uses exponential notation and has no trailing zeros
// after the decimal point, so 150000000 with 8 decimals is "1.5" and
// 100000000 with 8 decimals is "1".
// See also function [ScaleUp].
//
// ScaleDown returns an error if:
//   - units is nil;
//   - decimals is negative or greater than [MaxDecimals].
func ScaleDown(units *big.Int, decimals int) (string, error) {
	if units == nil {
		return "", fmt.Errorf("scaling down %v: %w: nil base units", units, ErrInvalidAmount)
	}
	if err := checkDecimals(decimals); err != nil {
		return "", fmt.Errorf("scaling down %v: %w", units, err)
	}
	return scaleDown(shopspring.NewFromBigInt(units, 0), decimals), nil
}

// MustScaleDown is like [ScaleDown] but panics if the base units cannot be converted.
func MustScaleDown(units *big.Int, decimals int) string {
	s, err := ScaleDown(units, decimals)
	if err != nil {
		panic(fmt.Sprintf("ScaleDown(%v, %v) failed: %v", units, decimals, err))
	}
	return s
}

// ScaleDownFloat64 is like [ScaleDown] but accepts base units as a float.
// Fractional base units are preserved, so 1.5 with 0 decimals is "1.5".
//
// ScaleDownFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - decimals is negative or greater than [MaxDecimals].
func ScaleDownFloat64(units float64, decimals int) (string, error) {
	if err := checkDecimals(decimals); err != nil {
		return "", fmt.Errorf("scaling down %v: %w", units, err)
	}
	d, err := newFromFloat64(units)
	if err != nil {
		return "", fmt.Errorf("scaling down %v: %w", units, err)
	}
	return scaleDown(d, decimals), nil
}

// ParseScaleDown is like [ScaleDown] but accepts base units as a decimal string,
// for example, a balance returned by a JSON-RPC node.
//
// ParseScaleDown returns an error if:
//   - the string does not represent a valid decimal number;
//   - the exponent of the number is less than -330 or greater than 330;
//   - decimals is negative or greater than [MaxDecimals].
func ParseScaleDown(units string, decimals int) (string, error) {
	if err := checkDecimals(decimals); err != nil {
		return "", fmt.Errorf("scaling down %q: %w", units, err)
	}
	d, err := parse(units)
	if err != nil {
		return "", fmt.Errorf("scaling down %q: %w", units, err)
	}
	return scaleDown(d, decimals), nil
}
