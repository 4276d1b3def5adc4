package units

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// ErrUnitMismatch is returned when amounts denominated in different units
// are compared.
var ErrUnitMismatch = errors.New("unit mismatch")

// Amount type represents a quantity of a [Unit] stored as an integer number
// of base units.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown unit.
// Amount is immutable and designed to be safe for concurrent use by multiple
// goroutines.
type Amount struct {
	unit  Unit     // denomination
	units *big.Int // base units, nil means zero; never mutated
}

func newAmount(u Unit, units *big.Int) Amount {
	return Amount{unit: u, units: units}
}

// NewAmount returns an amount equal to the given number of base units.
// The base units are copied, so the caller may modify them afterwards.
// See also method [Amount.BaseUnits].
//
// NewAmount returns an error if:
//   - the unit code is not valid;
//   - units is nil.
func NewAmount(unit string, units *big.Int) (Amount, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing unit: %w", err)
	}
	if units == nil {
		return Amount{}, fmt.Errorf("converting base units: %w: nil base units", ErrInvalidAmount)
	}
	return newAmount(u, new(big.Int).Set(units)), nil
}

// NewAmountFromInt64 returns an amount equal to the given number of base units.
//
// NewAmountFromInt64 returns an error if the unit code is not valid.
func NewAmountFromInt64(unit string, units int64) (Amount, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing unit: %w", err)
	}
	return newAmount(u, big.NewInt(units)), nil
}

// NewAmountFromFloat64 converts a human-readable amount to an amount,
// truncating digits beyond the decimals of the unit towards zero.
// See also function [ScaleUp] and method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the unit code is not valid;
//   - the float is a special value (NaN or Inf).
func NewAmountFromFloat64(unit string, amount float64) (Amount, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing unit: %w", err)
	}
	units, err := u.ScaleUp(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return newAmount(u, units), nil
}

// NewAmountFromDecimal converts a human-readable decimal to an amount,
// truncating digits beyond the decimals of the unit towards zero.
// See also function [ScaleUpDecimal] and method [Amount.Decimal].
func NewAmountFromDecimal(u Unit, amount decimal.Decimal) (Amount, error) {
	units, err := ScaleUpDecimal(amount, u.Decimals())
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	return newAmount(u, units), nil
}

// ParseAmount converts a unit code and a human-readable decimal string
// to an amount, truncating digits beyond the decimals of the unit towards zero.
// See also constructors [ParseUnit] and [ParseScaleUp].
func ParseAmount(unit, amount string) (Amount, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing unit: %w", err)
	}
	units, err := u.ParseScaleUp(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmount(u, units), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(unit, amount string) Amount {
	a, err := ParseAmount(unit, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", unit, amount, err))
	}
	return a
}

// Unit returns the unit of the amount.
func (a Amount) Unit() Unit {
	return a.unit
}

// baseUnits returns the base units without copying them.
func (a Amount) baseUnits() *big.Int {
	if a.units == nil {
		return new(big.Int)
	}
	return a.units
}

// BaseUnits returns a copy of the amount in base units.
// See also constructor [NewAmount].
func (a Amount) BaseUnits() *big.Int {
	return new(big.Int).Set(a.baseUnits())
}

// Human returns the exact human-readable representation of the amount,
// without the unit code, exponent and trailing zeros.
// See also function [ScaleDown] and method [Amount.String].
func (a Amount) Human() string {
	return scaleDown(shopspring.NewFromBigInt(a.baseUnits(), 0), a.Unit().Decimals())
}

// Decimal returns the human-readable amount as a decimal.
// See also function [ScaleDownDecimal] and constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the amount cannot be represented by
// [decimal.Decimal] without rounding.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return ScaleDownDecimal(a.baseUnits(), a.Unit().Decimals())
}

// Float64 returns the nearest binary floating-point number to the
// human-readable amount.
// The ok result reports whether the float represents the amount exactly.
// See also constructor [NewAmountFromFloat64].
func (a Amount) Float64() (f float64, ok bool) {
	d := shopspring.NewFromBigInt(a.baseUnits(), 0).Mul(pow10(-a.Unit().Decimals()))
	return d.Float64()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.baseUnits().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// SameUnit returns true if amounts are denominated in the same unit.
func (a Amount) SameUnit(b Amount) bool {
	return a.Unit() == b.Unit()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different units.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameUnit(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrUnitMismatch)
	}
	return a.baseUnits().Cmp(b.baseUnits()), nil
}

// String method implements the [fmt.Stringer] interface and returns
// the unit code followed by the human-readable amount, for example "ZNN 1.5".
// See also methods [Amount.Human], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Unit().Code() + " " + a.Human()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text must consist of a unit code and a decimal separated by a single space.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	unit, amount, ok := strings.Cut(string(text), " ")
	if !ok {
		return fmt.Errorf("unmarshaling %T: %w: missing unit code in %q", Amount{}, ErrInvalidAmount, text)
	}
	b, err := ParseAmount(unit, amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description               |
//	| ------ | ----------- | ------------------------- |
//	| %s, %v | ZNN 1.5     | Unit and amount           |
//	| %q     | "ZNN 1.5"   | Quoted unit and amount    |
//	| %f     | 1.5         | Amount                    |
//	| %d     | 150000000   | Amount in base units      |
//	| %c     | ZNN         | Unit                      |
//
// The '-' format flag can be used with all verbs.
// The '+' and ' ' format flags can be used with all verbs except %c.
// Precision is ignored, the amount is always printed exactly.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	u := a.Unit()

	// Number
	num := ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		num = a.baseUnits().String()
	default:
		num = a.Human()
	}

	// Arithmetic sign
	if verb != 'c' && verb != 'C' && !a.IsNeg() {
		switch {
		case state.Flag('+'):
			num = "+" + num
		case state.Flag(' '):
			num = " " + num
		}
	}

	// Unit code and delimiter
	text := num
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		text = u.Code()
	default:
		text = u.Code() + " " + num
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		io.WriteString(state, text)
	default:
		io.WriteString(state, "%!"+string(verb)+"(units.Amount="+text+")")
	}
}
