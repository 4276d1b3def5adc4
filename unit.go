package units

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a denomination, such as a cryptocurrency or a token,
// together with the number of decimal places between its human-readable
// amount and its base units (e.g. 8 for Zenon, where 1 ZNN is 10^8 base units).
// The zero value is [XXX], which indicates an unknown unit with 0 decimals.
//
// Unit is implemented as an integer index into in-memory arrays, which makes
// it safe for concurrent use by multiple goroutines.
//
// When persisting a unit, use the code returned by the [Unit.Code] method
// rather than the integer index, as the mapping between index and a
// particular unit may change in future versions.
type Unit uint8

// ErrInvalidUnit is returned when a string is not a code of a known unit.
var ErrInvalidUnit = errors.New("invalid unit")

// ParseUnit converts a string to a unit.
// The input string must be a unit code in upper or lower case:
//
//	ZNN
//	znn
//
// ParseUnit returns an error if the string is not a code of a known unit.
func ParseUnit(code string) (Unit, error) {
	u, ok := unitLookup[code]
	if !ok {
		return XXX, fmt.Errorf("%w: %q", ErrInvalidUnit, code)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(code string) Unit {
	u, err := ParseUnit(code)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", code, err))
	}
	return u
}

// Code returns the ticker symbol of the unit, for example "ZNN".
// This method always returns a valid code.
func (u Unit) Code() string {
	return codeLookup[u]
}

// Name returns the human-readable name of the unit, for example "Zenon".
func (u Unit) Name() string {
	return nameLookup[u]
}

// Decimals returns the number of decimal places between the human-readable
// amount and the base units.
func (u Unit) Decimals() int {
	return decimalsLookup[u]
}

// ScaleUp converts a human-readable amount to base units of the unit.
// See also function [ScaleUp].
func (u Unit) ScaleUp(amount float64) (*big.Int, error) {
	return ScaleUp(amount, u.Decimals())
}

// ParseScaleUp converts a human-readable decimal string to base units of the unit.
// See also function [ParseScaleUp].
func (u Unit) ParseScaleUp(amount string) (*big.Int, error) {
	return ParseScaleUp(amount, u.Decimals())
}

// ScaleDown converts base units of the unit to a human-readable amount.
// See also function [ScaleDown].
func (u Unit) ScaleDown(units *big.Int) (string, error) {
	return ScaleDown(units, u.Decimals())
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the unit.
// See also method [Unit.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	return append(text, u.Code()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the code of the unit.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the unit unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("unmarshaling %T: %w: %s is not a JSON string", XXX, ErrInvalidUnit, data)
	}
	return u.UnmarshalText(data[1 : len(data)-1])
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	code := u.Code()
	data := make([]byte, 0, len(code)+2)
	data = append(data, '"')
	data = append(data, code...)
	data = append(data, '"')
	return data, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return u.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description  |
//	| ---------- | ------- | ------------ |
//	| %c, %s, %v | ZNN     | Unit         |
//	| %q         | "ZNN"   | Quoted unit  |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	text := u.Code()

	// Quotes
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		io.WriteString(state, text)
	default:
		io.WriteString(state, "%!"+string(verb)+"(units.Unit="+text+")")
	}
}

// pad adds spaces to the text according to the width and the '-' flag of the state.
func pad(state fmt.State, text string) string {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		return text
	}
	spaces := strings.Repeat(" ", w-len(text))
	if state.Flag('-') {
		return text + spaces
	}
	return spaces + text
}
