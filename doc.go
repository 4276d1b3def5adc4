/*
Package units converts amounts between their human-readable decimal form
and integer base units, as used by ledgers and blockchains.
For example, 1.5 ZNN with 8 decimals is stored as 150000000 base units.

# Features

  - Exact conversions backed by the arbitrary-precision [shopspring decimal]
    package, with no floating-point rounding errors
  - Base units of any size, represented by [big.Int]
  - Interoperability with the [decimal] package
  - A registry of common units and their decimals
  - Immutable values, ensuring safe usage across multiple goroutines

# Conversions

The package provides a pair of conversions for a given number of decimals:

  - [ScaleUp] converts a human-readable amount to base units. It computes
    amount * 10^decimals and truncates the result towards zero,
    so ScaleUp(-1.59, 0) is -1, not -2.
  - [ScaleDown] converts base units to a human-readable string. It computes
    units / 10^decimals exactly and prints the result without exponent and
    trailing zeros, so ScaleDown(150000000, 8) is "1.5".

Both accept decimals in the range [0, MaxDecimals]. Variants accept decimal
strings ([ParseScaleUp], [ParseScaleDown]), floats ([ScaleDownFloat64]) and
[decimal.Decimal] values ([ScaleUpDecimal], [ScaleDownDecimal]).

# Precision of floats

A float64 holds only 15-17 significant decimal digits.
[ScaleUp] converts the float to the shortest decimal that rounds back to it,
so 0.1 means exactly 0.1, but digits that did not survive the conversion to
float are lost before ScaleUp sees them.
For exact input use [ParseScaleUp].

# Units and Amounts

A [Unit] is an index into a generated table of codes and decimals.
An [Amount] pairs a unit with base units and renders as "ZNN 1.5".
Amounts support conversions and comparison only; this is not a
general-purpose arithmetic package.

# Errors

Errors wrap one of the sentinel values [ErrInvalidAmount], [ErrInvalidDecimals],
[ErrInvalidUnit], [ErrUnitMismatch] or [ErrDecimalOverflow], and can be
matched with [errors.Is].
No partial result is returned when an error occurs.

[shopspring decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package units
