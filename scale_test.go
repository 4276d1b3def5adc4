package units

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	shopspring "github.com/shopspring/decimal"
)

func mustBigInt(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer " + s)
	}
	return b
}

func TestScaleUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount   float64
			decimals int
			want     string
		}{
			// Zeros
			{0, 0, "0"},
			{0, 8, "0"},
			{math.Copysign(0, -1), 8, "0"},

			// Integers
			{1, 0, "1"},
			{1, 8, "100000000"},
			{-1, 8, "-100000000"},
			{1, 18, "1000000000000000000"},

			// Fractions
			{1.5, 8, "150000000"},
			{-1.5, 8, "-150000000"},
			{1.23456789, 8, "123456789"},
			{0.1, 18, "100000000000000000"},
			{0.30000000000000004, 17, "30000000000000004"},
			{123456.789, 2, "12345678"},

			// Exact decimal multiplication
			{0.29, 2, "29"},
			{4.35, 2, "435"},
			{1.13, 2, "113"},

			// Truncation towards zero
			{-1.59, 0, "-1"},
			{1.59, 0, "1"},
			{1.234567891, 8, "123456789"},
			{1.999999999, 8, "199999999"},
			{-1.999999999, 8, "-199999999"},
			{0.000000001, 8, "0"},
			{-0.000000001, 8, "0"},
			{5e-324, MaxDecimals, "0"},

			// Large values
			{1e21, 0, "1000000000000000000000"},
			{1e21, 18, "1" + strings.Repeat("0", 39)},
			{9.223372036854776e18, 0, "9223372036854776000"},
			{math.MaxFloat64, 0, "17976931348623157" + strings.Repeat("0", 292)},
		}
		for _, tt := range tests {
			got, err := ScaleUp(tt.amount, tt.decimals)
			if err != nil {
				t.Errorf("ScaleUp(%v, %v) failed: %v", tt.amount, tt.decimals, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ScaleUp(%v, %v) = %v, want %v", tt.amount, tt.decimals, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			amount   float64
			decimals int
			want     error
		}{
			"nan":            {math.NaN(), 8, ErrInvalidAmount},
			"inf 1":          {math.Inf(1), 8, ErrInvalidAmount},
			"inf 2":          {math.Inf(-1), 8, ErrInvalidAmount},
			"decimals 1":     {1.5, -1, ErrInvalidDecimals},
			"decimals 2":     {1.5, MaxDecimals + 1, ErrInvalidDecimals},
			"decimals 3":     {1.5, math.MinInt, ErrInvalidDecimals},
			"decimals 4":     {1.5, math.MaxInt, ErrInvalidDecimals},
			"decimals first": {math.NaN(), -1, ErrInvalidDecimals},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got, err := ScaleUp(tt.amount, tt.decimals)
				if !errors.Is(err, tt.want) {
					t.Errorf("ScaleUp(%v, %v) = [%v %v], want error %v", tt.amount, tt.decimals, got, err, tt.want)
				}
				if got != nil {
					t.Errorf("ScaleUp(%v, %v) returned partial result %v", tt.amount, tt.decimals, got)
				}
			})
		}
	})
}

func TestMustScaleUp(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustScaleUp(NaN, 8) did not panic")
			}
		}()
		MustScaleUp(math.NaN(), 8)
	})
}

func TestParseScaleUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount   string
			decimals int
			want     string
		}{
			{"0", 0, "0"},
			{"-0", 8, "0"},
			{"1.5", 8, "150000000"},
			{"+12", 2, "1200"},
			{"-1.59", 0, "-1"},
			{"0.000000001", 8, "0"},
			{"-0.000000019", 8, "-1"},
			{"1.83e5", 0, "183000"},
			{"1E-8", 8, "1"},
			{"0.22e-9", 10, "2"},
			{"123.456789012345678901", 18, "123456789012345678901"},
			{"123456789012345678901234567890.123456789012345678", 18, "123456789012345678901234567890123456789012345678"},
			{"-123456789012345678901234567890.9", 0, "-123456789012345678901234567890"},
			{"1e330", 0, "1" + strings.Repeat("0", 330)},
			{"1e-330", MaxDecimals, "0"},
		}
		for _, tt := range tests {
			got, err := ParseScaleUp(tt.amount, tt.decimals)
			if err != nil {
				t.Errorf("ParseScaleUp(%q, %v) failed: %v", tt.amount, tt.decimals, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseScaleUp(%q, %v) = %v, want %v", tt.amount, tt.decimals, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			amount   string
			decimals int
			want     error
		}{
			"empty":      {"", 8, ErrInvalidAmount},
			"letters":    {"abc", 8, ErrInvalidAmount},
			"points":     {"1.2.3", 8, ErrInvalidAmount},
			"comma":      {"1,5", 8, ErrInvalidAmount},
			"space":      {" 1", 8, ErrInvalidAmount},
			"sign":       {"-", 8, ErrInvalidAmount},
			"nan":        {"NaN", 8, ErrInvalidAmount},
			"inf":        {"Inf", 8, ErrInvalidAmount},
			"exponent 1": {"1e", 8, ErrInvalidAmount},
			"exponent 2": {"1e331", 0, ErrInvalidAmount},
			"exponent 3": {"1e-331", 8, ErrInvalidAmount},
			"exponent 4": {"1e999999999", 8, ErrInvalidAmount},
			"decimals 1": {"1.5", -1, ErrInvalidDecimals},
			"decimals 2": {"1.5", MaxDecimals + 1, ErrInvalidDecimals},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseScaleUp(tt.amount, tt.decimals)
				if !errors.Is(err, tt.want) {
					t.Errorf("ParseScaleUp(%q, %v) returned error %v, want %v", tt.amount, tt.decimals, err, tt.want)
				}
			})
		}
	})
}

func TestMustParseScaleUp(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseScaleUp(\"abc\", 8) did not panic")
			}
		}()
		MustParseScaleUp("abc", 8)
	})
}

func TestScaleDown(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units    string
			decimals int
			want     string
		}{
			// Zeros
			{"0", 0, "0"},
			{"0", 8, "0"},
			{"0", MaxDecimals, "0"},

			// Integers
			{"1", 0, "1"},
			{"12345", 0, "12345"},
			{"-10", 0, "-10"},
			{"100000000", 8, "1"},
			{"-100000000", 8, "-1"},
			{"10", 1, "1"},
			{"1000000000000000000000000", 18, "1000000"},

			// Fractions
			{"150000000", 8, "1.5"},
			{"-150000000", 8, "-1.5"},
			{"1", 8, "0.00000001"},
			{"-1", 8, "-0.00000001"},
			{"123456789", 2, "1234567.89"},
			{"123456789", 8, "1.23456789"},
			{"123456789012345678901234567890", 18, "123456789012.34567890123456789"},
			{"1", MaxDecimals, "0." + strings.Repeat("0", MaxDecimals-1) + "1"},
		}
		for _, tt := range tests {
			units := mustBigInt(tt.units)
			got, err := ScaleDown(units, tt.decimals)
			if err != nil {
				t.Errorf("ScaleDown(%v, %v) failed: %v", units, tt.decimals, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ScaleDown(%v, %v) = %q, want %q", units, tt.decimals, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			units    *big.Int
			decimals int
			want     error
		}{
			"nil":        {nil, 8, ErrInvalidAmount},
			"decimals 1": {big.NewInt(1), -1, ErrInvalidDecimals},
			"decimals 2": {big.NewInt(1), MaxDecimals + 1, ErrInvalidDecimals},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ScaleDown(tt.units, tt.decimals)
				if !errors.Is(err, tt.want) {
					t.Errorf("ScaleDown(%v, %v) returned error %v, want %v", tt.units, tt.decimals, err, tt.want)
				}
			})
		}
	})

	t.Run("input", func(t *testing.T) {
		units := big.NewInt(150000000)
		_ = MustScaleDown(units, 8)
		if units.Cmp(big.NewInt(150000000)) != 0 {
			t.Errorf("ScaleDown modified its argument: %v", units)
		}
	})
}

func TestMustScaleDown(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustScaleDown(nil, 8) did not panic")
			}
		}()
		MustScaleDown(nil, 8)
	})
}

func TestScaleDownFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units    float64
			decimals int
			want     string
		}{
			{0, 8, "0"},
			{150000000, 8, "1.5"},
			{100000000, 8, "1"},
			{1, 0, "1"},
			{1.5, 0, "1.5"},
			{-25, 1, "-2.5"},
			{-1.5e-7, 0, "-0.00000015"},
			{1e21, 0, "1000000000000000000000"},
			{1e21, 21, "1"},
		}
		for _, tt := range tests {
			got, err := ScaleDownFloat64(tt.units, tt.decimals)
			if err != nil {
				t.Errorf("ScaleDownFloat64(%v, %v) failed: %v", tt.units, tt.decimals, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ScaleDownFloat64(%v, %v) = %q, want %q", tt.units, tt.decimals, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			units    float64
			decimals int
			want     error
		}{
			"nan":        {math.NaN(), 8, ErrInvalidAmount},
			"inf 1":      {math.Inf(1), 8, ErrInvalidAmount},
			"inf 2":      {math.Inf(-1), 8, ErrInvalidAmount},
			"decimals 1": {1, -1, ErrInvalidDecimals},
			"decimals 2": {1, MaxDecimals + 1, ErrInvalidDecimals},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ScaleDownFloat64(tt.units, tt.decimals)
				if !errors.Is(err, tt.want) {
					t.Errorf("ScaleDownFloat64(%v, %v) returned error %v, want %v", tt.units, tt.decimals, err, tt.want)
				}
			})
		}
	})
}

func TestParseScaleDown(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units    string
			decimals int
			want     string
		}{
			{"0", 8, "0"},
			{"150000000", 8, "1.5"},
			{"1e8", 8, "1"},
			{"0.5", 0, "0.5"},
			{"-25", 1, "-2.5"},
			{"115792089237316195423570985008687907853269984665640564039457584007913129639935", 18, "115792089237316195423570985008687907853269984665640564039457.584007913129639935"},
		}
		for _, tt := range tests {
			got, err := ParseScaleDown(tt.units, tt.decimals)
			if err != nil {
				t.Errorf("ParseScaleDown(%q, %v) failed: %v", tt.units, tt.decimals, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseScaleDown(%q, %v) = %q, want %q", tt.units, tt.decimals, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			units    string
			decimals int
			want     error
		}{
			"empty":      {"", 8, ErrInvalidAmount},
			"letters":    {"x", 8, ErrInvalidAmount},
			"exponent":   {"1e400", 8, ErrInvalidAmount},
			"decimals 1": {"1", -1, ErrInvalidDecimals},
			"decimals 2": {"1", MaxDecimals + 1, ErrInvalidDecimals},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseScaleDown(tt.units, tt.decimals)
				if !errors.Is(err, tt.want) {
					t.Errorf("ParseScaleDown(%q, %v) returned error %v, want %v", tt.units, tt.decimals, err, tt.want)
				}
			})
		}
	})
}

func TestScale_RoundTrip(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			units    string
			decimals int
		}{
			{"0", 0},
			{"150000000", 8},
			{"-150000000", 8},
			{"1", 18},
			{"123456789012345678901234567890", 18},
			{"-123456789012345678901234567890", 30},
			{"1", MaxDecimals},
		}
		for _, tt := range tests {
			units := mustBigInt(tt.units)
			s := MustScaleDown(units, tt.decimals)
			got := MustParseScaleUp(s, tt.decimals)
			if got.Cmp(units) != 0 {
				t.Errorf("ParseScaleUp(ScaleDown(%v, %v)) = %v, want %v", units, tt.decimals, got, units)
			}
		}
	})

	// Round-tripping through float64 holds while the number of significant
	// digits stays within the precision of float64.
	t.Run("float", func(t *testing.T) {
		tests := []struct {
			units    int64
			decimals int
		}{
			{0, 8},
			{150000000, 8},
			{123456789, 8},
			{-987654321, 4},
			{1, 18},
			{999999999999999, 15},
			{29, 2},
			{435, 2},
		}
		for _, tt := range tests {
			units := big.NewInt(tt.units)
			s := MustScaleDown(units, tt.decimals)
			f := shopspring.RequireFromString(s).InexactFloat64()
			got := MustScaleUp(f, tt.decimals)
			if got.Cmp(units) != 0 {
				t.Errorf("ScaleUp(ScaleDown(%v, %v)) = %v, want %v", units, tt.decimals, got, units)
			}
		}
	})
}

func FuzzScaleDown(f *testing.F) {
	f.Add(int64(150000000), uint8(8))
	f.Add(int64(-1), uint8(18))
	f.Add(int64(0), uint8(0))
	f.Add(int64(math.MaxInt64), uint8(255))
	f.Add(int64(math.MinInt64), uint8(3))

	f.Fuzz(
		func(t *testing.T, n int64, d uint8) {
			units, decimals := big.NewInt(n), int(d)
			s, err := ScaleDown(units, decimals)
			if err != nil {
				t.Errorf("ScaleDown(%v, %v) failed: %v", units, decimals, err)
				return
			}
			if strings.ContainsAny(s, "eE") {
				t.Errorf("ScaleDown(%v, %v) = %q, contains exponent", units, decimals, s)
			}
			if strings.Contains(s, ".") && strings.HasSuffix(s, "0") {
				t.Errorf("ScaleDown(%v, %v) = %q, contains trailing zeros", units, decimals, s)
			}
			if strings.HasSuffix(s, ".") {
				t.Errorf("ScaleDown(%v, %v) = %q, contains trailing decimal point", units, decimals, s)
			}
			got, err := ParseScaleUp(s, decimals)
			if err != nil {
				t.Errorf("ParseScaleUp(%q, %v) failed: %v", s, decimals, err)
				return
			}
			if got.Cmp(units) != 0 {
				t.Errorf("ParseScaleUp(ScaleDown(%v, %v)) = %v, want %v", units, decimals, got, units)
			}
		},
	)
}

func FuzzScaleUp(f *testing.F) {
	f.Add(1.5, uint8(8))
	f.Add(-1.59, uint8(0))
	f.Add(0.29, uint8(2))
	f.Add(1e21, uint8(18))
	f.Add(5e-324, uint8(255))

	f.Fuzz(
		func(t *testing.T, x float64, d uint8) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Skip()
				return
			}
			decimals := int(d)
			units, err := ScaleUp(x, decimals)
			if err != nil {
				t.Errorf("ScaleUp(%v, %v) failed: %v", x, decimals, err)
				return
			}
			got := shopspring.NewFromBigInt(units, -int32(decimals))
			want := shopspring.NewFromFloat(x)
			diff := want.Sub(got)
			// The result is truncated towards zero by less than one base unit.
			if diff.Sign() != 0 && diff.Sign() != want.Sign() {
				t.Errorf("ScaleUp(%v, %v) = %v, not truncated towards zero", x, decimals, units)
			}
			if diff.Abs().Cmp(shopspring.New(1, -int32(decimals))) >= 0 {
				t.Errorf("ScaleUp(%v, %v) = %v, truncated by more than one base unit", x, decimals, units)
			}
		},
	)
}
