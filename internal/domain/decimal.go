package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money amounts are held at the currency minor-unit scale, percentages at
// four fractional digits. Rounding is always half-up and always explicit;
// intermediate math keeps full precision.
const (
	MoneyScale   int32 = 2
	PercentScale int32 = 4
)

// ParseError indicates a string that could not be parsed as a decimal.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q as decimal: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DivisionByZeroError indicates a division with a zero divisor.
type DivisionByZeroError struct {
	Dividend decimal.Decimal
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero (dividend %s)", e.Dividend.String())
}

func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Input: s, Err: err}
	}
	return d, nil
}

// Divide returns a/b at full precision. Callers must handle the typed
// division-by-zero error; shopspring panics on Div by zero, which is never
// acceptable inside the calculation pipeline.
func Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, &DivisionByZeroError{Dividend: a}
	}
	return a.Div(b), nil
}

// RoundHalfUp rounds away from zero on the half boundary, e.g. 2.345 -> 2.35
// at scale 2. shopspring's Round implements exactly this.
func RoundHalfUp(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.Round(scale)
}

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, MoneyScale)
}

func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, PercentScale)
}

// ToFixedString renders d rounded half-up to the given scale, padding with
// zeros, e.g. ToFixedString(2.5, 2) == "2.50". This is the only formatting
// used for monetary values in audit payloads.
func ToFixedString(d decimal.Decimal, scale int32) string {
	return d.StringFixed(scale)
}
