package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidParameter is the single error kind returned for inputs outside an
// operation's domain (negative years, negative balances, returns below -100%).
// Wrapped errors carry the offending field; test with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// MaxYears bounds every horizon so month counts and yearly timelines stay small.
const MaxYears = 100

var minusHundred = decimal.NewFromInt(-100)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// RequireNonNegative rejects negative money amounts.
func RequireNonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid("%s cannot be negative, got %s", name, v.String())
	}
	return nil
}

// RequireYears rejects negative horizons and horizons beyond MaxYears.
func RequireYears(name string, years int) error {
	if years < 0 {
		return invalid("%s must be >= 0, got %d", name, years)
	}
	if years > MaxYears {
		return invalid("%s must be <= %d, got %d", name, MaxYears, years)
	}
	return nil
}

// RequireReturn rejects annual return percentages below -100%.
func RequireReturn(name string, percent decimal.Decimal) error {
	if percent.LessThan(minusHundred) {
		return invalid("%s cannot be below -100%%, got %s", name, percent.String())
	}
	return nil
}

// RequirePositive rejects zero or negative values, used for divisors such as yields.
func RequirePositive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return invalid("%s must be positive, got %s", name, v.String())
	}
	return nil
}

// Invalidf builds an ErrInvalidParameter error with a custom message.
func Invalidf(format string, args ...any) error {
	return invalid(format, args...)
}
