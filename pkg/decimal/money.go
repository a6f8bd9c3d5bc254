// Package decimal holds the money rules shared by the engine: whole KRW units,
// half-away-from-zero rounding and ₩ display.
package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the ISO code used for display. Amounts are held in whole units.
const CurrencyCode = money.KRW

// ErrNotFinite is returned when a float input is NaN or infinite.
var ErrNotFinite = errors.New("value is not a finite number")

var hundred = decimal.NewFromInt(100)

var amountSeparators = strings.NewReplacer(",", "", "_", "", money.GetCurrency(CurrencyCode).Grapheme, "")

// FromFloat converts a float to a decimal, rejecting NaN and infinities.
func FromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, ErrNotFinite
	}
	return decimal.NewFromFloat(value), nil
}

// ParseAmount reads a number typed by a person. Thousands separators, underscores
// and the ₩ sign are ignored, so "₩1,200,000" and "1_200_000" both parse.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountSeparators.Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

// RoundWhole rounds to the nearest whole currency unit, half away from zero.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// PercentOf returns amount × percent / 100.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// Format renders a whole-unit amount as KRW, e.g. ₩1,200,000.
func Format(d decimal.Decimal) string {
	return money.New(RoundWhole(d).IntPart(), CurrencyCode).Display()
}
