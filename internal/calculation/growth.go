package calculation

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// internalPlaces is the number of fractional digits kept between compounding steps.
const internalPlaces = 16

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage into a monthly fraction (10 -> 0.00833...).
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(twelve).Div(hundred).Round(internalPlaces)
}

// growthFactor returns (1+r)^months. Each step is rounded to internalPlaces so
// long horizons do not grow the mantissa without bound.
func growthFactor(monthlyRate decimal.Decimal, months int) decimal.Decimal {
	base := one.Add(monthlyRate)
	factor := one
	for i := 0; i < months; i++ {
		factor = factor.Mul(base).Round(internalPlaces)
	}
	return factor
}

// annuityFactor returns ((1+r)^n - 1) / r, or n when r is zero.
func annuityFactor(monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return decimal.NewFromInt(int64(months))
	}
	return growthFactor(monthlyRate, months).Sub(one).Div(monthlyRate).Round(internalPlaces)
}

// LumpSumFutureValue returns the unrounded value of amount after months of compounding.
func LumpSumFutureValue(amount, annualReturnPercent decimal.Decimal, months int) decimal.Decimal {
	return amount.Mul(growthFactor(MonthlyRate(annualReturnPercent), months))
}

// AnnuityFutureValue returns the unrounded value of month-end contributions after months.
func AnnuityFutureValue(contribution, annualReturnPercent decimal.Decimal, months int) decimal.Decimal {
	return contribution.Mul(annuityFactor(MonthlyRate(annualReturnPercent), months))
}

// FutureValue returns the value of a lump sum plus monthly contributions at the
// end of the horizon, rounded to a whole currency unit.
func FutureValue(p domain.GrowthParameters) (decimal.Decimal, error) {
	if err := p.Validate(); err != nil {
		return decimal.Zero, err
	}
	return pkgdec.RoundWhole(futureValue(p)), nil
}

func futureValue(p domain.GrowthParameters) decimal.Decimal {
	months := p.Months()
	return LumpSumFutureValue(p.CurrentAsset, p.AnnualReturnPercent, months).
		Add(AnnuityFutureValue(p.MonthlyContribution, p.AnnualReturnPercent, months))
}
