package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
)

// GrowthParameters describes a lump sum plus fixed monthly contributions under
// monthly compounding at a fixed annual return.
type GrowthParameters struct {
	CurrentAsset        decimal.Decimal `yaml:"current_asset" json:"current_asset"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"` // may be negative
	Years               int             `yaml:"years" json:"years"`
}

// NewGrowthParameters builds validated parameters from float inputs, rejecting NaN and infinities.
func NewGrowthParameters(currentAsset, monthlyContribution, annualReturnPercent float64, years int) (GrowthParameters, error) {
	values := make([]decimal.Decimal, 3)
	for i, f := range []float64{currentAsset, monthlyContribution, annualReturnPercent} {
		d, err := pkgdec.FromFloat(f)
		if err != nil {
			return GrowthParameters{}, fmt.Errorf("%w: %s", ErrInvalidParameter, err)
		}
		values[i] = d
	}
	p := GrowthParameters{
		CurrentAsset:        values[0],
		MonthlyContribution: values[1],
		AnnualReturnPercent: values[2],
		Years:               years,
	}
	return p, p.Validate()
}

// Validate checks the invariants of the growth inputs.
func (p GrowthParameters) Validate() error {
	return errors.Join(
		RequireNonNegative("current asset", p.CurrentAsset),
		RequireNonNegative("monthly contribution", p.MonthlyContribution),
		RequireReturn("annual return", p.AnnualReturnPercent),
		RequireYears("years", p.Years),
	)
}

// Months returns the compounding horizon in months.
func (p GrowthParameters) Months() int { return p.Years * 12 }

// YearSnapshot is one point of a yearly simulation. Gains = Asset - TotalInvested.
type YearSnapshot struct {
	Year          int             `json:"year"`
	Asset         decimal.Decimal `json:"asset"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	AnnualIncome  decimal.Decimal `json:"annual_income"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	Gains         decimal.Decimal `json:"gains"`
}
