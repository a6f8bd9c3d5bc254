package calculation

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SimulateYearlyGrowth steps the portfolio month by month and records a snapshot
// at every year boundary from 0 to p.Years inclusive.
func SimulateYearlyGrowth(p domain.GrowthParameters, annualYieldPercent decimal.Decimal) ([]domain.YearSnapshot, error) {
	return SimulateWithYieldGrowth(p, annualYieldPercent, decimal.Zero)
}

// SimulateWithYieldGrowth is SimulateYearlyGrowth with the yield raised by
// yieldGrowthPercent after each simulated year.
func SimulateWithYieldGrowth(p domain.GrowthParameters, annualYieldPercent, yieldGrowthPercent decimal.Decimal) ([]domain.YearSnapshot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := domain.RequireNonNegative("annual yield", annualYieldPercent); err != nil {
		return nil, err
	}
	if err := domain.RequireReturn("yield growth", yieldGrowthPercent); err != nil {
		return nil, err
	}

	monthlyRate := MonthlyRate(p.AnnualReturnPercent)
	stepFactor := one.Add(monthlyRate)
	yieldFactor := one.Add(yieldGrowthPercent.Div(hundred))
	annualContribution := p.MonthlyContribution.Mul(twelve)

	asset := p.CurrentAsset
	yield := annualYieldPercent
	timeline := make([]domain.YearSnapshot, 0, p.Years+1)

	for year := 0; year <= p.Years; year++ {
		timeline = append(timeline, snapshot(year, asset, yield, p.CurrentAsset.Add(annualContribution.Mul(decimal.NewFromInt(int64(year))))))
		if year == p.Years {
			break
		}
		for month := 0; month < 12; month++ {
			asset = asset.Mul(stepFactor).Add(p.MonthlyContribution).Round(internalPlaces)
		}
		if !yieldGrowthPercent.IsZero() {
			yield = yield.Mul(yieldFactor).Round(internalPlaces)
		}
	}

	return timeline, nil
}

func snapshot(year int, asset, yield, invested decimal.Decimal) domain.YearSnapshot {
	roundedAsset := pkgdec.RoundWhole(asset)
	roundedInvested := pkgdec.RoundWhole(invested)
	return domain.YearSnapshot{
		Year:          year,
		Asset:         roundedAsset,
		MonthlyIncome: MonthlyIncome(asset, yield),
		AnnualIncome:  AnnualIncome(asset, yield),
		TotalInvested: roundedInvested,
		Gains:         roundedAsset.Sub(roundedInvested),
	}
}
