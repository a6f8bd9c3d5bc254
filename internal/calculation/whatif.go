package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultSensitivityRates are the annual returns swept when none are configured.
var DefaultSensitivityRates = []decimal.Decimal{
	decimal.NewFromInt(3), decimal.NewFromInt(5), decimal.NewFromInt(7), decimal.NewFromInt(10),
	decimal.NewFromInt(12), decimal.NewFromInt(15), decimal.NewFromInt(18), decimal.NewFromInt(20),
}

// AnalyzeWhatIf compares the future value of base with the future value after changes.
func AnalyzeWhatIf(base domain.GrowthParameters, changes domain.WhatIfChanges) (domain.WhatIfResult, error) {
	baseResult, err := FutureValue(base)
	if err != nil {
		return domain.WhatIfResult{}, fmt.Errorf("base: %w", err)
	}
	changedResult, err := FutureValue(changes.Apply(base))
	if err != nil {
		return domain.WhatIfResult{}, fmt.Errorf("changed: %w", err)
	}

	difference := changedResult.Sub(baseResult)
	result := domain.WhatIfResult{
		BaseResult:    baseResult,
		ChangedResult: changedResult,
		Difference:    difference,
		Description:   describeWhatIf(changes, difference),
	}
	if !baseResult.IsZero() {
		pct := difference.Div(baseResult).Mul(hundred).Round(1)
		result.PercentageChange = &pct
	}
	return result, nil
}

func describeWhatIf(changes domain.WhatIfChanges, difference decimal.Decimal) string {
	var parts []string
	if changes.CurrentAsset != nil {
		parts = append(parts, "current asset set to "+pkgdec.Format(*changes.CurrentAsset))
	}
	if changes.MonthlyContribution != nil {
		parts = append(parts, "monthly contribution set to "+pkgdec.Format(*changes.MonthlyContribution))
	}
	if changes.AnnualReturnPercent != nil {
		parts = append(parts, fmt.Sprintf("annual return set to %s%%", changes.AnnualReturnPercent.String()))
	}
	if changes.Years != nil {
		parts = append(parts, fmt.Sprintf("horizon set to %d years", *changes.Years))
	}
	if len(parts) == 0 {
		return "no changes"
	}

	direction := "increases"
	amount := difference
	if difference.IsNegative() {
		direction = "decreases"
		amount = difference.Neg()
	}
	if difference.IsZero() {
		return strings.Join(parts, ", ") + " leaves the result unchanged"
	}
	return fmt.Sprintf("%s %s the result by %s", strings.Join(parts, ", "), direction, pkgdec.Format(amount))
}

// AnalyzeSensitivity projects the base parameters at each annual return in rates.
// An empty rates slice uses DefaultSensitivityRates.
func AnalyzeSensitivity(base domain.GrowthParameters, annualYieldPercent decimal.Decimal, rates []decimal.Decimal) ([]domain.SensitivityPoint, error) {
	if len(rates) == 0 {
		rates = DefaultSensitivityRates
	}
	if err := domain.RequireNonNegative("annual yield", annualYieldPercent); err != nil {
		return nil, err
	}

	points := make([]domain.SensitivityPoint, 0, len(rates))
	for _, rate := range rates {
		p := base
		p.AnnualReturnPercent = rate
		final, err := FutureValue(p)
		if err != nil {
			return nil, fmt.Errorf("rate %s%%: %w", rate.String(), err)
		}
		points = append(points, domain.SensitivityPoint{
			AnnualReturnPercent: rate,
			FinalAsset:          final,
			MonthlyIncome:       MonthlyIncome(final, annualYieldPercent),
		})
	}
	return points, nil
}
