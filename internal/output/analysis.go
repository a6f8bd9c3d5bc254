package output

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalAsset       decimal.Decimal
	MonthlyIncome    decimal.Decimal
	AssetChange      decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final asset and compares
// it with the final asset of the plan's own projection.
func AnalyzeScenarios(report *domain.PlanReport) Recommendation {
	scenarios := report.Scenarios.Ordered()
	best := -1
	for i, sc := range scenarios {
		if sc.Key == "" {
			continue
		}
		if best < 0 || sc.FinalAsset.GreaterThan(scenarios[best].FinalAsset) {
			best = i
		}
	}
	if best < 0 {
		return Recommendation{}
	}

	var baseline decimal.Decimal
	if final, ok := report.FinalSnapshot(); ok {
		baseline = final.Asset
	}
	sc := scenarios[best]
	delta := sc.FinalAsset.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioName:     sc.Label,
		FinalAsset:       sc.FinalAsset,
		MonthlyIncome:    sc.FinalMonthlyIncome,
		AssetChange:      delta,
		PercentageChange: pct,
	}
}
