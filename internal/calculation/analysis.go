package calculation

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// generateScenarioInsight compares the outcome of the scenarios
func generateScenarioInsight(set domain.ScenarioSet) domain.ScenarioInsight {
	var best string
	var bestAsset decimal.Decimal

	for i, scenario := range set.Ordered() {
		if i == 0 || scenario.FinalAsset.GreaterThan(bestAsset) {
			bestAsset = scenario.FinalAsset
			best = scenario.Key
		}
	}

	assetSpread := set.Aggressive.FinalAsset.Sub(set.Conservative.FinalAsset)
	incomeSpread := set.Aggressive.FinalMonthlyIncome.Sub(set.Conservative.FinalMonthlyIncome)

	spreadPercent := decimal.Zero
	if set.Conservative.FinalAsset.IsPositive() {
		spreadPercent = assetSpread.Div(set.Conservative.FinalAsset).Mul(hundred).Round(1)
	}

	return domain.ScenarioInsight{
		BestScenario:  best,
		AssetSpread:   assetSpread,
		IncomeSpread:  incomeSpread,
		SpreadPercent: spreadPercent,
		KeyConsiderations: []string{
			"Higher returns come with larger drawdowns along the way",
			"Plan spending on the conservative outcome",
			"Review the contribution level before chasing return",
		},
	}
}
