package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

type scenarioDefinition struct {
	key         string
	label       string
	description string
	rate        decimal.Decimal
}

// The three fixed-return assumptions, lowest first.
var scenarioDefinitions = [3]scenarioDefinition{
	{key: "conservative", label: "Conservative", description: "Stable, lower return", rate: decimal.NewFromInt(5)},
	{key: "moderate", label: "Moderate", description: "Balanced return", rate: decimal.NewFromInt(10)},
	{key: "aggressive", label: "Aggressive", description: "Higher return, higher volatility", rate: decimal.NewFromInt(15)},
}

// CompareScenarios runs the yearly simulation once per fixed-return assumption.
// All three timelines share the base inputs, so they have identical length and year indices.
func CompareScenarios(base domain.ScenarioBase) (domain.ScenarioSet, error) {
	if err := base.Validate(); err != nil {
		return domain.ScenarioSet{}, err
	}

	var scenarios [3]domain.Scenario
	for i, def := range scenarioDefinitions {
		timeline, err := SimulateYearlyGrowth(base.Growth(def.rate), base.AnnualYieldPercent)
		if err != nil {
			return domain.ScenarioSet{}, fmt.Errorf("%s scenario: %w", def.key, err)
		}
		final := timeline[len(timeline)-1]
		scenarios[i] = domain.Scenario{
			Key:                 def.key,
			Label:               def.label,
			Description:         def.description,
			AnnualReturnPercent: def.rate,
			Timeline:            timeline,
			FinalAsset:          final.Asset,
			FinalMonthlyIncome:  final.MonthlyIncome,
			TotalGains:          final.Gains,
		}
	}

	set := domain.ScenarioSet{
		Conservative: scenarios[0],
		Moderate:     scenarios[1],
		Aggressive:   scenarios[2],
	}
	set.Insight = generateScenarioInsight(set)
	return set, nil
}
