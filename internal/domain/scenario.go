package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ScenarioBase is the shared input of the three fixed-return scenarios.
type ScenarioBase struct {
	CurrentAsset        decimal.Decimal `yaml:"current_asset" json:"current_asset"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualYieldPercent  decimal.Decimal `yaml:"annual_yield_percent" json:"annual_yield_percent"`
}

// Validate checks the base inputs.
func (b ScenarioBase) Validate() error {
	return errors.Join(
		RequireNonNegative("current asset", b.CurrentAsset),
		RequireNonNegative("monthly contribution", b.MonthlyContribution),
		RequireNonNegative("annual yield", b.AnnualYieldPercent),
		RequireYears("years", b.Years),
	)
}

// Growth returns the growth parameters of the base at the given return.
func (b ScenarioBase) Growth(annualReturnPercent decimal.Decimal) GrowthParameters {
	return GrowthParameters{
		CurrentAsset:        b.CurrentAsset,
		MonthlyContribution: b.MonthlyContribution,
		AnnualReturnPercent: annualReturnPercent,
		Years:               b.Years,
	}
}

// Scenario is one fixed-return variant of the base simulation.
type Scenario struct {
	Key                 string          `json:"key"`
	Label               string          `json:"label"`
	Description         string          `json:"description"`
	AnnualReturnPercent decimal.Decimal `json:"annual_return_percent"`
	Timeline            []YearSnapshot  `json:"timeline"`
	FinalAsset          decimal.Decimal `json:"final_asset"`
	FinalMonthlyIncome  decimal.Decimal `json:"final_monthly_income"`
	TotalGains          decimal.Decimal `json:"total_gains"`
}

// ScenarioSet holds the conservative, moderate and aggressive scenarios.
type ScenarioSet struct {
	Conservative Scenario        `json:"conservative"`
	Moderate     Scenario        `json:"moderate"`
	Aggressive   Scenario        `json:"aggressive"`
	Insight      ScenarioInsight `json:"insight"`
}

// Ordered returns the scenarios from lowest to highest return.
func (s ScenarioSet) Ordered() []Scenario {
	return []Scenario{s.Conservative, s.Moderate, s.Aggressive}
}

// ScenarioInsight summarises the spread between the scenarios.
type ScenarioInsight struct {
	BestScenario      string          `json:"best_scenario"`
	AssetSpread       decimal.Decimal `json:"asset_spread"`
	IncomeSpread      decimal.Decimal `json:"income_spread"`
	SpreadPercent     decimal.Decimal `json:"spread_percent"`
	KeyConsiderations []string        `json:"key_considerations"`
}
