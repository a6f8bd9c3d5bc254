package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is a complete financial plan as read from a plan file.
type Configuration struct {
	Profile     Profile           `yaml:"profile" json:"profile"`
	Portfolio   Portfolio         `yaml:"portfolio" json:"portfolio"`
	Pension     PensionAccounts   `yaml:"pension" json:"pension"`
	TaxRules    *DeductionRules   `yaml:"tax_rules,omitempty" json:"tax_rules,omitempty"`
	Dividends   []DividendPayment `yaml:"dividends,omitempty" json:"dividends,omitempty"`
	Goals       []Goal            `yaml:"goals,omitempty" json:"goals,omitempty"`
	Assumptions Assumptions       `yaml:"assumptions" json:"assumptions"`
}

// Profile holds the personal details used by the pension and goal calculators.
type Profile struct {
	Name          string          `yaml:"name" json:"name"`
	Age           int             `yaml:"age" json:"age"`
	RetirementAge int             `yaml:"retirement_age" json:"retirement_age"`
	RiskProfile   RiskProfile     `yaml:"risk_profile" json:"risk_profile"`
	MonthlyIncome decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	AnnualIncome  decimal.Decimal `yaml:"annual_income" json:"annual_income"`
}

// YearsToRetirement returns the accumulation horizon, never negative.
func (p Profile) YearsToRetirement() int {
	if p.RetirementAge <= p.Age {
		return 0
	}
	return p.RetirementAge - p.Age
}

// Portfolio is the investment portfolio being projected.
type Portfolio struct {
	CurrentAsset          decimal.Decimal `yaml:"current_asset" json:"current_asset"`
	MonthlyContribution   decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	ExpectedReturnPercent decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent"`
	DividendYieldPercent  decimal.Decimal `yaml:"dividend_yield_percent" json:"dividend_yield_percent"`
	YieldGrowthPercent    decimal.Decimal `yaml:"yield_growth_percent" json:"yield_growth_percent"`
	MonthlyDividend       decimal.Decimal `yaml:"monthly_dividend" json:"monthly_dividend"`
}

// Growth returns the growth parameters of the portfolio over years.
func (p Portfolio) Growth(years int) GrowthParameters {
	return GrowthParameters{
		CurrentAsset:        p.CurrentAsset,
		MonthlyContribution: p.MonthlyContribution,
		AnnualReturnPercent: p.ExpectedReturnPercent,
		Years:               years,
	}
}

// Assumptions control the projection horizon and the optional report sections.
type Assumptions struct {
	ProjectionYears       int               `yaml:"projection_years" json:"projection_years"`
	SensitivityRates      []decimal.Decimal `yaml:"sensitivity_rates,omitempty" json:"sensitivity_rates,omitempty"`
	MonthlyGoalBudget     decimal.Decimal   `yaml:"monthly_goal_budget" json:"monthly_goal_budget"`
	LastYearDividendTotal decimal.Decimal   `yaml:"last_year_dividend_total" json:"last_year_dividend_total"`
	PensionTargetReturn   decimal.Decimal   `yaml:"pension_target_return" json:"pension_target_return"`
}

// Rules returns the configured deduction rules or the defaults.
func (c *Configuration) Rules() DeductionRules {
	if c.TaxRules != nil {
		return *c.TaxRules
	}
	return DefaultDeductionRules()
}

// GenerateAssumptions lists the assumptions behind a report in plain language.
func (c *Configuration) GenerateAssumptions() []string {
	rules := c.Rules()
	return []string{
		fmt.Sprintf("Expected portfolio return: %s%% annually, compounded monthly", c.Portfolio.ExpectedReturnPercent.StringFixed(1)),
		fmt.Sprintf("Dividend yield: %s%% annually (growing %s%% per year)", c.Portfolio.DividendYieldPercent.StringFixed(1), c.Portfolio.YieldGrowthPercent.StringFixed(1)),
		"Scenario returns: conservative 5%, moderate 10%, aggressive 15%",
		"Contributions are made at each month end",
		fmt.Sprintf("Dividend withholding tax: %s%%", DividendTaxRatePercent.StringFixed(1)),
		fmt.Sprintf("Pension tax credit: %s%% up to %s annual income, %s%% above",
			rules.LowIncomeRatePercent.StringFixed(0), rules.IncomeThreshold.StringFixed(0), rules.HighIncomeRatePercent.StringFixed(0)),
		"Amounts are rounded to whole currency units only when reported",
	}
}

// GoalsReport is the goal section of a plan report.
type GoalsReport struct {
	Allocation *AllocationPlan `json:"allocation,omitempty"`
	Progress   []GoalProgress  `json:"progress,omitempty"`
}

// PlanReport is everything computed for one plan.
type PlanReport struct {
	PlanName    string             `json:"plan_name"`
	GeneratedAt time.Time          `json:"generated_at"`
	Years       int                `json:"years"`
	Projection  []YearSnapshot     `json:"projection"`
	Scenarios   ScenarioSet        `json:"scenarios"`
	Sensitivity []SensitivityPoint `json:"sensitivity"`
	Goals       GoalsReport        `json:"goals"`
	Pension     *PensionSummary    `json:"pension,omitempty"`
	Deduction   *DeductionResult   `json:"deduction,omitempty"`
	Dividends   *DividendReport    `json:"dividends,omitempty"`
	Assumptions []string           `json:"assumptions"`
}

// FinalSnapshot returns the last point of the base projection.
func (r *PlanReport) FinalSnapshot() (YearSnapshot, bool) {
	if len(r.Projection) == 0 {
		return YearSnapshot{}, false
	}
	return r.Projection[len(r.Projection)-1], true
}
