package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// NationalPensionInput describes public pension enrolment.
type NationalPensionInput struct {
	AverageMonthlySalary decimal.Decimal `yaml:"average_monthly_salary" json:"average_monthly_salary"`
	ContributionYears    int             `yaml:"contribution_years" json:"contribution_years"`
}

// Validate checks the enrolment inputs.
func (n NationalPensionInput) Validate() error {
	return errors.Join(
		RequireNonNegative("average monthly salary", n.AverageMonthlySalary),
		RequireYears("contribution years", n.ContributionYears),
	)
}

// NationalPensionEstimate is the simplified public pension benefit.
type NationalPensionEstimate struct {
	MonthlyAmount       decimal.Decimal `json:"monthly_amount"`
	AnnualAmount        decimal.Decimal `json:"annual_amount"`
	StartAge            int             `json:"start_age"`
	ContributionYears   int             `json:"contribution_years"`
	LifeExpectancy      int             `json:"life_expectancy"`
	TotalLifetimeAmount decimal.Decimal `json:"total_lifetime_amount"`
}

// PensionAccountKind names the private pension account types.
type PensionAccountKind string

const (
	AccountDC             PensionAccountKind = "dc"
	AccountIRP            PensionAccountKind = "irp"
	AccountPensionSavings PensionAccountKind = "pension_savings"
)

// PensionAccountInput describes an accumulating pension account.
// EmployerContribution is only meaningful for DC accounts.
type PensionAccountInput struct {
	CurrentBalance       decimal.Decimal `yaml:"current_balance" json:"current_balance"`
	MonthlyContribution  decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	EmployerContribution decimal.Decimal `yaml:"employer_contribution,omitempty" json:"employer_contribution,omitempty"`
	AnnualReturnPercent  decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"`
}

// Validate checks the account inputs.
func (a PensionAccountInput) Validate() error {
	return errors.Join(
		RequireNonNegative("current balance", a.CurrentBalance),
		RequireNonNegative("monthly contribution", a.MonthlyContribution),
		RequireNonNegative("employer contribution", a.EmployerContribution),
		RequireReturn("annual return", a.AnnualReturnPercent),
	)
}

// Active reports whether the account holds or receives any money.
func (a PensionAccountInput) Active() bool {
	return a.CurrentBalance.IsPositive() || a.MonthlyContribution.IsPositive() || a.EmployerContribution.IsPositive()
}

// PensionAccountProjection is the balance at retirement and its level payout.
type PensionAccountProjection struct {
	Kind             PensionAccountKind `json:"kind"`
	TotalBalance     decimal.Decimal    `json:"total_balance"`
	MonthlyPension   decimal.Decimal    `json:"monthly_pension"`
	AnnualPension    decimal.Decimal    `json:"annual_pension"`
	StartAge         int                `json:"start_age"`
	WithdrawalYears  int                `json:"withdrawal_years"`
	TotalContributed decimal.Decimal    `json:"total_contributed"`
}

// PensionAccounts groups the three pension layers of a plan.
type PensionAccounts struct {
	National       NationalPensionInput `yaml:"national" json:"national"`
	DC             PensionAccountInput  `yaml:"dc" json:"dc"`
	IRP            PensionAccountInput  `yaml:"irp" json:"irp"`
	PensionSavings PensionAccountInput  `yaml:"pension_savings" json:"pension_savings"`
}

// IncomeBreakdown is monthly retirement income by source.
type IncomeBreakdown struct {
	NationalPension decimal.Decimal `json:"national_pension"`
	DCPension       decimal.Decimal `json:"dc_pension"`
	IRP             decimal.Decimal `json:"irp"`
	PensionSavings  decimal.Decimal `json:"pension_savings"`
	Dividend        decimal.Decimal `json:"dividend"`
	Total           decimal.Decimal `json:"total"`
}

// IncomeAtAge is the monthly income expected at a given age.
type IncomeAtAge struct {
	Age int `json:"age"`
	IncomeBreakdown
}

// RetirementIncome combines pensions and investment dividends after retirement.
type RetirementIncome struct {
	RetirementAge          int             `json:"retirement_age"`
	TotalMonthlyIncome     decimal.Decimal `json:"total_monthly_income"`
	Breakdown              IncomeBreakdown `json:"breakdown"`
	FutureInvestmentAssets decimal.Decimal `json:"future_investment_assets"`
	IncomeByAge            []IncomeAtAge   `json:"income_by_age"`
}

// LayerStatus is the state of one pension layer.
type LayerStatus string

const (
	LayerActive  LayerStatus = "active"
	LayerMissing LayerStatus = "missing"
	LayerPartial LayerStatus = "partial"
)

// LayerDiagnosis scores one pension layer out of 100.
type LayerDiagnosis struct {
	Status LayerStatus `json:"status"`
	Score  int         `json:"score"`
}

// PensionDiagnosis grades the completeness of the three pension layers.
type PensionDiagnosis struct {
	Public          LayerDiagnosis `json:"public"`
	Occupational    LayerDiagnosis `json:"occupational"`
	Personal        LayerDiagnosis `json:"personal"`
	OverallScore    int            `json:"overall_score"`
	Recommendations []string       `json:"recommendations"`
}

// OptimizedPension projects pensions with contributions raised to the tax credit limits.
type OptimizedPension struct {
	DC                        PensionAccountProjection `json:"dc"`
	IRP                       PensionAccountProjection `json:"irp"`
	PensionSavings            PensionAccountProjection `json:"pension_savings"`
	TotalMonthlyPension       decimal.Decimal          `json:"total_monthly_pension"`
	MonthlyContributionChange decimal.Decimal          `json:"monthly_contribution_change"`
	RecommendedIRPMonthly     decimal.Decimal          `json:"recommended_irp_monthly"`
	RecommendedSavingsMonthly decimal.Decimal          `json:"recommended_savings_monthly"`
	RecommendedDCMonthly      decimal.Decimal          `json:"recommended_dc_monthly"`
}

// PensionSummary is the pension section of a plan report.
type PensionSummary struct {
	National       NationalPensionEstimate  `json:"national"`
	DC             PensionAccountProjection `json:"dc"`
	IRP            PensionAccountProjection `json:"irp"`
	PensionSavings PensionAccountProjection `json:"pension_savings"`
	Retirement     RetirementIncome         `json:"retirement"`
	Diagnosis      PensionDiagnosis         `json:"diagnosis"`
	Optimized      OptimizedPension         `json:"optimized"`
}
