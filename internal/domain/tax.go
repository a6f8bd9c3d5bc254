package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DividendTaxRatePercent is the withholding rate on dividends (14% income tax plus 1.4% local tax).
var DividendTaxRatePercent = decimal.RequireFromString("15.4")

// TaxResult is the outcome of a flat-rate tax. NetAmount + TaxAmount always equals GrossAmount.
type TaxResult struct {
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// DeductionRules are the pension contribution tax credit limits. All amounts are annual.
type DeductionRules struct {
	IncomeThreshold       decimal.Decimal `yaml:"income_threshold" json:"income_threshold"`
	LowIncomeRatePercent  decimal.Decimal `yaml:"low_income_rate_percent" json:"low_income_rate_percent"`
	HighIncomeRatePercent decimal.Decimal `yaml:"high_income_rate_percent" json:"high_income_rate_percent"`
	PensionSavingsCap     decimal.Decimal `yaml:"pension_savings_cap" json:"pension_savings_cap"`
	IRPCap                decimal.Decimal `yaml:"irp_cap" json:"irp_cap"`
	TotalCap              decimal.Decimal `yaml:"total_cap" json:"total_cap"`
}

// DefaultDeductionRules returns the current statutory limits.
func DefaultDeductionRules() DeductionRules {
	return DeductionRules{
		IncomeThreshold:       decimal.NewFromInt(55_000_000),
		LowIncomeRatePercent:  decimal.NewFromInt(15),
		HighIncomeRatePercent: decimal.NewFromInt(12),
		PensionSavingsCap:     decimal.NewFromInt(6_000_000),
		IRPCap:                decimal.NewFromInt(3_000_000),
		TotalCap:              decimal.NewFromInt(9_000_000),
	}
}

// Validate checks that every limit and rate is non-negative and the total cap covers the pension savings cap.
func (r DeductionRules) Validate() error {
	err := errors.Join(
		RequireNonNegative("income threshold", r.IncomeThreshold),
		RequireNonNegative("low income rate", r.LowIncomeRatePercent),
		RequireNonNegative("high income rate", r.HighIncomeRatePercent),
		RequireNonNegative("pension savings cap", r.PensionSavingsCap),
		RequireNonNegative("irp cap", r.IRPCap),
		RequireNonNegative("total cap", r.TotalCap),
	)
	if err != nil {
		return err
	}
	if r.TotalCap.LessThan(r.PensionSavingsCap) {
		return Invalidf("total cap %s is below pension savings cap %s", r.TotalCap, r.PensionSavingsCap)
	}
	return nil
}

// DeductionInput holds annual income and annual contributions per bucket.
type DeductionInput struct {
	AnnualIncome               decimal.Decimal `json:"annual_income"`
	PensionSavingsContribution decimal.Decimal `json:"pension_savings_contribution"`
	IRPContribution            decimal.Decimal `json:"irp_contribution"`
}

// Validate checks the deduction inputs.
func (in DeductionInput) Validate() error {
	return errors.Join(
		RequireNonNegative("annual income", in.AnnualIncome),
		RequireNonNegative("pension savings contribution", in.PensionSavingsContribution),
		RequireNonNegative("irp contribution", in.IRPContribution),
	)
}

// DeductionResult is the tax credit earned by pension contributions.
type DeductionResult struct {
	RatePercent               decimal.Decimal `json:"rate_percent"`
	PensionSavingsDeductible  decimal.Decimal `json:"pension_savings_deductible"`
	IRPDeductible             decimal.Decimal `json:"irp_deductible"`
	PensionSavingsCredit      decimal.Decimal `json:"pension_savings_credit"`
	IRPCredit                 decimal.Decimal `json:"irp_credit"`
	TotalCredit               decimal.Decimal `json:"total_credit"`
	MaxCredit                 decimal.Decimal `json:"max_credit"`
	RemainingLimit            decimal.Decimal `json:"remaining_limit"`
	RecommendedPensionSavings decimal.Decimal `json:"recommended_pension_savings"`
	RecommendedIRP            decimal.Decimal `json:"recommended_irp"`
}
