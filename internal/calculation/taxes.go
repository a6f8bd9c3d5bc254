package calculation

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ApplyFlatTax withholds ratePercent of gross. The tax is rounded to a whole
// unit and the net amount is the exact remainder.
func ApplyFlatTax(gross, ratePercent decimal.Decimal) domain.TaxResult {
	tax := pkgdec.RoundWhole(pkgdec.PercentOf(gross, ratePercent))
	return domain.TaxResult{
		GrossAmount:    gross,
		TaxAmount:      tax,
		NetAmount:      gross.Sub(tax),
		TaxRatePercent: ratePercent,
	}
}

// DividendTax applies the dividend withholding rate.
func DividendTax(gross decimal.Decimal) domain.TaxResult {
	return ApplyFlatTax(gross, domain.DividendTaxRatePercent)
}

// PensionDeductionCalculator computes the tax credit for pension contributions
type PensionDeductionCalculator struct {
	Rules domain.DeductionRules
}

// NewPensionDeductionCalculator creates a calculator with the statutory limits
func NewPensionDeductionCalculator() *PensionDeductionCalculator {
	return &PensionDeductionCalculator{Rules: domain.DefaultDeductionRules()}
}

// NewPensionDeductionCalculatorWithRules creates a calculator with configured limits
func NewPensionDeductionCalculatorWithRules(rules domain.DeductionRules) *PensionDeductionCalculator {
	return &PensionDeductionCalculator{Rules: rules}
}

// RatePercent returns the credit rate for an annual income.
func (pdc *PensionDeductionCalculator) RatePercent(annualIncome decimal.Decimal) decimal.Decimal {
	if annualIncome.LessThanOrEqual(pdc.Rules.IncomeThreshold) {
		return pdc.Rules.LowIncomeRatePercent
	}
	return pdc.Rules.HighIncomeRatePercent
}

// irpRoom is what the IRP bucket can hold once pension savings has used its share of the total cap.
func (pdc *PensionDeductionCalculator) irpRoom(pensionSavingsDeductible decimal.Decimal) decimal.Decimal {
	room := pdc.Rules.TotalCap.Sub(pensionSavingsDeductible)
	return decimal.Max(decimal.Zero, decimal.Min(pdc.Rules.IRPCap, room))
}

// Calculate clips each contribution to its bucket cap first and only then applies the income-tier rate.
func (pdc *PensionDeductionCalculator) Calculate(in domain.DeductionInput) (domain.DeductionResult, error) {
	if err := pdc.Rules.Validate(); err != nil {
		return domain.DeductionResult{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.DeductionResult{}, err
	}

	rate := pdc.RatePercent(in.AnnualIncome)

	psDeductible := decimal.Min(in.PensionSavingsContribution, pdc.Rules.PensionSavingsCap)
	irpDeductible := decimal.Min(in.IRPContribution, pdc.irpRoom(psDeductible))

	psCredit := pkgdec.RoundWhole(pkgdec.PercentOf(psDeductible, rate))
	irpCredit := pkgdec.RoundWhole(pkgdec.PercentOf(irpDeductible, rate))

	recommendedIRP := pdc.irpRoom(pdc.Rules.PensionSavingsCap)
	maxDeductible := pdc.Rules.PensionSavingsCap.Add(recommendedIRP)

	return domain.DeductionResult{
		RatePercent:               rate,
		PensionSavingsDeductible:  psDeductible,
		IRPDeductible:             irpDeductible,
		PensionSavingsCredit:      psCredit,
		IRPCredit:                 irpCredit,
		TotalCredit:               psCredit.Add(irpCredit),
		MaxCredit:                 pkgdec.RoundWhole(pkgdec.PercentOf(maxDeductible, rate)),
		RemainingLimit:            decimal.Max(decimal.Zero, maxDeductible.Sub(psDeductible).Sub(irpDeductible)),
		RecommendedPensionSavings: pdc.Rules.PensionSavingsCap,
		RecommendedIRP:            recommendedIRP,
	}, nil
}
