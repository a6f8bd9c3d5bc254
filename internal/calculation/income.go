package calculation

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AnnualIncome returns the yearly yield of an asset, rounded to a whole unit.
func AnnualIncome(totalAsset, annualYieldPercent decimal.Decimal) decimal.Decimal {
	return pkgdec.RoundWhole(pkgdec.PercentOf(totalAsset, annualYieldPercent))
}

// MonthlyIncome returns one twelfth of the yearly yield, rounded to a whole unit.
func MonthlyIncome(totalAsset, annualYieldPercent decimal.Decimal) decimal.Decimal {
	return pkgdec.RoundWhole(pkgdec.PercentOf(totalAsset, annualYieldPercent).Div(twelve))
}

// LevelAnnuityPayment returns the fixed monthly payment that draws balance down
// to zero over years while the remainder earns annualRatePercent.
// A zero horizon pays the whole balance at once; terms are capped at domain.MaxYears.
func LevelAnnuityPayment(balance, annualRatePercent decimal.Decimal, years int) decimal.Decimal {
	months := min(years, domain.MaxYears) * 12
	if months <= 0 {
		return pkgdec.RoundWhole(balance)
	}
	r := MonthlyRate(annualRatePercent)
	if r.IsZero() {
		return pkgdec.RoundWhole(balance.Div(decimal.NewFromInt(int64(months))))
	}
	// balance × r / (1 − (1+r)^−n) rewritten as balance × r × f / (f − 1)
	f := growthFactor(r, months)
	return pkgdec.RoundWhole(balance.Mul(r).Mul(f).Div(f.Sub(one)))
}
