package domain

import "github.com/shopspring/decimal"

// WhatIfChanges overrides selected growth inputs. Nil fields keep the base value.
type WhatIfChanges struct {
	CurrentAsset        *decimal.Decimal `json:"current_asset,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution,omitempty"`
	AnnualReturnPercent *decimal.Decimal `json:"annual_return_percent,omitempty"`
	Years               *int             `json:"years,omitempty"`
}

// Apply returns p with the changes applied.
func (c WhatIfChanges) Apply(p GrowthParameters) GrowthParameters {
	if c.CurrentAsset != nil {
		p.CurrentAsset = *c.CurrentAsset
	}
	if c.MonthlyContribution != nil {
		p.MonthlyContribution = *c.MonthlyContribution
	}
	if c.AnnualReturnPercent != nil {
		p.AnnualReturnPercent = *c.AnnualReturnPercent
	}
	if c.Years != nil {
		p.Years = *c.Years
	}
	return p
}

// WhatIfResult compares a base projection with a changed one.
// PercentageChange is nil when the base result is zero.
type WhatIfResult struct {
	BaseResult       decimal.Decimal  `json:"base_result"`
	ChangedResult    decimal.Decimal  `json:"changed_result"`
	Difference       decimal.Decimal  `json:"difference"`
	PercentageChange *decimal.Decimal `json:"percentage_change"`
	Description      string           `json:"description"`
}

// SensitivityPoint is the projection at one annual return.
type SensitivityPoint struct {
	AnnualReturnPercent decimal.Decimal `json:"annual_return_percent"`
	FinalAsset          decimal.Decimal `json:"final_asset"`
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
}
