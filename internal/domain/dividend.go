package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DividendStatus marks whether a payment has been declared.
type DividendStatus string

const (
	DividendConfirmed DividendStatus = "confirmed"
	DividendPredicted DividendStatus = "predicted"
)

// DividendPayment is one scheduled dividend.
type DividendPayment struct {
	Name        string          `yaml:"name" json:"name"`
	Code        string          `yaml:"code,omitempty" json:"code,omitempty"`
	PaymentDate time.Time       `yaml:"payment_date" json:"payment_date"`
	Shares      int             `yaml:"shares" json:"shares"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Status      DividendStatus  `yaml:"status" json:"status"`
	Confidence  decimal.Decimal `yaml:"confidence,omitempty" json:"confidence,omitempty"`
}

// Validate checks a scheduled payment.
func (d DividendPayment) Validate() error {
	var err error
	if d.Name == "" {
		err = Invalidf("dividend name is required")
	}
	if d.Shares < 0 {
		err = errors.Join(err, Invalidf("%s: shares cannot be negative, got %d", d.Name, d.Shares))
	}
	return errors.Join(err, RequireNonNegative(d.Name+" amount", d.Amount))
}

// TaxedDividend is a payment enriched with withholding tax.
type TaxedDividend struct {
	DividendPayment
	PerShare decimal.Decimal `json:"per_share"`
	Quarter  string          `json:"quarter"`
	Tax      TaxResult       `json:"tax"`
}

// MonthlyDividend aggregates the payments of one calendar month.
type MonthlyDividend struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Gross    decimal.Decimal `json:"gross"`
	Tax      decimal.Decimal `json:"tax"`
	Net      decimal.Decimal `json:"net"`
	Payments []TaxedDividend `json:"payments"`
}

// DividendStats compares year-to-date and expected annual dividends.
// GrowthPercent is nil when no previous-year total is known.
type DividendStats struct {
	Accumulated       decimal.Decimal  `json:"accumulated"`
	AccumulatedNet    decimal.Decimal  `json:"accumulated_net"`
	AccumulatedTax    decimal.Decimal  `json:"accumulated_tax"`
	AnnualExpected    decimal.Decimal  `json:"annual_expected"`
	AnnualExpectedNet decimal.Decimal  `json:"annual_expected_net"`
	AnnualExpectedTax decimal.Decimal  `json:"annual_expected_tax"`
	LastYearTotal     decimal.Decimal  `json:"last_year_total"`
	GrowthPercent     *decimal.Decimal `json:"growth_percent"`
}

// DividendReport is the dividend section of a plan report.
type DividendReport struct {
	Months []MonthlyDividend `json:"months"`
	Stats  DividendStats     `json:"stats"`
}
