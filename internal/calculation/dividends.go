package calculation

import (
	"errors"
	"sort"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/dateutil"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// EnrichDividend adds the withholding tax, per-share amount and quarter to a payment.
func EnrichDividend(d domain.DividendPayment) domain.TaxedDividend {
	perShare := decimal.Zero
	if d.Shares > 0 {
		perShare = pkgdec.RoundWhole(d.Amount.Div(decimal.NewFromInt(int64(d.Shares))))
	}
	return domain.TaxedDividend{
		DividendPayment: d,
		PerShare:        perShare,
		Quarter:         dateutil.Quarter(int(d.PaymentDate.Month())),
		Tax:             DividendTax(d.Amount),
	}
}

// GroupDividendsByMonth enriches the payments and totals them per calendar month, earliest first.
// Monthly tax is withheld on each payment, so it is the sum of the payment taxes.
func GroupDividendsByMonth(payments []domain.DividendPayment) ([]domain.MonthlyDividend, error) {
	type monthKey struct {
		year  int
		month time.Month
	}

	var errs error
	byMonth := make(map[monthKey]*domain.MonthlyDividend)
	for _, p := range payments {
		if err := p.Validate(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		key := monthKey{p.PaymentDate.Year(), p.PaymentDate.Month()}
		m, ok := byMonth[key]
		if !ok {
			m = &domain.MonthlyDividend{Year: key.year, Month: key.month}
			byMonth[key] = m
		}
		taxed := EnrichDividend(p)
		m.Payments = append(m.Payments, taxed)
		m.Gross = m.Gross.Add(taxed.Tax.GrossAmount)
		m.Tax = m.Tax.Add(taxed.Tax.TaxAmount)
		m.Net = m.Net.Add(taxed.Tax.NetAmount)
	}
	if errs != nil {
		return nil, errs
	}

	months := make([]domain.MonthlyDividend, 0, len(byMonth))
	for _, m := range byMonth {
		sort.SliceStable(m.Payments, func(i, j int) bool {
			return m.Payments[i].PaymentDate.Before(m.Payments[j].PaymentDate)
		})
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})
	return months, nil
}

// AnnualDividendStats compares dividends paid up to now with the total expected
// for the year of now. lastYearTotal of zero leaves GrowthPercent nil.
func AnnualDividendStats(months []domain.MonthlyDividend, lastYearTotal decimal.Decimal, now time.Time) domain.DividendStats {
	var accumulated, annual decimal.Decimal
	for _, m := range months {
		if m.Year != now.Year() {
			continue
		}
		annual = annual.Add(m.Gross)
		if m.Month <= now.Month() {
			accumulated = accumulated.Add(m.Gross)
		}
	}

	accumulatedTax := DividendTax(accumulated)
	annualTax := DividendTax(annual)

	stats := domain.DividendStats{
		Accumulated:       accumulated,
		AccumulatedNet:    accumulatedTax.NetAmount,
		AccumulatedTax:    accumulatedTax.TaxAmount,
		AnnualExpected:    annual,
		AnnualExpectedNet: annualTax.NetAmount,
		AnnualExpectedTax: annualTax.TaxAmount,
		LastYearTotal:     lastYearTotal,
	}
	if lastYearTotal.IsPositive() {
		growth := annual.Sub(lastYearTotal).Div(lastYearTotal).Mul(hundred).Round(1)
		stats.GrowthPercent = &growth
	}
	return stats
}

// BuildDividendReport groups a schedule and computes its stats as of now.
func BuildDividendReport(payments []domain.DividendPayment, lastYearTotal decimal.Decimal, now time.Time) (*domain.DividendReport, error) {
	months, err := GroupDividendsByMonth(payments)
	if err != nil {
		return nil, err
	}
	return &domain.DividendReport{
		Months: months,
		Stats:  AnnualDividendStats(months, lastYearTotal, now),
	}, nil
}
