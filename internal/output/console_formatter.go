package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Plan: %s (%d years)\n", report.PlanName, report.Years)
	if final, ok := report.FinalSnapshot(); ok {
		fmt.Fprintf(&buf, "Final Asset: %s  Monthly Income: %s  Gains: %s\n",
			FormatCurrency(final.Asset), FormatCurrency(final.MonthlyIncome), FormatCurrency(final.Gains))
	}
	fmt.Fprintln(&buf)
	for _, sc := range report.Scenarios.Ordered() {
		fmt.Fprintf(&buf, "%s (%s%%): Final=%s MonthlyIncome=%s Gains=%s\n",
			sc.Label,
			sc.AnnualReturnPercent.String(),
			FormatCurrency(sc.FinalAsset),
			FormatCurrency(sc.FinalMonthlyIncome),
			FormatCurrency(sc.TotalGains),
		)
	}
	if report.Deduction != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Tax Credit: %s of %s (remaining limit %s)\n",
			FormatCurrency(report.Deduction.TotalCredit), FormatCurrency(report.Deduction.MaxCredit), FormatCurrency(report.Deduction.RemainingLimit))
	}
	if report.Pension != nil {
		fmt.Fprintf(&buf, "Retirement Income: %s per month from age %d\n",
			FormatCurrency(report.Pension.Retirement.TotalMonthlyIncome), report.Pension.Retirement.RetirementAge)
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s (Δ %s / %s vs plan)\n", rec.ScenarioName, formatSigned(rec.AssetChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
