package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavored markdown. The CLI pipes it through glamour for terminals.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

func (m MarkdownFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Financial Plan: %s\n\n", report.PlanName)
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "_Generated %s, %d year projection_\n\n", report.GeneratedAt.Format(time.DateOnly), report.Years)
	}

	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range assumptionsOf(report.Assumptions) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	if final, ok := report.FinalSnapshot(); ok {
		fmt.Fprintln(&buf, "## Yearly Projection")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Year %d: **%s**, %s per month.\n\n", final.Year, FormatCurrency(final.Asset), FormatCurrency(final.MonthlyIncome))
		fmt.Fprintln(&buf, "| Year | Asset | Invested | Gains | Monthly Income |")
		fmt.Fprintln(&buf, "|---:|---:|---:|---:|---:|")
		for _, y := range report.Projection {
			fmt.Fprintf(&buf, "| %d | %s | %s | %s | %s |\n", y.Year,
				FormatCurrency(y.Asset), FormatCurrency(y.TotalInvested), FormatCurrency(y.Gains), FormatCurrency(y.MonthlyIncome))
		}
		fmt.Fprintln(&buf)
	}

	if scenarios := report.Scenarios.Ordered(); scenarios[0].Key != "" {
		fmt.Fprintln(&buf, "## Scenario Comparison")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Scenario | Return | Final Asset | Monthly Income | Gains |")
		fmt.Fprintln(&buf, "|---|---:|---:|---:|---:|")
		for _, sc := range scenarios {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s |\n", sc.Label, FormatPercentage(sc.AnnualReturnPercent),
				FormatCurrency(sc.FinalAsset), FormatCurrency(sc.FinalMonthlyIncome), FormatCurrency(sc.TotalGains))
		}
		fmt.Fprintln(&buf)
		for _, k := range report.Scenarios.Insight.KeyConsiderations {
			fmt.Fprintf(&buf, "- %s\n", k)
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Sensitivity) > 0 {
		fmt.Fprintln(&buf, "## Return Sensitivity")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Return | Final Asset | Monthly Income |")
		fmt.Fprintln(&buf, "|---:|---:|---:|")
		for _, p := range report.Sensitivity {
			fmt.Fprintf(&buf, "| %s | %s | %s |\n", FormatPercentage(p.AnnualReturnPercent), FormatCurrency(p.FinalAsset), FormatCurrency(p.MonthlyIncome))
		}
		fmt.Fprintln(&buf)
	}

	if alloc := report.Goals.Allocation; alloc != nil {
		fmt.Fprintln(&buf, "## Goals")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Monthly budget %s: %d of %d goals achievable.\n\n", FormatCurrency(alloc.TotalBudget), alloc.AchievableGoals, alloc.TotalGoals)
		fmt.Fprintln(&buf, "| Goal | Allocation | Share | Outlook |")
		fmt.Fprintln(&buf, "|---|---:|---:|---|")
		for _, a := range alloc.Allocations {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n", a.GoalTitle, FormatCurrency(a.Allocation), FormatPercentage(a.Percentage), a.Result.Summary())
		}
		fmt.Fprintln(&buf)
	}

	if p := report.Pension; p != nil {
		fmt.Fprintln(&buf, "## Pension")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "- National pension: %s/month from %d\n", FormatCurrency(p.National.MonthlyAmount), p.National.StartAge)
		fmt.Fprintf(&buf, "- DC: %s/month from %d\n", FormatCurrency(p.DC.MonthlyPension), p.DC.StartAge)
		fmt.Fprintf(&buf, "- IRP: %s/month from %d\n", FormatCurrency(p.IRP.MonthlyPension), p.IRP.StartAge)
		fmt.Fprintf(&buf, "- Pension savings: %s/month from %d\n", FormatCurrency(p.PensionSavings.MonthlyPension), p.PensionSavings.StartAge)
		fmt.Fprintf(&buf, "- **Total at %d: %s/month**\n\n", p.Retirement.RetirementAge, FormatCurrency(p.Retirement.TotalMonthlyIncome))
		fmt.Fprintf(&buf, "Diagnosis score %d/100.\n\n", p.Diagnosis.OverallScore)
		for _, rec := range p.Diagnosis.Recommendations {
			fmt.Fprintf(&buf, "> %s\n", rec)
		}
		fmt.Fprintln(&buf)
	}

	if d := report.Deduction; d != nil {
		fmt.Fprintln(&buf, "## Pension Tax Credit")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "At %s the credit is **%s** of a possible %s. Remaining limit: %s.\n\n",
			FormatPercentage(d.RatePercent), FormatCurrency(d.TotalCredit), FormatCurrency(d.MaxCredit), FormatCurrency(d.RemainingLimit))
	}

	if d := report.Dividends; d != nil {
		fmt.Fprintln(&buf, "## Dividends")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Month | Gross | Tax | Net |")
		fmt.Fprintln(&buf, "|---|---:|---:|---:|")
		for _, mo := range d.Months {
			fmt.Fprintf(&buf, "| %d-%02d | %s | %s | %s |\n", mo.Year, int(mo.Month), FormatCurrency(mo.Gross), FormatCurrency(mo.Tax), FormatCurrency(mo.Net))
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Expected this year: %s (net %s).\n", FormatCurrency(d.Stats.AnnualExpected), FormatCurrency(d.Stats.AnnualExpectedNet))
		if g := d.Stats.GrowthPercent; g != nil {
			fmt.Fprintf(&buf, "Growth vs last year: %s.\n", FormatPercentage(*g))
		}
	}

	return buf.Bytes(), nil
}
