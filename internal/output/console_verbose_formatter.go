package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
)

const ruleWidth = 81

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, "DETAILED FINANCIAL PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&buf, "Plan: %s\n", report.PlanName)
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format(time.DateOnly))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsOf(report.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeProjection(&buf, report)
	writeScenarios(&buf, report)
	writeSensitivity(&buf, report)
	writeGoals(&buf, report)
	writePension(&buf, report.Pension)
	writeDeduction(&buf, report.Deduction)
	writeDividends(&buf, report.Dividends)

	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Final asset change vs plan: %s (%s)\n", formatSigned(rec.AssetChange), FormatPercentage(rec.PercentageChange))
		fmt.Fprintf(&buf, "Monthly income in that scenario: %s\n", FormatCurrency(rec.MonthlyIncome))
		for _, k := range report.Scenarios.Insight.KeyConsiderations {
			fmt.Fprintf(&buf, "• %s\n", k)
		}
	}

	return buf.Bytes(), nil
}

func heading(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", len(title)))
}

func writeProjection(buf *bytes.Buffer, report *domain.PlanReport) {
	if len(report.Projection) == 0 {
		return
	}
	heading(buf, "YEARLY PROJECTION")
	fmt.Fprintf(buf, "%-6s %18s %18s %15s %18s\n", "YEAR", "ASSET", "INVESTED", "MONTHLY INCOME", "GAINS")
	for _, y := range report.Projection {
		fmt.Fprintf(buf, "%-6d %18s %18s %15s %18s\n", y.Year,
			FormatCurrency(y.Asset), FormatCurrency(y.TotalInvested), FormatCurrency(y.MonthlyIncome), FormatCurrency(y.Gains))
	}
	fmt.Fprintln(buf)
}

func writeScenarios(buf *bytes.Buffer, report *domain.PlanReport) {
	scenarios := report.Scenarios.Ordered()
	if scenarios[0].Key == "" {
		return
	}
	heading(buf, "SCENARIO COMPARISON")
	fmt.Fprintf(buf, "%-14s %7s %18s %15s %18s\n", "SCENARIO", "RETURN", "FINAL ASSET", "MONTHLY INCOME", "GAINS")
	for _, sc := range scenarios {
		fmt.Fprintf(buf, "%-14s %7s %18s %15s %18s\n", sc.Label, FormatPercentage(sc.AnnualReturnPercent),
			FormatCurrency(sc.FinalAsset), FormatCurrency(sc.FinalMonthlyIncome), FormatCurrency(sc.TotalGains))
	}
	insight := report.Scenarios.Insight
	fmt.Fprintf(buf, "Spread (aggressive - conservative): %s (%s), income %s\n",
		FormatCurrency(insight.AssetSpread), FormatPercentage(insight.SpreadPercent), FormatCurrency(insight.IncomeSpread))
	fmt.Fprintln(buf)
}

func writeSensitivity(buf *bytes.Buffer, report *domain.PlanReport) {
	if len(report.Sensitivity) == 0 {
		return
	}
	heading(buf, "RETURN SENSITIVITY")
	for _, p := range report.Sensitivity {
		fmt.Fprintf(buf, "  %7s  %18s  %15s/month\n", FormatPercentage(p.AnnualReturnPercent), FormatCurrency(p.FinalAsset), FormatCurrency(p.MonthlyIncome))
	}
	fmt.Fprintln(buf)
}

func writeGoals(buf *bytes.Buffer, report *domain.PlanReport) {
	alloc := report.Goals.Allocation
	if alloc == nil {
		return
	}
	heading(buf, "GOALS")
	fmt.Fprintf(buf, "Monthly budget %s, %d of %d goals achievable\n", FormatCurrency(alloc.TotalBudget), alloc.AchievableGoals, alloc.TotalGoals)
	for _, a := range alloc.Allocations {
		fmt.Fprintf(buf, "  %-28s %12s (%s)  %s\n", a.GoalTitle, FormatCurrency(a.Allocation), FormatPercentage(a.Percentage), a.Result.Summary())
	}
	for _, p := range report.Goals.Progress {
		fmt.Fprintf(buf, "  %-28s time %s  achieved %s  %s, %d days left\n", p.GoalID,
			FormatPercentage(p.TimeProgress), FormatPercentage(p.AchievementProgress), p.Status, p.RemainingDays)
	}
	fmt.Fprintln(buf)
}

func writePension(buf *bytes.Buffer, p *domain.PensionSummary) {
	if p == nil {
		return
	}
	heading(buf, "PENSION")
	fmt.Fprintf(buf, "  %-22s %15s/month from %d\n", "National pension", FormatCurrency(p.National.MonthlyAmount), p.National.StartAge)
	for _, acct := range []struct {
		label string
		proj  domain.PensionAccountProjection
	}{{"DC", p.DC}, {"IRP", p.IRP}, {"Pension savings", p.PensionSavings}} {
		fmt.Fprintf(buf, "  %-22s %15s/month from %d (balance %s)\n", acct.label,
			FormatCurrency(acct.proj.MonthlyPension), acct.proj.StartAge, FormatCurrency(acct.proj.TotalBalance))
	}
	r := p.Retirement
	fmt.Fprintf(buf, "  %-22s %15s/month at %d (investments %s)\n", "Total", FormatCurrency(r.TotalMonthlyIncome), r.RetirementAge, FormatCurrency(r.FutureInvestmentAssets))
	for _, at := range r.IncomeByAge {
		fmt.Fprintf(buf, "    age %-3d %15s\n", at.Age, FormatCurrency(at.Total))
	}
	fmt.Fprintf(buf, "  Diagnosis score %d/100\n", p.Diagnosis.OverallScore)
	for _, rec := range p.Diagnosis.Recommendations {
		fmt.Fprintf(buf, "  • %s\n", rec)
	}
	fmt.Fprintf(buf, "  Optimized: %s/month total pension for %s more contributions per month\n",
		FormatCurrency(p.Optimized.TotalMonthlyPension), FormatCurrency(p.Optimized.MonthlyContributionChange))
	fmt.Fprintln(buf)
}

func writeDeduction(buf *bytes.Buffer, d *domain.DeductionResult) {
	if d == nil {
		return
	}
	heading(buf, "PENSION TAX CREDIT")
	fmt.Fprintf(buf, "  Rate:              %s\n", FormatPercentage(d.RatePercent))
	fmt.Fprintf(buf, "  Pension savings:   %s deductible -> %s\n", FormatCurrency(d.PensionSavingsDeductible), FormatCurrency(d.PensionSavingsCredit))
	fmt.Fprintf(buf, "  IRP:               %s deductible -> %s\n", FormatCurrency(d.IRPDeductible), FormatCurrency(d.IRPCredit))
	fmt.Fprintf(buf, "  Total credit:      %s of max %s\n", FormatCurrency(d.TotalCredit), FormatCurrency(d.MaxCredit))
	fmt.Fprintf(buf, "  Remaining limit:   %s\n", FormatCurrency(d.RemainingLimit))
	fmt.Fprintln(buf)
}

func writeDividends(buf *bytes.Buffer, d *domain.DividendReport) {
	if d == nil {
		return
	}
	heading(buf, "DIVIDENDS")
	for _, m := range d.Months {
		fmt.Fprintf(buf, "  %d-%02d  gross %12s  tax %10s  net %12s  (%d payments)\n",
			m.Year, int(m.Month), FormatCurrency(m.Gross), FormatCurrency(m.Tax), FormatCurrency(m.Net), len(m.Payments))
	}
	s := d.Stats
	fmt.Fprintf(buf, "  Year to date: %s (net %s)\n", FormatCurrency(s.Accumulated), FormatCurrency(s.AccumulatedNet))
	fmt.Fprintf(buf, "  Expected this year: %s (net %s)\n", FormatCurrency(s.AnnualExpected), FormatCurrency(s.AnnualExpectedNet))
	if s.GrowthPercent != nil {
		fmt.Fprintf(buf, "  Growth vs last year: %s\n", FormatPercentage(*s.GrowthPercent))
	}
	fmt.Fprintln(buf)
}
