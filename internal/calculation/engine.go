package calculation

import (
	"context"
	"errors"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ProjectionEngine turns a plan configuration into a report
type ProjectionEngine struct {
	Debug  bool // Log intermediate results of each section
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan computes every report section of cfg. The sections are independent
// pure computations and run concurrently; the first failure cancels the rest.
func (pe *ProjectionEngine) RunPlan(ctx context.Context, cfg *domain.Configuration) (*domain.PlanReport, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	years := cfg.Assumptions.ProjectionYears
	growth := cfg.Portfolio.Growth(years)
	now := reportTime()

	var (
		projection  []domain.YearSnapshot
		scenarios   domain.ScenarioSet
		sensitivity []domain.SensitivityPoint
		goals       domain.GoalsReport
		pension     *domain.PensionSummary
		deduction   *domain.DeductionResult
		dividends   *domain.DividendReport
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(pe.section(ctx, "projection", func() (err error) {
		projection, err = SimulateWithYieldGrowth(growth, cfg.Portfolio.DividendYieldPercent, cfg.Portfolio.YieldGrowthPercent)
		return err
	}))

	g.Go(pe.section(ctx, "scenarios", func() (err error) {
		scenarios, err = CompareScenarios(domain.ScenarioBase{
			CurrentAsset:        cfg.Portfolio.CurrentAsset,
			MonthlyContribution: cfg.Portfolio.MonthlyContribution,
			Years:               years,
			AnnualYieldPercent:  cfg.Portfolio.DividendYieldPercent,
		})
		return err
	}))

	g.Go(pe.section(ctx, "sensitivity", func() (err error) {
		sensitivity, err = AnalyzeSensitivity(growth, cfg.Portfolio.DividendYieldPercent, cfg.Assumptions.SensitivityRates)
		return err
	}))

	if len(cfg.Goals) > 0 {
		g.Go(pe.section(ctx, "goals", func() error {
			plan, err := OptimizeMultipleGoals(cfg.Goals, cfg.Assumptions.MonthlyGoalBudget)
			if err != nil {
				return err
			}
			goals.Allocation = &plan
			for _, goal := range cfg.Goals {
				goals.Progress = append(goals.Progress,
					TrackGoalProgress(goal, cfg.Portfolio.CurrentAsset, cfg.Portfolio.MonthlyDividend, now))
			}
			return nil
		}))
	}

	g.Go(pe.section(ctx, "pension", func() (err error) {
		pension, err = SummarizePension(cfg)
		return err
	}))

	g.Go(pe.section(ctx, "tax deduction", func() error {
		result, err := NewPensionDeductionCalculatorWithRules(cfg.Rules()).Calculate(deductionInput(cfg))
		if err != nil {
			return err
		}
		deduction = &result
		return nil
	}))

	if len(cfg.Dividends) > 0 {
		g.Go(pe.section(ctx, "dividends", func() (err error) {
			dividends, err = BuildDividendReport(cfg.Dividends, cfg.Assumptions.LastYearDividendTotal, now)
			return err
		}))
	}

	if err := g.Wait(); err != nil {
		pe.Logger.Errorf("plan %q failed: %v", cfg.Profile.Name, err)
		return nil, err
	}

	report := &domain.PlanReport{
		PlanName:    cfg.Profile.Name,
		GeneratedAt: now,
		Years:       years,
		Projection:  projection,
		Scenarios:   scenarios,
		Sensitivity: sensitivity,
		Goals:       goals,
		Pension:     pension,
		Deduction:   deduction,
		Dividends:   dividends,
		Assumptions: cfg.GenerateAssumptions(),
	}

	if final, ok := report.FinalSnapshot(); ok {
		pe.Logger.Infof("plan %q: %d years, final asset %s, monthly income %s",
			cfg.Profile.Name, years, final.Asset.StringFixed(0), final.MonthlyIncome.StringFixed(0))
	}
	if pe.Debug {
		pe.logDebugBreakdown(report)
	}
	return report, nil
}

// deductionInput derives annual contributions from the monthly pension contributions of a plan.
func deductionInput(cfg *domain.Configuration) domain.DeductionInput {
	income := cfg.Profile.AnnualIncome
	if income.IsZero() {
		income = cfg.Profile.MonthlyIncome.Mul(twelve)
	}
	return domain.DeductionInput{
		AnnualIncome:               income,
		PensionSavingsContribution: cfg.Pension.PensionSavings.MonthlyContribution.Mul(twelve),
		IRPContribution:            cfg.Pension.IRP.MonthlyContribution.Mul(twelve),
	}
}

func (pe *ProjectionEngine) logDebugBreakdown(report *domain.PlanReport) {
	pe.Logger.Debugf("SCENARIO BREAKDOWN:")
	for _, s := range report.Scenarios.Ordered() {
		pe.Logger.Debugf("  %-12s %5s%%  final %15s  income %12s  gains %15s",
			s.Key, s.AnnualReturnPercent.String(), s.FinalAsset.StringFixed(0),
			s.FinalMonthlyIncome.StringFixed(0), s.TotalGains.StringFixed(0))
	}
	if report.Deduction != nil {
		pe.Logger.Debugf("TAX CREDIT: %s of max %s (rate %s%%)",
			report.Deduction.TotalCredit.StringFixed(0), report.Deduction.MaxCredit.StringFixed(0), report.Deduction.RatePercent.String())
	}
	if report.Pension != nil {
		pe.Logger.Debugf("RETIREMENT INCOME: %s per month at age %d",
			report.Pension.Retirement.TotalMonthlyIncome.StringFixed(0), report.Pension.Retirement.RetirementAge)
	}
	var total decimal.Decimal
	for _, p := range report.Sensitivity {
		total = total.Add(p.FinalAsset)
	}
	if n := len(report.Sensitivity); n > 0 {
		pe.Logger.Debugf("SENSITIVITY: %d rates, mean final asset %s", n, total.Div(decimal.NewFromInt(int64(n))).StringFixed(0))
	}
}
