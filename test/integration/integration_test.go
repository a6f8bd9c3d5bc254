package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
)

const examplePlan = "../testdata/example_plan.yaml"

func TestEndToEndCalculation(t *testing.T) {
	// Load the plan
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(examplePlan)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "Example Saver", cfg.Profile.Name)
	assert.Len(t, cfg.Goals, 2)

	// Run the projection
	engine := calculation.NewProjectionEngine()
	report, err := engine.RunPlan(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, report.Projection, report.Years+1)
	for i, snap := range report.Projection {
		assert.Equal(t, i, snap.Year)
		assert.True(t, snap.Asset.Equal(snap.TotalInvested.Add(snap.Gains)), "year %d", i)
	}
	final, ok := report.FinalSnapshot()
	require.True(t, ok)
	assert.True(t, final.Asset.GreaterThan(cfg.Portfolio.CurrentAsset))

	// Scenarios grow with the assumed return
	ordered := report.Scenarios.Ordered()
	require.Len(t, ordered, 3)
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i].FinalAsset.GreaterThan(ordered[i-1].FinalAsset))
		assert.Len(t, ordered[i].Timeline, len(ordered[0].Timeline))
	}
	assert.Equal(t, "aggressive", report.Scenarios.Insight.BestScenario)

	// Sensitivity follows the plan's rates
	require.Len(t, report.Sensitivity, len(cfg.Assumptions.SensitivityRates))
	for i := 1; i < len(report.Sensitivity); i++ {
		assert.True(t, report.Sensitivity[i].FinalAsset.GreaterThan(report.Sensitivity[i-1].FinalAsset))
	}

	// Supporting sections
	require.NotNil(t, report.Goals.Allocation)
	assert.Equal(t, 2, report.Goals.Allocation.TotalGoals)
	assert.Len(t, report.Goals.Progress, 2)
	require.NotNil(t, report.Pension)
	assert.Equal(t, cfg.Profile.RetirementAge, report.Pension.Retirement.RetirementAge)
	require.NotNil(t, report.Deduction)
	assert.True(t, report.Deduction.TotalCredit.LessThanOrEqual(report.Deduction.MaxCredit))
	require.NotNil(t, report.Dividends)
	assert.NotEmpty(t, report.Assumptions)
}

func TestScenarioMatchesFutureValue(t *testing.T) {
	base := domain.ScenarioBase{
		CurrentAsset:        decimal.NewFromInt(112_000_000),
		MonthlyContribution: decimal.NewFromInt(800_000),
		Years:               10,
		AnnualYieldPercent:  decimal.NewFromFloat(4.5),
	}
	set, err := calculation.CompareScenarios(base)
	require.NoError(t, err)

	// The yearly simulation and the closed form agree on the final asset
	for _, s := range set.Ordered() {
		fv, err := calculation.FutureValue(base.Growth(s.AnnualReturnPercent))
		require.NoError(t, err)
		assert.True(t, fv.Sub(s.FinalAsset).Abs().LessThanOrEqual(decimal.NewFromInt(1)),
			"%s: closed form %s, simulated %s", s.Key, fv, s.FinalAsset)
	}
}

func TestGoalSolverRoundTrip(t *testing.T) {
	params := domain.GoalParameters{
		CurrentAsset:        decimal.NewFromInt(112_000_000),
		TargetAsset:         decimal.NewFromInt(500_000_000),
		AnnualReturnPercent: decimal.NewFromInt(7),
		Years:               15,
	}
	required, err := calculation.RequiredMonthlyContribution(params)
	require.NoError(t, err)

	// Saving the solved amount reaches the target within the horizon
	result, err := calculation.GoalAchievement(domain.GoalSearch{
		CurrentAsset:        params.CurrentAsset,
		TargetAsset:         params.TargetAsset,
		MonthlyContribution: required.Add(decimal.NewFromInt(1)),
		AnnualReturnPercent: params.AnnualReturnPercent,
		MaxYears:            params.Years,
	})
	require.NoError(t, err)
	assert.True(t, result.Achievable, result.Summary())
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(examplePlan)
	require.NoError(t, err)

	// Invalid configuration
	cfg.Profile.RetirementAge = cfg.Profile.Age - 1
	err = parser.ValidateConfiguration(cfg)
	assert.Error(t, err)

	_, err = calculation.NewProjectionEngine().RunPlan(context.Background(), cfg)
	assert.Error(t, err)
}
