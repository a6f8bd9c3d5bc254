package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredMonthlyContributionInverseLaw(t *testing.T) {
	tests := []struct {
		name   string
		params domain.GoalParameters
	}{
		{"ten years at 8%", domain.GoalParameters{CurrentAsset: dec(10_000_000), TargetAsset: dec(100_000_000), AnnualReturnPercent: dec(8), Years: 10}},
		{"one billion in twenty years", domain.GoalParameters{CurrentAsset: dec(0), TargetAsset: dec(1_000_000_000), AnnualReturnPercent: dec(10), Years: 20}},
		{"zero return", domain.GoalParameters{CurrentAsset: dec(5_000_000), TargetAsset: dec(65_000_000), AnnualReturnPercent: dec(0), Years: 5}},
		{"negative return", domain.GoalParameters{CurrentAsset: dec(50_000_000), TargetAsset: dec(80_000_000), AnnualReturnPercent: dec(-3), Years: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			required, err := RequiredMonthlyContribution(tt.params)
			require.NoError(t, err)
			assert.True(t, required.IsPositive())

			fv, err := FutureValue(domain.GrowthParameters{
				CurrentAsset:        tt.params.CurrentAsset,
				MonthlyContribution: required,
				AnnualReturnPercent: tt.params.AnnualReturnPercent,
				Years:               tt.params.Years,
			})
			require.NoError(t, err)
			// whole-unit rounding of the contribution is amplified by the annuity factor
			tol := AnnuityFutureValue(dec(1), tt.params.AnnualReturnPercent, tt.params.Years*12).IntPart() + 1
			assertNear(t, tt.params.TargetAsset, fv, tol, tt.name)
		})
	}
}

func TestRequiredMonthlyContributionKnownValues(t *testing.T) {
	required, err := RequiredMonthlyContribution(domain.GoalParameters{
		CurrentAsset: dec(10_000_000), TargetAsset: dec(100_000_000), AnnualReturnPercent: dec(8), Years: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "425282", required.String())

	required, err = RequiredMonthlyContribution(domain.GoalParameters{
		CurrentAsset: dec(5_000_000), TargetAsset: dec(65_000_000), AnnualReturnPercent: dec(0), Years: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "1000000", required.String(), "zero rate divides the remainder evenly")
}

func TestRequiredMonthlyContributionAlreadyMet(t *testing.T) {
	required, err := RequiredMonthlyContribution(domain.GoalParameters{
		CurrentAsset: dec(100_000_000), TargetAsset: dec(150_000_000), AnnualReturnPercent: dec(10), Years: 5,
	})
	require.NoError(t, err)
	assert.True(t, required.IsZero())

	required, err = RequiredMonthlyContribution(domain.GoalParameters{
		CurrentAsset: dec(100), TargetAsset: dec(100), Years: 0,
	})
	require.NoError(t, err)
	assert.True(t, required.IsZero())
}

func TestRequiredMonthlyContributionNoMonths(t *testing.T) {
	_, err := RequiredMonthlyContribution(domain.GoalParameters{
		CurrentAsset: dec(0), TargetAsset: dec(1), AnnualReturnPercent: dec(5), Years: 0,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	_, err = RequiredMonthlyContribution(domain.GoalParameters{TargetAsset: dec(1), Years: -2})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestRequiredAssetForIncome(t *testing.T) {
	asset, err := RequiredAssetForIncome(dec(1_000_000), decs("4.5"))
	require.NoError(t, err)
	assert.Equal(t, "266666667", asset.String())

	asset, err = RequiredAssetForIncome(dec(0), decs("4.5"))
	require.NoError(t, err)
	assert.True(t, asset.IsZero())

	_, err = RequiredAssetForIncome(dec(1_000_000), dec(0))
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	_, err = RequiredAssetForIncome(dec(-1), dec(4))
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestGoalAchievementUnreachable(t *testing.T) {
	result, err := GoalAchievement(domain.GoalSearch{
		CurrentAsset:        dec(0),
		TargetAsset:         dec(1),
		MonthlyContribution: dec(0),
		AnnualReturnPercent: dec(10),
		MaxYears:            1,
	})
	require.NoError(t, err)

	assert.False(t, result.Achievable)
	assert.Nil(t, result.MonthsToTarget)
	assert.Nil(t, result.YearsToTarget)
	assert.Equal(t, 12, result.MonthsElapsed)
	assert.True(t, result.FinalAsset.IsZero())
	assert.Equal(t, []domain.PathPoint{
		{Month: 0, Asset: dec(0)},
		{Month: 6, Asset: dec(0)},
		{Month: 12, Asset: dec(0)},
	}, result.Path)
	assert.Contains(t, result.Summary(), "1 years")
}

func TestGoalAchievementReachable(t *testing.T) {
	result, err := GoalAchievement(domain.GoalSearch{
		CurrentAsset:        dec(0),
		TargetAsset:         dec(10_000_000),
		MonthlyContribution: dec(1_000_000),
		AnnualReturnPercent: dec(0),
	})
	require.NoError(t, err)

	require.True(t, result.Achievable)
	require.NotNil(t, result.MonthsToTarget)
	assert.Equal(t, 10, *result.MonthsToTarget)
	assert.Equal(t, "0.8", result.YearsToTarget.String())
	assert.Equal(t, "10000000", result.FinalAsset.String())
	assert.Equal(t, domain.DefaultSearchYears, result.MaxYears)
	assert.Len(t, result.Path, 2)
	assert.Equal(t, 6, result.Path[1].Month)
	assert.Equal(t, "6000000", result.Path[1].Asset.String())
	assert.Contains(t, result.Summary(), "0.8 years")
}

func TestGoalAchievementAlreadyMet(t *testing.T) {
	result, err := GoalAchievement(domain.GoalSearch{CurrentAsset: dec(50), TargetAsset: dec(10)})
	require.NoError(t, err)
	assert.True(t, result.Achievable)
	assert.Equal(t, 0, *result.MonthsToTarget)
	assert.Len(t, result.Path, 1)
}

func TestGoalAchievementDefaultHorizon(t *testing.T) {
	result, err := GoalAchievement(domain.GoalSearch{
		TargetAsset:         dec(1_000_000_000_000),
		MonthlyContribution: dec(100_000),
		AnnualReturnPercent: dec(5),
	})
	require.NoError(t, err)
	assert.False(t, result.Achievable)
	assert.Equal(t, 360, result.MonthsElapsed)
	assert.Len(t, result.Path, 61)
}

func TestGoalAchievementRejectsInvalidInput(t *testing.T) {
	_, err := GoalAchievement(domain.GoalSearch{TargetAsset: dec(10), MaxYears: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	_, err = GoalAchievement(domain.GoalSearch{TargetAsset: dec(10), MaxYears: 1 << 60})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	_, err = RequiredMonthlyContribution(domain.GoalParameters{TargetAsset: dec(10), Years: domain.MaxYears + 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestOptimizeMultipleGoals(t *testing.T) {
	goals := []domain.Goal{
		{ID: "house", Title: "House deposit", Priority: domain.PriorityHigh, TargetValue: dec(5_000_000), ExpectedReturnPercent: dec(10), TimeHorizonYears: 5},
		{ID: "car", Title: "Car", Priority: domain.PriorityMedium, TargetValue: dec(10_000_000), ExpectedReturnPercent: dec(10), TimeHorizonYears: 5},
		{ID: "island", Title: "Island", Priority: domain.PriorityLow, TargetValue: dec(1_000_000_000)},
	}

	plan, err := OptimizeMultipleGoals(goals, dec(1_200_000))
	require.NoError(t, err)

	require.Len(t, plan.Allocations, 3)
	assert.Equal(t, 3, plan.TotalGoals)
	assert.Equal(t, 2, plan.AchievableGoals)

	expected := []struct {
		allocation int64
		percentage string
	}{{600_000, "50"}, {400_000, "33.3"}, {200_000, "16.7"}}
	for i, alloc := range plan.Allocations {
		assert.Equal(t, goals[i].ID, alloc.GoalID)
		assert.True(t, alloc.Allocation.Equal(dec(expected[i].allocation)), "allocation %d: %s", i, alloc.Allocation)
		assert.Equal(t, expected[i].percentage, alloc.Percentage.String())
	}
	assert.Equal(t, 10, plan.Allocations[2].Result.MaxYears, "unset horizon defaults to ten years")
	assert.False(t, plan.Allocations[2].Result.Achievable)
}

func TestOptimizeMultipleGoalsEdgeCases(t *testing.T) {
	plan, err := OptimizeMultipleGoals(nil, dec(1_000_000))
	require.NoError(t, err)
	assert.Empty(t, plan.Allocations)

	plan, err = OptimizeMultipleGoals([]domain.Goal{{ID: "a", TargetValue: dec(1)}}, dec(0))
	require.NoError(t, err)
	assert.True(t, plan.Allocations[0].Percentage.IsZero())

	_, err = OptimizeMultipleGoals(nil, dec(-5))
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestAnalyzeAssetGoal(t *testing.T) {
	analysis, err := AnalyzeAssetGoal(dec(112_000_000), dec(500_000_000), dec(800_000), dec(10), 10)
	require.NoError(t, err)

	assertNear(t, decs("467064630"), analysis.ProjectedAsset, 1, "projected")
	assert.Equal(t, "93.4", analysis.AchievabilityRate.String())
	assert.False(t, analysis.Achievable)
	assert.True(t, analysis.RequiredMonthlyContribution.GreaterThan(dec(800_000)))

	easy, err := AnalyzeAssetGoal(dec(112_000_000), dec(200_000_000), dec(800_000), dec(10), 10)
	require.NoError(t, err)
	assert.Equal(t, "100", easy.AchievabilityRate.String(), "rate is capped")
	assert.True(t, easy.Achievable)
	assert.True(t, easy.RequiredMonthlyContribution.IsZero())
}

func TestAnalyzeDividendGoal(t *testing.T) {
	analysis, err := AnalyzeDividendGoal(dec(0), dec(1_000_000), dec(2_000_000), decs("4.5"), dec(8), 10)
	require.NoError(t, err)

	assertNear(t, decs("1408094"), analysis.ProjectedMonthlyDividend, 1, "dividend")
	assertNear(t, decs("375491699"), analysis.ProjectedAsset, 1, "asset")
	assert.Equal(t, "100", analysis.AchievabilityRate.String())
	assert.True(t, analysis.Achievable)
	assert.Equal(t, "266666667", analysis.RequiredAsset.String())
	assert.True(t, analysis.AdditionalAssetNeeded.IsZero())

	short, err := AnalyzeDividendGoal(dec(0), dec(1_000_000), dec(500_000), decs("4.5"), dec(0), 5)
	require.NoError(t, err)
	assert.False(t, short.Achievable)
	assert.Equal(t, "30000000", short.ProjectedAsset.String())
	assert.Equal(t, "112500", short.ProjectedMonthlyDividend.String())
	assert.Equal(t, "11.3", short.AchievabilityRate.String())
	assert.Equal(t, "236666667", short.AdditionalAssetNeeded.String())

	_, err = AnalyzeDividendGoal(dec(0), dec(1), dec(1), dec(0), dec(0), 1)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestRecommendedReturn(t *testing.T) {
	tests := []struct {
		profile     domain.RiskProfile
		min, max    int64
		recommended int64
	}{
		{domain.RiskConservative, 5, 8, 6},
		{domain.RiskBalanced, 8, 12, 10},
		{domain.RiskAggressive, 12, 18, 15},
		{domain.RiskProfile("unknown"), 8, 12, 10},
	}
	for _, tt := range tests {
		r := RecommendedReturn(tt.profile)
		assert.True(t, r.Min.Equal(dec(tt.min)), string(tt.profile))
		assert.True(t, r.Max.Equal(dec(tt.max)), string(tt.profile))
		assert.True(t, r.Recommended.Equal(dec(tt.recommended)), string(tt.profile))
	}
}

func TestAgeBasedRecommendation(t *testing.T) {
	tests := []struct {
		age      int
		group    string
		asset    string
		dividend string
		horizon  int
		risk     domain.RiskProfile
	}{
		{25, "twenties", "300000000", "1000000", 10, domain.RiskAggressive},
		{35, "thirties", "500000000", "1500000", 15, domain.RiskBalanced},
		{49, "forties", "800000000", "2500000", 20, domain.RiskBalanced},
		{62, "fifties", "1000000000", "4000000", 15, domain.RiskConservative},
	}
	for _, tt := range tests {
		rec := AgeBasedRecommendation(tt.age, dec(100_000_000), dec(5_000_000))
		assert.Equal(t, tt.group, rec.AgeGroup)
		assert.Equal(t, tt.asset, rec.AssetGoal.String())
		assert.Equal(t, tt.dividend, rec.MonthlyDividendGoal.String())
		assert.Equal(t, tt.horizon, rec.TimeHorizonYears)
		assert.Equal(t, tt.risk, rec.RecommendedRiskProfile)
	}
}

func TestTrackGoalProgress(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		goal        domain.Goal
		asset       decimal.Decimal
		dividend    decimal.Decimal
		achievement string
		status      domain.GoalStatus
	}{
		{
			name:        "asset goal on track",
			goal:        domain.Goal{ID: "a", Type: domain.GoalTypeAsset, TargetValue: dec(100_000_000)},
			asset:       dec(48_000_000),
			achievement: "48",
			status:      domain.GoalOnTrack,
		},
		{
			name:        "dividend goal behind",
			goal:        domain.Goal{ID: "d", Type: domain.GoalTypeDividend, TargetValue: dec(2_000_000)},
			dividend:    dec(500_000),
			achievement: "25",
			status:      domain.GoalBehind,
		},
		{
			name:        "hybrid goal averages both targets",
			goal:        domain.Goal{ID: "h", Type: domain.GoalTypeHybrid, AssetTarget: dec(50_000_000), DividendTarget: dec(1_000_000)},
			asset:       dec(48_000_000),
			dividend:    dec(500_000),
			achievement: "73",
			status:      domain.GoalOnTrack,
		},
		{
			name:        "completed goal is capped",
			goal:        domain.Goal{ID: "c", Type: domain.GoalTypeAsset, TargetValue: dec(100_000_000)},
			asset:       dec(120_000_000),
			achievement: "100",
			status:      domain.GoalCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.goal.CreatedAt = created
			tt.goal.TargetDate = target
			progress := TrackGoalProgress(tt.goal, tt.asset, tt.dividend, now)

			assert.Equal(t, tt.goal.ID, progress.GoalID)
			assert.Equal(t, "50", progress.TimeProgress.String())
			assert.Equal(t, tt.achievement, progress.AchievementProgress.String())
			assert.Equal(t, tt.status, progress.Status)
			assert.Equal(t, tt.status != domain.GoalBehind, progress.OnTrack)
			assert.Equal(t, 365, progress.RemainingDays)
		})
	}
}

func TestTrackGoalProgressAfterDeadline(t *testing.T) {
	goal := domain.Goal{
		Type:        domain.GoalTypeAsset,
		TargetValue: dec(100),
		CreatedAt:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:  time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	progress := TrackGoalProgress(goal, dec(10), dec(0), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "100", progress.TimeProgress.String())
	assert.Equal(t, 0, progress.RemainingDays)
	assert.Equal(t, domain.GoalBehind, progress.Status)
}
