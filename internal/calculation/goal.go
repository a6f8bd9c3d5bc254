package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/rpgo/wealth-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	pathSampleMonths     = 6
	defaultGoalReturn    = 10
	defaultGoalHorizon   = 10
	achievableThreshold  = 95
	onTrackTimeTolerance = "0.9"
)

// RequiredMonthlyContribution solves the annuity formula for the contribution
// that lifts the grown current asset to the target. A target already covered
// by growth of the current asset needs no contribution.
func RequiredMonthlyContribution(p domain.GoalParameters) (decimal.Decimal, error) {
	if err := p.Validate(); err != nil {
		return decimal.Zero, err
	}
	months := p.Years * 12
	remaining := p.TargetAsset.Sub(LumpSumFutureValue(p.CurrentAsset, p.AnnualReturnPercent, months))
	if !remaining.IsPositive() {
		return decimal.Zero, nil
	}
	if months == 0 {
		return decimal.Zero, domain.Invalidf("target %s is above the current asset and no months remain to contribute", p.TargetAsset)
	}
	required := remaining.Div(annuityFactor(MonthlyRate(p.AnnualReturnPercent), months))
	return decimal.Max(decimal.Zero, pkgdec.RoundWhole(required)), nil
}

// RequiredAssetForIncome returns the principal whose yield pays targetMonthlyIncome.
func RequiredAssetForIncome(targetMonthlyIncome, annualYieldPercent decimal.Decimal) (decimal.Decimal, error) {
	if err := domain.RequireNonNegative("target monthly income", targetMonthlyIncome); err != nil {
		return decimal.Zero, err
	}
	if err := domain.RequirePositive("annual yield", annualYieldPercent); err != nil {
		return decimal.Zero, err
	}
	return pkgdec.RoundWhole(requiredAsset(targetMonthlyIncome, annualYieldPercent)), nil
}

func requiredAsset(targetMonthlyIncome, annualYieldPercent decimal.Decimal) decimal.Decimal {
	return targetMonthlyIncome.Mul(twelve).Mul(hundred).Div(annualYieldPercent)
}

// GoalAchievement steps the asset month by month until it reaches the target or
// the horizon runs out. Not reaching the target is a normal result.
func GoalAchievement(s domain.GoalSearch) (domain.GoalAchievementResult, error) {
	if err := s.Validate(); err != nil {
		return domain.GoalAchievementResult{}, err
	}

	horizon := s.Horizon()
	limit := horizon * 12
	step := one.Add(MonthlyRate(s.AnnualReturnPercent))

	asset := s.CurrentAsset
	months := 0
	path := []domain.PathPoint{{Month: 0, Asset: pkgdec.RoundWhole(asset)}}

	for asset.LessThan(s.TargetAsset) && months < limit {
		asset = asset.Mul(step).Add(s.MonthlyContribution).Round(internalPlaces)
		months++
		if months%pathSampleMonths == 0 {
			path = append(path, domain.PathPoint{Month: months, Asset: pkgdec.RoundWhole(asset)})
		}
	}

	result := domain.GoalAchievementResult{
		Achievable:    asset.GreaterThanOrEqual(s.TargetAsset),
		MonthsElapsed: months,
		FinalAsset:    pkgdec.RoundWhole(asset),
		Path:          path,
		MaxYears:      horizon,
	}
	if result.Achievable {
		m := months
		years := decimal.NewFromInt(int64(months)).Div(twelve).Round(1)
		result.MonthsToTarget = &m
		result.YearsToTarget = &years
	}
	return result, nil
}

// OptimizeMultipleGoals splits a monthly budget across goals by priority weight
// and runs the time-to-target search for each share.
func OptimizeMultipleGoals(goals []domain.Goal, monthlyBudget decimal.Decimal) (domain.AllocationPlan, error) {
	if err := domain.RequireNonNegative("monthly budget", monthlyBudget); err != nil {
		return domain.AllocationPlan{}, err
	}

	plan := domain.AllocationPlan{
		TotalBudget: monthlyBudget,
		Allocations: make([]domain.GoalAllocation, 0, len(goals)),
		TotalGoals:  len(goals),
	}
	if len(goals) == 0 {
		return plan, nil
	}

	var totalWeight int64
	for _, g := range goals {
		totalWeight += g.Priority.Weight()
	}
	weightSum := decimal.NewFromInt(totalWeight)

	for _, g := range goals {
		allocation := pkgdec.RoundWhole(monthlyBudget.Mul(decimal.NewFromInt(g.Priority.Weight())).Div(weightSum))

		percentage := decimal.Zero
		if monthlyBudget.IsPositive() {
			percentage = allocation.Div(monthlyBudget).Mul(hundred).Round(1)
		}

		expected := g.ExpectedReturnPercent
		if expected.IsZero() {
			expected = decimal.NewFromInt(defaultGoalReturn)
		}
		horizon := g.TimeHorizonYears
		if horizon == 0 {
			horizon = defaultGoalHorizon
		}

		result, err := GoalAchievement(domain.GoalSearch{
			CurrentAsset:        g.CurrentValue,
			TargetAsset:         g.TargetValue,
			MonthlyContribution: allocation,
			AnnualReturnPercent: expected,
			MaxYears:            horizon,
		})
		if err != nil {
			return domain.AllocationPlan{}, fmt.Errorf("goal %q: %w", g.ID, err)
		}
		if result.Achievable {
			plan.AchievableGoals++
		}

		plan.Allocations = append(plan.Allocations, domain.GoalAllocation{
			GoalID:     g.ID,
			GoalTitle:  g.Title,
			Allocation: allocation,
			Percentage: percentage,
			Result:     result,
		})
	}

	return plan, nil
}

// achievability returns projected/target in percent capped at 100. A zero target is always met.
func achievability(projected, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return hundred
	}
	return decimal.Min(projected.Div(target).Mul(hundred), hundred)
}

// AnalyzeAssetGoal projects an asset target and reports how much of it the plan covers.
func AnalyzeAssetGoal(currentAsset, targetAsset, monthlyContribution, annualReturnPercent decimal.Decimal, years int) (domain.AssetGoalAnalysis, error) {
	params := domain.GrowthParameters{
		CurrentAsset:        currentAsset,
		MonthlyContribution: monthlyContribution,
		AnnualReturnPercent: annualReturnPercent,
		Years:               years,
	}
	if err := params.Validate(); err != nil {
		return domain.AssetGoalAnalysis{}, err
	}
	if err := domain.RequireNonNegative("target asset", targetAsset); err != nil {
		return domain.AssetGoalAnalysis{}, err
	}

	projected := futureValue(params)
	rate := achievability(projected, targetAsset)

	analysis := domain.AssetGoalAnalysis{
		ProjectedAsset:    pkgdec.RoundWhole(projected),
		AchievabilityRate: rate.Round(1),
		Achievable:        rate.GreaterThanOrEqual(decimal.NewFromInt(achievableThreshold)),
	}
	if years > 0 {
		required, err := RequiredMonthlyContribution(domain.GoalParameters{
			CurrentAsset:        currentAsset,
			TargetAsset:         targetAsset,
			AnnualReturnPercent: annualReturnPercent,
			Years:               years,
		})
		if err != nil {
			return domain.AssetGoalAnalysis{}, err
		}
		analysis.RequiredMonthlyContribution = required
	}
	return analysis, nil
}

// AnalyzeDividendGoal projects a monthly dividend target. The portfolio starts
// at the principal implied by the current dividend and each year adds twelve
// contributions and then grows by annualGrowthPercent.
func AnalyzeDividendGoal(currentMonthlyDividend, targetMonthlyDividend, monthlyContribution, annualYieldPercent, annualGrowthPercent decimal.Decimal, years int) (domain.DividendGoalAnalysis, error) {
	err := errors.Join(
		domain.RequireNonNegative("current monthly dividend", currentMonthlyDividend),
		domain.RequireNonNegative("target monthly dividend", targetMonthlyDividend),
		domain.RequireNonNegative("monthly contribution", monthlyContribution),
		domain.RequirePositive("annual yield", annualYieldPercent),
		domain.RequireReturn("annual growth", annualGrowthPercent),
		domain.RequireYears("years", years),
	)
	if err != nil {
		return domain.DividendGoalAnalysis{}, err
	}

	asset := requiredAsset(currentMonthlyDividend, annualYieldPercent)
	growth := one.Add(annualGrowthPercent.Div(hundred))
	annualContribution := monthlyContribution.Mul(twelve)
	for year := 1; year <= years; year++ {
		asset = asset.Add(annualContribution).Mul(growth).Round(internalPlaces)
	}
	dividend := pkgdec.PercentOf(asset, annualYieldPercent).Div(twelve)

	required := requiredAsset(targetMonthlyDividend, annualYieldPercent)
	rate := achievability(dividend, targetMonthlyDividend)

	return domain.DividendGoalAnalysis{
		ProjectedMonthlyDividend: pkgdec.RoundWhole(dividend),
		ProjectedAsset:           pkgdec.RoundWhole(asset),
		AchievabilityRate:        rate.Round(1),
		RequiredAsset:            pkgdec.RoundWhole(required),
		AdditionalAssetNeeded:    pkgdec.RoundWhole(decimal.Max(decimal.Zero, required.Sub(asset))),
		Achievable:               rate.GreaterThanOrEqual(decimal.NewFromInt(achievableThreshold)),
	}, nil
}

var returnRanges = map[domain.RiskProfile]domain.ReturnRange{
	domain.RiskConservative: {Min: decimal.NewFromInt(5), Max: decimal.NewFromInt(8), Recommended: decimal.NewFromInt(6)},
	domain.RiskBalanced:     {Min: decimal.NewFromInt(8), Max: decimal.NewFromInt(12), Recommended: decimal.NewFromInt(10)},
	domain.RiskAggressive:   {Min: decimal.NewFromInt(12), Max: decimal.NewFromInt(18), Recommended: decimal.NewFromInt(15)},
}

// RecommendedReturn returns the return band for a risk profile. Unknown profiles get the balanced band.
func RecommendedReturn(profile domain.RiskProfile) domain.ReturnRange {
	if r, ok := returnRanges[profile]; ok {
		return r
	}
	return returnRanges[domain.RiskBalanced]
}

type ageBand struct {
	group           string
	assetMultiplier int64
	dividendRatio   decimal.Decimal
	horizonYears    int
	risk            domain.RiskProfile
}

// AgeBasedRecommendation suggests starting goals for the age band of age.
func AgeBasedRecommendation(age int, currentAsset, monthlyIncome decimal.Decimal) domain.AgeRecommendation {
	var band ageBand
	switch {
	case age < 30:
		band = ageBand{"twenties", 3, decimal.RequireFromString("0.2"), 10, domain.RiskAggressive}
	case age < 40:
		band = ageBand{"thirties", 5, decimal.RequireFromString("0.3"), 15, domain.RiskBalanced}
	case age < 50:
		band = ageBand{"forties", 8, decimal.RequireFromString("0.5"), 20, domain.RiskBalanced}
	default:
		band = ageBand{"fifties", 10, decimal.RequireFromString("0.8"), 15, domain.RiskConservative}
	}

	return domain.AgeRecommendation{
		AgeGroup:               band.group,
		AssetGoal:              pkgdec.RoundWhole(currentAsset.Mul(decimal.NewFromInt(band.assetMultiplier))),
		MonthlyDividendGoal:    pkgdec.RoundWhole(monthlyIncome.Mul(band.dividendRatio)),
		TimeHorizonYears:       band.horizonYears,
		RecommendedRiskProfile: band.risk,
	}
}

// TrackGoalProgress compares the share of the goal window that has elapsed with
// the share of the target already reached. A goal is on track while achievement
// is at least 90% of time progress.
func TrackGoalProgress(goal domain.Goal, currentAsset, currentMonthlyDividend decimal.Decimal, now time.Time) domain.GoalProgress {
	timeProgress := decimal.NewFromFloat(dateutil.ElapsedFraction(goal.CreatedAt, goal.TargetDate, now)).Mul(hundred)

	var achievement decimal.Decimal
	switch goal.Type {
	case domain.GoalTypeDividend:
		achievement = progressPercent(currentMonthlyDividend, goal.TargetValue)
	case domain.GoalTypeHybrid:
		assetProgress := progressPercent(currentAsset, goal.AssetTarget)
		dividendProgress := progressPercent(currentMonthlyDividend, goal.DividendTarget)
		achievement = assetProgress.Add(dividendProgress).Div(decimal.NewFromInt(2))
	default:
		achievement = progressPercent(currentAsset, goal.TargetValue)
	}

	onTrack := achievement.GreaterThanOrEqual(timeProgress.Mul(decimal.RequireFromString(onTrackTimeTolerance)))
	status := domain.GoalBehind
	switch {
	case achievement.GreaterThanOrEqual(hundred):
		status = domain.GoalCompleted
	case onTrack:
		status = domain.GoalOnTrack
	}

	return domain.GoalProgress{
		GoalID:              goal.ID,
		TimeProgress:        pkgdec.RoundWhole(timeProgress),
		AchievementProgress: pkgdec.RoundWhole(decimal.Min(achievement, hundred)),
		OnTrack:             onTrack,
		RemainingDays:       dateutil.DaysUntilDate(now, goal.TargetDate),
		Status:              status,
	}
}

func progressPercent(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return hundred
	}
	return current.Div(target).Mul(hundred)
}
