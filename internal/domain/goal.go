package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSearchYears bounds the time-to-target search when no horizon is given.
const DefaultSearchYears = 30

// GoalParameters is the input of the required-contribution solver.
type GoalParameters struct {
	CurrentAsset        decimal.Decimal `yaml:"current_asset" json:"current_asset"`
	TargetAsset         decimal.Decimal `yaml:"target_asset" json:"target_asset"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// Validate checks the solver inputs.
func (p GoalParameters) Validate() error {
	return errors.Join(
		RequireNonNegative("current asset", p.CurrentAsset),
		RequireNonNegative("target asset", p.TargetAsset),
		RequireReturn("annual return", p.AnnualReturnPercent),
		RequireYears("years", p.Years),
	)
}

// GoalSearch is the input of the time-to-target search. MaxYears of zero means DefaultSearchYears.
type GoalSearch struct {
	CurrentAsset        decimal.Decimal `json:"current_asset"`
	TargetAsset         decimal.Decimal `json:"target_asset"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualReturnPercent decimal.Decimal `json:"annual_return_percent"`
	MaxYears            int             `json:"max_years"`
}

// Validate checks the search inputs.
func (s GoalSearch) Validate() error {
	return errors.Join(
		RequireNonNegative("current asset", s.CurrentAsset),
		RequireNonNegative("target asset", s.TargetAsset),
		RequireNonNegative("monthly contribution", s.MonthlyContribution),
		RequireReturn("annual return", s.AnnualReturnPercent),
		RequireYears("max years", s.MaxYears),
	)
}

// Horizon returns the effective search horizon in years.
func (s GoalSearch) Horizon() int {
	if s.MaxYears == 0 {
		return DefaultSearchYears
	}
	return s.MaxYears
}

// PathPoint is a sample of the search path.
type PathPoint struct {
	Month int             `json:"month"`
	Asset decimal.Decimal `json:"asset"`
}

// GoalAchievementResult reports whether and when a target is reached.
// MonthsToTarget and YearsToTarget are nil when the target is not reached within the horizon.
type GoalAchievementResult struct {
	Achievable     bool             `json:"achievable"`
	MonthsToTarget *int             `json:"months_to_target"`
	YearsToTarget  *decimal.Decimal `json:"years_to_target"`
	MonthsElapsed  int              `json:"months_elapsed"`
	FinalAsset     decimal.Decimal  `json:"final_asset"`
	Path           []PathPoint      `json:"path"`
	MaxYears       int              `json:"max_years"`
}

// Summary returns a one-line description of the result.
func (r GoalAchievementResult) Summary() string {
	if r.Achievable && r.YearsToTarget != nil {
		return fmt.Sprintf("target reached in about %s years", r.YearsToTarget.StringFixed(1))
	}
	return fmt.Sprintf("target not reachable within %d years under current conditions", r.MaxYears)
}

// Priority ranks goals when a budget is split between them.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the budget weight of the priority. Unknown priorities count as medium.
func (p Priority) Weight() int64 {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// GoalType distinguishes asset, dividend and combined goals.
type GoalType string

const (
	GoalTypeAsset    GoalType = "asset"
	GoalTypeDividend GoalType = "dividend"
	GoalTypeHybrid   GoalType = "hybrid"
)

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeAsset, GoalTypeDividend, GoalTypeHybrid:
		return true
	}
	return false
}

// Goal is a saved financial goal.
type Goal struct {
	ID                    string          `yaml:"id" json:"id"`
	Title                 string          `yaml:"title" json:"title"`
	Type                  GoalType        `yaml:"type" json:"type"`
	Priority              Priority        `yaml:"priority" json:"priority"`
	CurrentValue          decimal.Decimal `yaml:"current_value" json:"current_value"`
	TargetValue           decimal.Decimal `yaml:"target_value" json:"target_value"`
	ExpectedReturnPercent decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent"`
	TimeHorizonYears      int             `yaml:"time_horizon_years" json:"time_horizon_years"`
	CreatedAt             time.Time       `yaml:"created_at" json:"created_at"`
	TargetDate            time.Time       `yaml:"target_date" json:"target_date"`

	// Hybrid goals track both an asset and a monthly dividend target.
	AssetTarget    decimal.Decimal `yaml:"asset_target,omitempty" json:"asset_target,omitempty"`
	DividendTarget decimal.Decimal `yaml:"dividend_target,omitempty" json:"dividend_target,omitempty"`
}

// GoalAllocation is the share of a monthly budget assigned to one goal.
type GoalAllocation struct {
	GoalID     string                `json:"goal_id"`
	GoalTitle  string                `json:"goal_title"`
	Allocation decimal.Decimal       `json:"allocation"`
	Percentage decimal.Decimal       `json:"percentage"`
	Result     GoalAchievementResult `json:"result"`
}

// AllocationPlan splits a monthly budget across goals by priority.
type AllocationPlan struct {
	TotalBudget     decimal.Decimal  `json:"total_budget"`
	Allocations     []GoalAllocation `json:"allocations"`
	AchievableGoals int              `json:"achievable_goals"`
	TotalGoals      int              `json:"total_goals"`
}

// AssetGoalAnalysis is the wizard analysis of an asset target.
type AssetGoalAnalysis struct {
	ProjectedAsset              decimal.Decimal `json:"projected_asset"`
	AchievabilityRate           decimal.Decimal `json:"achievability_rate"`
	RequiredMonthlyContribution decimal.Decimal `json:"required_monthly_contribution"`
	Achievable                  bool            `json:"achievable"`
}

// DividendGoalAnalysis is the wizard analysis of a monthly dividend target.
type DividendGoalAnalysis struct {
	ProjectedMonthlyDividend decimal.Decimal `json:"projected_monthly_dividend"`
	ProjectedAsset           decimal.Decimal `json:"projected_asset"`
	AchievabilityRate        decimal.Decimal `json:"achievability_rate"`
	RequiredAsset            decimal.Decimal `json:"required_asset"`
	AdditionalAssetNeeded    decimal.Decimal `json:"additional_asset_needed"`
	Achievable               bool            `json:"achievable"`
}

// RiskProfile is an investor's risk tolerance.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// Valid reports whether r is a known risk profile.
func (r RiskProfile) Valid() bool {
	switch r {
	case RiskConservative, RiskBalanced, RiskAggressive:
		return true
	}
	return false
}

// ReturnRange is the expected annual return band of a risk profile, in percent.
type ReturnRange struct {
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
	Recommended decimal.Decimal `json:"recommended"`
}

// AgeRecommendation is a starting goal suggested for an age band.
type AgeRecommendation struct {
	AgeGroup               string          `json:"age_group"`
	AssetGoal              decimal.Decimal `json:"asset_goal"`
	MonthlyDividendGoal    decimal.Decimal `json:"monthly_dividend_goal"`
	TimeHorizonYears       int             `json:"time_horizon_years"`
	RecommendedRiskProfile RiskProfile     `json:"recommended_risk_profile"`
}

// GoalStatus is the tracking state of a goal.
type GoalStatus string

const (
	GoalCompleted GoalStatus = "completed"
	GoalOnTrack   GoalStatus = "on-track"
	GoalBehind    GoalStatus = "behind"
)

// GoalProgress compares elapsed time with achieved progress, both in percent.
type GoalProgress struct {
	GoalID              string          `json:"goal_id"`
	TimeProgress        decimal.Decimal `json:"time_progress"`
	AchievementProgress decimal.Decimal `json:"achievement_progress"`
	OnTrack             bool            `json:"on_track"`
	RemainingDays       int             `json:"remaining_days"`
	Status              GoalStatus      `json:"status"`
}
