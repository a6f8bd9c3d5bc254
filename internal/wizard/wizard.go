// Package wizard walks a user through defining one financial goal: pick a
// goal type, describe the household, set the target, then review an analysis.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/dateutil"
)

// Step is one page of the wizard.
type Step int

const (
	StepGoalType Step = iota
	StepPersonalInfo
	StepGoalSetting
	StepAnalysis
)

// StepCount is the number of wizard steps.
const StepCount = 4

var stepTitles = [StepCount]string{"Goal type", "Personal info", "Goal setting", "Analysis"}

func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepTitles[s]
}

var (
	// ErrIncomplete is returned by Next when the current step is missing required input.
	ErrIncomplete = errors.New("step is incomplete")
	// ErrLastStep is returned by Next on the analysis step.
	ErrLastStep = errors.New("already on the last step")
	// ErrNotReady is returned when the analysis is requested before the analysis step.
	ErrNotReady = errors.New("wizard has not reached the analysis step")
)

// Experience levels offered on the personal info step.
var ExperienceLevels = []string{"beginner", "intermediate", "advanced"}

const (
	defaultHorizonYears = 10
	defaultReturn       = 10
)

// DefaultDividendYieldPercent is assumed when the holdings carry no yield.
var DefaultDividendYieldPercent = decimal.RequireFromString("4.5")

// PersonalInfo is collected on the second step.
type PersonalInfo struct {
	Age               int
	MonthlyIncome     decimal.Decimal
	MonthlyInvestment decimal.Decimal
	Experience        string
	RiskTolerance     domain.RiskProfile
}

func (p PersonalInfo) complete() bool {
	return p.Age > 0 && p.MonthlyIncome.IsPositive() && p.MonthlyInvestment.IsPositive() &&
		p.Experience != "" && p.RiskTolerance.Valid()
}

// GoalSettings are collected on the third step.
type GoalSettings struct {
	TargetAmount          decimal.Decimal
	TimeHorizonYears      int
	ExpectedReturnPercent decimal.Decimal
	Priority              domain.Priority
}

func (g GoalSettings) complete() bool {
	return g.TargetAmount.IsPositive() && g.TimeHorizonYears > 0
}

// Holdings is the portfolio the goal starts from.
type Holdings struct {
	CurrentAsset         decimal.Decimal
	MonthlyDividend      decimal.Decimal
	DividendYieldPercent decimal.Decimal
}

// HoldingsFromPlan takes the starting point of the wizard from a plan.
func HoldingsFromPlan(cfg *domain.Configuration) Holdings {
	return Holdings{
		CurrentAsset:         cfg.Portfolio.CurrentAsset,
		MonthlyDividend:      cfg.Portfolio.MonthlyDividend,
		DividendYieldPercent: cfg.Portfolio.DividendYieldPercent,
	}
}

// Wizard holds the answers given so far and the current step.
type Wizard struct {
	step     Step
	holdings Holdings

	GoalType domain.GoalType
	Personal PersonalInfo
	Settings GoalSettings
}

// New starts a wizard on the goal type step.
func New(h Holdings) *Wizard {
	if !h.DividendYieldPercent.IsPositive() {
		h.DividendYieldPercent = DefaultDividendYieldPercent
	}
	w := &Wizard{holdings: h}
	w.Reset()
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Holdings returns the starting portfolio.
func (w *Wizard) Holdings() Holdings { return w.holdings }

// CanProceed reports whether the current step has every required answer.
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepGoalType:
		return w.GoalType.Valid()
	case StepPersonalInfo:
		return w.Personal.complete()
	case StepGoalSetting:
		return w.Settings.complete()
	default:
		return false
	}
}

// Next advances one step.
func (w *Wizard) Next() error {
	if w.step == StepAnalysis {
		return ErrLastStep
	}
	if !w.CanProceed() {
		return fmt.Errorf("%w: %s", ErrIncomplete, w.step)
	}
	w.step++
	return nil
}

// Prev goes back one step. It reports false on the first step.
func (w *Wizard) Prev() bool {
	if w.step == StepGoalType {
		return false
	}
	w.step--
	return true
}

// Reset clears every answer and returns to the first step.
func (w *Wizard) Reset() {
	w.step = StepGoalType
	w.GoalType = ""
	w.Personal = PersonalInfo{}
	w.Settings = GoalSettings{
		TimeHorizonYears:      defaultHorizonYears,
		ExpectedReturnPercent: decimal.NewFromInt(defaultReturn),
		Priority:              domain.PriorityHigh,
	}
}

// Analysis is shown on the last step.
type Analysis struct {
	GoalType       domain.GoalType
	Asset          *domain.AssetGoalAnalysis
	Dividend       *domain.DividendGoalAnalysis
	ReturnRange    domain.ReturnRange
	Recommendation domain.AgeRecommendation
	Strengths      []string
	Improvements   []string
}

// Achievable reports whether every analysed target is reachable.
func (a Analysis) Achievable() bool {
	if a.Asset != nil && !a.Asset.Achievable {
		return false
	}
	if a.Dividend != nil && !a.Dividend.Achievable {
		return false
	}
	return a.Asset != nil || a.Dividend != nil
}

// Analyze evaluates the goal. Asset goals use the asset projection, dividend
// goals the dividend projection, hybrid goals both against the same target.
func (w *Wizard) Analyze() (Analysis, error) {
	if w.step != StepAnalysis {
		return Analysis{}, ErrNotReady
	}
	s := w.Settings
	a := Analysis{
		GoalType:       w.GoalType,
		ReturnRange:    calculation.RecommendedReturn(w.Personal.RiskTolerance),
		Recommendation: calculation.AgeBasedRecommendation(w.Personal.Age, w.holdings.CurrentAsset, w.Personal.MonthlyIncome),
	}

	if w.GoalType == domain.GoalTypeAsset || w.GoalType == domain.GoalTypeHybrid {
		res, err := calculation.AnalyzeAssetGoal(w.holdings.CurrentAsset, s.TargetAmount, w.Personal.MonthlyInvestment, s.ExpectedReturnPercent, s.TimeHorizonYears)
		if err != nil {
			return Analysis{}, err
		}
		a.Asset = &res
	}
	if w.GoalType == domain.GoalTypeDividend || w.GoalType == domain.GoalTypeHybrid {
		res, err := calculation.AnalyzeDividendGoal(w.holdings.MonthlyDividend, s.TargetAmount, w.Personal.MonthlyInvestment,
			w.holdings.DividendYieldPercent, s.ExpectedReturnPercent, s.TimeHorizonYears)
		if err != nil {
			return Analysis{}, err
		}
		a.Dividend = &res
	}

	a.Strengths, a.Improvements = assessSituation(w.holdings, w.Personal)
	return a, nil
}

var (
	strongDividendRatio = decimal.NewFromInt(20)
	weakDividendRatio   = decimal.NewFromInt(10)
	strongAssetRatio    = decimal.NewFromInt(3)
	weakAssetRatio      = decimal.NewFromInt(2)
	hundred             = decimal.NewFromInt(100)
	twelve              = decimal.NewFromInt(12)
)

// assessSituation compares dividends with monthly income and assets with annual income.
func assessSituation(h Holdings, p PersonalInfo) (strengths, improvements []string) {
	if !p.MonthlyIncome.IsPositive() {
		return nil, nil
	}
	dividendRatio := h.MonthlyDividend.Div(p.MonthlyIncome).Mul(hundred)
	assetRatio := h.CurrentAsset.Div(p.MonthlyIncome.Mul(twelve))

	if dividendRatio.GreaterThan(strongDividendRatio) {
		strengths = append(strengths, "Dividends cover a large share of monthly income")
	}
	if assetRatio.GreaterThan(strongAssetRatio) {
		strengths = append(strengths, "Assets are healthy relative to annual income")
	}
	if p.Age < 40 && p.RiskTolerance == domain.RiskAggressive {
		strengths = append(strengths, "A long horizon suits an aggressive profile")
	}
	if dividendRatio.LessThan(weakDividendRatio) {
		improvements = append(improvements, "Grow dividend holdings to build passive income")
	}
	if assetRatio.LessThan(weakAssetRatio) {
		improvements = append(improvements, "Raise the savings rate to accumulate assets faster")
	}
	return strengths, improvements
}

// Goal converts the answers into a plan goal. It is only available on the analysis step.
func (w *Wizard) Goal(id, title string, now time.Time) (domain.Goal, error) {
	if w.step != StepAnalysis {
		return domain.Goal{}, ErrNotReady
	}
	g := domain.Goal{
		ID:                    id,
		Title:                 title,
		Type:                  w.GoalType,
		Priority:              w.Settings.Priority,
		TargetValue:           w.Settings.TargetAmount,
		ExpectedReturnPercent: w.Settings.ExpectedReturnPercent,
		TimeHorizonYears:      w.Settings.TimeHorizonYears,
		CreatedAt:             now,
		TargetDate:            dateutil.AddYears(now, w.Settings.TimeHorizonYears),
	}
	switch w.GoalType {
	case domain.GoalTypeDividend:
		g.CurrentValue = w.holdings.MonthlyDividend
	case domain.GoalTypeHybrid:
		g.CurrentValue = w.holdings.CurrentAsset
		g.AssetTarget = w.Settings.TargetAmount
		g.DividendTarget = w.Settings.TargetAmount
	default:
		g.CurrentValue = w.holdings.CurrentAsset
	}
	return g, nil
}
