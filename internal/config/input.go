package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProjectionYears is used when a plan does not set projection_years.
	DefaultProjectionYears = 10
	maxProjectionYears     = 60
	maxAge                 = 120
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file, fills defaults and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a plan from YAML bytes, fills defaults and validates it
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills the optional settings a plan file may leave out
func ApplyDefaults(config *domain.Configuration) {
	if config.Assumptions.ProjectionYears == 0 {
		config.Assumptions.ProjectionYears = DefaultProjectionYears
	}
	if config.Profile.RiskProfile == "" {
		config.Profile.RiskProfile = domain.RiskBalanced
	}
	for i := range config.Goals {
		g := &config.Goals[i]
		if g.Type == "" {
			g.Type = domain.GoalTypeAsset
		}
		if g.Priority == "" {
			g.Priority = domain.PriorityMedium
		}
		if g.ID == "" {
			g.ID = fmt.Sprintf("goal-%d", i+1)
		}
	}
	for i := range config.Dividends {
		if config.Dividends[i].Status == "" {
			config.Dividends[i].Status = domain.DividendPredicted
		}
	}
}

// ValidateConfiguration validates the loaded plan
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := ip.validatePortfolio(&config.Portfolio); err != nil {
		return fmt.Errorf("portfolio validation failed: %w", err)
	}

	if err := ip.validatePension(&config.Pension); err != nil {
		return fmt.Errorf("pension validation failed: %w", err)
	}

	if config.TaxRules != nil {
		if err := config.TaxRules.Validate(); err != nil {
			return fmt.Errorf("tax rules validation failed: %w", err)
		}
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	seen := make(map[string]bool, len(config.Goals))
	for i, goal := range config.Goals {
		if seen[goal.ID] {
			return fmt.Errorf("goal %d validation failed: duplicate id %q", i, goal.ID)
		}
		seen[goal.ID] = true
		if err := ip.validateGoal(&goal); err != nil {
			return fmt.Errorf("goal %d validation failed: %w", i, err)
		}
	}

	for i, payment := range config.Dividends {
		if err := payment.Validate(); err != nil {
			return fmt.Errorf("dividend %d validation failed: %w", i, err)
		}
	}

	return nil
}

func (ip *InputParser) validateProfile(profile *domain.Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("name is required")
	}
	if profile.Age <= 0 || profile.Age > maxAge {
		return fmt.Errorf("age must be between 1 and %d", maxAge)
	}
	if profile.RetirementAge < profile.Age {
		return fmt.Errorf("retirement age %d cannot be before current age %d", profile.RetirementAge, profile.Age)
	}
	if !profile.RiskProfile.Valid() {
		return fmt.Errorf("risk profile must be 'conservative', 'balanced', or 'aggressive'")
	}
	return errors.Join(
		domain.RequireNonNegative("monthly income", profile.MonthlyIncome),
		domain.RequireNonNegative("annual income", profile.AnnualIncome),
	)
}

func (ip *InputParser) validatePortfolio(portfolio *domain.Portfolio) error {
	return errors.Join(
		domain.RequireNonNegative("current asset", portfolio.CurrentAsset),
		domain.RequireNonNegative("monthly contribution", portfolio.MonthlyContribution),
		domain.RequireReturn("expected return", portfolio.ExpectedReturnPercent),
		domain.RequireNonNegative("dividend yield", portfolio.DividendYieldPercent),
		domain.RequireReturn("yield growth", portfolio.YieldGrowthPercent),
		domain.RequireNonNegative("monthly dividend", portfolio.MonthlyDividend),
	)
}

func (ip *InputParser) validatePension(pension *domain.PensionAccounts) error {
	if err := pension.National.Validate(); err != nil {
		return fmt.Errorf("national: %w", err)
	}
	if err := pension.DC.Validate(); err != nil {
		return fmt.Errorf("dc: %w", err)
	}
	if err := pension.IRP.Validate(); err != nil {
		return fmt.Errorf("irp: %w", err)
	}
	if err := pension.PensionSavings.Validate(); err != nil {
		return fmt.Errorf("pension_savings: %w", err)
	}
	return nil
}

func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if assumptions.ProjectionYears < 1 || assumptions.ProjectionYears > maxProjectionYears {
		return fmt.Errorf("projection years must be between 1 and %d", maxProjectionYears)
	}
	for _, rate := range assumptions.SensitivityRates {
		if err := domain.RequireReturn("sensitivity rate", rate); err != nil {
			return err
		}
	}
	return errors.Join(
		domain.RequireNonNegative("monthly goal budget", assumptions.MonthlyGoalBudget),
		domain.RequireNonNegative("last year dividend total", assumptions.LastYearDividendTotal),
		domain.RequireReturn("pension target return", assumptions.PensionTargetReturn),
	)
}

func (ip *InputParser) validateGoal(goal *domain.Goal) error {
	if goal.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !goal.Type.Valid() {
		return fmt.Errorf("type must be 'asset', 'dividend', or 'hybrid'")
	}
	if goal.TimeHorizonYears < 0 {
		return fmt.Errorf("time horizon cannot be negative")
	}
	if !goal.CreatedAt.IsZero() && !goal.TargetDate.IsZero() && goal.TargetDate.Before(goal.CreatedAt) {
		return fmt.Errorf("target date cannot be before created date")
	}
	return errors.Join(
		domain.RequireNonNegative("current value", goal.CurrentValue),
		domain.RequireNonNegative("target value", goal.TargetValue),
		domain.RequireReturn("expected return", goal.ExpectedReturnPercent),
		domain.RequireNonNegative("asset target", goal.AssetTarget),
		domain.RequireNonNegative("dividend target", goal.DividendTarget),
	)
}

// SaveConfiguration writes a plan as YAML, creating the parent directory if needed
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example plan for a 35-year-old saver
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	createdAt := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	return &domain.Configuration{
		Profile: domain.Profile{
			Name:          "Example Saver",
			Age:           35,
			RetirementAge: 60,
			RiskProfile:   domain.RiskBalanced,
			MonthlyIncome: decimal.NewFromInt(5_000_000),
		},
		Portfolio: domain.Portfolio{
			CurrentAsset:          decimal.NewFromInt(112_000_000),
			MonthlyContribution:   decimal.NewFromInt(800_000),
			ExpectedReturnPercent: decimal.NewFromInt(7),
			DividendYieldPercent:  decimal.NewFromFloat(4.5),
			YieldGrowthPercent:    decimal.Zero,
			MonthlyDividend:       decimal.NewFromInt(1_200_000),
		},
		Pension: domain.PensionAccounts{
			National: domain.NationalPensionInput{
				AverageMonthlySalary: decimal.NewFromInt(4_000_000),
				ContributionYears:    10,
			},
			DC: domain.PensionAccountInput{
				CurrentBalance:       decimal.NewFromInt(20_000_000),
				MonthlyContribution:  decimal.NewFromInt(300_000),
				EmployerContribution: decimal.NewFromInt(300_000),
				AnnualReturnPercent:  decimal.NewFromInt(5),
			},
			IRP: domain.PensionAccountInput{
				CurrentBalance:      decimal.NewFromInt(5_000_000),
				MonthlyContribution: decimal.NewFromInt(300_000),
				AnnualReturnPercent: decimal.NewFromInt(5),
			},
			PensionSavings: domain.PensionAccountInput{
				CurrentBalance:      decimal.NewFromInt(10_000_000),
				MonthlyContribution: decimal.NewFromInt(400_000),
				AnnualReturnPercent: decimal.NewFromInt(6),
			},
		},
		Dividends: []domain.DividendPayment{
			{Name: "KODEX High Dividend", Code: "279530", PaymentDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Shares: 1000, Amount: decimal.NewFromInt(125_000), Status: domain.DividendConfirmed},
			{Name: "ARIRANG High Dividend", Code: "161510", PaymentDate: time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC), Shares: 500, Amount: decimal.NewFromInt(120_000), Status: domain.DividendConfirmed},
			{Name: "SPDR Portfolio S&P 500 High Dividend", Code: "SPYD", PaymentDate: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), Shares: 300, Amount: decimal.NewFromInt(68_000), Status: domain.DividendPredicted, Confidence: decimal.NewFromInt(90)},
		},
		Goals: []domain.Goal{
			{
				ID:                    "retirement-fund",
				Title:                 "Retirement fund",
				Type:                  domain.GoalTypeAsset,
				Priority:              domain.PriorityHigh,
				CurrentValue:          decimal.NewFromInt(112_000_000),
				TargetValue:           decimal.NewFromInt(500_000_000),
				ExpectedReturnPercent: decimal.NewFromInt(10),
				TimeHorizonYears:      15,
				CreatedAt:             createdAt,
				TargetDate:            dateutil.AddYears(createdAt, 15),
			},
			{
				ID:                    "dividend-income",
				Title:                 "Monthly dividend income",
				Type:                  domain.GoalTypeDividend,
				Priority:              domain.PriorityMedium,
				TargetValue:           decimal.NewFromInt(3_000_000),
				ExpectedReturnPercent: decimal.NewFromInt(8),
				TimeHorizonYears:      20,
				CreatedAt:             createdAt,
				TargetDate:            dateutil.AddYears(createdAt, 20),
			},
		},
		Assumptions: domain.Assumptions{
			ProjectionYears:       DefaultProjectionYears,
			MonthlyGoalBudget:     decimal.NewFromInt(800_000),
			LastYearDividendTotal: decimal.NewFromInt(2_800_000),
			PensionTargetReturn:   decimal.NewFromInt(6),
		},
	}
}
