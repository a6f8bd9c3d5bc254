package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "profile:\n" +
		"  name: \"Kim\"\n" +
		"  age: 35\n" +
		"  retirement_age: 60\n" +
		"  monthly_income: 5000000\n" +
		"portfolio:\n" +
		"  current_asset: 112000000\n" +
		"  monthly_contribution: 800000\n" +
		"  expected_return_percent: 7\n" +
		"  dividend_yield_percent: 4.5\n" +
		"pension:\n" +
		"  national:\n" +
		"    average_monthly_salary: 4000000\n" +
		"    contribution_years: 10\n" +
		"  irp:\n" +
		"    monthly_contribution: 300000\n" +
		"    annual_return_percent: 5\n" +
		"tax_rules:\n" +
		"  income_threshold: 55000000\n" +
		"  low_income_rate_percent: 16.5\n" +
		"  high_income_rate_percent: 13.2\n" +
		"  pension_savings_cap: 6000000\n" +
		"  irp_cap: 3000000\n" +
		"  total_cap: 9000000\n" +
		"dividends:\n" +
		"  - name: \"KODEX High Dividend\"\n" +
		"    payment_date: 2025-01-15T00:00:00Z\n" +
		"    shares: 1000\n" +
		"    amount: 125000\n" +
		"goals:\n" +
		"  - title: \"House\"\n" +
		"    target_value: 300000000\n" +
		"    time_horizon_years: 8\n" +
		"assumptions:\n" +
		"  monthly_goal_budget: 500000\n"

	tmpfile, err := os.CreateTemp("", "test_plan_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	assert.Equal(t, "Kim", config.Profile.Name)
	assert.True(t, config.Portfolio.DividendYieldPercent.Equal(decimal.NewFromFloat(4.5)))
	assert.Equal(t, 10, config.Pension.National.ContributionYears)
	require.NotNil(t, config.TaxRules)
	assert.Equal(t, "16.5", config.TaxRules.LowIncomeRatePercent.String())

	// defaults
	assert.Equal(t, DefaultProjectionYears, config.Assumptions.ProjectionYears)
	assert.Equal(t, domain.RiskBalanced, config.Profile.RiskProfile)
	require.Len(t, config.Goals, 1)
	assert.Equal(t, "goal-1", config.Goals[0].ID)
	assert.Equal(t, domain.GoalTypeAsset, config.Goals[0].Type)
	assert.Equal(t, domain.PriorityMedium, config.Goals[0].Priority)
	require.Len(t, config.Dividends, 1)
	assert.Equal(t, domain.DividendPredicted, config.Dividends[0].Status)
	assert.Equal(t, time.January, config.Dividends[0].PaymentDate.Month())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
profile:
	name: "Kim"
	age: "thirty"
`

	tmpfile, err := os.CreateTemp("", "test_plan_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_InvalidDecimal(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("portfolio:\n  current_asset: lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_ValidationFailure(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("profile:\n  name: Kim\n  age: 35\n  retirement_age: 60\nportfolio:\n  current_asset: -5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "portfolio validation failed")
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

func TestValidateConfiguration_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{"missing name", func(c *domain.Configuration) { c.Profile.Name = "" }, "name is required"},
		{"zero age", func(c *domain.Configuration) { c.Profile.Age = 0 }, "age must be between 1 and 120"},
		{"retirement before age", func(c *domain.Configuration) { c.Profile.RetirementAge = 30 }, "retirement age 30 cannot be before current age 35"},
		{"unknown risk profile", func(c *domain.Configuration) { c.Profile.RiskProfile = "reckless" }, "risk profile must be"},
		{"negative income", func(c *domain.Configuration) { c.Profile.MonthlyIncome = decimal.NewFromInt(-1) }, "monthly income cannot be negative"},
		{"negative contribution", func(c *domain.Configuration) { c.Portfolio.MonthlyContribution = decimal.NewFromInt(-1) }, "monthly contribution cannot be negative"},
		{"return below -100", func(c *domain.Configuration) { c.Portfolio.ExpectedReturnPercent = decimal.NewFromInt(-120) }, "expected return cannot be below -100%"},
		{"negative pension balance", func(c *domain.Configuration) { c.Pension.DC.CurrentBalance = decimal.NewFromInt(-1) }, "pension validation failed: dc:"},
		{"bad tax rules", func(c *domain.Configuration) {
			rules := domain.DefaultDeductionRules()
			rules.TotalCap = decimal.NewFromInt(1)
			c.TaxRules = &rules
		}, "tax rules validation failed"},
		{"projection years", func(c *domain.Configuration) { c.Assumptions.ProjectionYears = 0 }, "projection years must be between 1 and 60"},
		{"sensitivity rate", func(c *domain.Configuration) {
			c.Assumptions.SensitivityRates = []decimal.Decimal{decimal.NewFromInt(-200)}
		}, "sensitivity rate cannot be below -100%"},
		{"goal without title", func(c *domain.Configuration) { c.Goals[0].Title = "" }, "goal 0 validation failed: title is required"},
		{"goal type", func(c *domain.Configuration) { c.Goals[0].Type = "car" }, "type must be"},
		{"goal dates", func(c *domain.Configuration) {
			c.Goals[0].TargetDate = c.Goals[0].CreatedAt.AddDate(-1, 0, 0)
		}, "target date cannot be before created date"},
		{"duplicate goal", func(c *domain.Configuration) { c.Goals = append(c.Goals, c.Goals[0]) }, "duplicate id"},
		{"dividend", func(c *domain.Configuration) { c.Dividends[0].Amount = decimal.NewFromInt(-1) }, "dividend 0 validation failed"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()

	path := filepath.Join(t.TempDir(), "plans", "example.yaml")
	require.NoError(t, parser.SaveConfiguration(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.Profile.Name, loaded.Profile.Name)
	assert.True(t, original.Portfolio.CurrentAsset.Equal(loaded.Portfolio.CurrentAsset))
	assert.True(t, original.Portfolio.DividendYieldPercent.Equal(loaded.Portfolio.DividendYieldPercent))
	assert.True(t, original.Pension.DC.EmployerContribution.Equal(loaded.Pension.DC.EmployerContribution))
	require.Len(t, loaded.Goals, len(original.Goals))
	assert.True(t, original.Goals[0].TargetDate.Equal(loaded.Goals[0].TargetDate))
	require.Len(t, loaded.Dividends, len(original.Dividends))
	assert.True(t, original.Dividends[2].Confidence.Equal(loaded.Dividends[2].Confidence))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.NotNil(t, config)
	assert.Equal(t, 35, config.Profile.Age)
	assert.Len(t, config.Goals, 2)
	assert.Len(t, config.Dividends, 3)

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

// Helper functions

func createValidTestConfiguration() *domain.Configuration {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Configuration{
		Profile: domain.Profile{
			Name:          "Kim",
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
		},
		Pension: domain.PensionAccounts{
			National: domain.NationalPensionInput{AverageMonthlySalary: decimal.NewFromInt(4_000_000), ContributionYears: 10},
		},
		Dividends: []domain.DividendPayment{
			{Name: "KODEX High Dividend", PaymentDate: created, Shares: 1000, Amount: decimal.NewFromInt(125_000), Status: domain.DividendConfirmed},
		},
		Goals: []domain.Goal{
			{ID: "house", Title: "House", Type: domain.GoalTypeAsset, Priority: domain.PriorityHigh,
				TargetValue: decimal.NewFromInt(300_000_000), CreatedAt: created, TargetDate: created.AddDate(8, 0, 0)},
		},
		Assumptions: domain.Assumptions{ProjectionYears: 10},
	}
}
