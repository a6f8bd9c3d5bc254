package output

import (
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzeScenarios_SelectsHighestFinalAsset(t *testing.T) {
	report := &domain.PlanReport{
		Projection: []domain.YearSnapshot{{Year: 0}, {Year: 1, Asset: decimal.NewFromInt(100_000)}},
		Scenarios: domain.ScenarioSet{
			Conservative: domain.Scenario{Key: "conservative", Label: "Conservative", FinalAsset: decimal.NewFromInt(90_000)},
			Moderate:     domain.Scenario{Key: "moderate", Label: "Moderate", FinalAsset: decimal.NewFromInt(100_000)},
			Aggressive:   domain.Scenario{Key: "aggressive", Label: "Aggressive", FinalAsset: decimal.NewFromInt(125_000)},
		},
	}

	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "Aggressive" {
		t.Fatalf("expected Aggressive, got %q", rec.ScenarioName)
	}
	if !rec.AssetChange.Equal(decimal.NewFromInt(25_000)) {
		t.Fatalf("expected change 25000, got %s", rec.AssetChange)
	}
	if !rec.PercentageChange.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25%%, got %s", rec.PercentageChange)
	}
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	rec := AnalyzeScenarios(&domain.PlanReport{})
	if rec.ScenarioName != "" {
		t.Fatalf("expected no recommendation, got %q", rec.ScenarioName)
	}
}
