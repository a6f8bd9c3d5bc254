package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenariosOneYear(t *testing.T) {
	set, err := CompareScenarios(domain.ScenarioBase{
		CurrentAsset:        dec(0),
		MonthlyContribution: dec(500_000),
		Years:               1,
		AnnualYieldPercent:  decs("4.5"),
	})
	require.NoError(t, err)

	for _, s := range set.Ordered() {
		require.Len(t, s.Timeline, 2, s.Key)
		assert.Equal(t, 0, s.Timeline[0].Year)
		assert.Equal(t, 1, s.Timeline[1].Year)
	}
	assert.True(t, set.Conservative.Timeline[1].Asset.LessThan(set.Moderate.Timeline[1].Asset))
	assert.True(t, set.Moderate.Timeline[1].Asset.LessThan(set.Aggressive.Timeline[1].Asset))

	assertNear(t, decs("6139428"), set.Conservative.FinalAsset, 1, "conservative")
	assertNear(t, decs("6282784"), set.Moderate.FinalAsset, 1, "moderate")
	assertNear(t, decs("6430181"), set.Aggressive.FinalAsset, 1, "aggressive")
}

func TestCompareScenariosShape(t *testing.T) {
	set, err := CompareScenarios(domain.ScenarioBase{
		CurrentAsset:        dec(112_000_000),
		MonthlyContribution: dec(800_000),
		Years:               15,
		AnnualYieldPercent:  decs("4.5"),
	})
	require.NoError(t, err)

	expected := []struct {
		key  string
		rate int64
	}{{"conservative", 5}, {"moderate", 10}, {"aggressive", 15}}

	for i, s := range set.Ordered() {
		assert.Equal(t, expected[i].key, s.Key)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Description)
		assert.True(t, s.AnnualReturnPercent.Equal(dec(expected[i].rate)))
		require.Len(t, s.Timeline, 16)
		last := s.Timeline[len(s.Timeline)-1]
		assert.True(t, s.FinalAsset.Equal(last.Asset))
		assert.True(t, s.FinalMonthlyIncome.Equal(last.MonthlyIncome))
		assert.True(t, s.TotalGains.Equal(last.Gains))
	}

	for year := range set.Conservative.Timeline {
		assert.Equal(t, set.Conservative.Timeline[year].Year, set.Aggressive.Timeline[year].Year)
		assert.True(t, set.Conservative.Timeline[year].TotalInvested.Equal(set.Aggressive.Timeline[year].TotalInvested))
	}

	assert.True(t, set.Aggressive.FinalAsset.GreaterThanOrEqual(set.Moderate.FinalAsset))
	assert.True(t, set.Moderate.FinalAsset.GreaterThanOrEqual(set.Conservative.FinalAsset))

	assert.Equal(t, "aggressive", set.Insight.BestScenario)
	assert.True(t, set.Insight.AssetSpread.Equal(set.Aggressive.FinalAsset.Sub(set.Conservative.FinalAsset)))
	assert.True(t, set.Insight.SpreadPercent.IsPositive())
	assert.NotEmpty(t, set.Insight.KeyConsiderations)
}

func TestCompareScenariosZeroInputs(t *testing.T) {
	set, err := CompareScenarios(domain.ScenarioBase{Years: 3, AnnualYieldPercent: decs("4.5")})
	require.NoError(t, err)
	for _, s := range set.Ordered() {
		assert.True(t, s.FinalAsset.IsZero())
	}
	assert.True(t, set.Insight.SpreadPercent.IsZero())
	assert.Equal(t, "conservative", set.Insight.BestScenario, "ties keep the first scenario")
}

func TestCompareScenariosRejectsNegativeYears(t *testing.T) {
	_, err := CompareScenarios(domain.ScenarioBase{Years: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}
