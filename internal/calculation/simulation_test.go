package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateYearlyGrowthBoundary(t *testing.T) {
	p := params(112_000_000, 800_000, "10", 10)
	timeline, err := SimulateYearlyGrowth(p, decs("4.5"))
	require.NoError(t, err)
	require.Len(t, timeline, 11)

	first := timeline[0]
	assert.Equal(t, 0, first.Year)
	assert.True(t, first.Asset.Equal(p.CurrentAsset))
	assert.True(t, first.TotalInvested.Equal(p.CurrentAsset))
	assert.True(t, first.Gains.IsZero())
	assert.Equal(t, "420000", first.MonthlyIncome.String())
	assert.Equal(t, "5040000", first.AnnualIncome.String())

	for i, snap := range timeline {
		assert.Equal(t, i, snap.Year)
		assert.True(t, snap.Gains.Equal(snap.Asset.Sub(snap.TotalInvested)), "year %d gains invariant", i)
		expectedInvested := dec(112_000_000 + 800_000*12*int64(i))
		assert.True(t, snap.TotalInvested.Equal(expectedInvested), "year %d invested %s", i, snap.TotalInvested)
	}

	// stepwise and closed form agree at every year boundary
	for year := 1; year <= 10; year++ {
		closed, err := FutureValue(params(112_000_000, 800_000, "10", year))
		require.NoError(t, err)
		assertNear(t, closed, timeline[year].Asset, 1, "year boundary")
	}
}

func TestSimulateYearlyGrowthZeroYears(t *testing.T) {
	timeline, err := SimulateYearlyGrowth(params(1_000_000, 50_000, "8", 0), decs("3"))
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Equal(t, "1000000", timeline[0].Asset.String())
}

func TestSimulateYearlyGrowthZeroReturn(t *testing.T) {
	timeline, err := SimulateYearlyGrowth(params(0, 1_000_000, "0", 3), decs("4.5"))
	require.NoError(t, err)
	for i, snap := range timeline {
		assert.True(t, snap.Asset.Equal(dec(12_000_000*int64(i))))
		assert.True(t, snap.Gains.IsZero())
	}
}

func TestSimulateIsRestartable(t *testing.T) {
	p := params(10_000_000, 300_000, "7", 5)
	a, err := SimulateYearlyGrowth(p, decs("4"))
	require.NoError(t, err)
	b, err := SimulateYearlyGrowth(p, decs("4"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateWithYieldGrowth(t *testing.T) {
	p := params(100_000_000, 0, "0", 2)
	flat, err := SimulateYearlyGrowth(p, decs("4"))
	require.NoError(t, err)
	grown, err := SimulateWithYieldGrowth(p, decs("4"), decs("10"))
	require.NoError(t, err)

	assert.Equal(t, "4000000", flat[2].AnnualIncome.String())
	assert.Equal(t, "4000000", grown[0].AnnualIncome.String())
	assert.Equal(t, "4400000", grown[1].AnnualIncome.String())
	assert.Equal(t, "4840000", grown[2].AnnualIncome.String())
	assert.True(t, grown[2].Asset.Equal(flat[2].Asset), "yield growth does not change the asset path")
}

func TestSimulateRejectsInvalidInput(t *testing.T) {
	_, err := SimulateYearlyGrowth(params(0, 0, "5", -3), decs("4"))
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	_, err = SimulateYearlyGrowth(params(0, 0, "5", 3), decs("-1"))
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	for _, years := range []int{domain.MaxYears + 1, 1 << 50} {
		timeline, err := SimulateYearlyGrowth(params(100, 0, "5", years), decs("4"))
		assert.True(t, errors.Is(err, domain.ErrInvalidParameter), "years %d", years)
		assert.Nil(t, timeline)
	}

	timeline, err := SimulateYearlyGrowth(params(100, 0, "5", domain.MaxYears), decs("4"))
	require.NoError(t, err)
	assert.Len(t, timeline, domain.MaxYears+1)
}
