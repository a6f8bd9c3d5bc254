package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValueConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.GrowthParameters
		expected int64
	}{
		{"zero return decade of contributions", params(0, 1_000_000, "0", 10), 120_000_000},
		{"no growth no contribution", params(100_000_000, 0, "0", 5), 100_000_000},
		{"lump sum at 12%", params(10_000_000, 0, "12", 1), 11_268_250},     // 1.01^12
		{"contributions at 12%", params(0, 100_000, "12", 1), 1_268_250},    // (1.01^12-1)/0.01
		{"zero years returns current asset", params(5_000_000, 1_000_000, "10", 0), 5_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FutureValue(tt.params)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.expected)), "expected %d, got %s", tt.expected, got.String())
		})
	}
}

func TestFutureValueMatchesClosedForm(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.GrowthParameters
		expected string
	}{
		{"dashboard portfolio", params(112_000_000, 800_000, "10", 10), "467064630"},
		{"twenty years at 7%", params(50_000_000, 1_000_000, "7", 20), "722863602"},
		{"contributions only", params(0, 1_000_000, "10", 10), "204844979"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FutureValue(tt.params)
			require.NoError(t, err)
			assertNear(t, decs(tt.expected), got, 1, tt.name)
		})
	}
}

func TestFutureValueZeroRateConsistency(t *testing.T) {
	for _, asset := range []int64{0, 1, 7_500_000, 300_000_000} {
		for _, contribution := range []int64{0, 250_000, 1_000_000} {
			for _, years := range []int{0, 1, 7, 30} {
				got, err := FutureValue(params(asset, contribution, "0", years))
				require.NoError(t, err)
				expected := asset + contribution*12*int64(years)
				assert.True(t, got.Equal(dec(expected)), "A=%d M=%d Y=%d: expected %d, got %s", asset, contribution, years, expected, got)
			}
		}
	}
}

func TestFutureValueMonotonicity(t *testing.T) {
	base := params(10_000_000, 500_000, "6", 10)
	baseValue, err := FutureValue(base)
	require.NoError(t, err)

	more := []domain.GrowthParameters{
		params(10_000_001, 500_000, "6", 10),
		params(20_000_000, 500_000, "6", 10),
		params(10_000_000, 500_001, "6", 10),
		params(10_000_000, 900_000, "6", 10),
		params(10_000_000, 500_000, "6", 11),
		params(10_000_000, 500_000, "6", 25),
	}
	for _, p := range more {
		v, err := FutureValue(p)
		require.NoError(t, err)
		assert.True(t, v.GreaterThanOrEqual(baseValue), "%+v should not be below %s, got %s", p, baseValue, v)
	}
}

func TestFutureValueNegativeReturn(t *testing.T) {
	v, err := FutureValue(params(100_000_000, 0, "-12", 1))
	require.NoError(t, err)
	assertNear(t, decs("88638487"), v, 1, "0.99^12 of 100M")

	wiped, err := FutureValue(params(100_000_000, 0, "-100", 30))
	require.NoError(t, err)
	assert.True(t, wiped.LessThan(dec(100_000_000)))
	assert.False(t, wiped.IsNegative())
}

func TestFutureValueRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		params domain.GrowthParameters
	}{
		{"negative years", params(0, 0, "5", -1)},
		{"years beyond the limit", params(100, 0, "10", domain.MaxYears+1)},
		{"month count overflow", params(100, 0, "10", math.MaxInt/12+1)},
		{"negative asset", params(-1, 0, "5", 1)},
		{"negative contribution", params(0, -100, "5", 1)},
		{"return below -100%", params(1_000, 0, "-100.5", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FutureValue(tt.params)
			assert.True(t, errors.Is(err, domain.ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestNewGrowthParametersRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		_, err := domain.NewGrowthParameters(bad, 0, 5, 1)
		assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
		_, err = domain.NewGrowthParameters(0, 0, bad, 1)
		assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	}

	_, err := domain.NewGrowthParameters(1_000_000, 0, 5, domain.MaxYears+1)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))

	p, err := domain.NewGrowthParameters(1_000_000, 100_000, 4.5, 3)
	require.NoError(t, err)
	assert.Equal(t, 36, p.Months())
	assert.Equal(t, "4.5", p.AnnualReturnPercent.String())
}

func TestMonthlyRate(t *testing.T) {
	assert.Equal(t, "0.01", MonthlyRate(dec(12)).String())
	assert.True(t, MonthlyRate(dec(0)).IsZero())
	assertNear(t, decs("0.0083333333333333"), MonthlyRate(dec(10)), 0, "10% monthly")
}
