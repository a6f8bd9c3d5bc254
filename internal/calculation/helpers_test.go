package calculation

import (
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decs(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func params(asset, contribution int64, rate string, years int) domain.GrowthParameters {
	return domain.GrowthParameters{
		CurrentAsset:        dec(asset),
		MonthlyContribution: dec(contribution),
		AnnualReturnPercent: decs(rate),
		Years:               years,
	}
}

// assertNear checks |expected - actual| <= tolerance
func assertNear(t *testing.T, expected, actual decimal.Decimal, tolerance int64, name string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(dec(tolerance)),
		"%s: expected %s, got %s (diff %s)", name, expected.String(), actual.String(), diff.String())
}
