package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateVectorClampsEveryField(t *testing.T) {
	s := NewStateVector(1.5, -0.3, Vitality{Body: 2, Mind: -1, Appearance: math.NaN()}, 7, -7, 0.5)

	assert.Equal(t, 1.0, s.LiquidWealth)
	assert.Equal(t, 0.0, s.Equity)
	assert.Equal(t, 1.0, s.Vitality.Body)
	assert.Equal(t, 0.0, s.Vitality.Mind)
	assert.Equal(t, 0.0, s.Vitality.Appearance)
	assert.Equal(t, 1.0, s.Intelligence)
	assert.Equal(t, 0.0, s.Status)
	assert.Equal(t, 0.5, s.Resilience)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewStateVector(0.5, 0.5, Vitality{Body: 0.5, Mind: 0.5, Appearance: 0.5}, 0.5, 0.5, 0.5)
	clone := orig.Clone()
	clone.LiquidWealth = 0.9
	clone.Vitality.Body = 0.1

	assert.Equal(t, 0.5, orig.LiquidWealth)
	assert.Equal(t, 0.5, orig.Vitality.Body)
}

func TestScaleRoundTripNormalized(t *testing.T) {
	for _, sc := range []ScaleSpec{LiquidWealthScale, EquityScale} {
		for x := 0.0; x <= 1.0; x += 0.05 {
			got := sc.FromReal(sc.ToReal(x))
			assert.InDeltaf(t, x, got, 1e-6, "scale %+v at x=%f", sc, x)
		}
	}
}

func TestScaleRoundTripReal(t *testing.T) {
	cases := []int64{-100_000, -50_000, 0, 10_000, 250_000, 1_000_000, 10_000_000}
	for _, v := range cases {
		real := decimal.NewFromInt(v)
		back := LiquidWealthScale.ToReal(LiquidWealthScale.FromReal(real))
		diff := back.Sub(real).Abs()
		assert.Truef(t, diff.LessThan(decimal.NewFromInt(1)), "liquid round trip of %d drifted by %s", v, diff)
	}
}

func TestScaleMonotonic(t *testing.T) {
	for _, sc := range []ScaleSpec{LiquidWealthScale, EquityScale} {
		prev := sc.ToReal(0)
		for x := 0.01; x <= 1.0; x += 0.01 {
			cur := sc.ToReal(x)
			require.Truef(t, cur.GreaterThanOrEqual(prev), "scale not monotonic at x=%f", x)
			prev = cur
		}
	}
}

func TestScaleBounds(t *testing.T) {
	assert.True(t, LiquidWealthScale.ToReal(0).Equal(decimal.NewFromInt(-100_000)))
	assert.True(t, LiquidWealthScale.ToReal(1).Equal(decimal.NewFromInt(10_000_000)))
	assert.True(t, EquityScale.ToReal(0).Equal(decimal.Zero))
	assert.True(t, EquityScale.ToReal(1).Equal(decimal.NewFromInt(50_000_000)))

	// Out-of-bounds real input clamps instead of erroring.
	assert.Equal(t, 0.0, EquityScale.FromReal(decimal.NewFromInt(-5)))
	assert.Equal(t, 1.0, EquityScale.FromReal(decimal.NewFromInt(999_000_000)))
}

func TestCurveCompressesMidRange(t *testing.T) {
	// The exponential shape keeps mid-range states at middle-class figures:
	// normalized 0.5 must map far below the linear midpoint.
	mid := LiquidWealthScale.ToReal(0.5)
	linearMid := decimal.NewFromInt(4_950_000)
	assert.True(t, mid.LessThan(linearMid), "mid-range should compress, got %s", mid)
	assert.True(t, mid.GreaterThan(decimal.NewFromInt(0)))
}

func TestToRealUnitsNetWorth(t *testing.T) {
	s := NewStateVector(0.5, 0.5, Vitality{Body: 0.9, Mind: 0.2, Appearance: 0.5}, 0.5, 0.99, 0.01)
	real := s.ToRealUnits()

	assert.True(t, real.NetWorth.Equal(real.LiquidWealth.Add(real.Equity)))
	assert.Equal(t, "Peak", real.BodyLabel)
	assert.Equal(t, "Strained", real.MindLabel)
	assert.Equal(t, "Renowned", real.StatusLabel)
	assert.Equal(t, "Shattered", real.ResilienceLabel)
}

func TestFromRealUnits(t *testing.T) {
	s := FromRealUnits(RealOverrides{
		LiquidWealth: decimal.NewFromInt(50_000),
		Equity:       decimal.NewFromInt(2_000_000),
		Body:         0.7, Mind: 0.7, Appearance: 0.7,
		Intelligence: 0.6, Status: 1.8, Resilience: -2,
	})

	assert.True(t, s.LiquidWealth > 0 && s.LiquidWealth < 1)
	assert.True(t, s.Equity > 0 && s.Equity < 1)
	assert.Equal(t, 1.0, s.Status)
	assert.Equal(t, 0.0, s.Resilience)

	back := s.ToRealUnits()
	assert.True(t, back.LiquidWealth.Sub(decimal.NewFromInt(50_000)).Abs().LessThan(decimal.NewFromInt(1)))
	assert.True(t, back.Equity.Sub(decimal.NewFromInt(2_000_000)).Abs().LessThan(decimal.NewFromInt(1)))
}

func TestTierIndexBands(t *testing.T) {
	assert.Equal(t, 0, TierIndex(0))
	assert.Equal(t, 0, TierIndex(0.16))
	assert.Equal(t, 1, TierIndex(0.17))
	assert.Equal(t, 2, TierIndex(0.34))
	assert.Equal(t, 5, TierIndex(0.84))
	assert.Equal(t, 5, TierIndex(1))
	assert.Equal(t, 0, TierIndex(-3))
	assert.Equal(t, 5, TierIndex(3))
}
