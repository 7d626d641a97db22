package simulation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lifetrace/trajectory/internal/domain"
)

// Outcome-bucket thresholds. The buckets are independent predicates over
// final or worst-case state; a path can land in several at once.
var wealthyNetWorthThreshold = decimal.NewFromInt(5_000_000)

const (
	// A path whose resilience ever falls below this is a burnout risk.
	burnoutResilienceThreshold = 0.15
	// Final composite vitality at or above this counts as high vitality.
	highVitalityThreshold = 0.7
	// Final resilience needed (with high vitality) for the healthy category.
	healthyResilienceFloor = 0.6
	// Every final dimension at or above this counts as balanced.
	balancedDimensionFloor = 0.4
)

// Aggregate reduces an ensemble into summary statistics and the elementwise
// mean trajectory. An empty ensemble returns (nil, nil): "not computed" is
// distinguishable from "computed and zero".
func Aggregate(paths []domain.SimulatedPath, successTarget decimal.Decimal) (*domain.Statistics, []domain.StateVector) {
	if len(paths) == 0 {
		return nil, nil
	}
	if successTarget.IsZero() {
		successTarget = DefaultSuccessTarget
	}

	n := len(paths)
	finals := make([]decimal.Decimal, n)
	var sum decimal.Decimal
	var successes, burnouts int
	var wealthy, balanced, highVitality, burnoutRisk int

	for i, p := range paths {
		fnw := p.FinalNetWorth()
		finals[i] = fnw
		sum = sum.Add(fnw)

		if fnw.GreaterThanOrEqual(successTarget) {
			successes++
		}
		if p.MinResilience < burnoutResilienceThreshold {
			burnouts++
			burnoutRisk++
		}
		if fnw.GreaterThanOrEqual(wealthyNetWorthThreshold) {
			wealthy++
		}
		if final, ok := p.FinalState(); ok {
			if final.Vitality.Composite() >= highVitalityThreshold {
				highVitality++
			}
			if isBalanced(final) {
				balanced++
			}
		}
	}

	sorted := make([]decimal.Decimal, n)
	copy(sorted, finals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	nf := float64(n)
	stats := &domain.Statistics{
		MeanFinalNetWorth:   sum.Div(decimal.NewFromInt(int64(n))).Round(2),
		MedianFinalNetWorth: median(sorted),
		SuccessProbability:  float64(successes) / nf,
		BurnoutProbability:  float64(burnouts) / nf,
		Buckets: domain.OutcomeBuckets{
			WealthyOutcome:  float64(wealthy) / nf,
			BalancedOutcome: float64(balanced) / nf,
			HighVitality:    float64(highVitality) / nf,
			BurnoutRisk:     float64(burnoutRisk) / nf,
		},
		Percentiles: domain.PercentileRanges{
			P10: sorted[n/10],
			P25: sorted[n/4],
			P50: sorted[n/2],
			P75: sorted[3*n/4],
			P90: sorted[9*n/10],
		},
	}
	return stats, MeanPath(paths)
}

// median of an ascending-sorted slice; even lengths average the two middles.
func median(sorted []decimal.Decimal) decimal.Decimal {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2)).Round(2)
}

// isBalanced reports whether no final dimension fell below the balanced
// floor.
func isBalanced(s domain.StateVector) bool {
	return s.LiquidWealth >= balancedDimensionFloor &&
		s.Equity >= balancedDimensionFloor &&
		s.Vitality.Composite() >= balancedDimensionFloor &&
		s.Intelligence >= balancedDimensionFloor &&
		s.Status >= balancedDimensionFloor &&
		s.Resilience >= balancedDimensionFloor
}

// MeanPath computes the elementwise mean trajectory, truncated to the
// shortest path length. A single-path ensemble yields that path exactly.
func MeanPath(paths []domain.SimulatedPath) []domain.StateVector {
	if len(paths) == 0 {
		return nil
	}
	minLen := len(paths[0].States)
	for _, p := range paths[1:] {
		if len(p.States) < minLen {
			minLen = len(p.States)
		}
	}
	if minLen == 0 {
		return nil
	}

	n := float64(len(paths))
	mean := make([]domain.StateVector, minLen)
	for t := 0; t < minLen; t++ {
		var acc domain.StateVector
		for _, p := range paths {
			s := p.States[t]
			acc.LiquidWealth += s.LiquidWealth
			acc.Equity += s.Equity
			acc.Vitality.Body += s.Vitality.Body
			acc.Vitality.Mind += s.Vitality.Mind
			acc.Vitality.Appearance += s.Vitality.Appearance
			acc.Intelligence += s.Intelligence
			acc.Status += s.Status
			acc.Resilience += s.Resilience
		}
		mean[t] = domain.NewStateVector(
			acc.LiquidWealth/n,
			acc.Equity/n,
			domain.Vitality{
				Body:       acc.Vitality.Body / n,
				Mind:       acc.Vitality.Mind / n,
				Appearance: acc.Vitality.Appearance / n,
			},
			acc.Intelligence/n,
			acc.Status/n,
			acc.Resilience/n,
		)
	}
	return mean
}
