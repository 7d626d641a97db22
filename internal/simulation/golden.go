package simulation

import (
	"github.com/lifetrace/trajectory/internal/domain"
)

// Golden-path scoring weights. Final net worth dominates, tempered by how
// the path treated the person living it.
const (
	goldenWealthWeight     = 0.50
	goldenVitalityWeight   = 0.25
	goldenResilienceWeight = 0.15
	goldenRiskWeight       = 0.10

	// Scores within this distance are treated as tied.
	goldenScoreEpsilon = 1e-12
)

// SelectGoldenPath picks the single best ensemble member by a deterministic
// weighted score. Ties break by lower riskScore, then by insertion order,
// so repeated selection over an unchanged ensemble always returns the same
// path. Returns nil for an empty ensemble.
func SelectGoldenPath(paths []domain.SimulatedPath) *domain.SimulatedPath {
	if len(paths) == 0 {
		return nil
	}

	bestIdx := 0
	bestScore := goldenScore(paths[0])
	for i := 1; i < len(paths); i++ {
		score := goldenScore(paths[i])
		switch {
		case score > bestScore+goldenScoreEpsilon:
			bestIdx, bestScore = i, score
		case score > bestScore-goldenScoreEpsilon && paths[i].RiskScore < paths[bestIdx].RiskScore:
			bestIdx, bestScore = i, score
		}
	}

	golden := paths[bestIdx]
	return &golden
}

// goldenScore combines normalized final wealth, mean vitality and
// resilience over the whole trajectory, and an inverse risk penalty.
func goldenScore(p domain.SimulatedPath) float64 {
	final, ok := p.FinalState()
	if !ok {
		return 0
	}

	var vitSum, resSum float64
	for _, s := range p.States {
		vitSum += s.Vitality.Composite()
		resSum += s.Resilience
	}
	n := float64(len(p.States))

	wealth := (final.LiquidWealth + final.Equity) / 2
	return goldenWealthWeight*wealth +
		goldenVitalityWeight*(vitSum/n) +
		goldenResilienceWeight*(resSum/n) +
		goldenRiskWeight*(1-p.RiskScore)
}
