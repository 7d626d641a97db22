package simulation

import (
	"math"
	"math/rand"

	"github.com/lifetrace/trajectory/internal/domain"
)

// Controls are the user-facing knobs for one simulation run.
type Controls struct {
	// EffortMultiplier in [0,1]: amplifies wealth/status/intelligence drift
	// and drains vitality/resilience in proportion.
	EffortMultiplier float64 `yaml:"effort" json:"effort"`
	// RiskTolerance in [0,1]: scales the variance of the noise term only.
	// The expected drift is identical at every risk setting.
	RiskTolerance float64 `yaml:"risk_tolerance" json:"risk_tolerance"`
}

// Clamped coerces both knobs into [0,1].
func (c Controls) Clamped() Controls {
	return Controls{
		EffortMultiplier: domain.Clamp01(c.EffortMultiplier),
		RiskTolerance:    domain.Clamp01(c.RiskTolerance),
	}
}

// Named transition multipliers. Archetype-specific cross-dimension
// couplings live in domain.Coupling; the constants here are
// archetype-independent.
const (
	// Effort scales the drift of the driven dimensions (wealth, equity,
	// status, intelligence) linearly from passiveDriftFactor at zero effort
	// to passiveDriftFactor+effortDriftGain at full effort.
	passiveDriftFactor = 0.4
	effortDriftGain    = 1.6

	// Full effort drains this much vitality per year; resilience takes half.
	effortStressRate = 0.035

	// Noise sigma per dimension = volatility * (baseNoiseScale +
	// riskNoiseScale * riskTolerance). Risk widens dispersion only.
	baseNoiseScale = 0.3
	riskNoiseScale = 1.2
)

// gaussian draws a standard normal variate via the Box-Muller transform.
// Two uniforms are consumed per call, so draw order is part of the
// reproducibility contract.
func gaussian(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Transition advances a state by one year. Pure: identical inputs and an
// identical rng state produce an identical next state. Per year the rng is
// consumed in a fixed order: liquid wealth, equity, body, mind, appearance,
// intelligence, status, resilience.
//
// Every output scalar is clamped to [0,1] regardless of input extremity.
func Transition(state domain.StateVector, controls Controls, archetype domain.Archetype, yearIdx int, rng *rand.Rand) domain.StateVector {
	_ = yearIdx // reserved for age-dependent drift

	c := controls.Clamped()
	p := archetype.Params()

	drive := passiveDriftFactor + effortDriftGain*c.EffortMultiplier
	sigmaScale := baseNoiseScale + riskNoiseScale*c.RiskTolerance

	noise := func(vol float64) float64 { return gaussian(rng) * vol * sigmaScale }

	liquid := state.LiquidWealth + p.Drift.LiquidWealth*drive + noise(p.Volatility.LiquidWealth)
	equity := state.Equity + p.Drift.Equity*drive + noise(p.Volatility.Equity)

	// Effort's stress penalty hits vitality fully and resilience at half
	// rate. No free high-effort path.
	stress := effortStressRate * c.EffortMultiplier
	vitDrift := p.Drift.Vitality - stress
	body := state.Vitality.Body + vitDrift + noise(p.Volatility.Vitality)
	mind := state.Vitality.Mind + vitDrift + noise(p.Volatility.Vitality)
	appearance := state.Vitality.Appearance + vitDrift + noise(p.Volatility.Vitality)

	intelligence := state.Intelligence + p.Drift.Intelligence*drive + noise(p.Volatility.Intelligence)

	// Status ceiling: very low intelligence dampens positive status drift.
	statusDrift := p.Drift.Status * drive
	if state.Intelligence < p.Coupling.StatusIntelligenceFloor && statusDrift > 0 {
		statusDrift *= p.Coupling.StatusCeilingFactor
	}
	status := state.Status + statusDrift + noise(p.Volatility.Status)

	// Burnout compounding: low vitality accelerates resilience decay in
	// proportion to how far below the floor it sits.
	resilienceDrift := p.Drift.Resilience - stress/2
	if vit := state.Vitality.Composite(); vit < p.Coupling.BurnoutVitalityFloor {
		resilienceDrift -= p.Coupling.BurnoutDragRate * (p.Coupling.BurnoutVitalityFloor - vit)
	}
	resilience := state.Resilience + resilienceDrift + noise(p.Volatility.Resilience)

	return domain.NewStateVector(
		liquid,
		equity,
		domain.Vitality{Body: body, Mind: mind, Appearance: appearance},
		intelligence,
		status,
		resilience,
	)
}
