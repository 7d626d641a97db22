package simulation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifetrace/trajectory/internal/domain"
)

func founderScenario(risk float64, seed int64) Scenario {
	start, _ := domain.PresetState(domain.PresetFounder)
	return Scenario{
		Start:        start,
		StartYear:    2026,
		Years:        10,
		Controls:     Controls{EffortMultiplier: 0.8, RiskTolerance: risk},
		Archetypes:   []domain.Archetype{domain.ArchetypeFounder},
		EnsembleSize: 500,
		Seed:         seed,
	}
}

func TestRunEmptyEnsemble(t *testing.T) {
	engine := NewEngine()
	sc := founderScenario(0.5, 42)
	sc.EnsembleSize = 0

	result, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatalf("zero-size ensemble errored: %v", err)
	}
	if len(result.Paths) != 0 {
		t.Errorf("expected no paths, got %d", len(result.Paths))
	}
	if result.Statistics != nil {
		t.Errorf("expected nil statistics for empty ensemble, got %+v", result.Statistics)
	}
	if result.GoldenPath != nil {
		t.Error("expected nil golden path for empty ensemble")
	}
	if result.MeanPath != nil {
		t.Error("expected nil mean path for empty ensemble")
	}
}

func TestRunSeededReproducible(t *testing.T) {
	engine := NewEngine()
	sc := founderScenario(0.5, 1234)

	a, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Paths) != len(b.Paths) {
		t.Fatalf("path counts differ: %d vs %d", len(a.Paths), len(b.Paths))
	}
	for i := range a.Paths {
		if len(a.Paths[i].States) != len(b.Paths[i].States) {
			t.Fatalf("path %d lengths differ", i)
		}
		for y := range a.Paths[i].States {
			if a.Paths[i].States[y] != b.Paths[i].States[y] {
				t.Fatalf("path %d year %d differs between seeded runs", i, y)
			}
		}
	}
	if !a.Statistics.MeanFinalNetWorth.Equal(b.Statistics.MeanFinalNetWorth) {
		t.Errorf("mean final net worth differs: %s vs %s",
			a.Statistics.MeanFinalNetWorth, b.Statistics.MeanFinalNetWorth)
	}
	if a.Seed != 1234 || b.Seed != 1234 {
		t.Errorf("seed not recorded on result")
	}
}

func TestRunPathInvariants(t *testing.T) {
	engine := NewEngine()
	sc := founderScenario(0.6, 7)
	sc.EnsembleSize = 50

	result, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for i, p := range result.Paths {
		if len(p.States) != sc.Years+1 {
			t.Errorf("path %d: expected %d states, got %d", i, sc.Years+1, len(p.States))
		}
		if p.ID == "" || seen[p.ID] {
			t.Errorf("path %d: missing or duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true

		if len(p.NetWorthByYear) != sc.Years+1 {
			t.Errorf("path %d: expected %d net worth entries, got %d", i, sc.Years+1, len(p.NetWorthByYear))
		}
		for y, s := range p.States {
			year := sc.StartYear + y
			nw, ok := p.NetWorthByYear[year]
			if !ok {
				t.Fatalf("path %d: no net worth for year %d", i, year)
			}
			if !nw.Equal(s.NetWorth()) {
				t.Errorf("path %d year %d: net worth %s does not match state %s", i, year, nw, s.NetWorth())
			}
		}

		// MinResilience is the running minimum over the whole path, year 0
		// included.
		min := p.States[0].Resilience
		for _, s := range p.States {
			if s.Resilience < min {
				min = s.Resilience
			}
		}
		if p.MinResilience != min {
			t.Errorf("path %d: MinResilience %f, want %f", i, p.MinResilience, min)
		}

		if p.RiskScore < 0 || p.RiskScore >= 1 {
			t.Errorf("path %d: risk score %f outside [0,1)", i, p.RiskScore)
		}
		if p.Probability <= 0 || p.Probability > 1 {
			t.Errorf("path %d: probability %f outside (0,1]", i, p.Probability)
		}
	}
}

func TestHigherRiskToleranceRaisesBurnoutProbability(t *testing.T) {
	engine := NewEngine()

	bold, err := engine.Run(context.Background(), founderScenario(0.8, 42))
	if err != nil {
		t.Fatal(err)
	}
	timid, err := engine.Run(context.Background(), founderScenario(0.2, 42))
	if err != nil {
		t.Fatal(err)
	}

	if bold.Statistics.BurnoutProbability <= timid.Statistics.BurnoutProbability {
		t.Errorf("risk tolerance should widen dispersion and raise burnout probability: %.3f <= %.3f",
			bold.Statistics.BurnoutProbability, timid.Statistics.BurnoutProbability)
	}
	// Dispersion of final outcomes should widen too.
	boldSpread := bold.Statistics.Percentiles.P90.Sub(bold.Statistics.Percentiles.P10)
	timidSpread := timid.Statistics.Percentiles.P90.Sub(timid.Statistics.Percentiles.P10)
	if boldSpread.LessThanOrEqual(timidSpread) {
		t.Errorf("P10-P90 spread did not widen with risk: %s <= %s", boldSpread, timidSpread)
	}
}

func TestZeroEffortStaysNearPassiveGrowth(t *testing.T) {
	engine := NewEngine()
	start, _ := domain.PresetState(domain.PresetRich)
	sc := Scenario{
		Start:        start,
		StartYear:    2026,
		Years:        10,
		Controls:     Controls{EffortMultiplier: 0, RiskTolerance: 0},
		Archetypes:   []domain.Archetype{domain.ArchetypeBalanced},
		EnsembleSize: 400,
		Seed:         99,
	}

	result, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}

	// Drift-only projection at zero effort, with headroom for noise
	// convexity and sampling error.
	p := domain.ArchetypeBalanced.Params()
	years := float64(sc.Years)
	const margin = 0.03
	bound := domain.LiquidWealthScale.ToReal(start.LiquidWealth + p.Drift.LiquidWealth*passiveDriftFactor*years + margin).
		Add(domain.EquityScale.ToReal(start.Equity + p.Drift.Equity*passiveDriftFactor*years + margin))

	if result.Statistics.MeanFinalNetWorth.GreaterThan(bound) {
		t.Errorf("zero-effort mean final net worth %s exceeds passive-drift bound %s",
			result.Statistics.MeanFinalNetWorth, bound)
	}
	if result.Statistics.MeanFinalNetWorth.LessThan(start.NetWorth()) {
		t.Errorf("positive passive drift should not lose money on average: %s < %s",
			result.Statistics.MeanFinalNetWorth, start.NetWorth())
	}
}

func TestRunCanceledContext(t *testing.T) {
	engine := NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.Run(ctx, founderScenario(0.5, 1))
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if result != nil {
		t.Error("canceled run must not surface a partial result")
	}
}

func TestDefaultSuccessTargetApplied(t *testing.T) {
	engine := NewEngine()
	sc := founderScenario(0.5, 3)
	sc.SuccessTarget = decimal.Zero

	result, err := engine.Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}
	if result.Statistics == nil {
		t.Fatal("expected statistics")
	}
	if p := result.Statistics.SuccessProbability; p < 0 || p > 1 {
		t.Errorf("success probability %f outside [0,1]", p)
	}
}
