package simulation

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrace/trajectory/internal/domain"
)

// Scenario is the complete, explicit input for one simulation run. There is
// no ambient state: two runs with equal scenarios produce equal results.
type Scenario struct {
	Start     domain.StateVector
	StartYear int
	Years     int
	Controls  Controls

	// Archetypes is the per-year timeline; the last entry extends through
	// any remaining years. Empty means balanced throughout.
	Archetypes []domain.Archetype

	EnsembleSize int
	// Seed makes the ensemble reproducible. Zero draws a seed from the
	// clock; the drawn value is recorded on the result either way.
	Seed int64

	// SuccessTarget is the final net worth a path must reach to count as a
	// success. Zero means the default target.
	SuccessTarget decimal.Decimal
}

// DefaultSuccessTarget is used when a scenario does not state a goal.
var DefaultSuccessTarget = decimal.NewFromInt(1_000_000)

// ArchetypeFor resolves the timeline for a year offset.
func (sc Scenario) ArchetypeFor(yearIdx int) domain.Archetype {
	if len(sc.Archetypes) == 0 {
		return domain.ArchetypeBalanced
	}
	if yearIdx >= len(sc.Archetypes) {
		return sc.Archetypes[len(sc.Archetypes)-1]
	}
	if yearIdx < 0 {
		yearIdx = 0
	}
	return sc.Archetypes[yearIdx]
}

// riskScoreHalfPoint maps realized volatility onto [0,1): a path whose
// per-year normalized net-worth deltas have this standard deviation scores
// 0.5.
const riskScoreHalfPoint = 0.08

// Engine rolls ensembles of stochastic trajectories.
type Engine struct {
	Logger Logger
	// Workers bounds concurrent rollouts. Randomness is per-path, so the
	// result is independent of scheduling.
	Workers int
}

// NewEngine returns an engine with a no-op logger and default worker bound.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}, Workers: 10}
}

// SetLogger sets the logger. A nil argument installs the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes the full pipeline: P independent rollouts of Y years, then
// milestone/category scoring per path, then aggregation and golden-path
// selection. An ensemble size of zero yields empty paths and nil statistics
// without error. A canceled context abandons the run; no partial result is
// returned.
func (e *Engine) Run(ctx context.Context, sc Scenario) (*domain.SimulationResult, error) {
	if sc.Years <= 0 {
		sc.Years = 1
	}
	if sc.EnsembleSize < 0 {
		sc.EnsembleSize = 0
	}
	if sc.Seed == 0 {
		sc.Seed = seedFunc()
	}
	if sc.SuccessTarget.IsZero() {
		sc.SuccessTarget = DefaultSuccessTarget
	}
	sc.Start = sc.Start.Clamped()
	sc.Controls = sc.Controls.Clamped()

	e.Logger.Debugf("running ensemble: paths=%d years=%d seed=%d", sc.EnsembleSize, sc.Years, sc.Seed)

	paths := make([]domain.SimulatedPath, sc.EnsembleSize)
	workers := e.Workers
	if workers <= 0 {
		workers = 10
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	for i := 0; i < sc.EnsembleSize; i++ {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(pathIdx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			paths[pathIdx] = e.rollout(sc, pathIdx)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats, meanPath := Aggregate(paths, sc.SuccessTarget)

	return &domain.SimulationResult{
		Paths:       paths,
		MeanPath:    meanPath,
		Statistics:  stats,
		GoldenPath:  SelectGoldenPath(paths),
		Seed:        sc.Seed,
		StartYear:   sc.StartYear,
		GeneratedAt: nowFunc(),
	}, nil
}

// rollout simulates one path. Each path owns a private random stream seeded
// from the scenario seed plus its index, so the ensemble is reproducible
// and independent of worker scheduling.
func (e *Engine) rollout(sc Scenario, pathIdx int) domain.SimulatedPath {
	rng := rand.New(rand.NewSource(sc.Seed + int64(pathIdx)))

	states := make([]domain.StateVector, 0, sc.Years+1)
	states = append(states, sc.Start)

	netWorthByYear := make(map[int]decimal.Decimal, sc.Years+1)
	netWorthByYear[sc.StartYear] = sc.Start.NetWorth()

	minResilience := sc.Start.Resilience
	deltas := make([]float64, 0, sc.Years)
	prevWealth := (sc.Start.LiquidWealth + sc.Start.Equity) / 2

	cur := sc.Start
	for y := 1; y <= sc.Years; y++ {
		cur = Transition(cur, sc.Controls, sc.ArchetypeFor(y-1), y-1, rng)
		states = append(states, cur)
		netWorthByYear[sc.StartYear+y] = cur.NetWorth()

		if cur.Resilience < minResilience {
			minResilience = cur.Resilience
		}

		wealth := (cur.LiquidWealth + cur.Equity) / 2
		deltas = append(deltas, wealth-prevWealth)
		prevWealth = wealth
	}

	path := domain.SimulatedPath{
		ID:             uuid.NewString(),
		States:         states,
		Probability:    1.0 / float64(sc.EnsembleSize),
		RiskScore:      riskScore(deltas),
		MinResilience:  minResilience,
		NetWorthByYear: netWorthByYear,
	}
	path.Milestones = ScanMilestones(states, sc.StartYear)
	path.Category = Classify(path)
	return path
}

// riskScore characterizes the volatility a path actually realized: the
// standard deviation of its per-year normalized wealth deltas, squashed
// into [0,1).
func riskScore(deltas []float64) float64 {
	if len(deltas) == 0 {
		return 0
	}
	var mean float64
	for _, d := range deltas {
		mean += d
	}
	mean /= float64(len(deltas))

	var variance float64
	for _, d := range deltas {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(deltas))

	sigma := math.Sqrt(variance)
	return sigma / (sigma + riskScoreHalfPoint)
}
