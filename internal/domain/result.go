package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the coarse outcome bucket a finished path lands in. Exactly
// one category is assigned per path, by a fixed priority order.
type Category string

const (
	CategoryBurnout  Category = "burnout"
	CategoryWealthy  Category = "wealthy"
	CategoryHealthy  Category = "healthy"
	CategoryBalanced Category = "balanced"
	CategoryOther    Category = "other"
)

// CategoryInfo is the presentation metadata for one category.
type CategoryInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryBurnout:  {Label: "Burnout", Color: "#dc2626", Description: "Resilience collapsed at some point along the way"},
	CategoryWealthy:  {Label: "Wealthy", Color: "#9333ea", Description: "Finished with a high net worth"},
	CategoryHealthy:  {Label: "Healthy", Color: "#16a34a", Description: "Finished with strong vitality and resilience"},
	CategoryBalanced: {Label: "Balanced", Color: "#2563eb", Description: "No dimension was left behind"},
	CategoryOther:    {Label: "Mixed", Color: "#6b7280", Description: "No dominant outcome"},
}

// Info returns presentation metadata. Unknown categories map to Other.
func (c Category) Info() CategoryInfo {
	if inf, ok := categoryInfo[c]; ok {
		return inf
	}
	return categoryInfo[CategoryOther]
}

// Categories lists all defined categories in classification priority order.
func Categories() []Category {
	return []Category{CategoryBurnout, CategoryWealthy, CategoryHealthy, CategoryBalanced, CategoryOther}
}

// Milestone records a threshold crossing along one path. Each threshold ID
// appears at most once per path, at the first crossing year.
type Milestone struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// SimulatedPath is one ensemble member. Immutable once built.
type SimulatedPath struct {
	ID             string                  `json:"id"`
	States         []StateVector           `json:"states"` // index = year offset, States[0] = start
	Probability    float64                 `json:"probability"`
	RiskScore      float64                 `json:"risk_score"`
	MinResilience  float64                 `json:"min_resilience"`
	Category       Category                `json:"category"`
	Milestones     []Milestone             `json:"milestones"`
	NetWorthByYear map[int]decimal.Decimal `json:"net_worth_by_year"` // calendar year -> net worth
}

// FinalState returns the last state snapshot, false for an empty path.
func (p SimulatedPath) FinalState() (StateVector, bool) {
	if len(p.States) == 0 {
		return StateVector{}, false
	}
	return p.States[len(p.States)-1], true
}

// FinalNetWorth returns the real-unit net worth at the final year, or zero
// for an empty path.
func (p SimulatedPath) FinalNetWorth() decimal.Decimal {
	final, ok := p.FinalState()
	if !ok {
		return decimal.Zero
	}
	return final.NetWorth()
}

// PercentileRanges summarizes the distribution of final net worth.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// OutcomeBuckets holds the named, independently computed outcome
// probabilities. The predicates overlap; the values do not sum to one.
type OutcomeBuckets struct {
	WealthyOutcome  float64 `json:"wealthy_outcome"`
	BalancedOutcome float64 `json:"balanced_outcome"`
	HighVitality    float64 `json:"high_vitality"`
	BurnoutRisk     float64 `json:"burnout_risk"`
}

// Statistics is the ensemble summary. A nil *Statistics means the ensemble
// was empty; a zero-valued Statistics means it was computed and is zero.
type Statistics struct {
	MeanFinalNetWorth   decimal.Decimal  `json:"mean_final_net_worth"`
	MedianFinalNetWorth decimal.Decimal  `json:"median_final_net_worth"`
	SuccessProbability  float64          `json:"success_probability"`
	BurnoutProbability  float64          `json:"burnout_probability"`
	Buckets             OutcomeBuckets   `json:"buckets"`
	Percentiles         PercentileRanges `json:"percentiles"`
}

// SimulationResult is the aggregate over one ensemble. Rebuilt wholesale on
// every run, never mutated incrementally.
type SimulationResult struct {
	Paths       []SimulatedPath `json:"paths"`
	MeanPath    []StateVector   `json:"mean_path"`
	Statistics  *Statistics     `json:"statistics"` // nil for an empty ensemble
	GoldenPath  *SimulatedPath  `json:"golden_path"`
	Seed        int64           `json:"seed"`
	StartYear   int             `json:"start_year"`
	GeneratedAt time.Time       `json:"generated_at"`
}
