package domain

// Archetype names a life-strategy profile. The set is closed: every value
// has a parameter row in archetypeParams and metadata in archetypeInfo, so
// lookups never fall through to an undefined entry.
type Archetype string

const (
	ArchetypeCorporate Archetype = "corporate"
	ArchetypeFounder   Archetype = "founder"
	ArchetypeCreator   Archetype = "creator"
	ArchetypeAcademic  Archetype = "academic"
	ArchetypeBalanced  Archetype = "balanced"
	ArchetypeRecovery  Archetype = "recovery"
)

// DimensionRates holds one per-dimension scalar set, used both for annual
// drift rates and for volatility scales. Vitality applies uniformly to the
// three vitality components.
type DimensionRates struct {
	LiquidWealth float64
	Equity       float64
	Vitality     float64
	Intelligence float64
	Status       float64
	Resilience   float64
}

// Coupling centralizes the named cross-dimension multipliers for one
// archetype. The transition model applies exactly these; no other
// cross-dimension constants exist.
type Coupling struct {
	// BurnoutVitalityFloor: below this composite vitality, resilience loses
	// an extra BurnoutDragRate * (floor - vitality) per year.
	BurnoutVitalityFloor float64
	BurnoutDragRate      float64

	// StatusIntelligenceFloor: below this intelligence, positive status
	// drift is multiplied by StatusCeilingFactor (in [0,1]).
	StatusIntelligenceFloor float64
	StatusCeilingFactor     float64
}

// ArchetypeParams is the full transition parameter row for one archetype.
type ArchetypeParams struct {
	Drift      DimensionRates
	Volatility DimensionRates
	Coupling   Coupling
}

// ArchetypeInfo is the presentation metadata for one archetype.
type ArchetypeInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var defaultCoupling = Coupling{
	BurnoutVitalityFloor:    0.3,
	BurnoutDragRate:         0.12,
	StatusIntelligenceFloor: 0.2,
	StatusCeilingFactor:     0.4,
}

var archetypeParams = map[Archetype]ArchetypeParams{
	ArchetypeCorporate: {
		Drift:      DimensionRates{LiquidWealth: 0.045, Equity: 0.005, Vitality: -0.010, Intelligence: 0.015, Status: 0.020, Resilience: -0.005},
		Volatility: DimensionRates{LiquidWealth: 0.030, Equity: 0.020, Vitality: 0.020, Intelligence: 0.010, Status: 0.025, Resilience: 0.030},
		Coupling:   defaultCoupling,
	},
	ArchetypeFounder: {
		Drift:      DimensionRates{LiquidWealth: -0.010, Equity: 0.060, Vitality: -0.020, Intelligence: 0.020, Status: 0.030, Resilience: -0.005},
		Volatility: DimensionRates{LiquidWealth: 0.050, Equity: 0.090, Vitality: 0.030, Intelligence: 0.015, Status: 0.045, Resilience: 0.040},
		Coupling: Coupling{
			BurnoutVitalityFloor:    0.35,
			BurnoutDragRate:         0.18,
			StatusIntelligenceFloor: 0.2,
			StatusCeilingFactor:     0.4,
		},
	},
	ArchetypeCreator: {
		Drift:      DimensionRates{LiquidWealth: 0.010, Equity: 0.020, Vitality: 0.000, Intelligence: 0.015, Status: 0.040, Resilience: -0.005},
		Volatility: DimensionRates{LiquidWealth: 0.040, Equity: 0.050, Vitality: 0.025, Intelligence: 0.015, Status: 0.060, Resilience: 0.035},
		Coupling:   defaultCoupling,
	},
	ArchetypeAcademic: {
		Drift:      DimensionRates{LiquidWealth: 0.015, Equity: 0.000, Vitality: -0.005, Intelligence: 0.040, Status: 0.015, Resilience: 0.000},
		Volatility: DimensionRates{LiquidWealth: 0.015, Equity: 0.010, Vitality: 0.015, Intelligence: 0.020, Status: 0.020, Resilience: 0.020},
		Coupling:   defaultCoupling,
	},
	ArchetypeBalanced: {
		Drift:      DimensionRates{LiquidWealth: 0.025, Equity: 0.010, Vitality: 0.010, Intelligence: 0.010, Status: 0.010, Resilience: 0.010},
		Volatility: DimensionRates{LiquidWealth: 0.020, Equity: 0.020, Vitality: 0.015, Intelligence: 0.010, Status: 0.015, Resilience: 0.020},
		Coupling:   defaultCoupling,
	},
	ArchetypeRecovery: {
		Drift:      DimensionRates{LiquidWealth: -0.005, Equity: 0.000, Vitality: 0.040, Intelligence: 0.005, Status: -0.005, Resilience: 0.035},
		Volatility: DimensionRates{LiquidWealth: 0.010, Equity: 0.005, Vitality: 0.020, Intelligence: 0.005, Status: 0.010, Resilience: 0.015},
		Coupling:   defaultCoupling,
	},
}

var archetypeInfo = map[Archetype]ArchetypeInfo{
	ArchetypeCorporate: {Label: "Corporate Climber", Color: "#2563eb", Description: "Steady salary growth and title accumulation at a slow cost to health"},
	ArchetypeFounder:   {Label: "Founder", Color: "#9333ea", Description: "Thin cash, outsized equity swings, and a real burnout exposure"},
	ArchetypeCreator:   {Label: "Independent Creator", Color: "#db2777", Description: "Audience-driven status growth with volatile, lumpy income"},
	ArchetypeAcademic:  {Label: "Academic", Color: "#0891b2", Description: "Compounding intelligence on a modest, stable income"},
	ArchetypeBalanced:  {Label: "Balanced", Color: "#16a34a", Description: "Moderate gains everywhere, extremes nowhere"},
	ArchetypeRecovery:  {Label: "Recovery Year", Color: "#ca8a04", Description: "Deliberate rebuild of vitality and resilience at a small financial cost"},
}

// Valid reports whether a is one of the defined archetypes.
func (a Archetype) Valid() bool {
	_, ok := archetypeParams[a]
	return ok
}

// Params returns the transition parameter row. Unknown archetypes fall back
// to the balanced profile rather than failing mid-simulation.
func (a Archetype) Params() ArchetypeParams {
	if p, ok := archetypeParams[a]; ok {
		return p
	}
	return archetypeParams[ArchetypeBalanced]
}

// Info returns presentation metadata, with the same balanced fallback.
func (a Archetype) Info() ArchetypeInfo {
	if inf, ok := archetypeInfo[a]; ok {
		return inf
	}
	return archetypeInfo[ArchetypeBalanced]
}

// Archetypes lists all defined archetypes in stable display order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeCorporate,
		ArchetypeFounder,
		ArchetypeCreator,
		ArchetypeAcademic,
		ArchetypeBalanced,
		ArchetypeRecovery,
	}
}
