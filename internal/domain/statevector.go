package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Clamp01 coerces a scalar into the normalized [0,1] range. NaN maps to 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Vitality is the composite health sub-vector. Each component is normalized
// to [0,1] and labeled independently.
type Vitality struct {
	Body       float64 `yaml:"body" json:"body"`
	Mind       float64 `yaml:"mind" json:"mind"`
	Appearance float64 `yaml:"appearance" json:"appearance"`
}

// Clamped returns a copy with every component coerced into [0,1].
func (v Vitality) Clamped() Vitality {
	return Vitality{
		Body:       Clamp01(v.Body),
		Mind:       Clamp01(v.Mind),
		Appearance: Clamp01(v.Appearance),
	}
}

// Composite is the scalar vitality value used by the transition model and
// the outcome classifiers: the plain mean of the three components.
func (v Vitality) Composite() float64 {
	return (v.Body + v.Mind + v.Appearance) / 3
}

// StateVector is one point in the normalized life-state space. Every scalar
// is kept in [0,1]; real-world units only exist at the ToRealUnits boundary.
type StateVector struct {
	LiquidWealth float64  `yaml:"liquid_wealth" json:"liquid_wealth"`
	Equity       float64  `yaml:"equity" json:"equity"`
	Vitality     Vitality `yaml:"vitality" json:"vitality"`
	Intelligence float64  `yaml:"intelligence" json:"intelligence"`
	Status       float64  `yaml:"status" json:"status"`
	Resilience   float64  `yaml:"resilience" json:"resilience"`
}

// NewStateVector builds a state from raw normalized fields, defensively
// clamping every scalar. Out-of-range input is coerced, never rejected.
func NewStateVector(liquid, equity float64, vitality Vitality, intelligence, status, resilience float64) StateVector {
	return StateVector{
		LiquidWealth: Clamp01(liquid),
		Equity:       Clamp01(equity),
		Vitality:     vitality.Clamped(),
		Intelligence: Clamp01(intelligence),
		Status:       Clamp01(status),
		Resilience:   Clamp01(resilience),
	}
}

// Clamped returns a copy with every field coerced into [0,1].
func (s StateVector) Clamped() StateVector {
	return NewStateVector(s.LiquidWealth, s.Equity, s.Vitality, s.Intelligence, s.Status, s.Resilience)
}

// Clone returns an independent copy. StateVector holds no references, so
// this is a plain value copy; the method exists to make the contract
// explicit at call sites that hand states across component boundaries.
func (s StateVector) Clone() StateVector {
	return s
}

// ScaleSpec maps a normalized [0,1] scalar onto a real-unit range through a
// monotonic exponential curve:
//
//	real(x) = Min + (Max-Min) * (e^(Shape*x) - 1) / (e^Shape - 1)
//
// The curve compresses the mid-range toward modest values while the upper
// tail still reaches the configured Max. Shape > 0; larger values bend the
// curve harder.
type ScaleSpec struct {
	Min   float64
	Max   float64
	Shape float64
}

// Real-unit scales for the two monetary dimensions. Liquid wealth has a
// negative floor (debt); equity is bounded below by zero.
var (
	LiquidWealthScale = ScaleSpec{Min: -100_000, Max: 10_000_000, Shape: 5}
	EquityScale       = ScaleSpec{Min: 0, Max: 50_000_000, Shape: 6}
)

// ToReal converts a normalized scalar to real units, rounded to cents.
func (sc ScaleSpec) ToReal(x float64) decimal.Decimal {
	x = Clamp01(x)
	frac := (math.Exp(sc.Shape*x) - 1) / (math.Exp(sc.Shape) - 1)
	return decimal.NewFromFloat(sc.Min + (sc.Max-sc.Min)*frac).Round(2)
}

// FromReal inverts the curve. Real values outside [Min,Max] are clamped to
// the bounds first.
func (sc ScaleSpec) FromReal(v decimal.Decimal) float64 {
	vf, _ := v.Float64()
	if vf < sc.Min {
		vf = sc.Min
	}
	if vf > sc.Max {
		vf = sc.Max
	}
	frac := (vf - sc.Min) / (sc.Max - sc.Min)
	return Clamp01(math.Log(1+frac*(math.Exp(sc.Shape)-1)) / sc.Shape)
}

// RealUnits is the user-facing projection of a StateVector: dollar figures
// for the monetary dimensions and a qualitative tier label per dimension.
type RealUnits struct {
	LiquidWealth decimal.Decimal `json:"liquid_wealth"`
	Equity       decimal.Decimal `json:"equity"`
	NetWorth     decimal.Decimal `json:"net_worth"`

	WealthLabel       string `json:"wealth_label"`
	BodyLabel         string `json:"body_label"`
	MindLabel         string `json:"mind_label"`
	AppearanceLabel   string `json:"appearance_label"`
	IntelligenceLabel string `json:"intelligence_label"`
	StatusLabel       string `json:"status_label"`
	ResilienceLabel   string `json:"resilience_label"`
}

// ToRealUnits applies the forward curves and tier labeling.
// NetWorth = LiquidWealth + Equity.
func (s StateVector) ToRealUnits() RealUnits {
	liquid := LiquidWealthScale.ToReal(s.LiquidWealth)
	equity := EquityScale.ToReal(s.Equity)
	return RealUnits{
		LiquidWealth:      liquid,
		Equity:            equity,
		NetWorth:          liquid.Add(equity),
		WealthLabel:       WealthTier(s.LiquidWealth).Label,
		BodyLabel:         BodyTier(s.Vitality.Body).Label,
		MindLabel:         MindTier(s.Vitality.Mind).Label,
		AppearanceLabel:   AppearanceTier(s.Vitality.Appearance).Label,
		IntelligenceLabel: IntelligenceTier(s.Intelligence).Label,
		StatusLabel:       StatusTier(s.Status).Label,
		ResilienceLabel:   ResilienceTier(s.Resilience).Label,
	}
}

// NetWorth is the real-unit sum of both monetary dimensions.
func (s StateVector) NetWorth() decimal.Decimal {
	return LiquidWealthScale.ToReal(s.LiquidWealth).Add(EquityScale.ToReal(s.Equity))
}

// RealOverrides carries user-supplied real-unit inputs for seeding a start
// state: dollar amounts for the monetary dimensions, slider values (already
// normalized) for the rest.
type RealOverrides struct {
	LiquidWealth decimal.Decimal `yaml:"liquid_wealth" json:"liquid_wealth"`
	Equity       decimal.Decimal `yaml:"equity" json:"equity"`
	Body         float64         `yaml:"body" json:"body"`
	Mind         float64         `yaml:"mind" json:"mind"`
	Appearance   float64         `yaml:"appearance" json:"appearance"`
	Intelligence float64         `yaml:"intelligence" json:"intelligence"`
	Status       float64         `yaml:"status" json:"status"`
	Resilience   float64         `yaml:"resilience" json:"resilience"`
}

// FromRealUnits inverts the monetary curves and clamps the slider values.
// Inputs outside the configured bounds are clamped, not rejected.
func FromRealUnits(o RealOverrides) StateVector {
	return NewStateVector(
		LiquidWealthScale.FromReal(o.LiquidWealth),
		EquityScale.FromReal(o.Equity),
		Vitality{Body: o.Body, Mind: o.Mind, Appearance: o.Appearance},
		o.Intelligence,
		o.Status,
		o.Resilience,
	)
}
