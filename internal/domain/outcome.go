package domain

import "github.com/shopspring/decimal"

// Closed qualitative vocabularies for externally produced outcome records.
// Unknown strings are tolerated on input and treated as the neutral value.

type WorkLifeBalance string

const (
	BalancePoor      WorkLifeBalance = "poor"
	BalanceFair      WorkLifeBalance = "fair"
	BalanceGood      WorkLifeBalance = "good"
	BalanceExcellent WorkLifeBalance = "excellent"
)

type CareerGrowth string

const (
	GrowthStagnant CareerGrowth = "stagnant"
	GrowthSlow     CareerGrowth = "slow"
	GrowthSteady   CareerGrowth = "steady"
	GrowthRapid    CareerGrowth = "rapid"
)

type Fulfillment string

const (
	FulfillmentLow      Fulfillment = "low"
	FulfillmentModerate Fulfillment = "moderate"
	FulfillmentHigh     Fulfillment = "high"
)

type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressSevere   StressLevel = "severe"
)

// PathOutcome is one year's snapshot produced by the external decision
// subsystem. The engine consumes only the numeric fields, and only when
// seeding a starting state; the qualitative fields nudge the soft
// dimensions, and the narrative passes through untouched.
type PathOutcome struct {
	JobTitle string          `yaml:"job_title" json:"job_title"`
	Salary   decimal.Decimal `yaml:"salary" json:"salary"`
	Savings  decimal.Decimal `yaml:"savings" json:"savings"`
	Equity   decimal.Decimal `yaml:"equity" json:"equity"`

	WorkLifeBalance WorkLifeBalance `yaml:"work_life_balance" json:"work_life_balance"`
	CareerGrowth    CareerGrowth    `yaml:"career_growth" json:"career_growth"`
	Fulfillment     Fulfillment     `yaml:"fulfillment" json:"fulfillment"`
	Stress          StressLevel     `yaml:"stress" json:"stress"`

	Narrative string   `yaml:"narrative,omitempty" json:"narrative,omitempty"`
	KeyEvents []string `yaml:"key_events,omitempty" json:"key_events,omitempty"`
}

// DecisionOption is a generic option record from the decision subsystem.
// A materialized outcome is an explicit optional field, not a dynamically
// attached property.
type DecisionOption struct {
	ID      string       `yaml:"id" json:"id"`
	Label   string       `yaml:"label" json:"label"`
	Outcome *PathOutcome `yaml:"outcome,omitempty" json:"outcome,omitempty"`
}

// SeedFromOutcome maps an outcome's fields into a starting StateVector.
// Savings and equity invert the monetary curves directly; the qualitative
// enums shift the soft dimensions off a neutral baseline. Everything is
// clamped on construction.
func SeedFromOutcome(o PathOutcome) StateVector {
	vit := 0.55
	res := 0.55
	status := 0.40

	switch o.WorkLifeBalance {
	case BalancePoor:
		vit -= 0.15
	case BalanceGood:
		vit += 0.05
	case BalanceExcellent:
		vit += 0.15
	}

	switch o.Stress {
	case StressLow:
		res += 0.10
	case StressHigh:
		res -= 0.10
	case StressSevere:
		res -= 0.25
	}

	switch o.Fulfillment {
	case FulfillmentLow:
		res -= 0.05
	case FulfillmentHigh:
		res += 0.05
	}

	switch o.CareerGrowth {
	case GrowthStagnant:
		status -= 0.10
	case GrowthRapid:
		status += 0.15
	}

	return NewStateVector(
		LiquidWealthScale.FromReal(o.Savings),
		EquityScale.FromReal(o.Equity),
		Vitality{Body: vit, Mind: vit, Appearance: vit},
		0.55,
		status,
		res,
	)
}
