package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifetrace/trajectory/internal/domain"
	"github.com/lifetrace/trajectory/internal/simulation"
)

// Bounds for defensive clamping of scenario inputs. Out-of-range numbers
// are coerced, never rejected; only structural problems (unknown preset or
// archetype names) are errors.
const (
	MinUserAge = 16
	MaxUserAge = 100

	MaxYears        = 60
	MaxEnsembleSize = 20_000

	DefaultEnsembleSize = 500
	DefaultYears        = 10
)

// ScenarioFile is the YAML schema for a simulation scenario.
type ScenarioFile struct {
	// Start state: a preset name, optionally overridden field-by-field
	// with real-unit values. At least one of the two must be present.
	Preset string                `yaml:"preset,omitempty"`
	Start  *domain.RealOverrides `yaml:"start,omitempty"`

	CurrentYear int `yaml:"current_year"`
	GoalYear    int `yaml:"goal_year"`
	UserAge     int `yaml:"user_age"`

	Effort        float64 `yaml:"effort"`
	RiskTolerance float64 `yaml:"risk_tolerance"`

	// Per-year archetype timeline; the last entry extends. Empty means
	// balanced throughout.
	Archetypes []string `yaml:"archetypes,omitempty"`

	EnsembleSize  int             `yaml:"ensemble_size,omitempty"`
	Seed          int64           `yaml:"seed,omitempty"`
	SuccessTarget decimal.Decimal `yaml:"success_target,omitempty"`

	// Optional externally generated outcome; when present and no preset or
	// start block is given, its numeric fields seed the start state.
	SeedOutcome *domain.PathOutcome `yaml:"seed_outcome,omitempty"`
}

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*simulation.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return ip.Build(&sf)
}

// Build validates a parsed scenario file and normalizes it into an engine
// scenario, clamping numeric fields into bounds.
func (ip *InputParser) Build(sf *ScenarioFile) (*simulation.Scenario, error) {
	start, err := ip.resolveStart(sf)
	if err != nil {
		return nil, err
	}

	archetypes := make([]domain.Archetype, 0, len(sf.Archetypes))
	for i, name := range sf.Archetypes {
		a := domain.Archetype(name)
		if !a.Valid() {
			return nil, fmt.Errorf("unknown archetype %q at timeline position %d (known: %v)", name, i, domain.Archetypes())
		}
		archetypes = append(archetypes, a)
	}

	currentYear := sf.CurrentYear
	if currentYear == 0 {
		currentYear = nowYear()
	}
	years := sf.GoalYear - currentYear
	if sf.GoalYear == 0 {
		years = DefaultYears
	}
	years = clampInt(years, 1, MaxYears)

	ensemble := sf.EnsembleSize
	if ensemble == 0 {
		ensemble = DefaultEnsembleSize
	}
	ensemble = clampInt(ensemble, 0, MaxEnsembleSize)

	// UserAge only bounds the window: nobody simulates past the age cap.
	age := clampInt(sf.UserAge, MinUserAge, MaxUserAge)
	if sf.UserAge != 0 && age+years > MaxUserAge {
		years = clampInt(MaxUserAge-age, 1, MaxYears)
	}

	target := sf.SuccessTarget
	if target.IsNegative() {
		target = decimal.Zero
	}

	return &simulation.Scenario{
		Start:     start,
		StartYear: currentYear,
		Years:     years,
		Controls: simulation.Controls{
			EffortMultiplier: sf.Effort,
			RiskTolerance:    sf.RiskTolerance,
		}.Clamped(),
		Archetypes:    archetypes,
		EnsembleSize:  ensemble,
		Seed:          sf.Seed,
		SuccessTarget: target,
	}, nil
}

// resolveStart picks the starting state: preset, then real-unit overrides
// on top of it, then a seed outcome as a last resort.
func (ip *InputParser) resolveStart(sf *ScenarioFile) (domain.StateVector, error) {
	if sf.Preset != "" {
		state, ok := domain.PresetState(domain.Preset(sf.Preset))
		if !ok {
			return domain.StateVector{}, fmt.Errorf("unknown preset %q (known: %v)", sf.Preset, domain.Presets())
		}
		if sf.Start != nil {
			return mergeOverrides(state, *sf.Start), nil
		}
		return state, nil
	}
	if sf.Start != nil {
		return domain.FromRealUnits(*sf.Start), nil
	}
	if sf.SeedOutcome != nil {
		return domain.SeedFromOutcome(*sf.SeedOutcome), nil
	}
	return domain.StateVector{}, fmt.Errorf("scenario needs a preset, a start block, or a seed_outcome")
}

// mergeOverrides applies only the fields the user actually set on top of a
// preset. Zero-valued sliders mean "keep the preset"; a zero dollar amount
// is a legitimate override only when the other monetary field is set too,
// so monetary overrides are applied when either is non-zero.
func mergeOverrides(base domain.StateVector, o domain.RealOverrides) domain.StateVector {
	out := base
	if !o.LiquidWealth.IsZero() || !o.Equity.IsZero() {
		out.LiquidWealth = domain.LiquidWealthScale.FromReal(o.LiquidWealth)
		out.Equity = domain.EquityScale.FromReal(o.Equity)
	}
	if o.Body != 0 {
		out.Vitality.Body = o.Body
	}
	if o.Mind != 0 {
		out.Vitality.Mind = o.Mind
	}
	if o.Appearance != 0 {
		out.Vitality.Appearance = o.Appearance
	}
	if o.Intelligence != 0 {
		out.Intelligence = o.Intelligence
	}
	if o.Status != 0 {
		out.Status = o.Status
	}
	if o.Resilience != 0 {
		out.Resilience = o.Resilience
	}
	return out.Clamped()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
