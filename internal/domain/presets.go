package domain

// Preset names a canned starting state.
type Preset string

const (
	PresetFounder      Preset = "founder"
	PresetStudent      Preset = "student"
	PresetProfessional Preset = "professional"
	PresetHomeless     Preset = "homeless"
	PresetRich         Preset = "rich"
)

var presetStates = map[Preset]StateVector{
	PresetFounder: {
		LiquidWealth: 0.25, Equity: 0.15,
		Vitality:     Vitality{Body: 0.60, Mind: 0.65, Appearance: 0.55},
		Intelligence: 0.70, Status: 0.40, Resilience: 0.50,
	},
	PresetStudent: {
		LiquidWealth: 0.15, Equity: 0.00,
		Vitality:     Vitality{Body: 0.75, Mind: 0.70, Appearance: 0.65},
		Intelligence: 0.55, Status: 0.25, Resilience: 0.65,
	},
	PresetProfessional: {
		LiquidWealth: 0.45, Equity: 0.10,
		Vitality:     Vitality{Body: 0.55, Mind: 0.60, Appearance: 0.55},
		Intelligence: 0.60, Status: 0.50, Resilience: 0.55,
	},
	PresetHomeless: {
		LiquidWealth: 0.02, Equity: 0.00,
		Vitality:     Vitality{Body: 0.30, Mind: 0.35, Appearance: 0.20},
		Intelligence: 0.40, Status: 0.05, Resilience: 0.30,
	},
	PresetRich: {
		LiquidWealth: 0.85, Equity: 0.75,
		Vitality:     Vitality{Body: 0.65, Mind: 0.60, Appearance: 0.70},
		Intelligence: 0.65, Status: 0.80, Resilience: 0.60,
	},
}

// PresetState returns the starting StateVector for a named preset.
func PresetState(p Preset) (StateVector, bool) {
	s, ok := presetStates[p]
	return s, ok
}

// Presets lists all defined presets in stable display order.
func Presets() []Preset {
	return []Preset{PresetFounder, PresetStudent, PresetProfessional, PresetHomeless, PresetRich}
}
