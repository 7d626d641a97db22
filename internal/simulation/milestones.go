package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/lifetrace/trajectory/internal/domain"
)

// milestoneDef is one monitored threshold. direction +1 fires on the first
// upward crossing, -1 on the first downward crossing. Money thresholds
// compare real-unit net worth; dimension thresholds compare a normalized
// scalar extracted by dim.
type milestoneDef struct {
	id        string
	icon      string
	label     string
	desc      string
	direction int
	netWorth  *decimal.Decimal
	dim       func(domain.StateVector) float64
	threshold float64
}

func dollars(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// topTier is the lower bound of the sixth qualitative band.
const topTier = 5.0 / 6.0

var milestoneDefs = []milestoneDef{
	{id: "debt-free", icon: "🏁", label: "Debt Free", desc: "Net worth crossed zero for the first time", direction: 1, netWorth: dollars(0)},
	{id: "six-figures", icon: "💵", label: "Six Figures", desc: "Net worth reached $100,000", direction: 1, netWorth: dollars(100_000)},
	{id: "first-million", icon: "💰", label: "Millionaire", desc: "Net worth reached $1,000,000", direction: 1, netWorth: dollars(1_000_000)},
	{id: "eight-figures", icon: "🏆", label: "Eight Figures", desc: "Net worth reached $10,000,000", direction: 1, netWorth: dollars(10_000_000)},
	{id: "peak-vitality", icon: "⚡", label: "Peak Vitality", desc: "Vitality reached the top tier", direction: 1, dim: func(s domain.StateVector) float64 { return s.Vitality.Composite() }, threshold: topTier},
	{id: "renowned", icon: "🌟", label: "Renowned", desc: "Status reached the top tier", direction: 1, dim: func(s domain.StateVector) float64 { return s.Status }, threshold: topTier},
	{id: "mastery", icon: "🎓", label: "Mastery", desc: "Intelligence reached the top tier", direction: 1, dim: func(s domain.StateVector) float64 { return s.Intelligence }, threshold: topTier},
	{id: "burnout-dip", icon: "🔥", label: "Burnout Scare", desc: "Resilience fell into the danger zone", direction: -1, dim: func(s domain.StateVector) float64 { return s.Resilience }, threshold: burnoutResilienceThreshold},
}

func (m milestoneDef) crossed(prev, cur domain.StateVector) bool {
	if m.netWorth != nil {
		if m.direction > 0 {
			return prev.NetWorth().LessThan(*m.netWorth) && cur.NetWorth().GreaterThanOrEqual(*m.netWorth)
		}
		return prev.NetWorth().GreaterThanOrEqual(*m.netWorth) && cur.NetWorth().LessThan(*m.netWorth)
	}
	if m.direction > 0 {
		return m.dim(prev) < m.threshold && m.dim(cur) >= m.threshold
	}
	return m.dim(prev) >= m.threshold && m.dim(cur) < m.threshold
}

// ScanMilestones walks a trajectory year by year and emits one Milestone
// per monitored threshold, at the first year it is crossed. The result is
// ascending in year with no duplicate threshold IDs. A condition already
// holding at year 0 does not fire; milestones record crossings, not
// starting circumstances.
func ScanMilestones(states []domain.StateVector, startYear int) []domain.Milestone {
	var out []domain.Milestone
	fired := make(map[string]bool, len(milestoneDefs))

	for t := 1; t < len(states); t++ {
		for _, def := range milestoneDefs {
			if fired[def.id] || !def.crossed(states[t-1], states[t]) {
				continue
			}
			fired[def.id] = true
			out = append(out, domain.Milestone{
				ID:          def.id,
				Icon:        def.icon,
				Label:       def.label,
				Description: def.desc,
				Year:        startYear + t,
			})
		}
	}
	return out
}

// Classify assigns a path its single outcome category. Predicates are
// evaluated in fixed priority order; the first match wins:
// burnout, wealthy, healthy, balanced, other.
func Classify(p domain.SimulatedPath) domain.Category {
	final, ok := p.FinalState()
	if !ok {
		return domain.CategoryOther
	}

	switch {
	case p.MinResilience < burnoutResilienceThreshold:
		return domain.CategoryBurnout
	case p.FinalNetWorth().GreaterThanOrEqual(wealthyNetWorthThreshold):
		return domain.CategoryWealthy
	case final.Vitality.Composite() >= highVitalityThreshold && final.Resilience >= healthyResilienceFloor:
		return domain.CategoryHealthy
	case isBalanced(final):
		return domain.CategoryBalanced
	default:
		return domain.CategoryOther
	}
}
