package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/lifetrace/trajectory/internal/domain"
)

// ConsoleFormatter provides a concise console-style summary via the
// formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LIFE TRAJECTORY SIMULATION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Paths=%d Seed=%d StartYear=%d\n", len(result.Paths), result.Seed, result.StartYear)
	fmt.Fprintln(&buf)

	if result.Statistics == nil {
		fmt.Fprintln(&buf, "Empty ensemble: no statistics computed.")
		return buf.Bytes(), nil
	}

	s := result.Statistics
	fmt.Fprintf(&buf, "Mean Final Net Worth:   %s\n", FormatCurrency(s.MeanFinalNetWorth))
	fmt.Fprintf(&buf, "Median Final Net Worth: %s\n", FormatCurrency(s.MedianFinalNetWorth))
	fmt.Fprintf(&buf, "Success Probability:    %s\n", FormatProbability(s.SuccessProbability))
	fmt.Fprintf(&buf, "Burnout Probability:    %s\n", FormatProbability(s.BurnoutProbability))
	fmt.Fprintf(&buf, "Net Worth Percentiles:  P10=%s P25=%s P50=%s P75=%s P90=%s\n",
		FormatCurrency(s.Percentiles.P10),
		FormatCurrency(s.Percentiles.P25),
		FormatCurrency(s.Percentiles.P50),
		FormatCurrency(s.Percentiles.P75),
		FormatCurrency(s.Percentiles.P90),
	)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Outcomes: wealthy=%s balanced=%s high-vitality=%s burnout-risk=%s\n",
		FormatProbability(s.Buckets.WealthyOutcome),
		FormatProbability(s.Buckets.BalancedOutcome),
		FormatProbability(s.Buckets.HighVitality),
		FormatProbability(s.Buckets.BurnoutRisk),
	)

	counts := map[domain.Category]int{}
	for _, p := range result.Paths {
		counts[p.Category]++
	}
	fmt.Fprint(&buf, "Categories:")
	for _, cat := range domain.Categories() {
		if counts[cat] > 0 {
			fmt.Fprintf(&buf, " %s=%d", cat.Info().Label, counts[cat])
		}
	}
	fmt.Fprintln(&buf)

	if g := result.GoldenPath; g != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "GOLDEN PATH")
		fmt.Fprintln(&buf, "--------------------------------")
		real := mustFinal(g).ToRealUnits()
		fmt.Fprintf(&buf, "Category=%s Risk=%.2f MinResilience=%.2f\n", g.Category.Info().Label, g.RiskScore, g.MinResilience)
		fmt.Fprintf(&buf, "Final: NetWorth=%s Body=%s Mind=%s Status=%s Resilience=%s\n",
			FormatCurrency(real.NetWorth), real.BodyLabel, real.MindLabel, real.StatusLabel, real.ResilienceLabel)
		milestones := append([]domain.Milestone(nil), g.Milestones...)
		sort.Slice(milestones, func(i, j int) bool { return milestones[i].Year < milestones[j].Year })
		for _, m := range milestones {
			fmt.Fprintf(&buf, "  %d %s %s: %s\n", m.Year, m.Icon, m.Label, m.Description)
		}
	}

	return buf.Bytes(), nil
}

func mustFinal(p *domain.SimulatedPath) domain.StateVector {
	final, _ := p.FinalState()
	return final
}
