package output

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole-dollar USD. Kept here so it can
// be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(0) }

// FormatProbability formats a [0,1] fraction as a percentage with 1 decimal.
func FormatProbability(p float64) string { return fmt.Sprintf("%.1f%%", p*100) }
