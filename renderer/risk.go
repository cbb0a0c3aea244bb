package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/logbook"
)

// RiskMarkdown renders the risk tier table from pre-computed metrics.
func RiskMarkdown(metrics []logbook.RiskMetric) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Risk Tiers\n\n")
	if len(metrics) == 0 {
		fmt.Fprintln(&b, "No risk metrics available.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Volatility | Beta | Tier |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|")
	for _, m := range metrics {
		volatility, beta := "—", "—"
		if m.VolatilityPct != nil {
			volatility = fmt.Sprintf("%.2f%%", *m.VolatilityPct)
		}
		if m.Beta != nil {
			beta = fmt.Sprintf("%.2f", *m.Beta)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", m.Symbol, volatility, beta, m.Tier())
	}

	return b.String()
}
