package logbook

// RiskTier buckets a volatility percentage into a coarse risk label.
type RiskTier int

const (
	TierUnknown RiskTier = iota
	TierLow
	TierMedium
	TierElevated
	TierHigh
)

func (t RiskTier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierElevated:
		return "Elevated"
	case TierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Classify buckets a volatility percentage into a risk tier. A nil input
// means the figure was never computed and maps to TierUnknown.
//
// Boundaries are half-open [prev, next): a volatility of exactly 15.0 is
// Medium, not Low. Classify is total: there is no error case.
func Classify(volatilityPct *float64) RiskTier {
	switch {
	case volatilityPct == nil:
		return TierUnknown
	case *volatilityPct < 15:
		return TierLow
	case *volatilityPct < 25:
		return TierMedium
	case *volatilityPct < 40:
		return TierElevated
	default:
		return TierHigh
	}
}

// RiskMetric carries externally pre-computed volatility and beta figures for
// a symbol. Only their classification is computed locally.
type RiskMetric struct {
	Symbol        string   `json:"symbol"`
	VolatilityPct *float64 `json:"volatility,omitempty"`
	Beta          *float64 `json:"beta,omitempty"`
}

// Tier classifies the metric's volatility.
func (m RiskMetric) Tier() RiskTier { return Classify(m.VolatilityPct) }
