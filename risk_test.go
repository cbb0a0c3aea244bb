package logbook

import "testing"

func TestClassify(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	testCases := []struct {
		name       string
		volatility *float64
		want       RiskTier
	}{
		{"missing figure", nil, TierUnknown},
		{"zero", f(0), TierLow},
		{"just under low boundary", f(14.999), TierLow},
		{"exactly on low boundary", f(15), TierMedium},
		{"just under medium boundary", f(24.999), TierMedium},
		{"exactly on medium boundary", f(25), TierElevated},
		{"just under high boundary", f(39.999), TierElevated},
		{"exactly on high boundary", f(40), TierHigh},
		{"extreme", f(300), TierHigh},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.volatility); got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.volatility, got, tc.want)
			}
		})
	}
}

func TestRiskTier_String(t *testing.T) {
	if got := TierElevated.String(); got != "Elevated" {
		t.Errorf("TierElevated.String() = %q", got)
	}
	if got := RiskTier(99).String(); got != "Unknown" {
		t.Errorf("out of range tier String() = %q, want Unknown", got)
	}
}

func TestRiskMetric_Tier(t *testing.T) {
	v := 18.5
	m := RiskMetric{Symbol: "AAPL", VolatilityPct: &v}
	if got := m.Tier(); got != TierMedium {
		t.Errorf("Tier() = %v, want Medium", got)
	}
	if got := (RiskMetric{Symbol: "NEW"}).Tier(); got != TierUnknown {
		t.Errorf("Tier() without volatility = %v, want Unknown", got)
	}
}
