package logbook

import "testing"

func TestValuate(t *testing.T) {
	positions := Aggregate([]Transaction{
		buy(US, "aapl", 10, 100),
		buy(US, "aapl", 20, 100),
	})
	v := Valuate(positions["AAPL"], USD(18.75), true)

	if !v.Valued {
		t.Fatal("Valuate() with a quote should be valued")
	}
	// 200 shares, avg 15, quote 18.75
	if want := USD(750); !v.UnrealizedPL.Equal(want) {
		t.Errorf("UnrealizedPL = %v, want %v", v.UnrealizedPL, want)
	}
	if want := Percent(25); !v.ROIPct.Equal(want) {
		t.Errorf("ROIPct = %v, want %v", v.ROIPct, want)
	}
}

// An absent quote is a modeled state: the valuation exists but carries no
// gain figures.
func TestValuate_NoQuote(t *testing.T) {
	positions := Aggregate([]Transaction{buy(US, "aapl", 10, 100)})
	v := Valuate(positions["AAPL"], Money{}, false)

	if v.Valued {
		t.Error("Valuate() without a quote should not be valued")
	}
	if !v.UnrealizedPL.IsZero() || !v.ROIPct.Equal(0) {
		t.Errorf("unvalued valuation carries gains: %v %v", v.UnrealizedPL, v.ROIPct)
	}
}

func TestValuate_ClosedPosition(t *testing.T) {
	positions := Aggregate([]Transaction{
		buy(US, "aapl", 10, 100),
		sell(US, "aapl", 20, 100),
	})
	v := Valuate(positions["AAPL"], USD(30), true)
	if v.Valued {
		t.Error("a fully closed position must not be valued")
	}
}

func TestComputeRealized(t *testing.T) {
	// avg cost 15, sell 50 shares at 30: realized 750, ROI 100%
	realized, roiPct := ComputeRealized(USD(30), Q(50), USD(15))
	if want := USD(750); !realized.Equal(want) {
		t.Errorf("realized = %v, want %v", realized, want)
	}
	if want := Percent(100); !roiPct.Equal(want) {
		t.Errorf("roiPct = %v, want %v", roiPct, want)
	}
}

func TestComputeRealized_Loss(t *testing.T) {
	realized, roiPct := ComputeRealized(USD(12), Q(10), USD(15))
	if want := USD(-30); !realized.Equal(want) {
		t.Errorf("realized = %v, want %v", realized, want)
	}
	if want := Percent(-20); !roiPct.Equal(want) {
		t.Errorf("roiPct = %v, want %v", roiPct, want)
	}
}

func TestComputeRealized_NoCostBasis(t *testing.T) {
	// selling with no recorded buys: gain relative to zero cost, ROI zero
	realized, roiPct := ComputeRealized(USD(30), Q(10), USD(0))
	if want := USD(300); !realized.Equal(want) {
		t.Errorf("realized = %v, want %v", realized, want)
	}
	if !roiPct.Equal(0) {
		t.Errorf("roiPct = %v, want 0", roiPct)
	}
}
