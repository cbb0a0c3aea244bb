package logbook

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregateMarkets(t *testing.T) {
	totals := []MarketTotal{
		{Market: TW, NativeTotal: TWD(10000)},
		{Market: US, NativeTotal: USD(100)},
	}
	fx := func(from, to string) (decimal.Decimal, error) {
		if from == "USD" && to == "TWD" {
			return decimal.NewFromInt(32), nil
		}
		return decimal.Decimal{}, fmt.Errorf("no rate %s/%s", from, to)
	}

	items, grandTotal := AggregateMarkets(totals, "TWD", fx, FallbackUSDTWD)

	if want := TWD(13200); !grandTotal.Equal(want) {
		t.Fatalf("grandTotal = %v, want %v", grandTotal, want)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// sorted by normalized total descending: TW 10000 before US 3200
	if items[0].Market != TW || items[1].Market != US {
		t.Errorf("order = [%s %s], want [tw us]", items[0].Market, items[1].Market)
	}
	if want := TWD(3200); !items[1].NormalizedTotal.Equal(want) {
		t.Errorf("US normalized = %v, want %v", items[1].NormalizedTotal, want)
	}
	if want := Percent(75.7575); !items[0].SharePct.Equal(want) {
		t.Errorf("TW share = %v, want about %v", items[0].SharePct, want)
	}
	if want := Percent(24.2424); !items[1].SharePct.Equal(want) {
		t.Errorf("US share = %v, want about %v", items[1].SharePct, want)
	}
}

// One unavailable rate degrades precision, it must not make the whole view
// unavailable.
func TestAggregateMarkets_Fallback(t *testing.T) {
	totals := []MarketTotal{{Market: US, NativeTotal: USD(100)}}
	failing := func(from, to string) (decimal.Decimal, error) {
		return decimal.Decimal{}, fmt.Errorf("feed down")
	}

	items, _ := AggregateMarkets(totals, "TWD", failing, decimal.NewFromFloat(32.5))
	if want := TWD(3250); !items[0].NormalizedTotal.Equal(want) {
		t.Errorf("normalized = %v, want fallback %v", items[0].NormalizedTotal, want)
	}
}

func TestAggregateMarkets_ZeroTotal(t *testing.T) {
	totals := []MarketTotal{
		{Market: US, NativeTotal: USD(0)},
		{Market: TW, NativeTotal: TWD(0)},
	}
	items, grandTotal := AggregateMarkets(totals, "TWD", nil, decimal.NewFromFloat(32.5))
	if !grandTotal.IsZero() {
		t.Fatalf("grandTotal = %v, want zero", grandTotal)
	}
	for _, item := range items {
		if !item.SharePct.Equal(0) {
			t.Errorf("%s share = %v, want 0", item.Market, item.SharePct)
		}
	}
}

func TestAggregateMarkets_SameCurrency(t *testing.T) {
	// a TWD total in a TWD report never goes through fx
	totals := []MarketTotal{{Market: TW, NativeTotal: TWD(500)}}
	called := false
	fx := func(from, to string) (decimal.Decimal, error) {
		called = true
		return decimal.NewFromInt(1), nil
	}
	items, _ := AggregateMarkets(totals, "TWD", fx, decimal.NewFromFloat(32.5))
	if called {
		t.Error("fx was called for a total already in the reporting currency")
	}
	if !items[0].NormalizedTotal.Equal(TWD(500)) {
		t.Errorf("normalized = %v, want unchanged", items[0].NormalizedTotal)
	}
}

func TestBreakdown(t *testing.T) {
	invested := map[string]Money{
		"AAPL": USD(1750.456),
		"MSFT": USD(3000),
		"GME":  USD(0),       // closed, dropped
		"TSLA": USD(-120.50), // over-sold, dropped
		"NVDA": USD(3000),    // tie with MSFT, label order
	}
	got := Breakdown(invested)

	want := []Slice{
		{Label: "MSFT", Value: decimal.NewFromInt(3000)},
		{Label: "NVDA", Value: decimal.NewFromInt(3000)},
		{Label: "AAPL", Value: decimal.NewFromFloat(1750.46)},
	}
	if len(got) != len(want) {
		t.Fatalf("Breakdown() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Label != want[i].Label || !got[i].Value.Equal(want[i].Value) {
			t.Errorf("Breakdown()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNativeTotal(t *testing.T) {
	txs := []Transaction{
		buy(US, "aapl", 10, 100),
		sell(US, "aapl", 25, 50),
		buy(TW, "2330", 600, 10), // filtered out
	}
	total := NativeTotal(US, txs)
	// 1000 bought, 1250 sold back
	if want := USD(-250); !total.NativeTotal.Equal(want) {
		t.Errorf("NativeTotal = %v, want %v", total.NativeTotal, want)
	}
	if total.NativeTotal.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", total.NativeTotal.Currency())
	}
}
