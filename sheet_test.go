package logbook

import (
	"errors"
	"testing"
)

func usRecord() map[string]any {
	return map[string]any{
		"代號":      "nvda",
		"日期":      "2024-03-01",
		"價格(USD)": 135.5,
		"股數":      10.0,
		"動作":      "買入",
		"買入理由":    "AI capex cycle",
		"_row":    5.0,
	}
}

func TestParseSheetRecord(t *testing.T) {
	tx, err := ParseSheetRecord(US, usRecord())
	if err != nil {
		t.Fatalf("ParseSheetRecord() error = %v", err)
	}
	if tx.Ticker() != "NVDA" {
		t.Errorf("Ticker() = %q, want NVDA", tx.Ticker())
	}
	if tx.IsSell() {
		t.Error("買入 should parse as a buy")
	}
	if !tx.Cost().Equal(USD(1355)) {
		t.Errorf("Cost() = %v, want %v", tx.Cost(), USD(1355))
	}
	if tx.Date.String() != "2024-03-01" {
		t.Errorf("Date = %s", tx.Date)
	}
	if tx.BuyRationale != "AI capex cycle" {
		t.Errorf("BuyRationale = %q", tx.BuyRationale)
	}
	if tx.RowID != "5" {
		t.Errorf("RowID = %q, want 5", tx.RowID)
	}
}

func TestParseSheetRecord_Sell(t *testing.T) {
	record := usRecord()
	record["動作"] = "賣出"
	record["已實現損益"] = 750.0
	record["已實現報酬率(%)"] = 100.0

	tx, err := ParseSheetRecord(US, record)
	if err != nil {
		t.Fatal(err)
	}
	if !tx.IsSell() {
		t.Error("賣出 should parse as a sell")
	}
	if tx.Realized == nil || !tx.Realized.Equal(newDecimal(750.0)) {
		t.Errorf("Realized = %v, want 750", tx.Realized)
	}
	if tx.RealizedROIPct == nil || *tx.RealizedROIPct != 100 {
		t.Errorf("RealizedROIPct = %v, want 100", tx.RealizedROIPct)
	}
}

func TestParseSheetRecord_TWPriceColumn(t *testing.T) {
	record := map[string]any{
		"代號":      "2330",
		"日期":      "2024-3-1", // single digit month accepted
		"價格(TWD)": "612.5",    // numeric string accepted
		"股數":      1000.0,
	}
	tx, err := ParseSheetRecord(TW, record)
	if err != nil {
		t.Fatal(err)
	}
	if !tx.Cost().Equal(TWD(612500)) {
		t.Errorf("Cost() = %v, want %v", tx.Cost(), TWD(612500))
	}
}

// A malformed amount names the offending label; it is never coerced to zero.
func TestParseSheetRecord_Malformed(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{"non numeric price", func(r map[string]any) { r["價格(USD)"] = "N/A" }, "價格(USD)"},
		{"missing price", func(r map[string]any) { delete(r, "價格(USD)") }, "價格(USD)"},
		{"non numeric shares", func(r map[string]any) { r["股數"] = "ten" }, "股數"},
		{"missing date", func(r map[string]any) { delete(r, "日期") }, "日期"},
		{"unknown action", func(r map[string]any) { r["動作"] = "做空" }, "動作"},
		{"non numeric stop loss", func(r map[string]any) { r["停損價"] = "x" }, "停損價"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := usRecord()
			tc.mutate(record)
			_, err := ParseSheetRecord(US, record)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseSheetRecord() = %v, want a *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestImportSheet_AbortsOnFirstBadRecord(t *testing.T) {
	bad := usRecord()
	bad["股數"] = "?"
	if _, err := ImportSheet(US, []map[string]any{usRecord(), bad}); err == nil {
		t.Error("ImportSheet() should fail on the malformed record")
	}
	txs, err := ImportSheet(US, []map[string]any{usRecord(), usRecord()})
	if err != nil {
		t.Fatalf("ImportSheet() error = %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("imported %d transactions, want 2", len(txs))
	}
}

func TestParseLotteryRecord(t *testing.T) {
	rec, err := ParseLotteryRecord(map[string]any{
		"日期":   "2024-05-21",
		"期數":   "113000048",
		"號碼":   "03 11 19 24 33 41",
		"花費":   100.0,
		"中獎金額": 0.0,
		"_row": 2.0,
	})
	if err != nil {
		t.Fatalf("ParseLotteryRecord() error = %v", err)
	}
	if rec.Draw != "113000048" {
		t.Errorf("Draw = %q", rec.Draw)
	}
	if !rec.Spent.Equal(newDecimal(100.0)) {
		t.Errorf("Spent = %v, want 100", rec.Spent)
	}
	if rec.RowID != "2" {
		t.Errorf("RowID = %q, want 2", rec.RowID)
	}
}

func TestSheetRecord_Roundtrip(t *testing.T) {
	tx, err := ParseSheetRecord(US, usRecord())
	if err != nil {
		t.Fatal(err)
	}
	record := SheetRecord(tx)

	back, err := ParseSheetRecord(US, record)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if back.Ticker() != tx.Ticker() || !back.Cost().Equal(tx.Cost()) || back.IsSell() != tx.IsSell() {
		t.Errorf("round trip mismatch: %+v != %+v", back, tx)
	}
}
