package logbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// LotteryRecord is one lottery ticket entry: what it cost and what it won.
type LotteryRecord struct {
	RowID   string          `json:"row,omitempty"`
	Date    Date            `json:"date"`
	Draw    string          `json:"draw"`
	Numbers string          `json:"numbers,omitempty"`
	Spent   decimal.Decimal `json:"spent"`
	Won     decimal.Decimal `json:"won"`
}

// Validate checks the record for shape errors.
func (r LotteryRecord) Validate() error {
	if r.Date.IsZero() {
		return invalidf("date", "missing")
	}
	if r.Draw == "" {
		return invalidf("draw", "missing")
	}
	if r.Spent.IsNegative() {
		return invalidf("spent", "negative: %s", r.Spent)
	}
	if r.Won.IsNegative() {
		return invalidf("won", "negative: %s", r.Won)
	}
	return nil
}

// LotteryTotals aggregates a lottery book. All amounts are in TWD.
type LotteryTotals struct {
	Spent Money
	Won   Money
	Net   Money
}

// TotalLottery folds lottery records into spend/win totals. Net is won minus
// spent and may be negative.
func TotalLottery(records []LotteryRecord) LotteryTotals {
	spent, won := M(0, "TWD"), M(0, "TWD")
	for _, r := range records {
		spent = spent.Add(M(r.Spent, "TWD"))
		won = won.Add(M(r.Won, "TWD"))
	}
	return LotteryTotals{Spent: spent, Won: won, Net: won.Sub(spent)}
}

// DecodeLotteryBook decodes a JSONL stream of lottery records.
func DecodeLotteryBook(r io.Reader) ([]LotteryRecord, error) {
	var records []LotteryRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec LotteryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse lottery line %q: %w", string(line), err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid lottery line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// EncodeLotteryRecord appends a single lottery record to 'w' in JSONL format.
func EncodeLotteryRecord(w io.Writer, rec LotteryRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeLotteryBook writes all records to 'w', the rewrite path after a
// deletion.
func EncodeLotteryBook(w io.Writer, records []LotteryRecord) error {
	for _, rec := range records {
		if err := EncodeLotteryRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
