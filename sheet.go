package logbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The spreadsheet keys its columns by human-readable labels. The adapter in
// this file translates label-keyed records into normalized transactions at
// the boundary, so the engine itself never reads ad-hoc string keys.

// Sheet names of the source spreadsheet.
const (
	SheetUS      = "美股"
	SheetTW      = "台股"
	SheetLottery = "樂透"
)

// Column labels of the stock sheets.
const (
	labelSymbol       = "代號"
	labelDate         = "日期"
	labelPriceUSD     = "價格(USD)"
	labelPriceTWD     = "價格(TWD)"
	labelShares       = "股數"
	labelAction       = "動作"
	labelStopLoss     = "停損價"
	labelTakeProfit   = "停利價"
	labelScaleIn      = "加碼價"
	labelScaleOut     = "減碼價"
	labelBuyRationale = "買入理由"
	labelSellNote     = "賣出備註"
	labelAttachment   = "附件"
	labelRealized     = "已實現損益"
	labelRealizedROI  = "已實現報酬率(%)"
	labelRow          = "_row"
)

// Column labels of the lottery sheet.
const (
	labelDraw    = "期數"
	labelNumbers = "號碼"
	labelSpent   = "花費"
	labelWon     = "中獎金額"
)

// Sheet returns the sheet name of a market.
func (m Market) Sheet() string {
	if m == US {
		return SheetUS
	}
	return SheetTW
}

// priceLabel returns the market's price column label.
func (m Market) priceLabel() string {
	if m == US {
		return labelPriceUSD
	}
	return labelPriceTWD
}

// ParseSheetRecord translates one label-keyed sheet record of a market into a
// normalized transaction. A missing required field or a non-numeric amount
// fails fast with a ValidationError naming the offending label; it is never
// coerced to zero.
func ParseSheetRecord(market Market, record map[string]any) (Transaction, error) {
	tx := Transaction{Market: market}

	symbol, _ := record[labelSymbol].(string)
	tx.Symbol = NormalizeSymbol(symbol)

	day, err := sheetDate(record[labelDate])
	if err != nil {
		return Transaction{}, invalidf(labelDate, "%v", err)
	}
	tx.Date = day

	price, err := sheetDecimal(market.priceLabel(), record[market.priceLabel()], true)
	if err != nil {
		return Transaction{}, err
	}
	tx.Price = *price

	quantity, err := sheetDecimal(labelShares, record[labelShares], true)
	if err != nil {
		return Transaction{}, err
	}
	tx.Quantity = Q(*quantity)

	rawAction, _ := record[labelAction].(string)
	action, err := parseSheetAction(rawAction)
	if err != nil {
		return Transaction{}, invalidf(labelAction, "%v", err)
	}
	tx.Action = action

	if tx.StopLoss, err = sheetDecimal(labelStopLoss, record[labelStopLoss], false); err != nil {
		return Transaction{}, err
	}
	if tx.TakeProfit, err = sheetDecimal(labelTakeProfit, record[labelTakeProfit], false); err != nil {
		return Transaction{}, err
	}
	if tx.ScaleIn, err = sheetDecimal(labelScaleIn, record[labelScaleIn], false); err != nil {
		return Transaction{}, err
	}
	if tx.ScaleOut, err = sheetDecimal(labelScaleOut, record[labelScaleOut], false); err != nil {
		return Transaction{}, err
	}
	if tx.Realized, err = sheetDecimal(labelRealized, record[labelRealized], false); err != nil {
		return Transaction{}, err
	}
	if pct, err := sheetDecimal(labelRealizedROI, record[labelRealizedROI], false); err != nil {
		return Transaction{}, err
	} else if pct != nil {
		v := pct.InexactFloat64()
		tx.RealizedROIPct = &v
	}

	tx.BuyRationale, _ = record[labelBuyRationale].(string)
	tx.SellNote, _ = record[labelSellNote].(string)
	tx.Attachment, _ = record[labelAttachment].(string)
	tx.RowID = sheetRow(record[labelRow])

	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// ImportSheet translates a whole sheet of label-keyed records. The first
// malformed record aborts the import.
func ImportSheet(market Market, records []map[string]any) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(records))
	for i, record := range records {
		tx, err := ParseSheetRecord(market, record)
		if err != nil {
			return nil, fmt.Errorf("record %d of sheet %q: %w", i+1, market.Sheet(), err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ParseLotteryRecord translates one label-keyed lottery sheet record.
func ParseLotteryRecord(record map[string]any) (LotteryRecord, error) {
	var rec LotteryRecord

	day, err := sheetDate(record[labelDate])
	if err != nil {
		return LotteryRecord{}, invalidf(labelDate, "%v", err)
	}
	rec.Date = day

	rec.Draw = fmt.Sprint(record[labelDraw])
	if record[labelDraw] == nil {
		rec.Draw = ""
	}
	rec.Numbers, _ = record[labelNumbers].(string)

	spent, err := sheetDecimal(labelSpent, record[labelSpent], true)
	if err != nil {
		return LotteryRecord{}, err
	}
	rec.Spent = *spent

	won, err := sheetDecimal(labelWon, record[labelWon], false)
	if err != nil {
		return LotteryRecord{}, err
	}
	if won != nil {
		rec.Won = *won
	}
	rec.RowID = sheetRow(record[labelRow])

	if err := rec.Validate(); err != nil {
		return LotteryRecord{}, err
	}
	return rec, nil
}

// SheetRecord translates a transaction back into a label-keyed record, the
// shape the web app's add action expects.
func SheetRecord(tx Transaction) map[string]any {
	record := map[string]any{
		labelSymbol:            tx.Symbol,
		labelDate:              tx.Date.String(),
		tx.Market.priceLabel(): tx.Price.InexactFloat64(),
		labelShares:            tx.Quantity.Decimal().InexactFloat64(),
	}
	if tx.IsSell() {
		record[labelAction] = "賣出"
	}
	optional := func(label string, v *decimal.Decimal) {
		if v != nil {
			record[label] = v.InexactFloat64()
		}
	}
	optional(labelStopLoss, tx.StopLoss)
	optional(labelTakeProfit, tx.TakeProfit)
	optional(labelScaleIn, tx.ScaleIn)
	optional(labelScaleOut, tx.ScaleOut)
	optional(labelRealized, tx.Realized)
	if tx.RealizedROIPct != nil {
		record[labelRealizedROI] = *tx.RealizedROIPct
	}
	if tx.BuyRationale != "" {
		record[labelBuyRationale] = tx.BuyRationale
	}
	if tx.SellNote != "" {
		record[labelSellNote] = tx.SellNote
	}
	if tx.Attachment != "" {
		record[labelAttachment] = tx.Attachment
	}
	return record
}

// parseSheetAction maps the sheet's action labels onto Action. An empty cell
// defaults to a buy, like everywhere else.
func parseSheetAction(s string) (Action, error) {
	switch strings.TrimSpace(s) {
	case "", "買入":
		return Buy, nil
	case "賣出":
		return Sell, nil
	default:
		return ParseAction(s)
	}
}

// sheetDate accepts the date cell as a string in ISO-8601.
func sheetDate(v any) (Date, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return Date{}, fmt.Errorf("missing")
	}
	return ParseDate(s)
}

// sheetDecimal parses a numeric cell. Numbers and numeric strings are
// accepted; anything else is a ValidationError on the label. Empty optional
// cells yield nil.
func sheetDecimal(label string, v any, required bool) (*decimal.Decimal, error) {
	switch value := v.(type) {
	case nil:
		if required {
			return nil, invalidf(label, "missing")
		}
		return nil, nil
	case float64:
		d := decimal.NewFromFloat(value)
		return &d, nil
	case int:
		d := decimal.NewFromInt(int64(value))
		return &d, nil
	case string:
		if strings.TrimSpace(value) == "" {
			if required {
				return nil, invalidf(label, "missing")
			}
			return nil, nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, invalidf(label, "not a number: %q", value)
		}
		return &d, nil
	default:
		return nil, invalidf(label, "not a number: %v", v)
	}
}

// sheetRow renders the _row cell (a row number) as an opaque row id.
func sheetRow(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.Itoa(int(value))
	default:
		return fmt.Sprint(value)
	}
}
