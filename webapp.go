package logbook

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// The original logbook persists its sheets through a spreadsheet web app
// exposing a tiny action-based API: getAll, add, delete, getPrices,
// getRiskMetrics. WebApp is the client for it.

const logbookAPIEnv = "LOGBOOK_API_URL"

var apiURLFlag = flag.String("api-url", "", "Base URL of the spreadsheet web app.\n If missing it will read the environment variable \""+logbookAPIEnv+"\".")

// APIURL returns the configured web app base URL, from flag or environment.
func APIURL() string {
	if *apiURLFlag == "" {
		*apiURLFlag = os.Getenv(logbookAPIEnv)
	}
	return strings.TrimRight(*apiURLFlag, "/")
}

// WebApp is a client for the spreadsheet web app API.
type WebApp struct {
	base   string
	client *http.Client // read calls, day-cached
	writer *http.Client // write calls, never cached
}

// NewWebApp creates a client for the given base URL. Read-only calls are
// cached on disk with a daily expiry; writes go straight through.
func NewWebApp(base string) (*WebApp, error) {
	if base == "" {
		return nil, fmt.Errorf("web app URL is not configured (flag -api-url or $%s)", logbookAPIEnv)
	}
	return &WebApp{base: strings.TrimRight(base, "/"), client: daily(), writer: new(http.Client)}, nil
}

// action builds the URL for an API action with extra query parameters.
func (w *WebApp) action(name string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", name)
	return w.base + "?" + params.Encode()
}

// apiError is the error envelope every web app response may carry.
type apiError struct {
	Error string `json:"error"`
}

func (e apiError) err() error {
	if e.Error != "" {
		return fmt.Errorf("web app error: %s", e.Error)
	}
	return nil
}

// Records fetches all rows of a sheet as label-keyed records. Translation
// into normalized transactions is the sheet adapter's job.
func (w *WebApp) Records(sheet string) ([]map[string]any, error) {
	var out struct {
		apiError
		Records []map[string]any `json:"records"`
	}
	addr := w.action("getAll", url.Values{"sheet": {sheet}})
	if err := jwget(w.client, addr, &out); err != nil {
		return nil, fmt.Errorf("cannot fetch records of sheet %q: %w", sheet, err)
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// Add appends a label-keyed record to a sheet.
func (w *WebApp) Add(sheet string, record map[string]any) error {
	var out apiError
	addr := w.action("add", url.Values{"sheet": {sheet}})
	if err := jwpost(w.writer, addr, record, &out); err != nil {
		return fmt.Errorf("cannot add record to sheet %q: %w", sheet, err)
	}
	return out.err()
}

// Delete removes a row of a sheet by its row number.
func (w *WebApp) Delete(sheet string, row int) error {
	var out apiError
	addr := w.action("delete", url.Values{"sheet": {sheet}, "row": {fmt.Sprint(row)}})
	if err := jwpost(w.writer, addr, nil, &out); err != nil {
		return fmt.Errorf("cannot delete row %d of sheet %q: %w", row, sheet, err)
	}
	return out.err()
}

// Prices fetches the pre-computed live prices, keyed by normalized symbol.
func (w *WebApp) Prices() (map[string]float64, error) {
	var out struct {
		apiError
		Prices map[string]float64 `json:"prices"`
	}
	if err := jwget(w.client, w.action("getPrices", nil), &out); err != nil {
		return nil, fmt.Errorf("cannot fetch prices: %w", err)
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(out.Prices))
	for symbol, price := range out.Prices {
		prices[NormalizeSymbol(symbol)] = price
	}
	return prices, nil
}

// RiskMetrics fetches the pre-computed volatility/beta figures.
func (w *WebApp) RiskMetrics() ([]RiskMetric, error) {
	var out struct {
		apiError
		Metrics []RiskMetric `json:"metrics"`
	}
	if err := jwget(w.client, w.action("getRiskMetrics", nil), &out); err != nil {
		return nil, fmt.Errorf("cannot fetch risk metrics: %w", err)
	}
	if err := out.err(); err != nil {
		return nil, err
	}
	for i := range out.Metrics {
		out.Metrics[i].Symbol = NormalizeSymbol(out.Metrics[i].Symbol)
	}
	return out.Metrics, nil
}
