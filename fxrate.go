package logbook

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FallbackUSDTWD is the documented fallback rate used when the exchange rate
// feed is unavailable. A stale rate degrades precision; an aborted overview
// would lose the whole report.
var FallbackUSDTWD = decimal.NewFromFloat(32.5)

// rateFeed is a var so tests can point it at a local server.
var rateFeed = "https://api.exchangerate-api.com/v4/latest/"

// FetchRate returns the latest exchange rate from one currency to another
// using the public exchange-rate feed. The identity rate is returned without
// a network call.
func FetchRate(from, to string) (decimal.Decimal, error) {
	return fetchRate(daily(), from, to)
}

func fetchRate(client *http.Client, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	var jobj any
	if err := jwget(client, rateFeed+from, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching rate %s/%s: %w", from, to, err)
	}
	path := "$.rates." + to
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing rate %s/%s: %q %w", from, to, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return decimal.Zero, fmt.Errorf("error parsing rate %s/%s: not a positive number: %v", from, to, jval)
	}
	return decimal.NewFromFloat(val), nil
}
