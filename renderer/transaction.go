package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/logbook"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx logbook.Transaction) string {
	if tx.IsSell() {
		return fmt.Sprintf("Sold %s of %s at %s", tx.Quantity, tx.Ticker(), tx.PriceMoney())
	}
	return fmt.Sprintf("Bought %s of %s at %s", tx.Quantity, tx.Ticker(), tx.PriceMoney())
}

// Transactions renders the transaction list as a markdown table.
func Transactions(transactions []logbook.Transaction) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	if len(transactions) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Market | Symbol | Action | Price | Shares | Realized | Row |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|:---|")
	for _, tx := range transactions {
		action := "buy"
		realized := "—"
		if tx.IsSell() {
			action = "sell"
			if tx.Realized != nil {
				realized = logbook.M(*tx.Realized, tx.Market.Currency()).SignedString()
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Market,
			tx.Ticker(),
			action,
			tx.PriceMoney(),
			tx.Quantity,
			realized,
			tx.RowID,
		)
	}

	return b.String()
}
