package logbook

import "time"

// USD is a helper for tests to create US dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// TWD is a helper for tests to create Taiwan dollar money from const
func TWD(v float64) Money { return M(v, "TWD") }

// day is a helper for tests to create a date in 2024.
func day(month time.Month, d int) Date { return NewDate(2024, month, d) }

// buy creates a minimal valid buy transaction.
func buy(market Market, symbol string, price, quantity float64) Transaction {
	return Transaction{
		Symbol:   symbol,
		Market:   market,
		Action:   Buy,
		Date:     day(time.March, 1),
		Price:    newDecimal(price),
		Quantity: Q(quantity),
	}
}

// sell creates a minimal valid sell transaction.
func sell(market Market, symbol string, price, quantity float64) Transaction {
	tx := buy(market, symbol, price, quantity)
	tx.Action = Sell
	tx.Date = day(time.April, 1)
	return tx
}
