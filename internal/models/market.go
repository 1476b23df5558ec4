// Package models defines the value records exchanged between Hiver services
package models

import (
	"time"

	"github.com/moneyhiver/hiver/internal/calc"
)

// RateSnapshot is one fetch of the USD exchange rate feed. Callers pass the
// contained RateTable into the calculation engine; snapshots are never
// cached by the core.
type RateSnapshot struct {
	Base      string         `json:"base"`
	FetchedAt time.Time      `json:"fetched_at"`
	Rates     calc.RateTable `json:"rates"`
}

// StockQuote is a spot stock price from the quote provider.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePct     float64 `json:"change_percent"`
	PreviousClose float64 `json:"previous_close"`
}

// CryptoPrices holds the spot prices served on the crypto board.
type CryptoPrices struct {
	BTC float64 `json:"btc_price"`
	ETH float64 `json:"eth_price"`
}

// CurrencyBoard holds the ruble cross rates served on the exchange rate
// board, rounded to 2 decimal places.
type CurrencyBoard struct {
	USD float64 `json:"usdprice"`
	EUR float64 `json:"eurprice"`
	CNY float64 `json:"cnyprice"`
	CHF float64 `json:"chfprice"`
}
