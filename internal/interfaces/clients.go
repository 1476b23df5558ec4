// Package interfaces defines service and client contracts for Hiver
package interfaces

import (
	"context"

	"github.com/moneyhiver/hiver/internal/models"
)

// RateProvider fetches a fresh exchange rate snapshot. Implementations call
// an external FX API; freshness policy belongs to the caller, which fetches
// one snapshot per calculation.
type RateProvider interface {
	GetLatestRates(ctx context.Context) (*models.RateSnapshot, error)
}

// CryptoClient quotes spot crypto prices by exchange symbol (e.g. BTCUSDT).
type CryptoClient interface {
	GetTickerPrice(ctx context.Context, symbol string) (float64, error)
}

// StockClient quotes spot stock prices by ticker symbol.
type StockClient interface {
	GetQuote(ctx context.Context, symbol string) (*models.StockQuote, error)
}

// Notifier delivers outbound notifications (email in production).
type Notifier interface {
	Send(ctx context.Context, msg models.Message) error
}
