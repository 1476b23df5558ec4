package interfaces

import (
	"context"

	"github.com/moneyhiver/hiver/internal/calc"
	"github.com/moneyhiver/hiver/internal/models"
)

// CalculateService runs the calculation engine for callers, fetching an
// exchange rate snapshot where the calculator needs one.
type CalculateService interface {
	// ProfitLoss sizes a position and computes its profit/loss
	ProfitLoss(ctx context.Context, in calc.PositionInput) (*calc.PositionResult, error)

	// Dividend projects dividend income over an ownership period
	Dividend(ctx context.Context, in calc.DividendInput) (*calc.DividendResult, error)

	// DividendChart renders the year-by-year projected income as a PNG
	DividendChart(ctx context.Context, in calc.DividendInput) ([]byte, error)

	// Margin computes volume and required margin
	Margin(ctx context.Context, in calc.MarginInput) (*calc.MarginResult, error)

	// RiskReward computes risk/reward sizing for a planned trade
	RiskReward(ctx context.Context, in calc.RRRInput) (*calc.RRRResult, error)

	// Convert exchanges an amount between two currencies
	Convert(ctx context.Context, in calc.ConversionInput) (*calc.ConversionResult, error)
}

// MarketService aggregates the spot prices served on the market boards.
type MarketService interface {
	// CryptoPrices returns spot BTC and ETH prices
	CryptoPrices(ctx context.Context) (*models.CryptoPrices, error)

	// StockQuote returns the current price for a stock symbol
	StockQuote(ctx context.Context, symbol string) (*models.StockQuote, error)

	// CurrencyBoard returns ruble cross rates for the exchange rate board
	CurrencyBoard(ctx context.Context) (*models.CurrencyBoard, error)
}

// AlertService manages price alert subscriptions.
type AlertService interface {
	// Subscribe registers (or replaces) a price alert for an email address
	Subscribe(ctx context.Context, email, asset string, targetPrice float64) (*models.AlertSubscription, error)

	// Unsubscribe removes the alert for an email address, reporting whether one existed
	Unsubscribe(ctx context.Context, email string) bool

	// List returns the active subscriptions
	List(ctx context.Context) []*models.AlertSubscription
}
