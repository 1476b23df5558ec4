// Package market aggregates spot prices from the upstream market data
// clients into the boards the frontend renders.
package market

import (
	"context"
	"fmt"
	"math"

	"github.com/moneyhiver/hiver/internal/clients/binance"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
	"github.com/moneyhiver/hiver/internal/models"
)

// Service implements MarketService.
type Service struct {
	crypto interfaces.CryptoClient
	stocks interfaces.StockClient
	rates  interfaces.RateProvider
	logger *common.Logger
}

// NewService creates a new market service.
func NewService(crypto interfaces.CryptoClient, stocks interfaces.StockClient, rates interfaces.RateProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		crypto: crypto,
		stocks: stocks,
		rates:  rates,
		logger: logger,
	}
}

// CryptoPrices returns current spot BTC and ETH prices in USD.
func (s *Service) CryptoPrices(ctx context.Context) (*models.CryptoPrices, error) {
	btc, err := s.crypto.GetTickerPrice(ctx, binance.SymbolBTC)
	if err != nil {
		return nil, fmt.Errorf("fetch BTC price: %w", err)
	}
	eth, err := s.crypto.GetTickerPrice(ctx, binance.SymbolETH)
	if err != nil {
		return nil, fmt.Errorf("fetch ETH price: %w", err)
	}

	return &models.CryptoPrices{
		BTC: round2(btc),
		ETH: round2(eth),
	}, nil
}

// StockQuote returns the current quote for a stock symbol.
func (s *Service) StockQuote(ctx context.Context, symbol string) (*models.StockQuote, error) {
	quote, err := s.stocks.GetQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}
	return quote, nil
}

// CurrencyBoard returns ruble cross rates for the major currencies shown
// on the exchange rate board.
func (s *Service) CurrencyBoard(ctx context.Context) (*models.CurrencyBoard, error) {
	snapshot, err := s.rates.GetLatestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}

	rub, err := snapshot.Rates.Rate("RUB")
	if err != nil {
		return nil, err
	}

	board := &models.CurrencyBoard{USD: round2(rub)}
	for _, cross := range []struct {
		code string
		dst  *float64
	}{
		{"EUR", &board.EUR},
		{"CNY", &board.CNY},
		{"CHF", &board.CHF},
	} {
		rate, err := snapshot.Rates.Rate(cross.code)
		if err != nil {
			return nil, err
		}
		*cross.dst = round2(rub / rate)
	}

	return board, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ interfaces.MarketService = (*Service)(nil)
