// Package calculate exposes the trading and investment calculators as a
// service, fetching live exchange rates where a calculation needs them.
package calculate

import (
	"context"
	"fmt"

	"github.com/moneyhiver/hiver/internal/calc"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
)

// Service implements CalculateService on top of the pure calculators.
type Service struct {
	rates  interfaces.RateProvider
	logger *common.Logger
}

// NewService creates a new calculate service.
func NewService(rates interfaces.RateProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		rates:  rates,
		logger: logger,
	}
}

// ProfitLoss computes position size, margin and P&L for a trade.
func (s *Service) ProfitLoss(ctx context.Context, input calc.PositionInput) (*calc.PositionResult, error) {
	result, err := calc.ComputePosition(input)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("asset_type", string(input.AssetType)).
		Float64("profit_loss", result.ProfitLoss).
		Msg("Computed position P&L")

	return &result, nil
}

// Dividend projects dividend income over the ownership period. Prices in
// non-USD currencies are converted using a fresh rate snapshot.
func (s *Service) Dividend(ctx context.Context, input calc.DividendInput) (*calc.DividendResult, error) {
	rates, err := s.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	result, err := calc.ProjectDividends(input, rates)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("variant", string(result.Variant)).
		Str("currency", input.Currency).
		Float64("total_div", result.TotalDividends).
		Msg("Projected dividends")

	return &result, nil
}

// Margin computes the margin required to open a position at the given leverage.
func (s *Service) Margin(ctx context.Context, input calc.MarginInput) (*calc.MarginResult, error) {
	result, err := calc.ComputeMargin(input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RiskReward computes the risk/reward profile of a planned trade.
func (s *Service) RiskReward(ctx context.Context, input calc.RRRInput) (*calc.RRRResult, error) {
	result, err := calc.ComputeRiskReward(input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Convert converts an amount between two currencies at current rates.
func (s *Service) Convert(ctx context.Context, input calc.ConversionInput) (*calc.ConversionResult, error) {
	rates, err := s.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	result, err := calc.Convert(input, rates)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("from", input.FromCurrency).
		Str("to", input.ToCurrency).
		Float64("rate", result.ExchangeRate).
		Msg("Converted currency")

	return &result, nil
}

func (s *Service) rateTable(ctx context.Context) (calc.RateTable, error) {
	snapshot, err := s.rates.GetLatestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	return snapshot.Rates, nil
}

var _ interfaces.CalculateService = (*Service)(nil)
