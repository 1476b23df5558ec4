package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/moneyhiver/hiver/internal/calc"
)

// positionRequest mirrors the profit/loss calculator form.
type positionRequest struct {
	AssetType  string   `json:"asset_type"`
	Pair       string   `json:"pair"`
	OpenPrice  float64  `json:"open_price"`
	ClosePrice float64  `json:"close_price"`
	Amount     float64  `json:"amount"`
	Volume     *float64 `json:"volume"`
	Leverage   *float64 `json:"leverage"`
}

// normalizeAssetType maps the frontend's plural spelling onto the calculator's.
func normalizeAssetType(s string) calc.AssetType {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "stocks" {
		s = "stock"
	}
	return calc.AssetType(s)
}

// normalizeCurrency trims and uppercases a currency code.
func normalizeCurrency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// writeCalcError maps calculation errors onto HTTP statuses: invalid input
// and unknown currencies are the caller's fault, anything else means the
// upstream rate feed failed.
func writeCalcError(w http.ResponseWriter, err error) {
	var verr *calc.ValidationError
	if errors.As(err, &verr) {
		WriteError(w, http.StatusBadRequest, verr.Error())
		return
	}
	var cerr *calc.UnknownCurrencyError
	if errors.As(err, &cerr) {
		WriteError(w, http.StatusBadRequest, cerr.Error())
		return
	}
	WriteError(w, http.StatusBadGateway, err.Error())
}

// handleCalculatePosition handles POST /api/calculate/position.
func (s *Server) handleCalculatePosition(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req positionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CalculateService.ProfitLoss(r.Context(), calc.PositionInput{
		AssetType:  normalizeAssetType(req.AssetType),
		OpenPrice:  req.OpenPrice,
		ClosePrice: req.ClosePrice,
		Amount:     req.Amount,
		Volume:     req.Volume,
		Leverage:   req.Leverage,
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteResult(w, result)
}

// dividendRequest mirrors the dividend calculator form.
type dividendRequest struct {
	Asset          string   `json:"asset"`
	PricePerShare  float64  `json:"price_of_1_share"`
	FromCurrency   string   `json:"from_currency"`
	NumberOfShares float64  `json:"number_of_shares"`
	DivPerShare    float64  `json:"div_per_1_share"`
	PayPeriod      string   `json:"pay_period"`
	OwnPeriod      float64  `json:"own_period"`
	TaxRate        *float64 `json:"tax_rate"`
	DivGrowth      *float64 `json:"div_growth"`
}

func (req *dividendRequest) toInput() calc.DividendInput {
	return calc.DividendInput{
		PricePerShare:    req.PricePerShare,
		Currency:         normalizeCurrency(req.FromCurrency),
		SharesCount:      req.NumberOfShares,
		DividendPerShare: req.DivPerShare,
		PayPeriod:        calc.PayPeriod(strings.ToLower(strings.TrimSpace(req.PayPeriod))),
		OwnershipYears:   req.OwnPeriod,
		TaxRatePct:       req.TaxRate,
		GrowthRatePct:    req.DivGrowth,
	}
}

// handleCalculateDividend handles POST /api/calculate/dividend.
func (s *Server) handleCalculateDividend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req dividendRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CalculateService.Dividend(r.Context(), req.toInput())
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteResult(w, result)
}

// handleDividendChart handles POST /api/calculate/dividend/chart.
// Returns the projection as a PNG image rather than JSON.
func (s *Server) handleDividendChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req dividendRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	png, err := s.app.CalculateService.DividendChart(r.Context(), req.toInput())
	if err != nil {
		writeCalcError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// marginRequest mirrors the margin calculator form.
type marginRequest struct {
	AssetType      string  `json:"asset_type"`
	PricePerShare  float64 `json:"price_per_1_share"`
	NumberOfShares float64 `json:"number_of_shares"`
	Leverage       float64 `json:"leverage"`
}

// handleCalculateMargin handles POST /api/calculate/margin.
func (s *Server) handleCalculateMargin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req marginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CalculateService.Margin(r.Context(), calc.MarginInput{
		PricePerShare: req.PricePerShare,
		SharesCount:   req.NumberOfShares,
		Leverage:      req.Leverage,
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteResult(w, result)
}

// rrrRequest mirrors the risk/reward calculator form.
type rrrRequest struct {
	OpenPrice    float64 `json:"open_price"`
	TakeProfit   float64 `json:"take_profit"`
	StopLoss     float64 `json:"stop_loss"`
	Balance      float64 `json:"balance"`
	RiskPerTrade float64 `json:"risk_per_trade"`
}

// handleCalculateRRR handles POST /api/calculate/rrr.
func (s *Server) handleCalculateRRR(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req rrrRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CalculateService.RiskReward(r.Context(), calc.RRRInput{
		OpenPrice:       req.OpenPrice,
		TakeProfit:      req.TakeProfit,
		StopLoss:        req.StopLoss,
		Balance:         req.Balance,
		RiskPerTradePct: req.RiskPerTrade,
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteResult(w, result)
}

// conversionRequest mirrors the currency converter form.
type conversionRequest struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToAsset      string  `json:"to_asset"`
}

// handleCalculateConversion handles POST /api/calculate/conversion.
func (s *Server) handleCalculateConversion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req conversionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CalculateService.Convert(r.Context(), calc.ConversionInput{
		Amount:       req.Amount,
		FromCurrency: normalizeCurrency(req.FromCurrency),
		ToCurrency:   normalizeCurrency(req.ToAsset),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteResult(w, result)
}
