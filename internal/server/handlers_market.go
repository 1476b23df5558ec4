package server

import (
	"net/http"
	"strings"
)

// handleCryptoPrices handles GET /api/crypto.
func (s *Server) handleCryptoPrices(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	prices, err := s.app.MarketService.CryptoPrices(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, prices)
}

// handleCurrencyBoard handles GET /api/currency.
func (s *Server) handleCurrencyBoard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	board, err := s.app.MarketService.CurrencyBoard(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, board)
}

// handleCurrencyRate handles GET /api/currency/{code} for the board
// currencies, answering with the single ruble cross rate.
func (s *Server) handleCurrencyRate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	code := strings.ToUpper(PathParam(r, "/api/currency/", ""))
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Currency code is required")
		return
	}

	board, err := s.app.MarketService.CurrencyBoard(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	var price float64
	switch code {
	case "USD":
		price = board.USD
	case "EUR":
		price = board.EUR
	case "CNY":
		price = board.CNY
	case "CHF":
		price = board.CHF
	default:
		WriteError(w, http.StatusNotFound, "Unknown currency "+code)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]float64{"price": price})
}

// handleStockQuote handles GET /api/stocks/{symbol}.
func (s *Server) handleStockQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, "/api/stocks/", "")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Stock symbol is required")
		return
	}

	quote, err := s.app.MarketService.StockQuote(r.Context(), symbol)
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, quote)
}
