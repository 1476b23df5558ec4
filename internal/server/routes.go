package server

import (
	"net/http"
	"time"

	"github.com/moneyhiver/hiver/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Calculators
	mux.HandleFunc("/api/calculate/position", s.handleCalculatePosition)
	mux.HandleFunc("/api/calculate/dividend", s.handleCalculateDividend)
	mux.HandleFunc("/api/calculate/dividend/chart", s.handleDividendChart)
	mux.HandleFunc("/api/calculate/margin", s.handleCalculateMargin)
	mux.HandleFunc("/api/calculate/rrr", s.handleCalculateRRR)
	mux.HandleFunc("/api/calculate/conversion", s.handleCalculateConversion)

	// Market boards
	mux.HandleFunc("/api/crypto", s.handleCryptoPrices)
	mux.HandleFunc("/api/currency", s.handleCurrencyBoard)
	mux.HandleFunc("/api/currency/", s.handleCurrencyRate)
	mux.HandleFunc("/api/stocks/", s.handleStockQuote)

	// Alerts
	mux.HandleFunc("/api/alerts", s.routeAlerts)
	mux.HandleFunc("/api/alerts/", s.handleAlertDelete)

	// Contact
	mux.HandleFunc("/api/message", s.handleMessage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
