package server

import (
	"fmt"
	"net/http"
	"strings"
)

// alertRequest mirrors the price alert subscription form.
type alertRequest struct {
	Email string  `json:"email"`
	Asset string  `json:"asset"`
	Price float64 `json:"price"`
}

// routeAlerts dispatches /api/alerts by method.
func (s *Server) routeAlerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleAlertList(w, r)
	case http.MethodPost:
		s.handleAlertSubscribe(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleAlertSubscribe handles POST /api/alerts.
func (s *Server) handleAlertSubscribe(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sub, err := s.app.AlertService.Subscribe(r.Context(), req.Email, req.Asset, req.Price)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": fmt.Sprintf("You have subscribed to %s price alerts! You will be notified when the price reaches $%.2f", sub.Asset, sub.TargetPrice),
		"alert":   sub,
	})
}

// handleAlertList handles GET /api/alerts.
func (s *Server) handleAlertList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.AlertService.List(r.Context()))
}

// handleAlertDelete handles DELETE /api/alerts/{email}.
func (s *Server) handleAlertDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	email := strings.TrimSpace(PathParam(r, "/api/alerts/", ""))
	if email == "" {
		WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if !s.app.AlertService.Unsubscribe(r.Context(), email) {
		WriteError(w, http.StatusNotFound, "No alert found for "+email)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"success": "Alert removed"})
}
