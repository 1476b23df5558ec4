package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/moneyhiver/hiver/internal/models"
)

// messageRequest mirrors the contact form.
type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// handleMessage handles POST /api/message. The contact message is emailed
// to the configured SMTP account with the visitor as Reply-To.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req messageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		WriteError(w, http.StatusBadRequest, "All fields are required!")
		return
	}

	msg := models.Message{
		To:      s.app.Config.SMTP.Address,
		ReplyTo: email,
		Subject: "Hiver",
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage: %s", name, email, message),
	}
	if err := s.app.Notifier.Send(r.Context(), msg); err != nil {
		s.logger.Warn().Err(err).Msg("Contact message delivery failed")
		WriteError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"success": "Your message has been sent successfully!"})
}
