package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		path     string
		prefix   string
		suffix   string
		expected string
	}{
		{"/api/stocks/AAPL", "/api/stocks/", "", "AAPL"},
		{"/api/currency/eur", "/api/currency/", "", "eur"},
		{"/api/alerts/trader@example.com", "/api/alerts/", "", "trader@example.com"},
		{"/api/stocks/AAPL/extra", "/api/stocks/", "", "AAPL"},
		{"/other/path", "/api/stocks/", "", ""},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if got := PathParam(r, tt.prefix, tt.suffix); got != tt.expected {
			t.Errorf("PathParam(%q, %q, %q) = %q, want %q", tt.path, tt.prefix, tt.suffix, got, tt.expected)
		}
	}
}

func TestRequireMethod(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	if !RequireMethod(rec, r, http.MethodGet, http.MethodHead) {
		t.Error("GET should be allowed")
	}

	rec = httptest.NewRecorder()
	if RequireMethod(rec, r, http.MethodPost) {
		t.Error("GET should be rejected when only POST is allowed")
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "POST" {
		t.Errorf("Allow header = %q, want POST", allow)
	}
}

func TestWriteResult_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResult(rec, map[string]float64{"margin": 200})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"success"`) {
		t.Errorf("missing success status: %s", body)
	}
	if !strings.Contains(body, `"margin":200`) {
		t.Errorf("missing result payload: %s", body)
	}
}

func TestDecodeJSON_NilBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/calculate/margin", nil)
	r.Body = nil
	rec := httptest.NewRecorder()

	var v struct{}
	if DecodeJSON(rec, r, &v) {
		t.Error("expected failure for nil body")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDecodeJSON_OversizeBody(t *testing.T) {
	big := strings.NewReader(`{"data":"` + strings.Repeat("x", 2<<20) + `"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/calculate/margin", big)
	rec := httptest.NewRecorder()

	var v map[string]string
	if DecodeJSON(rec, r, &v) {
		t.Error("expected failure for oversize body")
	}
}
